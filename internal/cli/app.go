package cli

import (
	"io"

	"github.com/fatih/color"

	"programador/internal/client"
	"programador/internal/client/tokencache"
)

// App carries what every command needs: the API client, the token cache and
// the terminal streams.
type App struct {
	client *client.Client
	cache  *tokencache.Cache
	prompt *Prompter
	out    io.Writer

	success *color.Color
	failure *color.Color
}

func newApp(cfg Config, opts Options) (*App, error) {
	cache, err := tokencache.New(cfg.Home)
	if err != nil {
		return nil, err
	}
	return &App{
		client:  client.New(cfg.APIURL, opts.HTTPClient),
		cache:   cache,
		prompt:  NewPrompter(opts.In, opts.Out),
		out:     opts.Out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}, nil
}

func (a *App) println(msg string) {
	_, _ = io.WriteString(a.out, msg+"\n")
}

func (a *App) printSuccess(msg string) {
	_, _ = a.success.Fprintln(a.out, msg)
}

func (a *App) printFailure(msg string) {
	_, _ = a.failure.Fprintln(a.out, msg)
}

// requireToken loads the cached token, telling the user to log in when none
// is cached. A corrupt cache is returned as an error.
func (a *App) requireToken() (string, bool, error) {
	token, ok, err := a.cache.Load()
	if err != nil {
		return "", false, err
	}
	if !ok {
		a.println("É necessário se conectar ao servidor primeiro")
		a.println("Use: programador login")
		return "", false, nil
	}
	return token, true, nil
}
