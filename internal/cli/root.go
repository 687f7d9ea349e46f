// Package cli implements the programador command-line client.
package cli

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

// Options lets callers replace the process streams and HTTP client.
type Options struct {
	In         io.Reader
	Out        io.Writer
	HTTPClient *http.Client
}

// NewRootCmd builds the command tree.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	var app *App

	root := &cobra.Command{
		Use:          "programador",
		Short:        "Cliente para inscrição nos cursos do projeto Programador",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			app, err = newApp(cfg, opts)
			return err
		},
	}
	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Out)

	root.PersistentFlags().String("api-url", "", "endereço da API (padrão http://localhost:5000/api)")
	root.PersistentFlags().String("home", "", "diretório de dados do cliente (padrão ~/.programador)")

	run := func(fn func(a *App, ctx context.Context, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			return fn(app, cmd.Context(), args)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Exibe o status de sua conexão com o servidor",
			Args:  cobra.NoArgs,
			RunE:  run((*App).Status),
		},
		&cobra.Command{
			Use:   "login",
			Short: "Faz o login no servidor",
			Args:  cobra.NoArgs,
			RunE:  run((*App).Login),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Desconecta do servidor apagando o token local",
			Args:  cobra.NoArgs,
			RunE:  run((*App).Logout),
		},
		&cobra.Command{
			Use:   "cadastrar",
			Short: "Cria uma conta no servidor",
			Args:  cobra.NoArgs,
			RunE:  run((*App).Register),
		},
		&cobra.Command{
			Use:   "inscrever [codigo]",
			Short: "Faz a inscrição em um curso",
			Args:  cobra.MaximumNArgs(1),
			RunE:  run((*App).Enroll),
		},
		&cobra.Command{
			Use:   "cursos",
			Short: "Lista todos os cursos disponíveis",
			Args:  cobra.NoArgs,
			RunE:  run((*App).ListCourses),
		},
		&cobra.Command{
			Use:   "inscricoes",
			Short: "Lista os cursos em que você está inscrito",
			Args:  cobra.NoArgs,
			RunE:  run((*App).ListMine),
		},
	)

	return root
}

// Execute runs the CLI against the process streams.
func Execute() error {
	return NewRootCmd(Options{}).Execute()
}
