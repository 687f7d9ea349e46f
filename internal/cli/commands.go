package cli

import (
	"context"
	"errors"
	"fmt"

	"programador/internal/client"
)

// Status reports whether the cached token is still accepted by the server.
func (a *App) Status(ctx context.Context, _ []string) error {
	token, ok, err := a.cache.Load()
	if err != nil {
		return err
	}
	if !ok {
		a.println("Status: Desconectado")
		return nil
	}

	email, err := a.client.Check(ctx, token)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			a.println("Status: Token inválido ou expirado")
			return nil
		}
		return err
	}

	a.println(fmt.Sprintf("Status: Conectado (%s)", email))
	return nil
}

// Login asks for credentials and caches the issued token.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := a.prompt.Text("Informe seu e-mail")
	if err != nil {
		return err
	}
	password, err := a.prompt.Password("Informe a senha")
	if err != nil {
		return err
	}

	token, err := a.client.Token(ctx, email, password)
	if err != nil {
		return a.reportAPIError(err, "Erro desconhecido ao fazer login")
	}

	if err := a.cache.Save(token); err != nil {
		return err
	}

	a.printSuccess("Login efetuado com sucesso!")
	return nil
}

// Logout forgets the cached token. The token stays valid on the server
// until it expires.
func (a *App) Logout(_ context.Context, _ []string) error {
	if err := a.cache.Clear(); err != nil {
		return err
	}
	a.println("Agora você está desconectado do servidor")
	return nil
}

// Register creates an account.
func (a *App) Register(ctx context.Context, _ []string) error {
	name, err := a.prompt.Text("Informe seu nome")
	if err != nil {
		return err
	}
	email, err := a.prompt.Text("Informe seu e-mail")
	if err != nil {
		return err
	}
	password, err := a.prompt.Password("Informe a senha")
	if err != nil {
		return err
	}
	confirmation, err := a.prompt.Password("Confirme a senha")
	if err != nil {
		return err
	}
	if password != confirmation {
		a.printFailure("As senhas informadas não conferem")
		return nil
	}

	msg, err := a.client.Register(ctx, name, email, password)
	if err != nil {
		return a.reportAPIError(err, "Erro desconhecido ao fazer o cadastro")
	}
	a.printSuccess(msg)
	return nil
}

// Enroll enrolls the logged in user in a course given as argument or prompted.
func (a *App) Enroll(ctx context.Context, args []string) error {
	token, ok, err := a.requireToken()
	if err != nil || !ok {
		return err
	}

	var code string
	if len(args) > 0 {
		code = args[0]
	} else if code, err = a.prompt.Text("Informe o código do curso"); err != nil {
		return err
	}

	msg, err := a.client.Enroll(ctx, token, code)
	if err != nil {
		return a.reportAPIError(err, "Erro desconhecido ao fazer a inscrição")
	}
	if msg == "" {
		msg = "Inscrição realizada com sucesso"
	}
	a.printSuccess(msg)
	return nil
}

// ListCourses prints the whole catalog.
func (a *App) ListCourses(ctx context.Context, _ []string) error {
	token, ok, err := a.requireToken()
	if err != nil || !ok {
		return err
	}

	courses, err := a.client.Courses(ctx, token)
	if err != nil {
		return a.reportAPIError(err, "Erro ao obter cursos do servidor")
	}
	a.printCourses(courses, "Não existe nenhum curso disponível!")
	return nil
}

// ListMine prints the user's enrollments.
func (a *App) ListMine(ctx context.Context, _ []string) error {
	token, ok, err := a.requireToken()
	if err != nil || !ok {
		return err
	}

	courses, err := a.client.MyCourses(ctx, token)
	if err != nil {
		return a.reportAPIError(err, "Erro ao obter suas inscrições do servidor")
	}
	a.printCourses(courses, "Você ainda não está inscrito em nenhum curso!")
	return nil
}

func (a *App) printCourses(courses []client.Course, empty string) {
	if len(courses) == 0 {
		a.println(empty)
		return
	}
	a.println("CODIGO                  NOME\n")
	for _, c := range courses {
		a.println(fmt.Sprintf("%-20s -> %s", c.Code, c.Name))
	}
}

// reportAPIError prints server-side failures in red and swallows them.
// Transport failures are returned.
func (a *App) reportAPIError(err error, fallback string) error {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		msg := apiErr.Msg
		if msg == "" {
			msg = fallback
		}
		a.printFailure(msg)
		return nil
	case errors.Is(err, client.ErrTokenUnreadable):
		a.printFailure(err.Error())
		return nil
	default:
		return err
	}
}
