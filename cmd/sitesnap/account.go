package main

import (
	"context"
	"fmt"
	"io"

	"sitesnap/internal/app"
	"sitesnap/internal/usecase"
)

func runLogin(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := newFlags("login")
	var input usecase.LoginInput
	fs.StringVar(&input.Email, "email", "", "Account email")
	fs.StringVar(&input.Password, "password", "", "Account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.Sessions.Login(ctx, input)
	if err != nil {
		return err
	}

	return printJSON(out, user)
}

func runRegister(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := newFlags("register")
	var input usecase.RegisterInput
	fs.StringVar(&input.Email, "email", "", "Account email")
	fs.StringVar(&input.Password, "password", "", "Account password (at least 6 characters)")
	fs.StringVar(&input.Phone, "phone", "", "Contact phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.Sessions.Register(ctx, input)
	if err != nil {
		return err
	}
	if user == nil {
		_, err = fmt.Fprintln(out, "Account created. Log in to continue.")

		return err
	}

	return printJSON(out, user)
}

func runLogout(ctx context.Context, a *app.App, _ []string, out io.Writer) error {
	if err := a.Sessions.Logout(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, "Logged out.")

	return err
}

func runWhoami(ctx context.Context, a *app.App, _ []string, out io.Writer) error {
	user, err := a.Sessions.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		_, err = fmt.Fprintln(out, "Not logged in.")

		return err
	}

	return printJSON(out, user)
}
