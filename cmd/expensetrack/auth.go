package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/madhawa1206/expense-tracker-frontend/internal/cli"
)

func runLogin(ctx context.Context, app *cli.App, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(stderr)
	username := fs.String("user", "", "Username")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return errors.New("missing required flag: -user")
	}

	password := *passwordFlag
	if password == "" {
		var err error
		password, err = promptPassword(stdin, stdout, "Password: ")
		if err != nil {
			return err
		}
	}

	if err := app.Session.Login(ctx, *username, password); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Logged in as %s\n", *username)
	return nil
}

func runRegister(ctx context.Context, app *cli.App, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(stderr)
	username := fs.String("user", "", "Username")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return errors.New("missing required flag: -user")
	}

	password := *passwordFlag
	confirm := password
	if password == "" {
		var err error
		password, err = promptPassword(stdin, stdout, "Password: ")
		if err != nil {
			return err
		}
		confirm, err = promptPassword(stdin, stdout, "Confirm password: ")
		if err != nil {
			return err
		}
	}

	if err := app.Session.Register(ctx, *username, password, confirm); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Account %s created, you can log in now\n", *username)
	return nil
}

func runLogout(app *cli.App, stdout io.Writer) error {
	if err := app.Session.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Logged out")
	return nil
}

func promptPassword(stdin io.Reader, stdout io.Writer, prompt string) (string, error) {
	fmt.Fprint(stdout, prompt)
	pw, err := readPassword(stdin)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Fprintln(stdout)
	if strings.TrimSpace(pw) == "" {
		return "", errors.New("password cannot be empty")
	}
	return pw, nil
}

func readPassword(stdin io.Reader) (string, error) {
	// Hide input when stdin is a terminal.
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Fallback for pipes and tests.
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
