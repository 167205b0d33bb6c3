// Command expensetrack is a terminal client for the expense tracker
// backend: authenticate, record expenses, browse and edit them, and
// view a monthly summary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/madhawa1206/expense-tracker-frontend/internal/apperrors"
	"github.com/madhawa1206/expense-tracker-frontend/internal/cli"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errors.New("missing command")
	}

	app, err := cli.Setup()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := context.Background()

	var cmdErr error
	switch args[0] {
	case "register":
		cmdErr = runRegister(ctx, app, args[1:], stdin, stdout, stderr)
	case "login":
		cmdErr = runLogin(ctx, app, args[1:], stdin, stdout, stderr)
	case "logout":
		cmdErr = runLogout(app, stdout)
	case "list":
		cmdErr = runList(ctx, app, args[1:], stdout, stderr)
	case "add":
		cmdErr = runAdd(ctx, app, args[1:], stdout, stderr)
	case "edit":
		cmdErr = runEdit(ctx, app, args[1:], stdout, stderr)
	case "delete":
		cmdErr = runDelete(ctx, app, args[1:], stdin, stdout, stderr)
	case "summary":
		cmdErr = runSummary(ctx, app, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return friendly(app, cmdErr)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: expensetrack <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  register   Create an account")
	fmt.Fprintln(w, "  login      Log in and store the session credential")
	fmt.Fprintln(w, "  logout     Clear the stored session credential")
	fmt.Fprintln(w, "  list       Browse expenses (filter, sort, paginate)")
	fmt.Fprintln(w, "  add        Record a new expense")
	fmt.Fprintln(w, "  edit       Edit an existing expense")
	fmt.Fprintln(w, "  delete     Delete an expense (asks for confirmation)")
	fmt.Fprintln(w, "  summary    Monthly totals, averages and category breakdown")
}

// friendly maps error kinds onto the user-facing surfaces: the plain
// message for validation and auth failures, a log-in-again hint when
// the session was reset, inline text for transport failures.
func friendly(app *cli.App, err error) error {
	if err == nil {
		return nil
	}
	var ae *apperrors.Error
	if errors.As(err, &ae) {
		if ae.Kind == apperrors.KindSession || app.SessionReset {
			return errors.New("your session has expired, please log in again")
		}
		return errors.New(ae.Message)
	}
	return err
}
