package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/madhawa1206/expense-tracker-frontend/internal/apperrors"
	"github.com/madhawa1206/expense-tracker-frontend/internal/cli"
	"github.com/madhawa1206/expense-tracker-frontend/internal/core"
	"github.com/madhawa1206/expense-tracker-frontend/internal/view"
)

func runList(ctx context.Context, app *cli.App, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	descFilter := fs.String("desc", "", "Filter by description (substring)")
	typeFilter := fs.String("type", "", "Filter by type (substring)")
	dateFilter := fs.String("date", "", "Filter by rendered date (substring)")
	sortKey := fs.String("sort", "", "Sort key: description or date")
	sortDir := fs.String("dir", "asc", "Sort direction: asc or desc")
	page := fs.Int("page", 1, "Page number (1-based)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	q := view.Query{
		Filter: view.Filter{
			Description: *descFilter,
			Type:        *typeFilter,
			Date:        *dateFilter,
		},
		Page: *page,
	}
	switch *sortKey {
	case "":
	case "description":
		q.Sort.Key = view.SortDescription
	case "date":
		q.Sort.Key = view.SortDate
	default:
		return fmt.Errorf("unknown sort key %q", *sortKey)
	}
	switch *sortDir {
	case "", "asc":
	case "desc":
		q.Sort.Direction = view.Descending
	default:
		return fmt.Errorf("unknown sort direction %q", *sortDir)
	}

	if err := app.Expenses.Refresh(ctx); err != nil {
		return err
	}
	p := view.Render(app.Expenses.Expenses(), q)

	if len(p.Rows) == 0 {
		fmt.Fprintln(stdout, "No expenses found")
	} else {
		w := tabwriter.NewWriter(stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDESCRIPTION\tDATE\tTYPE\tAMOUNT")
		for _, e := range p.Rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Description, e.Date.Display(), e.Type, e.Amount)
		}
		w.Flush()
	}
	fmt.Fprintf(stdout, "Page %d of %d\n", q.Page, p.TotalPages)
	return nil
}

func runAdd(ctx context.Context, app *cli.App, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(stderr)
	description := fs.String("description", "", "Expense description")
	date := fs.String("date", "", "Expense date (YYYY-MM-DD)")
	typ := fs.String("type", "", "Expense type (category)")
	amount := fs.String("amount", "", "Amount, e.g. 12.34")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := buildExpense(*description, *date, *typ, *amount)
	if err != nil {
		return err
	}
	if err := app.Expenses.Add(ctx, e); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Expense added")
	return nil
}

func runEdit(ctx context.Context, app *cli.App, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	id := fs.String("id", "", "Expense id")
	description := fs.String("description", "", "New description (unchanged if omitted)")
	date := fs.String("date", "", "New date (unchanged if omitted)")
	typ := fs.String("type", "", "New type (unchanged if omitted)")
	amount := fs.String("amount", "", "New amount (unchanged if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("missing required flag: -id")
	}

	if err := app.Expenses.Refresh(ctx); err != nil {
		return err
	}
	var current *core.Expense
	for _, e := range app.Expenses.Expenses() {
		if e.ID == *id {
			e := e
			current = &e
			break
		}
	}
	if current == nil {
		return fmt.Errorf("no expense with id %s", *id)
	}

	if *description != "" {
		current.Description = *description
	}
	if *date != "" {
		d, err := core.ParseDate(*date)
		if err != nil {
			return apperrors.Validation("invalid_date", "Please enter a valid date")
		}
		current.Date = d
	}
	if *typ != "" {
		current.Type = *typ
	}
	if *amount != "" {
		a, err := core.ParseAmount(*amount)
		if err != nil {
			return apperrors.Validation("invalid_amount", "Please enter a valid amount")
		}
		current.Amount = a
	}

	if err := app.Expenses.Update(ctx, *current); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Expense updated")
	return nil
}

func runDelete(ctx context.Context, app *cli.App, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(stderr)
	id := fs.String("id", "", "Expense id")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("missing required flag: -id")
	}

	tbl := view.NewTable()
	tbl.RequestDelete(*id)

	if !*yes {
		fmt.Fprintf(stdout, "Delete expense %s? [y/N]: ", *id)
		answer := ""
		scanner := bufio.NewScanner(stdin)
		if scanner.Scan() {
			answer = strings.ToLower(strings.TrimSpace(scanner.Text()))
		}
		if answer != "y" && answer != "yes" {
			tbl.CancelDelete()
			fmt.Fprintln(stdout, "Cancelled")
			return nil
		}
	}

	if err := tbl.ConfirmDelete(func(id string) error {
		return app.Expenses.Remove(ctx, id)
	}); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Expense deleted")
	return nil
}

// buildExpense turns raw flag values into a validated expense,
// reporting parse failures the way the entry form would.
func buildExpense(description, date, typ, amount string) (core.Expense, error) {
	if strings.TrimSpace(amount) == "" {
		return core.Expense{}, apperrors.Validation("invalid_amount", "Please enter a valid amount")
	}
	a, err := core.ParseAmount(amount)
	if err != nil {
		return core.Expense{}, apperrors.Validation("invalid_amount", "Please enter a valid amount")
	}
	d, err := core.ParseDate(date)
	if err != nil {
		return core.Expense{}, apperrors.Validation("invalid_date", "Please enter a valid date")
	}
	return core.Expense{
		Description: description,
		Date:        d,
		Type:        typ,
		Amount:      a,
	}, nil
}
