package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/madhawa1206/expense-tracker-frontend/internal/cli"
	"github.com/madhawa1206/expense-tracker-frontend/internal/report"
	"github.com/madhawa1206/expense-tracker-frontend/internal/services"
)

func runSummary(ctx context.Context, app *cli.App, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	fs.SetOutput(stderr)
	month := fs.String("month", "", "Reporting month as YYYY-MM (default: current month)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	year, m, err := parseMonth(*month)
	if err != nil {
		return err
	}

	s, err := app.Dashboard.MonthSummary(ctx, year, m)
	if errors.Is(err, services.ErrStaleResponse) {
		// Superseded by a newer request; nothing to show.
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Expense summary for %04d-%02d\n\n", year, m)

	if s.OverBudget() {
		fmt.Fprintf(stdout, "Warning: you have reached %.0f%% of your monthly expense limit!\n\n",
			report.BudgetAlertThreshold*100)
	}

	w := tabwriter.NewWriter(stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOTAL\tCOUNT\tAVERAGE")
	fmt.Fprintf(w, "%s\t%d\t%s\n", s.Total, s.Count, s.Average)
	w.Flush()

	if len(s.ByCategory) == 0 {
		fmt.Fprintln(stdout, "\nNo data available")
		return nil
	}

	fmt.Fprintln(stdout, "\nBy category:")
	cw := tabwriter.NewWriter(stdout, 2, 4, 2, ' ', 0)
	for _, share := range s.Shares() {
		fmt.Fprintf(cw, "  %s\t%s\t%.2f%%\n", share.Name, share.Amount, share.Percent)
	}
	cw.Flush()
	return nil
}

func parseMonth(s string) (year, month int, err error) {
	if s == "" {
		now := time.Now()
		return now.Year(), int(now.Month()), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return t.Year(), int(t.Month()), nil
}
