// Package report computes the monthly dashboard numbers: total,
// count, average and the per-category breakdown behind the pie
// chart. The aggregator is period-agnostic; callers restrict the
// collection to a month with MonthRange and FilterRange first.
package report

import (
	"strings"

	"github.com/madhawa1206/expense-tracker-frontend/internal/core"
)

// Budget policy. A single fixed ceiling with a fixed alert fraction;
// a multi-user system would move this to per-user configuration.
const (
	MonthlyBudgetCents   int64   = 10000 * 100
	BudgetAlertThreshold float64 = 0.9
)

// CategoryAmount is one slice of the breakdown. Names are lower-cased
// grouping keys; order is the order categories were first seen.
type CategoryAmount struct {
	Name   string
	Amount core.Money
}

type Summary struct {
	Total      core.Money
	Count      int
	Average    string
	ByCategory []CategoryAmount
}

// Summarize aggregates the given collection. The average carries two
// decimal places and is "0.00" for an empty collection.
func Summarize(xs []core.Expense) Summary {
	s := Summary{Count: len(xs), Average: "0.00"}

	index := make(map[string]int)
	for _, e := range xs {
		s.Total.Cents += e.Amount.Cents
		key := strings.ToLower(e.Type)
		if i, ok := index[key]; ok {
			s.ByCategory[i].Amount.Cents += e.Amount.Cents
			continue
		}
		index[key] = len(s.ByCategory)
		s.ByCategory = append(s.ByCategory, CategoryAmount{Name: key, Amount: e.Amount})
	}

	if s.Count > 0 {
		s.Average = core.Money{Cents: divideRound(s.Total.Cents, int64(s.Count))}.String()
	}
	return s
}

// divideRound divides cents by n with half-up rounding.
func divideRound(cents, n int64) int64 {
	q := cents / n
	r := cents % n
	if 2*r >= n {
		q++
	}
	return q
}

// Get looks up a category by its lower-cased name.
func (s Summary) Get(name string) (core.Money, bool) {
	name = strings.ToLower(name)
	for _, c := range s.ByCategory {
		if c.Name == name {
			return c.Amount, true
		}
	}
	return core.Money{}, false
}

// OverBudget reports whether the total has reached the alert fraction
// of the monthly ceiling.
func (s Summary) OverBudget() bool {
	return float64(s.Total.Cents) >= BudgetAlertThreshold*float64(MonthlyBudgetCents)
}

// Share is a category's slice of the chart, as a percentage of the
// total.
type Share struct {
	Name    string
	Amount  core.Money
	Percent float64
}

// Shares returns the chart data. An empty or all-zero collection has
// no shares.
func (s Summary) Shares() []Share {
	if s.Total.Cents == 0 {
		return nil
	}
	out := make([]Share, 0, len(s.ByCategory))
	for _, c := range s.ByCategory {
		out = append(out, Share{
			Name:    c.Name,
			Amount:  c.Amount,
			Percent: float64(c.Amount.Cents) / float64(s.Total.Cents) * 100,
		})
	}
	return out
}

// MonthRange returns the inclusive first and last day of the month.
func MonthRange(year, month int) (core.Date, core.Date) {
	first := core.NewDate(year, month, 1)
	last := core.Date{Time: first.AddDate(0, 1, -1)}
	return first, last
}

// FilterRange keeps expenses whose date falls within [from, to]
// inclusive, preserving input order.
func FilterRange(xs []core.Expense, from, to core.Date) []core.Expense {
	var out []core.Expense
	for _, e := range xs {
		if e.Date.Before(from) || to.Before(e.Date) {
			continue
		}
		out = append(out, e)
	}
	return out
}
