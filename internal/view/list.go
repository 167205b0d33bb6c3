// Package view turns the raw expense collection into the exact rows
// to render: a stable sort over the full collection, then three
// AND-combined substring filters, then a fixed-size page window.
// Sort runs before filtering so the filtered result inherits the
// sorted order.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/madhawa1206/expense-tracker-frontend/internal/core"
)

// PageSize is fixed; the backend knows nothing about pages.
const PageSize = 10

type SortKey string

const (
	SortNone        SortKey = ""
	SortDescription SortKey = "description"
	SortDate        SortKey = "date"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

type Sort struct {
	Key       SortKey
	Direction Direction
}

// Filter holds three independent case-insensitive substring
// predicates. An empty value always matches. The date predicate
// matches against the rendered date, the same form the user sees.
type Filter struct {
	Description string
	Type        string
	Date        string
}

func (f Filter) matches(e core.Expense) bool {
	if f.Description != "" &&
		!strings.Contains(strings.ToLower(e.Description), strings.ToLower(f.Description)) {
		return false
	}
	if f.Type != "" &&
		!strings.Contains(strings.ToLower(e.Type), strings.ToLower(f.Type)) {
		return false
	}
	if f.Date != "" &&
		!strings.Contains(strings.ToLower(e.Date.Display()), strings.ToLower(f.Date)) {
		return false
	}
	return true
}

type Query struct {
	Filter Filter
	Sort   Sort
	Page   int // 1-based
}

type Page struct {
	Rows       []core.Expense
	TotalPages int
}

// Render produces the page of rows for q. The input is never
// mutated. TotalPages is at least 1 even for an empty filtered
// result, so the renderer shows "no results" on page 1 rather than
// zero pages.
func Render(all []core.Expense, q Query) Page {
	sorted := append([]core.Expense(nil), all...)
	applySort(sorted, q.Sort)

	var filtered []core.Expense
	for _, e := range sorted {
		if q.Filter.matches(e) {
			filtered = append(filtered, e)
		}
	}

	totalPages := (len(filtered) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	lo := (page - 1) * PageSize
	if lo >= len(filtered) {
		return Page{Rows: nil, TotalPages: totalPages}
	}
	hi := lo + PageSize
	if hi > len(filtered) {
		hi = len(filtered)
	}
	return Page{Rows: filtered[lo:hi], TotalPages: totalPages}
}

// applySort sorts in place. The sort must be stable: ties retain
// their relative input order, there is no tie-break key.
func applySort(xs []core.Expense, s Sort) {
	switch s.Key {
	case SortDescription:
		// Locale-aware ordering, not plain byte comparison.
		col := collate.New(language.Und)
		sort.SliceStable(xs, func(i, j int) bool {
			cmp := col.CompareString(xs[i].Description, xs[j].Description)
			if s.Direction == Descending {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortDate:
		sort.SliceStable(xs, func(i, j int) bool {
			if s.Direction == Descending {
				return xs[j].Date.Before(xs[i].Date)
			}
			return xs[i].Date.Before(xs[j].Date)
		})
	}
}
