package view

import "github.com/madhawa1206/expense-tracker-frontend/internal/core"

// Table is the stateful controller behind the expense list: the
// current query plus the pending-delete marker for the two-step
// delete confirmation.
type Table struct {
	query         Query
	pendingDelete string
}

func NewTable() *Table {
	return &Table{query: Query{Page: 1}}
}

func (t *Table) Query() Query {
	return t.query
}

// SetFilter replaces the filter and resets the current page to 1.
func (t *Table) SetFilter(f Filter) {
	t.query.Filter = f
	t.query.Page = 1
}

// ToggleSort selects a sort key. Toggling the active key flips the
// direction; selecting a new key resets to ascending. The current
// page is left alone.
func (t *Table) ToggleSort(key SortKey) {
	if key == SortNone {
		t.query.Sort = Sort{}
		return
	}
	if t.query.Sort.Key == key && t.query.Sort.Direction == Ascending {
		t.query.Sort.Direction = Descending
		return
	}
	t.query.Sort = Sort{Key: key, Direction: Ascending}
}

func (t *Table) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	t.query.Page = n
}

// Render applies the current query to the collection.
func (t *Table) Render(all []core.Expense) Page {
	return Render(all, t.query)
}

// RequestDelete marks an expense for deletion pending confirmation.
func (t *Table) RequestDelete(id string) {
	t.pendingDelete = id
}

// PendingDelete returns the marked id, if any.
func (t *Table) PendingDelete() (string, bool) {
	return t.pendingDelete, t.pendingDelete != ""
}

// ConfirmDelete invokes del with the pending id. The marker is
// cleared whether or not del succeeds. Confirming with nothing
// pending does nothing.
func (t *Table) ConfirmDelete(del func(id string) error) error {
	id := t.pendingDelete
	t.pendingDelete = ""
	if id == "" {
		return nil
	}
	return del(id)
}

// CancelDelete drops the pending marker and touches nothing else.
func (t *Table) CancelDelete() {
	t.pendingDelete = ""
}
