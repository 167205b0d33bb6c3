package services

import (
	"context"
	"testing"

	"github.com/madhawa1206/expense-tracker-frontend/internal/apperrors"
	"github.com/madhawa1206/expense-tracker-frontend/internal/core"
)

// fakeGateway records calls and serves a canned collection.
type fakeGateway struct {
	items   []core.Expense
	between []core.Expense

	listCalls    int
	createCalls  int
	updateCalls  int
	deleteCalls  int
	betweenCalls int

	deletedID string
	fetch     func(ctx context.Context) ([]core.Expense, error)
}

func (f *fakeGateway) ListExpenses(_ context.Context) ([]core.Expense, error) {
	f.listCalls++
	return append([]core.Expense(nil), f.items...), nil
}

func (f *fakeGateway) ListExpensesBetween(ctx context.Context, _, _ core.Date) ([]core.Expense, error) {
	f.betweenCalls++
	if f.fetch != nil {
		return f.fetch(ctx)
	}
	return append([]core.Expense(nil), f.between...), nil
}

func (f *fakeGateway) CreateExpense(_ context.Context, e core.Expense) error {
	f.createCalls++
	e.ID = "new"
	f.items = append(f.items, e)
	return nil
}

func (f *fakeGateway) UpdateExpense(_ context.Context, _ core.Expense) error {
	f.updateCalls++
	return nil
}

func (f *fakeGateway) DeleteExpense(_ context.Context, id string) error {
	f.deleteCalls++
	f.deletedID = id
	return nil
}

func seed() []core.Expense {
	return []core.Expense{
		{ID: "1", Description: "groceries", Type: "food", Date: core.NewDate(2024, 1, 5), Amount: core.Money{Cents: 10000}},
		{ID: "2", Description: "rent", Type: "rent", Date: core.NewDate(2024, 1, 1), Amount: core.Money{Cents: 20000}},
	}
}

func TestRefreshReplacesWorkingCopy(t *testing.T) {
	gw := &fakeGateway{items: seed()}
	svc := NewExpenseService(gw, nil)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := svc.Expenses(); len(got) != 2 {
		t.Fatalf("working copy size = %d", len(got))
	}

	// The snapshot is a copy, not a view.
	snap := svc.Expenses()
	snap[0].Description = "mutated"
	if svc.Expenses()[0].Description != "groceries" {
		t.Fatalf("snapshot mutation leaked into the working copy")
	}
}

func TestAddValidatesBeforeNetwork(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewExpenseService(gw, nil)

	bad := core.Expense{
		Description: "impossible",
		Type:        "misc",
		Date:        core.NewDate(2024, 1, 1),
		Amount:      core.Money{Cents: -500},
	}
	err := svc.Add(context.Background(), bad)
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if gw.createCalls != 0 || gw.listCalls != 0 {
		t.Fatalf("rejected expense must trigger no network call (create=%d list=%d)", gw.createCalls, gw.listCalls)
	}
}

func TestAddRefreshesWholesale(t *testing.T) {
	gw := &fakeGateway{items: seed()}
	svc := NewExpenseService(gw, nil)

	e := core.Expense{
		Description: "coffee",
		Type:        "food",
		Date:        core.NewDate(2024, 1, 7),
		Amount:      core.Money{Cents: 350},
	}
	if err := svc.Add(context.Background(), e); err != nil {
		t.Fatalf("add: %v", err)
	}
	if gw.createCalls != 1 || gw.listCalls != 1 {
		t.Fatalf("add must create then re-fetch (create=%d list=%d)", gw.createCalls, gw.listCalls)
	}
	if got := svc.Expenses(); len(got) != 3 {
		t.Fatalf("working copy after add = %d rows", len(got))
	}
}

func TestUpdatePatchesInPlace(t *testing.T) {
	gw := &fakeGateway{items: seed()}
	svc := NewExpenseService(gw, nil)
	svc.Refresh(context.Background())
	gw.listCalls = 0

	edited := seed()[0]
	edited.Description = "weekly groceries"
	if err := svc.Update(context.Background(), edited); err != nil {
		t.Fatalf("update: %v", err)
	}
	if gw.listCalls != 0 {
		t.Fatalf("update must patch locally, not re-fetch")
	}
	if got := svc.Expenses()[0].Description; got != "weekly groceries" {
		t.Fatalf("patched description = %q", got)
	}
}

func TestRemoveSplicesLocally(t *testing.T) {
	gw := &fakeGateway{items: seed()}
	svc := NewExpenseService(gw, nil)
	svc.Refresh(context.Background())
	gw.listCalls = 0

	if err := svc.Remove(context.Background(), "1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if gw.deletedID != "1" {
		t.Fatalf("deleted id = %q", gw.deletedID)
	}
	if gw.listCalls != 0 {
		t.Fatalf("remove must splice locally, not re-fetch")
	}
	got := svc.Expenses()
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("working copy after remove: %+v", got)
	}
}
