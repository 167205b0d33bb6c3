// Package services orchestrates the gateway and the client's working
// copy of the expense collection. The working copy is refreshed
// wholesale after a create and patched in place after an edit or
// delete, so those operations avoid a full re-fetch.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/madhawa1206/expense-tracker-frontend/internal/apperrors"
	"github.com/madhawa1206/expense-tracker-frontend/internal/core"
	applog "github.com/madhawa1206/expense-tracker-frontend/internal/log"
)

// Gateway is the slice of the HTTP gateway the services consume.
type Gateway interface {
	ListExpenses(ctx context.Context) ([]core.Expense, error)
	ListExpensesBetween(ctx context.Context, from, to core.Date) ([]core.Expense, error)
	CreateExpense(ctx context.Context, e core.Expense) error
	UpdateExpense(ctx context.Context, e core.Expense) error
	DeleteExpense(ctx context.Context, id string) error
}

// ExpenseService owns the working copy.
type ExpenseService struct {
	gw  Gateway
	log *applog.Logger

	mu    sync.Mutex
	items []core.Expense
}

func NewExpenseService(gw Gateway, logger *applog.Logger) *ExpenseService {
	if logger == nil {
		logger = applog.New(applog.Config{Component: "expenses"})
	}
	return &ExpenseService{gw: gw, log: logger.WithComponent("expenses")}
}

// Refresh replaces the working copy with the backend's collection.
func (s *ExpenseService) Refresh(ctx context.Context) error {
	items, err := s.gw.ListExpenses(ctx)
	if err != nil {
		return fmt.Errorf("refresh expenses: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.log.Debug("working copy refreshed", "count", len(items))
	return nil
}

// Expenses returns a snapshot of the working copy.
func (s *ExpenseService) Expenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.items...)
}

// Add validates the expense locally, persists it, and refreshes the
// working copy wholesale. A validation failure never reaches the
// backend.
func (s *ExpenseService) Add(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return validationError(err)
	}
	if err := s.gw.CreateExpense(ctx, e); err != nil {
		return fmt.Errorf("add expense: %w", err)
	}
	return s.Refresh(ctx)
}

// Update replaces the persisted record and patches the working copy
// in place.
func (s *ExpenseService) Update(ctx context.Context, e core.Expense) error {
	if e.ID == "" {
		return apperrors.Validation("missing_id", "expense has no id")
	}
	if err := e.Validate(); err != nil {
		return validationError(err)
	}
	if err := s.gw.UpdateExpense(ctx, e); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == e.ID {
			s.items[i] = e
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// Remove deletes the persisted record and splices it out of the
// working copy.
func (s *ExpenseService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("missing_id", "expense has no id")
	}
	if err := s.gw.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// validationError translates domain sentinels into the Validation
// kind with a stable code.
func validationError(err error) *apperrors.Error {
	code := "invalid_expense"
	message := "Please enter a valid expense"
	switch {
	case errors.Is(err, core.ErrNegativeAmount), errors.Is(err, core.ErrInvalidAmount):
		code, message = "invalid_amount", "Please enter a valid amount"
	case errors.Is(err, core.ErrEmptyDescription):
		code, message = "empty_description", "Please enter a description"
	case errors.Is(err, core.ErrInvalidDate):
		code, message = "invalid_date", "Please enter a valid date"
	case errors.Is(err, core.ErrEmptyType):
		code, message = "empty_type", "Please enter an expense type"
	}
	return apperrors.Validation(code, message)
}
