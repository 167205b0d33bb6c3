package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// WireDateLayout is the calendar-day portion of the ISO-8601 strings
// the backend speaks.
const WireDateLayout = "2006-01-02"

// DisplayDateLayout is how dates are rendered to the user. The list
// filter matches against this rendered form, so renderer and filter
// must agree on it.
const DisplayDateLayout = "02/01/2006"

type (
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Expense is the single domain entity. ID is assigned by the
	// backend and is absent until the record is persisted.
	Expense struct {
		ID          string `json:"_id,omitempty"`
		Description string `json:"description"`
		Date        Date   `json:"date"`
		Type        string `json:"type"`
		Amount      Money  `json:"amount"`
	}
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyType        = errors.New("empty type")
)

// NewDate creates a Date from year, month, day at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a calendar day in wire format. Time-of-day in
// incoming RFC 3339 timestamps is not meaningful to the domain, so it
// is accepted and truncated.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(WireDateLayout, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Wire returns the backend representation of the date.
func (d Date) Wire() string {
	return d.Format(WireDateLayout)
}

// Display returns the user-facing representation of the date.
func (d Date) Display() string {
	return d.Format(DisplayDateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Wire() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrNegativeAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Type) == "" {
		return ErrEmptyType
	}
	return e.Amount.Validate()
}
