package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
		y  int
		m  int
		d  int
	}{
		{"2024-01-05", true, 2024, 1, 5},
		{"2024-01-05T14:30:00Z", true, 2024, 1, 5}, // time-of-day truncated
		{" 2024-12-31 ", true, 2024, 12, 31},
		{"2024-13-01", false, 0, 0, 0},
		{"05/01/2024", false, 0, 0, 0},
		{"", false, 0, 0, 0},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if !tc.ok {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q unexpected error: %v", tc.in, err)
		}
		if got.Year() != tc.y || int(got.Month()) != tc.m || got.Day() != tc.d {
			t.Fatalf("%q parsed to %v", tc.in, got)
		}
	}
}

func TestDateDisplayAndWire(t *testing.T) {
	d := NewDate(2024, 1, 5)
	if d.Wire() != "2024-01-05" {
		t.Fatalf("wire form: %q", d.Wire())
	}
	if d.Display() != "05/01/2024" {
		t.Fatalf("display form: %q", d.Display())
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Description: "groceries",
		Date:        NewDate(2024, 1, 5),
		Type:        "food",
		Amount:      Money{Cents: 100},
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	zeroAmount := good
	zeroAmount.Amount = Money{}
	if err := zeroAmount.Validate(); err != nil {
		t.Fatalf("zero amount is allowed, got %v", err)
	}

	cases := []struct {
		name string
		mut  func(*Expense)
		want error
	}{
		{"empty description", func(e *Expense) { e.Description = "  " }, ErrEmptyDescription},
		{"zero date", func(e *Expense) { e.Date = Date{Time: time.Time{}} }, ErrInvalidDate},
		{"empty type", func(e *Expense) { e.Type = "" }, ErrEmptyType},
		{"negative amount", func(e *Expense) { e.Amount = Money{Cents: -500} }, ErrNegativeAmount},
	}
	for _, tc := range cases {
		e := good
		tc.mut(&e)
		if err := e.Validate(); err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestExpenseJSON(t *testing.T) {
	raw := `{"_id":"abc123","description":"rent","date":"2024-01-01","type":"Rent","amount":200}`
	var e Expense
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.ID != "abc123" || e.Amount.Cents != 20000 || e.Date.Wire() != "2024-01-01" {
		t.Fatalf("unexpected decode: %+v", e)
	}

	unsaved := Expense{
		Description: "coffee",
		Date:        NewDate(2024, 2, 1),
		Type:        "food",
		Amount:      Money{Cents: 350},
	}
	b, err := json.Marshal(unsaved)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if _, ok := m["_id"]; ok {
		t.Fatalf("unsaved expense must not carry an id: %s", b)
	}
}
