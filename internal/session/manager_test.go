package session

import (
	"context"
	"testing"

	"github.com/madhawa1206/expense-tracker-frontend/internal/apperrors"
)

type fakeGateway struct {
	loginTok    string
	loginErr    error
	registerErr error
	loginCalls  int
	regCalls    int
}

func (f *fakeGateway) Login(_ context.Context, _, _ string) (string, error) {
	f.loginCalls++
	return f.loginTok, f.loginErr
}

func (f *fakeGateway) Register(_ context.Context, _, _ string) error {
	f.regCalls++
	return f.registerErr
}

func TestLoginStoresToken(t *testing.T) {
	store := NewMemoryStore()
	gw := &fakeGateway{loginTok: "tok-1"}
	m := NewManager(store, gw, nil)

	if m.IsAuthenticated() {
		t.Fatalf("fresh manager must not be authenticated")
	}
	if err := m.Login(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !m.IsAuthenticated() {
		t.Fatalf("expected authenticated after login")
	}
	if tok, _ := store.Token(); tok != "tok-1" {
		t.Fatalf("stored token = %q", tok)
	}
}

func TestLoginFailureKeepsSessionOut(t *testing.T) {
	gw := &fakeGateway{loginErr: apperrors.Auth("login_failed", "invalid credentials")}
	m := NewManager(NewMemoryStore(), gw, nil)

	err := m.Login(context.Background(), "alice", "wrong")
	if !apperrors.IsKind(err, apperrors.KindAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if m.IsAuthenticated() {
		t.Fatalf("failed login must not authenticate")
	}
}

func TestRegisterValidatesBeforeNetwork(t *testing.T) {
	cases := []struct {
		name     string
		password string
		confirm  string
		code     string
	}{
		{"mismatch", "Str0ngpass", "Other0pass", "password_mismatch"},
		{"too short", "Ab1x", "Ab1x", "weak_password"},
		{"no digit", "Abcdefgh", "Abcdefgh", "weak_password"},
		{"no upper", "abcdefg1", "abcdefg1", "weak_password"},
		{"no lower", "ABCDEFG1", "ABCDEFG1", "weak_password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &fakeGateway{}
			m := NewManager(NewMemoryStore(), gw, nil)
			err := m.Register(context.Background(), "alice", tc.password, tc.confirm)
			if !apperrors.IsKind(err, apperrors.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if gw.regCalls != 0 {
				t.Fatalf("validation failure must not reach the backend")
			}
		})
	}

	gw := &fakeGateway{}
	m := NewManager(NewMemoryStore(), gw, nil)
	if err := m.Register(context.Background(), "alice", "Str0ngpass", "Str0ngpass"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if gw.regCalls != 1 {
		t.Fatalf("expected one register call, got %d", gw.regCalls)
	}
}

func TestLogoutClearsCredential(t *testing.T) {
	store := NewMemoryStore()
	store.SetToken("tok")
	m := NewManager(store, &fakeGateway{}, nil)

	if err := m.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if m.IsAuthenticated() {
		t.Fatalf("expected unauthenticated after logout")
	}
	// Logging out twice is harmless.
	if err := m.Logout(); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestCheckPassword(t *testing.T) {
	c := CheckPassword("Abcdef1h")
	if !c.OK() {
		t.Fatalf("expected all checks to pass: %+v", c)
	}
	if CheckPassword("abc").OK() {
		t.Fatalf("weak password must fail")
	}
}
