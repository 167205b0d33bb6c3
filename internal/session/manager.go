package session

import (
	"context"
	"fmt"

	"github.com/madhawa1206/expense-tracker-frontend/internal/apperrors"
	applog "github.com/madhawa1206/expense-tracker-frontend/internal/log"
)

// authGateway is the slice of the HTTP gateway the manager needs.
type authGateway interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error
}

// Manager exposes login and logout as explicit session state
// transitions over an injected store, rather than ambient lookups.
type Manager struct {
	store Store
	gw    authGateway
	log   *applog.Logger
}

func NewManager(store Store, gw authGateway, logger *applog.Logger) *Manager {
	if logger == nil {
		logger = applog.New(applog.Config{Component: "session"})
	}
	return &Manager{store: store, gw: gw, log: logger.WithComponent("session")}
}

// IsAuthenticated reports credential presence. Expiry is checked
// lazily by the gateway on each outgoing request, not here.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.store.Token()
	return ok
}

// Login exchanges credentials for a token and stores it.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	tok, err := m.gw.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := m.store.SetToken(tok); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	m.log.Info("logged in", "username", username)
	return nil
}

// Register validates the password locally before any network call:
// confirmation mismatch and weak passwords never leave the client.
func (m *Manager) Register(ctx context.Context, username, password, confirm string) error {
	if password != confirm {
		return apperrors.Validation("password_mismatch", "Passwords do not match")
	}
	if !CheckPassword(password).OK() {
		return apperrors.Validation("weak_password", "Password does not meet the strength requirements")
	}
	if err := m.gw.Register(ctx, username, password); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	m.log.Info("registered", "username", username)
	return nil
}

// Logout clears the stored credential. Logging out when no session
// exists is a no-op.
func (m *Manager) Logout() error {
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	m.log.Info("logged out")
	return nil
}
