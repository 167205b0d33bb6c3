// Package session tracks whether a user is authenticated. The
// credential is a single opaque string persisted under a fixed name
// in a local store; presence of the credential is what makes a
// session authenticated, while validity is checked lazily on each
// outgoing request by the gateway.
package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	applog "github.com/madhawa1206/expense-tracker-frontend/internal/log"

	_ "modernc.org/sqlite"
)

// credentialName is the fixed key the bearer token lives under.
const credentialName = "token"

// Store holds the single session credential.
type Store interface {
	Token() (string, bool)
	SetToken(tok string) error
	Clear() error
}

// SQLiteStore persists the credential across process runs; it is the
// local-storage analog of the browser client.
type SQLiteStore struct {
	db  *sql.DB
	log *applog.Logger
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create session db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping session database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run session migrations: %w", err)
	}

	return &SQLiteStore{
		db:  db,
		log: applog.New(applog.Config{Component: "session"}),
	}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Token returns the stored credential, if any.
func (s *SQLiteStore) Token() (string, bool) {
	var tok string
	err := s.db.QueryRow(
		`SELECT value FROM credentials WHERE name = ?`, credentialName,
	).Scan(&tok)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		s.log.Error("could not read stored credential", "error", err)
		return "", false
	}
	return tok, tok != ""
}

func (s *SQLiteStore) SetToken(tok string) error {
	_, err := s.db.Exec(
		`INSERT INTO credentials (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		credentialName, tok,
	)
	if err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM credentials WHERE name = ?`, credentialName)
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
