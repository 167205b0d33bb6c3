// Package api is the single choke point for backend I/O. Every call
// attaches the stored bearer credential after a local expiry peek,
// and a 401 from the backend clears the credential and triggers a
// session reset, whatever the client thought about its own token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/madhawa1206/expense-tracker-frontend/internal/apperrors"
	"github.com/madhawa1206/expense-tracker-frontend/internal/core"
	applog "github.com/madhawa1206/expense-tracker-frontend/internal/log"
	"github.com/madhawa1206/expense-tracker-frontend/internal/token"
)

// CredentialStore is the injected holder of the bearer credential.
// The gateway never reaches for ambient state.
type CredentialStore interface {
	Token() (string, bool)
	SetToken(tok string) error
	Clear() error
}

type Client struct {
	baseURL string
	httpc   *http.Client
	creds   CredentialStore
	onReset func()
	log     *applog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client; tests use this
// to shorten timeouts.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithSessionReset registers the hook invoked after the credential
// has been cleared because it expired or the backend returned 401.
// The hook is the "force navigation to login" analog.
func WithSessionReset(fn func()) Option {
	return func(c *Client) { c.onReset = fn }
}

func WithLogger(l *applog.Logger) Option {
	return func(c *Client) { c.log = l }
}

func NewClient(baseURL string, creds CredentialStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
		creds:   creds,
		log:     applog.New(applog.Config{Component: "api"}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// authResponse is the body of both auth endpoints: exactly one of
// access_token or error is set.
type authResponse struct {
	AccessToken string `json:"access_token"`
	Error       string `json:"error"`
}

// errorResponse is the error payload non-auth endpoints may return
// alongside a 2xx status.
type errorResponse struct {
	Error string `json:"error"`
}

// ListExpenses fetches the full expense collection.
func (c *Client) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	var out []core.Expense
	if err := c.do(ctx, http.MethodGet, "/expenses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListExpensesBetween fetches expenses whose date falls within the
// inclusive [from, to] range.
func (c *Client) ListExpensesBetween(ctx context.Context, from, to core.Date) ([]core.Expense, error) {
	path := fmt.Sprintf("/expenses/filter/%s/%s", from.Wire(), to.Wire())
	var out []core.Expense
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateExpense persists a new expense. The caller is expected to
// refresh its working copy wholesale afterwards; the response body is
// not relied upon beyond its optional error payload.
func (c *Client) CreateExpense(ctx context.Context, e core.Expense) error {
	var out errorResponse
	if err := c.do(ctx, http.MethodPost, "/expenses", e, &out); err != nil {
		return err
	}
	if out.Error != "" {
		return apperrors.Validation("rejected_by_backend", out.Error)
	}
	return nil
}

// UpdateExpense replaces the full record identified by e.ID.
func (c *Client) UpdateExpense(ctx context.Context, e core.Expense) error {
	if e.ID == "" {
		return apperrors.Validation("missing_id", "expense has no id")
	}
	var out errorResponse
	if err := c.do(ctx, http.MethodPut, "/expenses/"+url.PathEscape(e.ID), e, &out); err != nil {
		return err
	}
	if out.Error != "" {
		return apperrors.Validation("rejected_by_backend", out.Error)
	}
	return nil
}

// DeleteExpense removes the record with the given id.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("missing_id", "expense has no id")
	}
	return c.do(ctx, http.MethodDelete, "/expenses/"+url.PathEscape(id), nil, nil)
}

// Login exchanges credentials for a bearer token. The backend reports
// bad credentials in the error payload, not via status code.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return "", err
	}
	if out.Error != "" {
		return "", apperrors.Auth("login_failed", out.Error)
	}
	if out.AccessToken == "" {
		return "", apperrors.Auth("login_failed", "authentication failed")
	}
	return out.AccessToken, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &out); err != nil {
		return err
	}
	if out.Error != "" {
		return apperrors.Auth("register_failed", out.Error)
	}
	return nil
}

// do runs one request against the backend. No retries, no backoff:
// transport failures propagate to the caller as Transport errors.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	reqID := uuid.NewString()

	var header string
	if tok, ok := c.creds.Token(); ok {
		if token.IsExpired(tok) {
			c.log.Info("stored credential expired, resetting session", "request_id", reqID)
			return c.resetSession("session_expired", "stored credential has expired")
		}
		header = "Bearer " + tok
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.Transport("encode_failed", "could not encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.Transport("bad_request", "could not build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	c.log.Debug("backend request", "request_id", reqID, "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("backend unreachable", "request_id", reqID, "error", err)
		return apperrors.Transport("request_failed", "backend unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Info("backend returned 401, resetting session", "request_id", reqID)
		return c.resetSession("unauthorized", "session rejected by backend")
	}
	if resp.StatusCode >= 400 {
		msg := fmt.Sprintf("backend returned %d", resp.StatusCode)
		if e := decodeErrorPayload(resp.Body); e != "" {
			msg = e
		}
		c.log.Warn("backend error", "request_id", reqID, "status", resp.StatusCode)
		return apperrors.Transport("backend_error", msg, nil)
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Transport("read_failed", "could not read response body", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Transport("decode_failed", "could not decode response body", err)
	}
	return nil
}

// resetSession clears the stored credential and fires the reset hook.
// Called both for locally detected expiry and for a backend 401, so
// server-side invalidation (revoked or rotated tokens) is covered
// even when the local peek still believes the token is fine.
func (c *Client) resetSession(code, msg string) error {
	if err := c.creds.Clear(); err != nil {
		c.log.Error("could not clear stored credential", "error", err)
	}
	if c.onReset != nil {
		c.onReset()
	}
	return apperrors.Session(code, msg)
}

func decodeErrorPayload(r io.Reader) string {
	var e errorResponse
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return ""
	}
	return e.Error
}
