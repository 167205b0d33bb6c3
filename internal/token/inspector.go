// Package token decides whether a stored bearer credential is still
// worth sending. It peeks at the unverified JWT payload and compares
// the exp claim against the wall clock. This is a UX fast path, not a
// security check: the signature is never verified, and the backend
// remains the authority on whether a token is actually valid.
package token

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsExpired reports whether the token's exp claim lies strictly in
// the past, truncated to whole seconds. A token that cannot be split
// into three segments or whose payload does not decode is treated as
// expired. A token without an exp claim is treated as unexpired; the
// backend will reject it if it disagrees.
func IsExpired(tok string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		slog.Debug("token payload not decodable, treating as expired", "error", err)
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		slog.Debug("exp claim not readable, treating as expired", "error", err)
		return true
	}
	if exp == nil {
		return false
	}
	return exp.Unix() < time.Now().Unix()
}
