package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// Session is the server-side security context for one authenticated
// client. It is keyed by an opaque identifier delivered via an
// HTTP-only cookie and holds the principal plus the CSRF token bound
// to it.
type Session struct {
	ID        string
	Username  string
	CSRFToken string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session's idle lifetime has elapsed
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// GenerateID generates a cryptographically secure session identifier.
// 32 bytes = 256 bits of entropy.
func GenerateID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
