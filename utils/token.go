package utils

import (
	"github.com/google/uuid"
)

const (
	// SessionCookieName matches the cookie issued at registration.
	SessionCookieName = "sessionId"

	// SessionCookieMaxAge is 7 days, in seconds.
	SessionCookieMaxAge = 60 * 60 * 24 * 7
)

// NewSessionToken issues a fresh opaque session token.
func NewSessionToken() uuid.UUID {
	return uuid.New()
}

// ParseSessionToken validates the raw cookie value. A malformed token is
// treated the same as an unknown one by callers.
func ParseSessionToken(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}
