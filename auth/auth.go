// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ID lengths
const (
	PollIDLength = 10
	BookIDLength = 8
)

// SessionCookieName identifies a browser across visits
const SessionCookieName = "bookpoll_session"

// SessionMaxAge is ten years
const SessionMaxAge = 10 * 365 * 24 * time.Hour

// GenerateID creates a random URL-safe NanoID of the given length
func GenerateID(length int) (string, error) {
	id, err := gonanoid.New(length)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return id, nil
}

// GeneratePollID creates a short, shareable poll ID
func GeneratePollID() (string, error) {
	return GenerateID(PollIDLength)
}

// GenerateBookID creates an ID for a book within a poll
func GenerateBookID() (string, error) {
	return GenerateID(BookIDLength)
}

// GenerateSessionID creates a random UUID for a new session
func GenerateSessionID() string {
	return uuid.NewString()
}

// ValidSessionID reports whether id looks like a session ID we issued
func ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// NewSessionCookie builds the long-lived session cookie
func NewSessionCookie(sessionID string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
