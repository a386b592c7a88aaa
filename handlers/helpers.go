// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/book-poll/middleware"
	"github.com/danielhkuo/book-poll/models"
	"github.com/danielhkuo/book-poll/store"
	"github.com/danielhkuo/book-poll/validation"
)

// requestError rejects a poll update with a status code and user-facing message
type requestError struct {
	status  int
	message string
}

func (e *requestError) Error() string { return e.message }

func reject(status int, message string) error {
	return &requestError{status: status, message: message}
}

// parseRequest decodes, trims and validates a JSON body. It writes a 400
// response and returns false when the body is unusable.
func parseRequest(w http.ResponseWriter, r *http.Request, v *validation.Validator, req any) bool {
	if err := middleware.ParseJSONBody(r, req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	validation.TrimStrings(req)
	if err := v.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// writePollError maps errors from loading or updating a poll to a response
func writePollError(w http.ResponseWriter, err error, pollID, action string) {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		middleware.ErrorResponse(w, reqErr.status, reqErr.message)
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	default:
		slog.Error("failed to "+action, "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

// getOrCreateSession loads the session record, creating it if missing.
// Storage failures fall back to an unsaved session so requests still work.
func getOrCreateSession(ctx context.Context, polls *store.PollStore, sessionID string) *models.Session {
	session, err := polls.GetSession(ctx, sessionID)
	if err == nil {
		return session
	}

	session = &models.Session{ID: sessionID, CreatedAt: time.Now()}
	if !errors.Is(err, store.ErrNotFound) {
		slog.Warn("failed to load session", "session_id", sessionID, "error", err)
		return session
	}
	if err := polls.SaveSession(ctx, session); err != nil {
		slog.Warn("failed to save session", "session_id", sessionID, "error", err)
	}
	return session
}

// nameSession remembers the first name a session uses. Non-fatal.
func nameSession(ctx context.Context, polls *store.PollStore, sessionID, name string) {
	if sessionID == "" || name == "" {
		return
	}
	session := getOrCreateSession(ctx, polls, sessionID)
	if session.Name != nil {
		return
	}
	session.Name = &name
	if err := polls.SaveSession(ctx, session); err != nil {
		slog.Warn("failed to name session", "session_id", sessionID, "error", err)
	}
}
