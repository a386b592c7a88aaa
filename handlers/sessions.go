// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/book-poll/middleware"
	"github.com/danielhkuo/book-poll/store"
)

type SessionHandler struct {
	polls *store.PollStore
}

func NewSessionHandler(polls *store.PollStore) *SessionHandler {
	return &SessionHandler{polls: polls}
}

// GetSession handles GET /api/session
// Returns the caller's session, creating the record on first visit.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No session")
		return
	}

	session := getOrCreateSession(r.Context(), h.polls, sessionID)

	middleware.JSONResponse(w, http.StatusOK, session)
}
