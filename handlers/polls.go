// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/book-poll/auth"
	"github.com/danielhkuo/book-poll/middleware"
	"github.com/danielhkuo/book-poll/models"
	"github.com/danielhkuo/book-poll/store"
	"github.com/danielhkuo/book-poll/validation"
)

type PollHandler struct {
	polls    *store.PollStore
	validate *validation.Validator
}

func NewPollHandler(polls *store.PollStore, v *validation.Validator) *PollHandler {
	return &PollHandler{polls: polls, validate: v}
}

// CreatePoll handles POST /api/polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if !parseRequest(w, r, h.validate, &req) {
		return
	}

	// Generate poll ID
	pollID, err := auth.GeneratePollID()
	if err != nil {
		slog.Error("failed to generate poll ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	poll := &models.Poll{
		ID:          pollID,
		Name:        req.Name,
		CreatedAt:   time.Now(),
		Books:       []models.Book{},
		Voters:      []models.Voter{},
		ActivityLog: []models.Activity{},
	}

	if err := h.polls.SavePoll(r.Context(), poll); err != nil {
		slog.Error("failed to save poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// GetPoll handles GET /api/polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, err := h.polls.GetPoll(r.Context(), pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to load poll", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}
