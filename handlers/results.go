// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/book-poll/middleware"
	"github.com/danielhkuo/book-poll/models"
	"github.com/danielhkuo/book-poll/ranking"
	"github.com/danielhkuo/book-poll/store"
	"github.com/danielhkuo/book-poll/validation"
)

type ResultsHandler struct {
	polls    *store.PollStore
	validate *validation.Validator
}

func NewResultsHandler(polls *store.PollStore, v *validation.Validator) *ResultsHandler {
	return &ResultsHandler{polls: polls, validate: v}
}

// GetResults handles GET /api/polls/{id}/results
// Tallies completed, non-excluded votes with the Minimax method.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, err := h.polls.GetPoll(r.Context(), pollID)
	if err != nil {
		writePollError(w, err, pollID, "compute results")
		return
	}

	voters := poll.TallyableVoters()
	ranked := ranking.Compute(poll.Books, voters)

	excluded := 0
	for _, v := range poll.Voters {
		if v.IsCompleted() && !v.Tallyable() {
			excluded++
		}
	}

	results := make([]models.ResultEntry, len(ranked))
	for i, res := range ranked {
		results[i] = models.ResultEntry{
			Book:        res.Book,
			WorstDefeat: res.WorstDefeat,
			Rank:        res.Rank,
			Summary:     summarize(res.WorstDefeat),
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		PollID:        poll.ID,
		VoterCount:    len(voters),
		ExcludedCount: excluded,
		Results:       results,
	})
}

// Peek handles POST /api/polls/{id}/peek
// Records that someone looked at results before voting.
func (h *ResultsHandler) Peek(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.PeekRequest
	if !parseRequest(w, r, h.validate, &req) {
		return
	}

	poll, err := h.polls.UpdatePoll(r.Context(), pollID, func(p *models.Poll) error {
		p.Log(models.ActivityResultsPeeked, req.ActorName, "")
		return nil
	})
	if err != nil {
		writePollError(w, err, pollID, "log peek")
		return
	}

	slog.Info("results peeked", "poll_id", pollID, "actor", req.ActorName)

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// GetActivity handles GET /api/polls/{id}/activity
// Returns the activity log newest first, with display text.
func (h *ResultsHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, err := h.polls.GetPoll(r.Context(), pollID)
	if err != nil {
		writePollError(w, err, pollID, "fetch activity")
		return
	}

	entries := make([]models.ActivityEntry, len(poll.ActivityLog))
	for i, a := range poll.ActivityLog {
		entries[i] = models.ActivityEntry{
			Activity: a,
			Text:     describeActivity(a),
			Ago:      humanize.Time(a.Timestamp),
		}
	}

	// Most recent first
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	middleware.JSONResponse(w, http.StatusOK, models.ActivityResponse{
		PollID:     poll.ID,
		Activities: entries,
	})
}

// summarize explains a worst defeat margin for display
func summarize(worstDefeat int) string {
	if worstDefeat <= 0 {
		return "Beats or ties all opponents"
	}
	return "Worst loss: " + english.Plural(worstDefeat, "vote", "votes")
}

func describeActivity(a models.Activity) string {
	switch a.Type {
	case models.ActivityBookAdded:
		return fmt.Sprintf("%s added %q", a.Actor, a.Detail)
	case models.ActivityBookDeleted:
		return fmt.Sprintf("%s removed %q", a.Actor, a.Detail)
	case models.ActivityVotingComplete:
		return a.Actor + " completed voting"
	case models.ActivityVoterExcluded:
		return fmt.Sprintf("%s excluded %s's vote", a.Actor, a.Detail)
	case models.ActivityVoterIncluded:
		return fmt.Sprintf("%s included %s's vote", a.Actor, a.Detail)
	case models.ActivityResultsPeeked:
		return a.Actor + " peeked at results before voting"
	}
	return a.Actor + " " + a.Type
}
