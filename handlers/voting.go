// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/book-poll/middleware"
	"github.com/danielhkuo/book-poll/models"
	"github.com/danielhkuo/book-poll/store"
	"github.com/danielhkuo/book-poll/validation"
)

type VotingHandler struct {
	polls    *store.PollStore
	validate *validation.Validator
}

func NewVotingHandler(polls *store.PollStore, v *validation.Validator) *VotingHandler {
	return &VotingHandler{polls: polls, validate: v}
}

// SubmitVote handles POST /api/polls/{id}/vote
// Locks in the caller's ranking. Any draft from the same session or name is replaced.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.SubmitVoteRequest
	if !parseRequest(w, r, h.validate, &req) {
		return
	}

	if len(req.Rankings) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please rank at least one book before submitting")
		return
	}

	sessionID := middleware.SessionID(r)
	poll, err := h.polls.UpdatePoll(r.Context(), pollID, func(p *models.Poll) error {
		if err := checkRankings(p, req.Rankings); err != nil {
			return err
		}

		for _, v := range p.Voters {
			if !v.IsCompleted() {
				continue
			}
			if sessionID != "" && v.SessionID == sessionID {
				return reject(http.StatusConflict, "You have already completed voting")
			}
			if strings.EqualFold(v.Name, req.VoterName) {
				return reject(http.StatusConflict, "A voter with this name has already completed voting")
			}
		}

		// Drop any unfinished ranking from this person
		kept := p.Voters[:0]
		for _, v := range p.Voters {
			if !v.IsCompleted() && (strings.EqualFold(v.Name, req.VoterName) || (sessionID != "" && v.SessionID == sessionID)) {
				continue
			}
			kept = append(kept, v)
		}

		p.Voters = append(kept, models.Voter{
			Name:      req.VoterName,
			SessionID: sessionID,
			Rankings:  req.Rankings,
			Status:    models.Completed{At: time.Now()},
		})
		p.Log(models.ActivityVotingComplete, req.VoterName, "")
		return nil
	})
	if err != nil {
		writePollError(w, err, pollID, "submit vote")
		return
	}

	nameSession(r.Context(), h.polls, sessionID, req.VoterName)

	slog.Info("vote submitted", "poll_id", pollID, "voter", req.VoterName, "ranked", len(req.Rankings))

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// SaveDraft handles PUT /api/polls/{id}/draft
// Stores an in-progress ranking for the caller's session. Drafts are never tallied.
func (h *VotingHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	sessionID := middleware.SessionID(r)
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Session is required to save a draft")
		return
	}

	var req models.SubmitVoteRequest
	if !parseRequest(w, r, h.validate, &req) {
		return
	}
	if req.Rankings == nil {
		req.Rankings = []string{}
	}

	poll, err := h.polls.UpdatePoll(r.Context(), pollID, func(p *models.Poll) error {
		if err := checkRankings(p, req.Rankings); err != nil {
			return err
		}

		draft := models.Voter{
			Name:      req.VoterName,
			SessionID: sessionID,
			Rankings:  req.Rankings,
			Status:    models.Draft{},
		}

		for i, v := range p.Voters {
			if v.SessionID != sessionID {
				continue
			}
			if v.IsCompleted() {
				return reject(http.StatusConflict, "You have already completed voting")
			}
			p.Voters[i] = draft
			return nil
		}

		p.Voters = append(p.Voters, draft)
		return nil
	})
	if err != nil {
		writePollError(w, err, pollID, "save draft")
		return
	}

	nameSession(r.Context(), h.polls, sessionID, req.VoterName)

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// ToggleExclude handles POST /api/polls/{id}/exclude
// Flips whether a completed vote counts toward results. The vote itself is kept.
func (h *VotingHandler) ToggleExclude(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.ToggleExcludeRequest
	if !parseRequest(w, r, h.validate, &req) {
		return
	}

	var excluded bool
	poll, err := h.polls.UpdatePoll(r.Context(), pollID, func(p *models.Poll) error {
		for i, v := range p.Voters {
			c, ok := v.Status.(models.Completed)
			if !ok || v.SessionID != req.VoterSessionID {
				continue
			}

			c.Excluded = !c.Excluded
			p.Voters[i].Status = c
			excluded = c.Excluded

			activity := models.ActivityVoterIncluded
			if excluded {
				activity = models.ActivityVoterExcluded
			}
			p.Log(activity, req.ActorName, v.Name)
			return nil
		}
		return reject(http.StatusNotFound, "Voter not found")
	})
	if err != nil {
		writePollError(w, err, pollID, "toggle voter exclusion")
		return
	}

	slog.Info("voter exclusion toggled", "poll_id", pollID, "voter_session", req.VoterSessionID, "excluded", excluded, "actor", req.ActorName)

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// checkRankings rejects unknown or repeated book IDs
func checkRankings(p *models.Poll, rankings []string) error {
	seen := make(map[string]bool, len(rankings))
	for _, id := range rankings {
		if p.BookIndex(id) == -1 {
			return reject(http.StatusBadRequest, "Invalid book ID in rankings")
		}
		if seen[id] {
			return reject(http.StatusBadRequest, "Duplicate book ID in rankings")
		}
		seen[id] = true
	}
	return nil
}
