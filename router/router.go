// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/book-poll/cliparse"
	"github.com/danielhkuo/book-poll/handlers"
	"github.com/danielhkuo/book-poll/middleware"
	"github.com/danielhkuo/book-poll/store"
	"github.com/danielhkuo/book-poll/validation"
)

// NewRouter registers every route and wraps the mux with CORS and session
// cookie handling.
func NewRouter(polls *store.PollStore, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	validate := validation.New()
	pollHandler := handlers.NewPollHandler(polls, validate)
	bookHandler := handlers.NewBookHandler(polls, validate)
	votingHandler := handlers.NewVotingHandler(polls, validate)
	resultsHandler := handlers.NewResultsHandler(polls, validate)
	sessionHandler := handlers.NewSessionHandler(polls)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls
	mux.HandleFunc("POST /api/polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /api/polls/{id}", middleware.WithLogging(pollHandler.GetPoll))

	// Books
	mux.HandleFunc("POST /api/polls/{id}/books", middleware.WithLogging(bookHandler.AddBook))
	mux.HandleFunc("DELETE /api/polls/{id}/books/{bookId}", middleware.WithLogging(bookHandler.DeleteBook))

	// Voting
	mux.HandleFunc("PUT /api/polls/{id}/draft", middleware.WithLogging(votingHandler.SaveDraft))
	mux.HandleFunc("POST /api/polls/{id}/vote", middleware.WithLogging(votingHandler.SubmitVote))
	mux.HandleFunc("POST /api/polls/{id}/exclude", middleware.WithLogging(votingHandler.ToggleExclude))

	// Results and activity
	mux.HandleFunc("GET /api/polls/{id}/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("POST /api/polls/{id}/peek", middleware.WithLogging(resultsHandler.Peek))
	mux.HandleFunc("GET /api/polls/{id}/activity", middleware.WithLogging(resultsHandler.GetActivity))

	// Session
	mux.HandleFunc("GET /api/session", middleware.WithLogging(sessionHandler.GetSession))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("book-poll API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigin, middleware.WithSession(cfg.SecureCookies, mux))
}
