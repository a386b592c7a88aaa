// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/book-poll/auth"
	"github.com/danielhkuo/book-poll/middleware"
	"github.com/danielhkuo/book-poll/models"
	"github.com/danielhkuo/book-poll/store"
	"github.com/danielhkuo/book-poll/validation"
)

type BookHandler struct {
	polls    *store.PollStore
	validate *validation.Validator
}

func NewBookHandler(polls *store.PollStore, v *validation.Validator) *BookHandler {
	return &BookHandler{polls: polls, validate: v}
}

// AddBook handles POST /api/polls/{id}/books
func (h *BookHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.AddBookRequest
	if !parseRequest(w, r, h.validate, &req) {
		return
	}

	bookID, err := auth.GenerateBookID()
	if err != nil {
		slog.Error("failed to generate book ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add book")
		return
	}

	book := models.Book{
		ID:      bookID,
		Title:   req.Title,
		Author:  req.Author,
		AddedBy: req.AddedBy,
		AddedAt: time.Now(),
	}

	poll, err := h.polls.UpdatePoll(r.Context(), pollID, func(p *models.Poll) error {
		p.Books = append(p.Books, book)
		p.Log(models.ActivityBookAdded, req.AddedBy, bookLabel(book))
		return nil
	})
	if err != nil {
		writePollError(w, err, pollID, "add book")
		return
	}

	nameSession(r.Context(), h.polls, middleware.SessionID(r), req.AddedBy)

	slog.Info("book added", "poll_id", pollID, "book_id", bookID, "added_by", req.AddedBy)

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// DeleteBook handles DELETE /api/polls/{id}/books/{bookId}?actor=
// Books that any voter has ranked cannot be removed.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	bookID := r.PathValue("bookId")
	if pollID == "" || bookID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id and book_id are required")
		return
	}

	actor := strings.TrimSpace(r.URL.Query().Get("actor"))
	if actor == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Your name is required to delete a book")
		return
	}

	poll, err := h.polls.UpdatePoll(r.Context(), pollID, func(p *models.Poll) error {
		idx := p.BookIndex(bookID)
		if idx == -1 {
			return reject(http.StatusNotFound, "Book not found")
		}
		if p.BookRanked(bookID) {
			return reject(http.StatusConflict, "Cannot delete a book that has been voted for")
		}

		book := p.Books[idx]
		p.Books = append(p.Books[:idx], p.Books[idx+1:]...)
		p.Log(models.ActivityBookDeleted, actor, bookLabel(book))
		return nil
	})
	if err != nil {
		writePollError(w, err, pollID, "delete book")
		return
	}

	slog.Info("book deleted", "poll_id", pollID, "book_id", bookID, "actor", actor)

	middleware.JSONResponse(w, http.StatusOK, poll)
}

func bookLabel(b models.Book) string {
	return fmt.Sprintf("%s by %s", b.Title, b.Author)
}
