// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/book-poll/auth"
	"github.com/danielhkuo/book-poll/cliparse"
	"github.com/danielhkuo/book-poll/middleware"
	"github.com/danielhkuo/book-poll/models"
	"github.com/danielhkuo/book-poll/store"
)

// SetupTestStore creates an empty memory-backed poll store
func SetupTestStore(t *testing.T) *store.PollStore {
	t.Helper()
	return store.NewPollStore(store.NewMemoryKV())
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		StoreBackend: cliparse.BackendMemory,
	}
}

// CreateTestPoll saves an empty poll and returns it
func CreateTestPoll(t *testing.T, polls *store.PollStore, name string) *models.Poll {
	t.Helper()

	pollID, _ := auth.GeneratePollID()
	poll := &models.Poll{
		ID:          pollID,
		Name:        name,
		CreatedAt:   time.Now(),
		Books:       []models.Book{},
		Voters:      []models.Voter{},
		ActivityLog: []models.Activity{},
	}
	if err := polls.SavePoll(context.Background(), poll); err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return poll
}

// AddTestBook adds a book to a poll and returns the book ID
func AddTestBook(t *testing.T, polls *store.PollStore, pollID, title string) string {
	t.Helper()

	bookID, _ := auth.GenerateBookID()
	_, err := polls.UpdatePoll(context.Background(), pollID, func(p *models.Poll) error {
		p.Books = append(p.Books, models.Book{
			ID:      bookID,
			Title:   title,
			Author:  "Author of " + title,
			AddedBy: "TestUser",
			AddedAt: time.Now(),
		})
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to create test book: %v", err)
	}

	return bookID
}

// AddTestVoter stores a voter with the given status and returns its session ID
func AddTestVoter(t *testing.T, polls *store.PollStore, pollID, name string, status models.SubmissionStatus, rankings ...string) string {
	t.Helper()

	sessionID := auth.GenerateSessionID()
	_, err := polls.UpdatePoll(context.Background(), pollID, func(p *models.Poll) error {
		p.Voters = append(p.Voters, models.Voter{
			Name:      name,
			SessionID: sessionID,
			Rankings:  rankings,
			Status:    status,
		})
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}

	return sessionID
}

// GetTestPoll loads a poll or fails the test
func GetTestPoll(t *testing.T, polls *store.PollStore, pollID string) *models.Poll {
	t.Helper()

	poll, err := polls.GetPoll(context.Background(), pollID)
	if err != nil {
		t.Fatalf("Failed to load test poll: %v", err)
	}
	return poll
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithSession attaches a session ID the way the session middleware would
func WithSession(r *http.Request, sessionID string) *http.Request {
	return middleware.WithSessionID(r, sessionID)
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
