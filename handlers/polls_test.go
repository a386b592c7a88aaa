// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/book-poll/models"
	"github.com/danielhkuo/book-poll/testutil"
	"github.com/danielhkuo/book-poll/validation"
)

func TestCreatePoll(t *testing.T) {
	polls := testutil.SetupTestStore(t)
	handler := NewPollHandler(polls, validation.New())

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, poll *models.Poll)
	}{
		{
			name:           "valid poll",
			body:           models.CreatePollRequest{Name: "Book Club March"},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, poll *models.Poll) {
				if len(poll.ID) != 10 {
					t.Errorf("Expected 10 character poll ID, got %q", poll.ID)
				}
				if poll.Name != "Book Club March" {
					t.Errorf("Expected name 'Book Club March', got %q", poll.Name)
				}
				if poll.Books == nil || poll.Voters == nil || poll.ActivityLog == nil {
					t.Error("Expected empty slices, got nil")
				}
				stored := testutil.GetTestPoll(t, polls, poll.ID)
				if stored.Name != poll.Name {
					t.Errorf("Stored poll name mismatch: %q", stored.Name)
				}
			},
		},
		{
			name:           "name is trimmed",
			body:           models.CreatePollRequest{Name: "  Summer Reads  "},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, poll *models.Poll) {
				if poll.Name != "Summer Reads" {
					t.Errorf("Expected trimmed name, got %q", poll.Name)
				}
			},
		},
		{
			name:           "blank name",
			body:           models.CreatePollRequest{Name: "   "},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "name too long",
			body:           models.CreatePollRequest{Name: strings.Repeat("x", 201)},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/polls", tt.body, nil)
			w := httptest.NewRecorder()

			handler.CreatePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil && w.Code == tt.expectedStatus {
				var poll models.Poll
				testutil.AssertJSON(t, w, &poll)
				tt.checkResponse(t, &poll)
			}
		})
	}
}

func TestCreatePollInvalidJSON(t *testing.T) {
	polls := testutil.SetupTestStore(t)
	handler := NewPollHandler(polls, validation.New())

	req := httptest.NewRequest("POST", "/api/polls", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.CreatePoll(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Invalid JSON" {
		t.Errorf("Expected 'Invalid JSON', got %q", resp.Message)
	}
}

func TestGetPoll(t *testing.T) {
	polls := testutil.SetupTestStore(t)
	handler := NewPollHandler(polls, validation.New())

	poll := testutil.CreateTestPoll(t, polls, "Fiction Night")
	bookID := testutil.AddTestBook(t, polls, poll.ID, "Dune")

	tests := []struct {
		name           string
		pollID         string
		expectedStatus int
	}{
		{"existing poll", poll.ID, http.StatusOK},
		{"unknown poll", "nope", http.StatusNotFound},
		{"missing id", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/api/polls/"+tt.pollID, nil, nil)
			req.SetPathValue("id", tt.pollID)
			w := httptest.NewRecorder()

			handler.GetPoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var got models.Poll
			testutil.AssertJSON(t, w, &got)
			if len(got.Books) != 1 || got.Books[0].ID != bookID {
				t.Errorf("Expected book %s, got %+v", bookID, got.Books)
			}
		})
	}
}
