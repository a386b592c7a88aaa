// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/book-poll/auth"
	"github.com/danielhkuo/book-poll/models"
	"github.com/danielhkuo/book-poll/testutil"
	"github.com/danielhkuo/book-poll/validation"
)

func getResults(t *testing.T, handler *ResultsHandler, pollID string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("GET", "/api/polls/"+pollID+"/results", nil, nil)
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)
	return w
}

func TestGetResults(t *testing.T) {
	polls := testutil.SetupTestStore(t)
	handler := NewResultsHandler(polls, validation.New())

	poll := testutil.CreateTestPoll(t, polls, "Sci-fi Club")
	dune := testutil.AddTestBook(t, polls, poll.ID, "Dune")
	foundation := testutil.AddTestBook(t, polls, poll.ID, "Foundation")
	hyperion := testutil.AddTestBook(t, polls, poll.ID, "Hyperion")

	now := time.Now()
	testutil.AddTestVoter(t, polls, poll.ID, "Alice", models.Completed{At: now}, dune, foundation, hyperion)
	testutil.AddTestVoter(t, polls, poll.ID, "Bob", models.Completed{At: now}, foundation, dune, hyperion)
	testutil.AddTestVoter(t, polls, poll.ID, "Carol", models.Completed{At: now}, dune, hyperion, foundation)
	// Neither of these may affect the tally
	testutil.AddTestVoter(t, polls, poll.ID, "Dan", models.Completed{At: now, Excluded: true}, hyperion, foundation, dune)
	testutil.AddTestVoter(t, polls, poll.ID, "Eve", models.Draft{}, hyperion, foundation, dune)

	w := getResults(t, handler, poll.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.VoterCount != 3 {
		t.Errorf("Expected voter_count 3, got %d", resp.VoterCount)
	}
	if resp.ExcludedCount != 1 {
		t.Errorf("Expected excluded_count 1, got %d", resp.ExcludedCount)
	}

	expected := []struct {
		bookID      string
		worstDefeat int
		rank        int
		summary     string
	}{
		{dune, -1, 1, "Beats or ties all opponents"},
		{foundation, 1, 2, "Worst loss: 1 vote"},
		{hyperion, 3, 3, "Worst loss: 3 votes"},
	}

	if len(resp.Results) != len(expected) {
		t.Fatalf("Expected %d results, got %d", len(expected), len(resp.Results))
	}
	for i, want := range expected {
		got := resp.Results[i]
		if got.Book.ID != want.bookID {
			t.Errorf("Position %d: expected book %s, got %s (%s)", i, want.bookID, got.Book.ID, got.Book.Title)
		}
		if got.WorstDefeat != want.worstDefeat {
			t.Errorf("Position %d: expected worst_defeat %d, got %d", i, want.worstDefeat, got.WorstDefeat)
		}
		if got.Rank != want.rank {
			t.Errorf("Position %d: expected rank %d, got %d", i, want.rank, got.Rank)
		}
		if got.Summary != want.summary {
			t.Errorf("Position %d: expected summary %q, got %q", i, want.summary, got.Summary)
		}
	}
}

func TestGetResultsWithoutVotes(t *testing.T) {
	polls := testutil.SetupTestStore(t)
	handler := NewResultsHandler(polls, validation.New())

	poll := testutil.CreateTestPoll(t, polls, "Quiet Club")
	first := testutil.AddTestBook(t, polls, poll.ID, "First")
	second := testutil.AddTestBook(t, polls, poll.ID, "Second")

	w := getResults(t, handler, poll.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.VoterCount != 0 {
		t.Errorf("Expected no voters, got %d", resp.VoterCount)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].Book.ID != first || resp.Results[0].Rank != 1 {
		t.Errorf("Expected first book at rank 1, got %+v", resp.Results[0])
	}
	if resp.Results[1].Book.ID != second || resp.Results[1].Rank != 2 {
		t.Errorf("Expected second book at rank 2, got %+v", resp.Results[1])
	}
}

func TestGetResultsUnknownPoll(t *testing.T) {
	polls := testutil.SetupTestStore(t)
	handler := NewResultsHandler(polls, validation.New())

	w := getResults(t, handler, "missing")
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestPeekAndActivity(t *testing.T) {
	polls := testutil.SetupTestStore(t)
	validate := validation.New()
	results := NewResultsHandler(polls, validate)
	books := NewBookHandler(polls, validate)
	voting := NewVotingHandler(polls, validate)

	poll := testutil.CreateTestPoll(t, polls, "Book Club")

	// Book added
	req := testutil.MakeRequest("POST", "/api/polls/"+poll.ID+"/books",
		models.AddBookRequest{Title: "Dune", Author: "Frank Herbert", AddedBy: "Alice"}, nil)
	req.SetPathValue("id", poll.ID)
	w := httptest.NewRecorder()
	books.AddBook(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	bookID := testutil.GetTestPoll(t, polls, poll.ID).Books[0].ID

	// Peek
	req = testutil.MakeRequest("POST", "/api/polls/"+poll.ID+"/peek", models.PeekRequest{ActorName: "Bob"}, nil)
	req.SetPathValue("id", poll.ID)
	w = httptest.NewRecorder()
	results.Peek(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Peek requires a name
	req = testutil.MakeRequest("POST", "/api/polls/"+poll.ID+"/peek", models.PeekRequest{}, nil)
	req.SetPathValue("id", poll.ID)
	w = httptest.NewRecorder()
	results.Peek(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Vote
	w = submitVote(t, voting, poll.ID, auth.GenerateSessionID(), models.SubmitVoteRequest{VoterName: "Bob", Rankings: []string{bookID}})
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("GET", "/api/polls/"+poll.ID+"/activity", nil, nil)
	req.SetPathValue("id", poll.ID)
	w = httptest.NewRecorder()
	results.GetActivity(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ActivityResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Activities) != 3 {
		t.Fatalf("Expected 3 activities, got %d", len(resp.Activities))
	}

	// Newest first
	for i := 1; i < len(resp.Activities); i++ {
		if resp.Activities[i].Timestamp.After(resp.Activities[i-1].Timestamp) {
			t.Errorf("Activities not sorted newest first at %d", i)
		}
	}

	texts := make(map[string]bool)
	for _, a := range resp.Activities {
		texts[a.Text] = true
		if a.Ago == "" {
			t.Errorf("Expected humanized time for %q", a.Text)
		}
	}
	for _, want := range []string{
		`Alice added "Dune by Frank Herbert"`,
		"Bob peeked at results before voting",
		"Bob completed voting",
	} {
		if !texts[want] {
			t.Errorf("Missing activity text %q in %v", want, texts)
		}
	}
}

func TestDescribeActivity(t *testing.T) {
	tests := []struct {
		activity models.Activity
		expected string
	}{
		{models.Activity{Type: models.ActivityBookAdded, Actor: "Ann", Detail: "Emma by Jane Austen"}, `Ann added "Emma by Jane Austen"`},
		{models.Activity{Type: models.ActivityBookDeleted, Actor: "Ann", Detail: "Emma by Jane Austen"}, `Ann removed "Emma by Jane Austen"`},
		{models.Activity{Type: models.ActivityVotingComplete, Actor: "Ben"}, "Ben completed voting"},
		{models.Activity{Type: models.ActivityVoterExcluded, Actor: "Ann", Detail: "Ben"}, "Ann excluded Ben's vote"},
		{models.Activity{Type: models.ActivityVoterIncluded, Actor: "Ann", Detail: "Ben"}, "Ann included Ben's vote"},
		{models.Activity{Type: models.ActivityResultsPeeked, Actor: "Cy"}, "Cy peeked at results before voting"},
		{models.Activity{Type: "renamed", Actor: "Cy"}, "Cy renamed"},
	}

	for _, tt := range tests {
		t.Run(tt.activity.Type, func(t *testing.T) {
			if got := describeActivity(tt.activity); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		worstDefeat int
		expected    string
	}{
		{-2, "Beats or ties all opponents"},
		{0, "Beats or ties all opponents"},
		{1, "Worst loss: 1 vote"},
		{4, "Worst loss: 4 votes"},
	}

	for _, tt := range tests {
		if got := summarize(tt.worstDefeat); got != tt.expected {
			t.Errorf("summarize(%d) = %q, want %q", tt.worstDefeat, got, tt.expected)
		}
	}
}
