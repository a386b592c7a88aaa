// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/book-poll/auth"
	"github.com/danielhkuo/book-poll/models"
	"github.com/danielhkuo/book-poll/testutil"
	"github.com/danielhkuo/book-poll/validation"
)

// TestFullVotingWorkflow tests the complete end-to-end workflow:
// 1. Create poll
// 2. Add books
// 3. Save a draft
// 4. Voters submit rankings
// 5. Verify results
// 6. Exclude a voter and verify results change
// 7. Deleting a ranked book is refused
func TestFullVotingWorkflow(t *testing.T) {
	polls := testutil.SetupTestStore(t)
	validate := validation.New()
	pollHandler := NewPollHandler(polls, validate)
	bookHandler := NewBookHandler(polls, validate)
	votingHandler := NewVotingHandler(polls, validate)
	resultsHandler := NewResultsHandler(polls, validate)

	// Step 1: Create a poll
	req := testutil.MakeRequest("POST", "/api/polls", models.CreatePollRequest{Name: "Integration Book Club"}, nil)
	w := httptest.NewRecorder()
	pollHandler.CreatePoll(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create poll failed: %d - %s", w.Code, w.Body.String())
	}

	var poll models.Poll
	testutil.AssertJSON(t, w, &poll)
	pollID := poll.ID
	if pollID == "" {
		t.Fatal("Step 1 - Missing poll id")
	}
	t.Logf("Step 1 - Created poll: %s", pollID)

	// Step 2: Add 3 books
	titles := []struct{ title, author string }{
		{"Dune", "Frank Herbert"},
		{"Foundation", "Isaac Asimov"},
		{"Hyperion", "Dan Simmons"},
	}
	bookIDs := make([]string, 0, len(titles))

	for _, b := range titles {
		req := testutil.MakeRequest("POST", "/api/polls/"+pollID+"/books",
			models.AddBookRequest{Title: b.title, Author: b.author, AddedBy: "Organizer"}, nil)
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()
		bookHandler.AddBook(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 2 - Add book '%s' failed: %d - %s", b.title, w.Code, w.Body.String())
		}

		var updated models.Poll
		testutil.AssertJSON(t, w, &updated)
		bookIDs = append(bookIDs, updated.Books[len(updated.Books)-1].ID)
	}
	dune, foundation, hyperion := bookIDs[0], bookIDs[1], bookIDs[2]
	t.Logf("Step 2 - Added %d books", len(bookIDs))

	// Step 3: Alice saves a draft first
	aliceSession := auth.GenerateSessionID()
	w = saveDraft(t, votingHandler, pollID, aliceSession, models.SubmitVoteRequest{VoterName: "Alice", Rankings: []string{hyperion}})
	if w.Code != http.StatusOK {
		t.Fatalf("Step 3 - Save draft failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 4: Three voters submit
	voters := []struct {
		name     string
		session  string
		rankings []string
	}{
		{"Alice", aliceSession, []string{dune, foundation, hyperion}},
		{"Bob", auth.GenerateSessionID(), []string{foundation, dune, hyperion}},
		{"Carol", auth.GenerateSessionID(), []string{dune, hyperion, foundation}},
	}
	for _, v := range voters {
		w := submitVote(t, votingHandler, pollID, v.session, models.SubmitVoteRequest{VoterName: v.name, Rankings: v.rankings})
		if w.Code != http.StatusOK {
			t.Fatalf("Step 4 - Vote by %s failed: %d - %s", v.name, w.Code, w.Body.String())
		}
	}
	t.Logf("Step 4 - %d voters submitted", len(voters))

	// Step 5: Results
	w = getResults(t, resultsHandler, pollID)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Get results failed: %d - %s", w.Code, w.Body.String())
	}

	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)

	if results.VoterCount != 3 {
		t.Errorf("Step 5 - Expected 3 voters, got %d", results.VoterCount)
	}
	order := []string{dune, foundation, hyperion}
	for i, id := range order {
		if results.Results[i].Book.ID != id || results.Results[i].Rank != i+1 {
			t.Errorf("Step 5 - Position %d: expected %s at rank %d, got %s at rank %d",
				i, id, i+1, results.Results[i].Book.ID, results.Results[i].Rank)
		}
	}

	// Step 6: Exclude Carol. Dune and Foundation now tie at 0.
	req = testutil.MakeRequest("POST", "/api/polls/"+pollID+"/exclude",
		models.ToggleExcludeRequest{VoterSessionID: voters[2].session, ActorName: "Organizer"}, nil)
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	votingHandler.ToggleExclude(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - Exclude failed: %d - %s", w.Code, w.Body.String())
	}

	w = getResults(t, resultsHandler, pollID)
	results = models.ResultsResponse{}
	testutil.AssertJSON(t, w, &results)

	if results.VoterCount != 2 || results.ExcludedCount != 1 {
		t.Errorf("Step 6 - Expected 2 voters and 1 excluded, got %d and %d", results.VoterCount, results.ExcludedCount)
	}
	wantRanks := []int{1, 1, 3}
	for i, want := range wantRanks {
		if results.Results[i].Rank != want {
			t.Errorf("Step 6 - Position %d: expected rank %d, got %d", i, want, results.Results[i].Rank)
		}
	}
	if results.Results[0].Book.ID != dune {
		t.Errorf("Step 6 - Tie should keep input order, got %s first", results.Results[0].Book.ID)
	}

	// Step 7: Ranked books cannot be deleted
	req = testutil.MakeRequest("DELETE", "/api/polls/"+pollID+"/books/"+dune+"?actor=Organizer", nil, nil)
	req.SetPathValue("id", pollID)
	req.SetPathValue("bookId", dune)
	w = httptest.NewRecorder()
	bookHandler.DeleteBook(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("Step 7 - Expected 409 deleting a ranked book, got %d", w.Code)
	}

	stored := testutil.GetTestPoll(t, polls, pollID)
	if len(stored.Voters) != 3 {
		t.Errorf("Expected Alice's draft to be replaced, got %d voters", len(stored.Voters))
	}
	t.Logf("Workflow complete: %d activity entries", len(stored.ActivityLog))
}
