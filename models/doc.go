// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Poll: name, books, voters and the activity log
  - Book: a proposed book
  - Voter: a ranking of book IDs, most preferred first, plus its status
  - Activity: one activity log entry
  - Session: a browser session, optionally named
  - RankedResult: one book's place in the Minimax ranking

A voter's status is either Draft or Completed. Only completed, non-excluded
voters are tallied:

	switch s := v.Status.(type) {
	case models.Completed:
		return !s.Excluded
	}

Voters keep a flat JSON shape: completed_at and excluded are present only
for completed voters.

# Request Types

  - CreatePollRequest: name
  - AddBookRequest: title, author, added_by
  - SubmitVoteRequest: voter_name, rankings (votes and drafts)
  - ToggleExcludeRequest: voter_session_id, actor_name
  - PeekRequest: actor_name

# Response Types

  - ResultsResponse: poll_id, voter_count, excluded_count, results
  - ActivityResponse: poll_id, activities
  - ErrorResponse: error, message
*/
package models
