// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the book poll API.

# Handler Types

Each handler is a struct holding the poll store and, where it parses
bodies, the shared validator:

  - PollHandler: Create and fetch polls
  - BookHandler: Propose and remove books
  - VotingHandler: Drafts, completed votes and exclusion
  - ResultsHandler: Minimax results, peeks and the activity log
  - SessionHandler: The caller's session record

	pollHandler := handlers.NewPollHandler(polls, validation.New())

# Updates

Every change to a poll goes through store.PollStore.UpdatePoll, which
serialises writers to the same poll. A rejected update returns a
requestError carrying the HTTP status; nothing is saved.

# Voting Flow

A voter's ranking starts as a draft (PUT /draft), tied to their session
cookie. POST /vote locks it in and replaces any draft under the same
session or name. Names are unique among completed voters, ignoring case.

Completed votes can be excluded and re-included. Excluded votes are kept
but not counted.

# Results

GetResults passes the poll's books and tallyable voters to ranking.Compute
and adds a human readable summary of each book's worst defeat.
*/
package handlers
