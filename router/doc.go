// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the book poll API.

# Route Registration

NewRouter returns the full handler chain (CORS, then session cookie, then the
mux):

	handler := router.NewRouter(polls, cfg)

# Endpoints

Health:

	GET /health
	GET /

Polls and books:

	POST   /api/polls                       - Create poll
	GET    /api/polls/{id}                  - Poll with books, voters and activity
	POST   /api/polls/{id}/books            - Propose a book
	DELETE /api/polls/{id}/books/{bookId}   - Remove an unranked book (?actor=)

Voting:

	PUT  /api/polls/{id}/draft   - Save an in-progress ranking
	POST /api/polls/{id}/vote    - Lock in a ranking
	POST /api/polls/{id}/exclude - Toggle whether a completed vote counts

Results:

	GET  /api/polls/{id}/results  - Minimax ranking of the books
	POST /api/polls/{id}/peek     - Record an early look at results
	GET  /api/polls/{id}/activity - Activity log, newest first

Session:

	GET /api/session

Every handler shares the same *store.PollStore and validator.
*/
package router
