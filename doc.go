// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the book poll API server.

A small group creates a poll, proposes books and ranks them. The server
combines the rankings with the Minimax Condorcet method: the book whose
worst head-to-head defeat is smallest wins.

# Starting the Server

With no configuration the server keeps everything in memory:

	go run .

Persistent storage:

	go run . -s badger -badger-path ./data
	go run . -s sqlite -d "file:bookpoll.db"
	go run . -s postgres -d "postgres://..."

# Configuration

Flags win over environment variables, which win over defaults. A .env file
in the working directory is loaded when present.

  - PORT (-p): Server port (default: 3318)
  - STORE_BACKEND (-s): memory, badger, postgres or sqlite (default: memory)
  - DATABASE_URL (-d): Connection string for postgres or sqlite
  - BADGER_PATH (-badger-path): Badger directory; empty runs Badger in memory
  - ALLOWED_ORIGIN (-origin): CORS origin allowed to send cookies; empty allows "*" without credentials
  - SECURE_COOKIES (-secure-cookies): Mark the session cookie Secure

# Architecture

  - ranking: Minimax tally over completed rankings
  - handlers: HTTP request handlers (polls, books, voting, results, session)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, session cookie, logging, JSON helpers
  - store: Key-value backends and the poll store built on them
  - models: Domain, request and response types
  - auth: ID and session cookie generation
  - validation: Request validation
  - db: SQL schema for the key-value table
  - cliparse: Configuration parsing

On SIGINT or SIGTERM the server stops accepting requests, drains in-flight
ones and closes the store.
*/
package main
