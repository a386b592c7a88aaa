// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens SQL connections and creates the key-value table.

# Drivers

Two drivers are supported; the caller imports them for side effects:

	_ "github.com/lib/pq"     // postgres
	_ "modernc.org/sqlite"    // sqlite (pure Go)

# Schema

A single table stores poll and session documents as JSON:

	kv(key TEXT PRIMARY KEY, value TEXT, updated_at TIMESTAMP)

CreateSchema is idempotent and runs on every startup:

	conn, err := db.Open(db.TypeSQLite, "file:book-poll.db")
	if err := db.CreateSchema(conn); err != nil { ... }
*/
package db
