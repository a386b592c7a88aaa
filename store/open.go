// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/book-poll/db"
)

// Backend names accepted by Open
const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendPostgres = db.TypePostgres
	BackendSQLite   = db.TypeSQLite
)

// Open creates the named backend. databaseURL is used by the SQL backends,
// badgerPath by Badger.
func Open(backend, databaseURL, badgerPath string) (Backend, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryKV(), nil

	case BackendBadger:
		return NewBadgerKV(badgerPath)

	case BackendPostgres, BackendSQLite:
		conn, err := db.Open(backend, databaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.CreateSchema(conn); err != nil {
			conn.Close()
			return nil, err
		}
		return NewSQLKV(conn, backend), nil
	}

	return nil, fmt.Errorf("unknown store backend %q", backend)
}
