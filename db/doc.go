// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the local key-value store.

# Connecting

Open selects the driver from the database type:

	conn, err := db.Open(db.TypeSQLite, "prioritisation-matrix.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite uses the pure-Go modernc.org/sqlite driver, PostgreSQL uses lib/pq.

# Schema Creation

CreateSchema initializes the single table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv: key TEXT PRIMARY KEY, value TEXT, updated_at TIMESTAMP

# State

StateStore reads and writes the session blob:

	store := db.NewStateStore(conn)
	state, err := store.LoadState(models.StorageKey)
	err = store.SaveState(models.StorageKey, state)

LoadState never fails hard: a missing key gives the empty state, and a
malformed blob gives the empty state plus an error wrapping
ErrMalformedState.
*/
package db
