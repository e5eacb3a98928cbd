// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Prioritisation Matrix.

The Prioritisation Matrix takes up to ten items, asks for the winner of every
pair, and ranks the items by how many comparisons they won.

# Starting a Session

State lives in a local SQLite file by default:

	go run .

Or with flags:

	go run . -d matrix.db -variant sequential

Commands are read one per line from standard input, so a session can also be
scripted:

	printf 'add Alpha\nadd Beta\nchoose A B A\nresults\n' | go run .

# Configuration

  - DATABASE_URL (-d): SQLite path or PostgreSQL URL
  - DATABASE_TYPE (-t): sqlite or postgres
  - STORAGE_KEY (-k): key the state is stored under
  - MATRIX_VARIANT (-variant): grid or sequential
  - LOG_LEVEL (-log-level): debug, info, warn, error
  - ASSUME_YES (-y): skip confirmation prompts

# Architecture

  - matrix: comparison store (items, winners, sequential wizard)
  - ranking: win counts and competition ranks
  - handlers: command handlers and text rendering
  - router: command table
  - middleware: command logging, output helpers, parsing
  - models: domain and persisted-state types
  - db: key-value schema and state store
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
