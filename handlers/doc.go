// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the command handlers for a matrix session.

# Session

A Session owns the in-memory matrix, the state store and the confirmation
prompt:

	session := handlers.NewSession(db.NewStateStore(conn), cfg, confirm)

State is loaded once at construction. Every mutating handler saves right
after the change; a failed save is logged as a warning and the session
carries on with its in-memory state.

# Handler Types

Each handler is a struct holding the session:

  - ItemHandler: add, remove, clear
  - ComparisonHandler: choose (grid variant), pairs
  - ResultsHandler: matrix, results, status, export
  - WizardHandler: start, pick, current, restart (sequential variant)

# Grid Variant

Every pair can be decided in any order; after each change the matrix and
ranked list are redrawn.

	choose A B A

# Sequential Variant

Pairs are presented one at a time; results appear after the last pick.

	start
	pick A

# Rendering

RenderMatrix draws the upper-triangular grid with Count and Rank rows,
RenderResults the ranked list padded to ten rows with TBC placeholders.
*/
package handlers
