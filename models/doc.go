// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, persisted-state, and command types.

# Domain Types

  - Item: labelled entry with a positional single-letter ID
  - Pair: two items to compare, Row always before Col
  - PairRef: identifier-only pair, as persisted
  - Result: derived win count and competition rank
  - Progress: compared pairs out of N*(N-1)/2

# Persisted State

State is the JSON blob stored under StorageKey:

	{
	  "items": [{"id": "A", "name": "Alpha"}],
	  "comparisons": {"A-B": "A"},
	  "comparisonPairs": [{"row": "A", "col": "B"}],
	  "currentComparison": 0,
	  "phase": "comparing"
	}

The last three fields only appear for the sequential variant.

# Constants

Capacity:

	MaxItems = 10

Phases:

	PhaseInput     = "input"
	PhaseComparing = "comparing"
	PhaseResults   = "results"

Variants:

	VariantGrid       = "grid"
	VariantSequential = "sequential"
*/
package models
