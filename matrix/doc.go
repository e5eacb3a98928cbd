// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package matrix holds the comparison store.

# Items

Items are labelled by position with A through J. Adding appends; removing
relabels every remaining item and drops all comparisons:

	m := matrix.New()
	m.AddItem("Alpha")   // A
	m.AddItem("Beta")    // B
	m.AddItem("Gamma")   // C
	m.RemoveItem("B")    // Alpha=A, Gamma=B, no comparisons

# Comparisons

Winners are keyed "<row>-<col>" with the earlier item first:

	m.RecordChoice("A", "B", "A") // key "A-B" -> "A"
	m.RecordChoice("B", "A", "B") // same key, overwritten

# Sequential Wizard

	m.StartSequential()           // phase: comparing
	pair, idx, ok := m.CurrentPair()
	m.ChooseCurrent(pair.Row.ID)  // after the last pair, phase: results

# Errors

  - ErrLimitReached: already holding MaxItems
  - ErrUnknownItem: identifier not in the list
  - ErrInvalidWinner: winner is neither side of the pair
  - ErrSamePair: both sides are the same item
  - ErrTooFewItems: wizard started with fewer than 2 items
  - ErrNotComparing: wizard choice outside the comparing phase
  - ErrResultsPending: wizard results requested before completion
*/
package matrix
