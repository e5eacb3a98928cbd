// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ranking turns recorded pairwise winners into a ranked list.

# Algorithm

	results := ranking.ComputeResults(items, comparisons)

 1. Every current item starts at zero wins
 2. Each recorded winner adds one win (unknown IDs are ignored)
 3. Results are stable-sorted by wins, descending
 4. Ranks follow standard competition ranking

# Ranking Example

	wins:  [2, 1, 1, 0]
	ranks: [1, 2, 2, 4]

# Helpers

WinCounts and Ranks return per-item maps keyed by ID, used for the count
and rank rows under the comparison grid.
*/
package ranking
