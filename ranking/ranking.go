// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ranking

import (
	"sort"

	"github.com/danielhkuo/prioritisation-matrix/models"
)

// WinCounts tallies recorded winners per item. Winners that no longer match
// a current item are ignored.
func WinCounts(items []models.Item, comparisons map[string]string) map[string]int {
	wins := make(map[string]int, len(items))
	for _, item := range items {
		wins[item.ID] = 0
	}

	for _, winnerID := range comparisons {
		if _, ok := wins[winnerID]; ok {
			wins[winnerID]++
		}
	}

	return wins
}

// ComputeResults ranks items by win count.
//
// Items are sorted by wins descending; the sort is stable so ties keep list
// order. Ranks use standard competition ranking: a tie group shares a rank
// and the next lower count takes its 1-based position, so wins [2,1,1,0]
// rank as [1,2,2,4].
func ComputeResults(items []models.Item, comparisons map[string]string) []models.Result {
	if len(items) == 0 {
		return []models.Result{}
	}

	wins := WinCounts(items, comparisons)

	results := make([]models.Result, len(items))
	for i, item := range items {
		results[i] = models.Result{
			ID:       item.ID,
			Name:     item.Name,
			WinCount: wins[item.ID],
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].WinCount > results[j].WinCount
	})

	currentRank := 1
	for i := range results {
		if i > 0 && results[i].WinCount < results[i-1].WinCount {
			currentRank = i + 1
		}
		results[i].Rank = currentRank
	}

	return results
}

// Ranks maps each item ID to its competition rank
func Ranks(items []models.Item, comparisons map[string]string) map[string]int {
	ranks := make(map[string]int, len(items))
	for _, r := range ComputeResults(items, comparisons) {
		ranks[r.ID] = r.Rank
	}
	return ranks
}
