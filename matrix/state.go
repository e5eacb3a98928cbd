// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package matrix

import (
	"github.com/danielhkuo/prioritisation-matrix/models"
)

// FromState rebuilds a matrix from persisted state.
//
// Stored items are trusted as long as their identifiers are positional. If
// they are not, or there are more than MaxItems, the list is truncated and
// relabelled and every comparison is dropped, the same policy RemoveItem
// applies. Inconsistent wizard fields fall back to the input phase.
func FromState(s models.State) *Matrix {
	m := New()

	items := s.Items
	positional := len(items) <= models.MaxItems
	if len(items) > models.MaxItems {
		items = items[:models.MaxItems]
	}
	for i, item := range items {
		if item.ID != models.Labels[i] {
			positional = false
		}
		m.items = append(m.items, item)
	}

	if !positional {
		m.relabel()
		return m
	}

	for key, winner := range s.Comparisons {
		m.comparisons[key] = winner
	}

	m.restoreWizard(s)
	return m
}

func (m *Matrix) restoreWizard(s models.State) {
	if s.Phase != models.PhaseComparing && s.Phase != models.PhaseResults {
		return
	}
	if len(s.ComparisonPairs) == 0 || s.CurrentComparison < 0 || s.CurrentComparison > len(s.ComparisonPairs) {
		return
	}
	for _, ref := range s.ComparisonPairs {
		if _, _, err := m.orderPair(ref.Row, ref.Col); err != nil {
			return
		}
	}

	m.pairs = append([]models.PairRef(nil), s.ComparisonPairs...)
	m.current = s.CurrentComparison
	m.phase = s.Phase
	if m.phase == models.PhaseComparing && m.current >= len(m.pairs) {
		m.phase = models.PhaseResults
	}
}

// State snapshots the matrix for persistence
func (m *Matrix) State() models.State {
	s := models.State{
		Items:       m.Items(),
		Comparisons: m.Comparisons(),
	}

	if m.phase != models.PhaseInput {
		s.ComparisonPairs = append([]models.PairRef(nil), m.pairs...)
		s.CurrentComparison = m.current
		s.Phase = m.phase
	}

	return s
}
