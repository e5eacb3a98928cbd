// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package matrix

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/prioritisation-matrix/models"
)

var (
	ErrTooFewItems    = errors.New("add at least 2 items to start comparing")
	ErrNotComparing   = errors.New("no comparison in progress")
	ErrResultsPending = errors.New("results are available once every pair is compared")
)

// Phase returns the sequential wizard phase
func (m *Matrix) Phase() string {
	return m.phase
}

// StartSequential begins a one-pair-at-a-time run over AllPairs.
// Previously recorded comparisons are discarded.
func (m *Matrix) StartSequential() error {
	if len(m.items) < 2 {
		return ErrTooFewItems
	}

	all := m.AllPairs()
	m.pairs = make([]models.PairRef, len(all))
	for i, p := range all {
		m.pairs[i] = p.Ref()
	}
	m.current = 0
	m.comparisons = map[string]string{}
	m.phase = models.PhaseComparing

	return nil
}

// CurrentPair returns the pair awaiting a choice and its 0-based position
func (m *Matrix) CurrentPair() (models.Pair, int, bool) {
	if m.phase != models.PhaseComparing || m.current >= len(m.pairs) {
		return models.Pair{}, 0, false
	}

	ref := m.pairs[m.current]
	row, _ := m.Item(ref.Row)
	col, _ := m.Item(ref.Col)
	return models.Pair{Row: row, Col: col}, m.current, true
}

// ChooseCurrent records winnerID for the current pair and advances. After the
// last pair the wizard moves to the results phase.
func (m *Matrix) ChooseCurrent(winnerID string) error {
	if m.phase != models.PhaseComparing || m.current >= len(m.pairs) {
		return ErrNotComparing
	}

	ref := m.pairs[m.current]
	if err := m.RecordChoice(ref.Row, ref.Col, winnerID); err != nil {
		return fmt.Errorf("pair %s: %w", PairKey(ref.Row, ref.Col), err)
	}

	m.current++
	if m.current >= len(m.pairs) {
		m.phase = models.PhaseResults
	}
	return nil
}

// ResultsReady returns ErrResultsPending until every wizard pair is decided
func (m *Matrix) ResultsReady() error {
	if m.phase != models.PhaseResults {
		return ErrResultsPending
	}
	return nil
}

// Restart returns the wizard to the input phase, keeping items
func (m *Matrix) Restart() {
	m.comparisons = map[string]string{}
	m.resetWizard()
}

func (m *Matrix) resetWizard() {
	m.phase = models.PhaseInput
	m.pairs = nil
	m.current = 0
}
