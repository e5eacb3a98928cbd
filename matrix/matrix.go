// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package matrix

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/danielhkuo/prioritisation-matrix/models"
)

var (
	ErrLimitReached  = fmt.Errorf("maximum of %d items allowed", models.MaxItems)
	ErrUnknownItem   = errors.New("unknown item")
	ErrInvalidWinner = errors.New("winner must be one of the compared items")
	ErrSamePair      = errors.New("an item cannot be compared with itself")
)

// Matrix is the comparison store: an ordered item list, the recorded winner
// per pair, and the sequential wizard state.
type Matrix struct {
	items       []models.Item
	comparisons map[string]string

	phase   string
	pairs   []models.PairRef
	current int
}

// New returns an empty matrix in the input phase
func New() *Matrix {
	return &Matrix{
		items:       []models.Item{},
		comparisons: map[string]string{},
		phase:       models.PhaseInput,
	}
}

// PairKey builds the comparison key for two identifiers already in list order
func PairKey(rowID, colID string) string {
	return rowID + "-" + colID
}

// AddItem appends a new item labelled by its position.
// A name that is blank after trimming is ignored and reports added=false.
func (m *Matrix) AddItem(name string) (item models.Item, added bool, err error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return models.Item{}, false, nil
	}

	if len(m.items) >= models.MaxItems {
		return models.Item{}, false, ErrLimitReached
	}

	item = models.Item{ID: models.Labels[len(m.items)], Name: name}
	m.items = append(m.items, item)
	m.resetWizard()

	return item, true, nil
}

// RemoveItem deletes an item, relabels the rest by position and discards every
// recorded comparison since existing keys may now point at different items.
func (m *Matrix) RemoveItem(id string) error {
	idx := m.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}

	m.items = append(m.items[:idx], m.items[idx+1:]...)
	m.relabel()
	m.comparisons = map[string]string{}
	m.resetWizard()

	return nil
}

// RecordChoice stores or overwrites the winner for the pair (a, b).
// The arguments may come in either order; the key always puts the item that
// appears earlier in the list first.
func (m *Matrix) RecordChoice(a, b, winnerID string) error {
	rowID, colID, err := m.orderPair(a, b)
	if err != nil {
		return err
	}

	if winnerID != rowID && winnerID != colID {
		return fmt.Errorf("%w: %s", ErrInvalidWinner, winnerID)
	}

	m.comparisons[PairKey(rowID, colID)] = winnerID
	return nil
}

// Winner returns the recorded winner for (a, b), in either order
func (m *Matrix) Winner(a, b string) (string, bool) {
	rowID, colID, err := m.orderPair(a, b)
	if err != nil {
		return "", false
	}
	winner, ok := m.comparisons[PairKey(rowID, colID)]
	return winner, ok
}

// ClearAll resets items, comparisons and wizard state
func (m *Matrix) ClearAll() {
	m.items = []models.Item{}
	m.comparisons = map[string]string{}
	m.resetWizard()
}

// AllPairs lists every (items[i], items[j]) with i < j in row-major order
func (m *Matrix) AllPairs() []models.Pair {
	n := len(m.items)
	pairs := make([]models.Pair, 0, TotalPairs(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, models.Pair{Row: m.items[i], Col: m.items[j]})
		}
	}
	return pairs
}

// TotalPairs is the number of unordered pairs for n items
func TotalPairs(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// ComparedCount counts recorded comparisons
func (m *Matrix) ComparedCount() int {
	return len(m.comparisons)
}

func (m *Matrix) Progress() models.Progress {
	return models.Progress{
		Compared: m.ComparedCount(),
		Total:    TotalPairs(len(m.items)),
	}
}

// IsAllCompared reports whether every pair has a winner. Fewer than two
// items never count as complete.
func (m *Matrix) IsAllCompared() bool {
	n := len(m.items)
	if n < 2 {
		return false
	}
	return m.ComparedCount() >= TotalPairs(n)
}

// Items returns a copy of the ordered item list
func (m *Matrix) Items() []models.Item {
	out := make([]models.Item, len(m.items))
	copy(out, m.items)
	return out
}

// Comparisons returns a copy of the pair-key to winner mapping
func (m *Matrix) Comparisons() map[string]string {
	out := make(map[string]string, len(m.comparisons))
	for k, v := range m.comparisons {
		out[k] = v
	}
	return out
}

func (m *Matrix) Len() int {
	return len(m.items)
}

// CanAdd reports whether another item fits
func (m *Matrix) CanAdd() bool {
	return len(m.items) < models.MaxItems
}

// Item looks up an item by identifier
func (m *Matrix) Item(id string) (models.Item, bool) {
	idx := m.indexOf(id)
	if idx < 0 {
		return models.Item{}, false
	}
	return m.items[idx], true
}

func (m *Matrix) indexOf(id string) int {
	for i, item := range m.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// orderPair validates both identifiers and returns them in list order
func (m *Matrix) orderPair(a, b string) (rowID, colID string, err error) {
	ia, ib := m.indexOf(a), m.indexOf(b)
	if ia < 0 {
		return "", "", fmt.Errorf("%w: %s", ErrUnknownItem, a)
	}
	if ib < 0 {
		return "", "", fmt.Errorf("%w: %s", ErrUnknownItem, b)
	}
	if ia == ib {
		return "", "", ErrSamePair
	}
	if ia > ib {
		return b, a, nil
	}
	return a, b, nil
}

func (m *Matrix) relabel() {
	for i := range m.items {
		m.items[i].ID = models.Labels[i]
	}
}
