// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/prioritisation-matrix/models"
)

func TestStartSequential_TooFewItems(t *testing.T) {
	for _, names := range [][]string{nil, {"Alpha"}} {
		m := newMatrix(t, names...)

		assert.ErrorIs(t, m.StartSequential(), ErrTooFewItems)
		assert.Equal(t, models.PhaseInput, m.Phase())
		_, _, ok := m.CurrentPair()
		assert.False(t, ok)
	}
}

func TestSequential_FullRun(t *testing.T) {
	m := newMatrix(t, "Alpha", "Beta", "Gamma", "Delta")
	require.NoError(t, m.StartSequential())
	assert.Equal(t, models.PhaseComparing, m.Phase())

	picks := 0
	for {
		pair, idx, ok := m.CurrentPair()
		if !ok {
			break
		}
		assert.Equal(t, picks, idx)
		// Later item always wins
		require.NoError(t, m.ChooseCurrent(pair.Col.ID))
		picks++
	}

	assert.Equal(t, 6, picks)
	assert.Equal(t, models.PhaseResults, m.Phase())
	assert.True(t, m.IsAllCompared())
	assert.ErrorIs(t, m.ChooseCurrent("A"), ErrNotComparing)
}

func TestSequential_InvalidPickDoesNotAdvance(t *testing.T) {
	m := newMatrix(t, "Alpha", "Beta", "Gamma")
	require.NoError(t, m.StartSequential())

	assert.ErrorIs(t, m.ChooseCurrent("C"), ErrInvalidWinner)

	pair, idx, ok := m.CurrentPair()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "A", pair.Row.ID)
	assert.Equal(t, "B", pair.Col.ID)
	assert.Empty(t, m.Comparisons())
}

func TestSequential_StartClearsComparisons(t *testing.T) {
	m := newMatrix(t, "Alpha", "Beta")
	require.NoError(t, m.RecordChoice("A", "B", "A"))

	require.NoError(t, m.StartSequential())
	assert.Empty(t, m.Comparisons())
}

func TestSequential_MutationResetsWizard(t *testing.T) {
	m := newMatrix(t, "Alpha", "Beta", "Gamma")
	require.NoError(t, m.StartSequential())
	require.NoError(t, m.ChooseCurrent("A"))

	_, _, err := m.AddItem("Delta")
	require.NoError(t, err)
	assert.Equal(t, models.PhaseInput, m.Phase())

	require.NoError(t, m.StartSequential())
	require.NoError(t, m.RemoveItem("D"))
	assert.Equal(t, models.PhaseInput, m.Phase())
}

func TestSequential_Restart(t *testing.T) {
	m := newMatrix(t, "Alpha", "Beta")
	require.NoError(t, m.StartSequential())
	require.NoError(t, m.ChooseCurrent("B"))
	require.Equal(t, models.PhaseResults, m.Phase())

	m.Restart()

	assert.Equal(t, models.PhaseInput, m.Phase())
	assert.Equal(t, 2, m.Len())
	assert.Empty(t, m.Comparisons())
}

func TestResultsReady(t *testing.T) {
	m := newMatrix(t, "Alpha", "Beta")
	assert.ErrorIs(t, m.ResultsReady(), ErrResultsPending)

	require.NoError(t, m.StartSequential())
	assert.ErrorIs(t, m.ResultsReady(), ErrResultsPending)

	require.NoError(t, m.ChooseCurrent("B"))
	assert.NoError(t, m.ResultsReady())
}
