// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/prioritisation-matrix/models"
	"github.com/danielhkuo/prioritisation-matrix/testutil"
)

func lines(s string) [][]string {
	var out [][]string
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		out = append(out, strings.Fields(line))
	}
	return out
}

func TestRenderMatrix(t *testing.T) {
	m := testutil.NewTestMatrix(t, "Alpha", "Beta")
	require.NoError(t, m.RecordChoice("A", "B", "B"))

	var buf bytes.Buffer
	RenderMatrix(&buf, m)

	assert.Equal(t, [][]string{
		{"A", "Alpha", "B"},
		{"B", "Beta"},
		{"A", "B"},
		{"0", "1", "Count"},
		{"2", "1", "Rank"},
	}, lines(buf.String()))
}

func TestRenderMatrix_Pending(t *testing.T) {
	m := testutil.NewTestMatrix(t, "Alpha", "Beta", "Gamma")

	var buf bytes.Buffer
	RenderMatrix(&buf, m)

	rows := lines(buf.String())
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"A", "Alpha", ".", "."}, rows[0])
	assert.Equal(t, []string{"1", "1", "1", "Rank"}, rows[5])
}

func TestRenderMatrix_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderMatrix(&buf, testutil.NewTestMatrix(t))

	assert.Equal(t, "Add items to build the comparison matrix\n", buf.String())
}

func TestRenderResults_PadsWithPlaceholders(t *testing.T) {
	results := []models.Result{
		{ID: "B", Name: "Beta", WinCount: 1, Rank: 1},
		{ID: "A", Name: "Alpha", WinCount: 0, Rank: 2},
	}

	var buf bytes.Buffer
	RenderResults(&buf, results)

	rows := lines(buf.String())
	require.Len(t, rows, models.MaxItems)
	assert.Equal(t, []string{"1st", "Beta", "1", "win"}, rows[0])
	assert.Equal(t, []string{"2nd", "Alpha", "0", "wins"}, rows[1])
	assert.Equal(t, []string{"3rd", "TBC"}, rows[2])
	assert.Equal(t, []string{"10th", "TBC"}, rows[9])
}

func TestRenderResults_SharedRanks(t *testing.T) {
	results := []models.Result{
		{ID: "A", Name: "Alpha", WinCount: 1, Rank: 1},
		{ID: "B", Name: "Beta", WinCount: 1, Rank: 1},
		{ID: "C", Name: "Gamma", WinCount: 0, Rank: 3},
	}

	var buf bytes.Buffer
	RenderResults(&buf, results)

	rows := lines(buf.String())
	assert.Equal(t, "1st", rows[0][0])
	assert.Equal(t, "1st", rows[1][0])
	assert.Equal(t, "3rd", rows[2][0])
	assert.Equal(t, []string{"4th", "TBC"}, rows[3])
}

func TestResultsHandler_GridShowsLiveResults(t *testing.T) {
	s, _, comparisons := setupGridSession(t, "Alpha", "Beta", "Gamma")
	run(t, comparisons.Choose, "choose A C C")

	out := run(t, NewResultsHandler(s).Results, "results")

	rows := lines(out)
	assert.Equal(t, []string{"1st", "Gamma", "1", "win"}, rows[0])
}

func TestResultsHandler_Status(t *testing.T) {
	s, _, comparisons := setupGridSession(t, "Alpha", "Beta", "Gamma")
	run(t, comparisons.Choose, "choose A B A")
	h := NewResultsHandler(s)

	out := run(t, h.Status, "status")
	assert.Contains(t, out, "Items: 3/10")
	assert.Contains(t, out, "Compared: 1/3")
	assert.NotContains(t, out, "Phase")
	assert.NotContains(t, out, "Item limit reached")

	var status models.StatusResponse
	require.NoError(t, json.Unmarshal([]byte(run(t, h.Status, "status --json")), &status))
	assert.Equal(t, models.StatusResponse{
		Items:    3,
		Max:      models.MaxItems,
		Progress: models.Progress{Compared: 1, Total: 3},
		Variant:  models.VariantGrid,
	}, status)
}

func TestResultsHandler_StatusAtLimit(t *testing.T) {
	s, items, _ := setupGridSession(t)
	for i := 1; i <= models.MaxItems; i++ {
		run(t, items.Add, fmt.Sprintf("add Item %d", i))
	}

	out := run(t, NewResultsHandler(s).Status, "status")

	assert.Contains(t, out, "Items: 10/10")
	assert.Contains(t, out, "Compared: 0/45")
	assert.Contains(t, out, "Item limit reached")
}

func TestResultsHandler_StatusSequentialPhase(t *testing.T) {
	s, wizard := setupWizardSession(t, "Alpha", "Beta")
	run(t, wizard.Start, "start")

	out := run(t, NewResultsHandler(s).Status, "status")

	assert.Contains(t, out, "Phase: comparing")
}

func TestResultsHandler_Export(t *testing.T) {
	s, _, comparisons := setupGridSession(t, "Alpha", "Beta")
	run(t, comparisons.Choose, "choose A B B")

	out := run(t, NewResultsHandler(s).Export, "export")

	assert.JSONEq(t, `{
		"items": [{"id": "A", "name": "Alpha"}, {"id": "B", "name": "Beta"}],
		"comparisons": {"A-B": "B"}
	}`, out)
}
