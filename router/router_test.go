// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/prioritisation-matrix/db"
	"github.com/danielhkuo/prioritisation-matrix/handlers"
	"github.com/danielhkuo/prioritisation-matrix/models"
	"github.com/danielhkuo/prioritisation-matrix/testutil"
)

func setupRouter(t *testing.T, variant string) (*Router, *handlers.Session) {
	t.Helper()

	store := db.NewStateStore(testutil.SetupTestDB(t))
	cfg := testutil.GetTestConfig(variant)
	s := handlers.NewSession(store, cfg, handlers.ConfirmFunc(func(string) bool { return true }))
	return NewRouter(s), s
}

func dispatch(r *Router, lines ...string) string {
	var buf bytes.Buffer
	for _, line := range lines {
		r.Dispatch(&buf, line)
	}
	return buf.String()
}

func TestRouteExistence(t *testing.T) {
	common := []string{"add", "remove", "clear", "pairs", "matrix", "results", "status", "export", "help"}

	tests := []struct {
		variant string
		has     []string
		hasNot  []string
	}{
		{models.VariantGrid, []string{"choose"}, []string{"start", "pick", "current", "restart"}},
		{models.VariantSequential, []string{"start", "pick", "current", "restart"}, []string{"choose"}},
	}

	for _, tc := range tests {
		t.Run(tc.variant, func(t *testing.T) {
			r, _ := setupRouter(t, tc.variant)

			for _, name := range append(common, tc.has...) {
				assert.True(t, r.Has(name), "missing %s", name)
			}
			for _, name := range tc.hasNot {
				assert.False(t, r.Has(name), "unexpected %s", name)
			}
		})
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	r, _ := setupRouter(t, models.VariantGrid)

	out := dispatch(r, "frobnicate now")

	assert.Equal(t, "Error: Unknown command frobnicate (try help)\n", out)
}

func TestDispatch_BlankLine(t *testing.T) {
	r, _ := setupRouter(t, models.VariantGrid)

	assert.Empty(t, dispatch(r, "", "   ", "\t"))
}

func TestDispatch_CaseInsensitiveName(t *testing.T) {
	r, s := setupRouter(t, models.VariantGrid)

	dispatch(r, "ADD Alpha")

	assert.Equal(t, 1, s.Matrix.Len())
}

func TestHelp(t *testing.T) {
	r, _ := setupRouter(t, models.VariantGrid)

	out := dispatch(r, "help")

	assert.True(t, strings.HasPrefix(out, "Commands:\n"))
	assert.Contains(t, out, "  add <name>")
	assert.Contains(t, out, "  choose <row> <col> <winner>")
	assert.Contains(t, out, "  status [--json]")
	assert.Contains(t, out, "  quit")
	assert.Less(t, strings.Index(out, "add <name>"), strings.Index(out, "matrix"))
}

func TestGridScenario(t *testing.T) {
	r, s := setupRouter(t, models.VariantGrid)

	dispatch(r,
		"add Task Alpha",
		"add Task Beta",
		"add Task Gamma",
		"choose A B A",
		"choose A C C",
		"choose B C C",
	)

	assert.True(t, s.Matrix.IsAllCompared())

	out := dispatch(r, "results")
	first := strings.Fields(strings.Split(out, "\n")[0])
	assert.Equal(t, []string{"1st", "Task", "Gamma", "2", "wins"}, first)

	// Removing relabels and forgets every comparison
	dispatch(r, "remove A")
	assert.Equal(t, []string{"A", "B"}, testutil.ItemIDs(s.Matrix.Items()))
	assert.Equal(t, []string{"Task Beta", "Task Gamma"}, testutil.ItemNames(s.Matrix.Items()))
	assert.Contains(t, dispatch(r, "status"), "Compared: 0/1")
}

func TestSequentialScenario(t *testing.T) {
	r, s := setupRouter(t, models.VariantSequential)

	out := dispatch(r, "add Alpha", "add Beta", "start")
	assert.Contains(t, out, "Comparison 1 of 1")

	out = dispatch(r, "pick B")
	assert.Contains(t, out, "All pairs compared")
	assert.Equal(t, models.PhaseResults, s.Matrix.Phase())

	out = dispatch(r, "restart", "results")
	assert.Contains(t, out, "Back to item entry")
	assert.Contains(t, out, "Results are available once every pair is compared.")
}

func TestPersistenceAcrossSessions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStateStore(conn)
	cfg := testutil.GetTestConfig(models.VariantGrid)

	first := NewRouter(handlers.NewSession(store, cfg, nil))
	dispatch(first, "add Alpha", "add Beta", "choose A B B")

	s := handlers.NewSession(store, cfg, nil)
	second := NewRouter(s)

	assert.Equal(t, map[string]string{"A-B": "B"}, s.Matrix.Comparisons())
	assert.Contains(t, dispatch(second, "pairs"), "A-B  Alpha vs Beta  -> B")

	// Clearing without confirmation keeps the data
	dispatch(second, "clear")
	reloaded, err := store.LoadState(cfg.StorageKey)
	require.NoError(t, err)
	assert.Len(t, reloaded.Items, 2)
}

func TestClearPersistsEmptyState(t *testing.T) {
	r, s := setupRouter(t, models.VariantGrid)
	dispatch(r, "add Alpha", "add Beta", "choose A B A")

	out := dispatch(r, "clear")

	assert.Contains(t, out, "All data cleared")
	assert.Equal(t, 0, s.Matrix.Len())
	assert.Contains(t, dispatch(r, "matrix"), "Add items to build the comparison matrix")
}
