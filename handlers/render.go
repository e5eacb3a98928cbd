// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/prioritisation-matrix/matrix"
	"github.com/danielhkuo/prioritisation-matrix/models"
	"github.com/danielhkuo/prioritisation-matrix/ranking"
)

const (
	emptyMatrixText = "Add items to build the comparison matrix"
	pendingCell     = "."
	placeholderName = "TBC"
)

// RenderMatrix draws the upper-triangular comparison grid.
//
// Diagonal cells hold the item label and name, cells above the diagonal hold
// the recorded winner, and the grid ends with label, Count and Rank rows.
func RenderMatrix(w io.Writer, m *matrix.Matrix) {
	items := m.Items()
	n := len(items)
	if n == 0 {
		fmt.Fprintln(w, emptyMatrixText)
		return
	}

	comparisons := m.Comparisons()
	wins := ranking.WinCounts(items, comparisons)
	ranks := ranking.Ranks(items, comparisons)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for row := 0; row < n; row++ {
		cells := make([]string, n)
		for col := 0; col < n; col++ {
			switch {
			case col < row:
				cells[col] = ""
			case col == row:
				cells[col] = items[row].ID + " " + items[row].Name
			default:
				winner, ok := comparisons[matrix.PairKey(items[row].ID, items[col].ID)]
				if !ok {
					winner = pendingCell
				}
				cells[col] = winner
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}

	labels := make([]string, n)
	counts := make([]string, n)
	rankCells := make([]string, n)
	for i, item := range items {
		labels[i] = item.ID
		counts[i] = strconv.Itoa(wins[item.ID])
		rankCells[i] = strconv.Itoa(ranks[item.ID])
	}
	fmt.Fprintln(tw, strings.Join(labels, "\t")+"\t")
	fmt.Fprintln(tw, strings.Join(counts, "\t")+"\tCount")
	fmt.Fprintln(tw, strings.Join(rankCells, "\t")+"\tRank")

	if err := tw.Flush(); err != nil {
		slog.Error("failed to render matrix", "error", err)
	}
}

// RenderResults prints the ranked list padded to MaxItems rows, with TBC in
// the unused slots.
func RenderResults(w io.Writer, results []models.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i := 0; i < models.MaxItems; i++ {
		if i < len(results) {
			r := results[i]
			fmt.Fprintf(tw, "%s\t%s\t%s\n", humanize.Ordinal(r.Rank), r.Name, pluralWins(r.WinCount))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", humanize.Ordinal(i+1), placeholderName)
	}

	if err := tw.Flush(); err != nil {
		slog.Error("failed to render results", "error", err)
	}
}

// RenderPair prints the pair awaiting a choice in the sequential flow
func RenderPair(w io.Writer, pair models.Pair, index, total int) {
	fmt.Fprintf(w, "Comparison %d of %d\n", index+1, total)
	fmt.Fprintf(w, "  %s: %s\n", pair.Row.ID, pair.Row.Name)
	fmt.Fprintf(w, "  %s: %s\n", pair.Col.ID, pair.Col.Name)
	fmt.Fprintf(w, "Which is more important? (pick %s or pick %s)\n", pair.Row.ID, pair.Col.ID)
}

func pluralWins(n int) string {
	if n == 1 {
		return "1 win"
	}
	return strconv.Itoa(n) + " wins"
}
