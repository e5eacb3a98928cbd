// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/danielhkuo/prioritisation-matrix/matrix"
	"github.com/danielhkuo/prioritisation-matrix/middleware"
	"github.com/danielhkuo/prioritisation-matrix/models"
)

type ItemHandler struct {
	s *Session
}

func NewItemHandler(s *Session) *ItemHandler {
	return &ItemHandler{s: s}
}

// Add handles "add <name>"
func (h *ItemHandler) Add(w io.Writer, cmd models.Command) {
	item, added, err := h.s.Matrix.AddItem(middleware.Rest(cmd))
	if errors.Is(err, matrix.ErrLimitReached) {
		middleware.ErrorResponse(w, fmt.Sprintf("Maximum of %d items allowed.", models.MaxItems))
		return
	}
	if err != nil {
		slog.Error("failed to add item", "error", err)
		middleware.ErrorResponse(w, "Failed to add item")
		return
	}

	// Blank names are ignored without a notice
	if !added {
		return
	}

	h.s.Save()
	slog.Info("item added", "item_id", item.ID)

	middleware.TextResponse(w, "Added %s: %s", item.ID, item.Name)
	renderLive(w, h.s)
}

// Remove handles "remove <id>"
func (h *ItemHandler) Remove(w io.Writer, cmd models.Command) {
	if len(cmd.Args) != 1 {
		middleware.ErrorResponse(w, "usage: remove <id>")
		return
	}

	id := strings.ToUpper(cmd.Args[0])
	item, ok := h.s.Matrix.Item(id)
	if !ok {
		middleware.ErrorResponse(w, "No item "+id)
		return
	}

	if err := h.s.Matrix.RemoveItem(id); err != nil {
		slog.Error("failed to remove item", "item_id", id, "error", err)
		middleware.ErrorResponse(w, "Failed to remove item")
		return
	}

	h.s.Save()
	slog.Info("item removed", "item_id", id, "remaining", h.s.Matrix.Len())

	middleware.TextResponse(w, "Removed %s: %s (comparisons cleared)", id, item.Name)
	renderLive(w, h.s)
}

// Clear handles "clear". Requires confirmation.
func (h *ItemHandler) Clear(w io.Writer, cmd models.Command) {
	if !h.s.Confirm("Are you sure you want to clear all data?") {
		middleware.TextResponse(w, "Clear cancelled")
		return
	}

	h.s.Matrix.ClearAll()
	h.s.Save()
	slog.Info("state cleared")

	middleware.TextResponse(w, "All data cleared")
	renderLive(w, h.s)
}

// renderLive redraws the views that update after every mutation. The grid
// variant shows the matrix and live ranking; the sequential variant only
// the item list, since ranking waits for the last pair.
func renderLive(w io.Writer, s *Session) {
	if s.cfg.Variant == models.VariantSequential {
		renderItemList(w, s.Matrix)
		return
	}
	RenderMatrix(w, s.Matrix)
	fmt.Fprintln(w)
	RenderResults(w, resultsFor(s.Matrix))
}

func renderItemList(w io.Writer, m *matrix.Matrix) {
	items := m.Items()
	if len(items) == 0 {
		fmt.Fprintln(w, "No items yet")
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "%s: %s\n", item.ID, item.Name)
	}
}
