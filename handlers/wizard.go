// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/danielhkuo/prioritisation-matrix/matrix"
	"github.com/danielhkuo/prioritisation-matrix/middleware"
	"github.com/danielhkuo/prioritisation-matrix/models"
)

// WizardHandler drives the sequential variant: one pair at a time, results
// only after the last choice.
type WizardHandler struct {
	s *Session
}

func NewWizardHandler(s *Session) *WizardHandler {
	return &WizardHandler{s: s}
}

// Start handles "start"
func (h *WizardHandler) Start(w io.Writer, cmd models.Command) {
	if err := h.s.Matrix.StartSequential(); err != nil {
		if errors.Is(err, matrix.ErrTooFewItems) {
			middleware.ErrorResponse(w, "Add at least 2 items to start comparing.")
			return
		}
		slog.Error("failed to start comparisons", "error", err)
		middleware.ErrorResponse(w, "Failed to start comparisons")
		return
	}

	h.s.Save()
	slog.Info("comparisons started", "pairs", h.s.Matrix.Progress().Total)

	h.renderCurrent(w)
}

// Pick handles "pick <winner>" for the current pair
func (h *WizardHandler) Pick(w io.Writer, cmd models.Command) {
	if len(cmd.Args) != 1 {
		middleware.ErrorResponse(w, "usage: pick <id>")
		return
	}

	winner := strings.ToUpper(cmd.Args[0])
	err := h.s.Matrix.ChooseCurrent(winner)
	switch {
	case errors.Is(err, matrix.ErrNotComparing):
		middleware.ErrorResponse(w, "No comparison in progress. Use start first.")
		return
	case errors.Is(err, matrix.ErrInvalidWinner):
		pair, _, _ := h.s.Matrix.CurrentPair()
		middleware.ErrorResponse(w, "Pick "+pair.Row.ID+" or "+pair.Col.ID)
		return
	case err != nil:
		slog.Error("failed to record choice", "error", err)
		middleware.ErrorResponse(w, "Failed to record choice")
		return
	}

	h.s.Save()
	slog.Info("choice recorded", "winner", winner, "phase", h.s.Matrix.Phase())

	h.renderCurrent(w)
}

// Current handles "current": re-displays the pair awaiting a choice
func (h *WizardHandler) Current(w io.Writer, cmd models.Command) {
	if h.s.Matrix.Phase() == models.PhaseInput {
		middleware.ErrorResponse(w, "No comparison in progress. Use start first.")
		return
	}
	h.renderCurrent(w)
}

// Restart handles "restart": back to item entry, keeping the items
func (h *WizardHandler) Restart(w io.Writer, cmd models.Command) {
	h.s.Matrix.Restart()
	h.s.Save()
	slog.Info("comparisons restarted")

	middleware.TextResponse(w, "Back to item entry")
	renderItemList(w, h.s.Matrix)
}

func (h *WizardHandler) renderCurrent(w io.Writer) {
	if h.s.Matrix.Phase() == models.PhaseResults {
		middleware.TextResponse(w, "All pairs compared")
		RenderResults(w, resultsFor(h.s.Matrix))
		return
	}

	pair, idx, ok := h.s.Matrix.CurrentPair()
	if !ok {
		return
	}
	RenderPair(w, pair, idx, h.s.Matrix.Progress().Total)
}
