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

type ComparisonHandler struct {
	s *Session
}

func NewComparisonHandler(s *Session) *ComparisonHandler {
	return &ComparisonHandler{s: s}
}

// Choose handles "choose <row> <col> <winner>"
func (h *ComparisonHandler) Choose(w io.Writer, cmd models.Command) {
	if len(cmd.Args) != 3 {
		middleware.ErrorResponse(w, "usage: choose <row> <col> <winner>")
		return
	}

	a := strings.ToUpper(cmd.Args[0])
	b := strings.ToUpper(cmd.Args[1])
	winner := strings.ToUpper(cmd.Args[2])

	err := h.s.Matrix.RecordChoice(a, b, winner)
	switch {
	case errors.Is(err, matrix.ErrUnknownItem), errors.Is(err, matrix.ErrInvalidWinner), errors.Is(err, matrix.ErrSamePair):
		middleware.ErrorResponse(w, err.Error())
		return
	case err != nil:
		slog.Error("failed to record choice", "error", err)
		middleware.ErrorResponse(w, "Failed to record choice")
		return
	}

	h.s.Save()
	slog.Info("choice recorded", "pair", a+b, "winner", winner, "compared", h.s.Matrix.ComparedCount())

	renderLive(w, h.s)
	if h.s.Matrix.IsAllCompared() {
		middleware.TextResponse(w, "All pairs compared")
	}
}

// Pairs handles "pairs": every pair with its recorded winner, if any
func (h *ComparisonHandler) Pairs(w io.Writer, cmd models.Command) {
	pairs := h.s.Matrix.AllPairs()
	if len(pairs) == 0 {
		middleware.TextResponse(w, "Add at least 2 items to compare")
		return
	}

	for _, p := range pairs {
		winner, ok := h.s.Matrix.Winner(p.Row.ID, p.Col.ID)
		if !ok {
			winner = pendingCell
		}
		middleware.TextResponse(w, "%s  %s vs %s  -> %s", matrix.PairKey(p.Row.ID, p.Col.ID), p.Row.Name, p.Col.Name, winner)
	}

	progress := h.s.Matrix.Progress()
	middleware.TextResponse(w, "%d of %d compared", progress.Compared, progress.Total)
}
