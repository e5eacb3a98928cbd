// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"

	"github.com/danielhkuo/prioritisation-matrix/matrix"
	"github.com/danielhkuo/prioritisation-matrix/middleware"
	"github.com/danielhkuo/prioritisation-matrix/models"
	"github.com/danielhkuo/prioritisation-matrix/ranking"
)

type ResultsHandler struct {
	s *Session
}

func NewResultsHandler(s *Session) *ResultsHandler {
	return &ResultsHandler{s: s}
}

// Matrix handles "matrix"
func (h *ResultsHandler) Matrix(w io.Writer, cmd models.Command) {
	RenderMatrix(w, h.s.Matrix)
}

// Results handles "results".
// The sequential variant keeps results hidden until every pair is decided.
func (h *ResultsHandler) Results(w io.Writer, cmd models.Command) {
	if h.s.cfg.Variant == models.VariantSequential {
		if err := h.s.Matrix.ResultsReady(); err != nil {
			middleware.ErrorResponse(w, "Results are available once every pair is compared.")
			return
		}
	}

	RenderResults(w, resultsFor(h.s.Matrix))
}

// Status handles "status"
func (h *ResultsHandler) Status(w io.Writer, cmd models.Command) {
	status := models.StatusResponse{
		Items:    h.s.Matrix.Len(),
		Max:      models.MaxItems,
		Progress: h.s.Matrix.Progress(),
		Variant:  h.s.cfg.Variant,
	}
	if h.s.cfg.Variant == models.VariantSequential {
		status.Phase = h.s.Matrix.Phase()
	}

	if len(cmd.Args) == 1 && cmd.Args[0] == "--json" {
		middleware.JSONResponse(w, status)
		return
	}

	middleware.TextResponse(w, "Items: %d/%d", status.Items, status.Max)
	middleware.TextResponse(w, "Compared: %d/%d", status.Progress.Compared, status.Progress.Total)
	if status.Phase != "" {
		middleware.TextResponse(w, "Phase: %s", status.Phase)
	}
	if !h.s.Matrix.CanAdd() {
		middleware.TextResponse(w, "Item limit reached")
	}
}

// Export handles "export": the persisted state blob as JSON
func (h *ResultsHandler) Export(w io.Writer, cmd models.Command) {
	middleware.JSONResponse(w, h.s.Matrix.State())
}

func resultsFor(m *matrix.Matrix) []models.Result {
	return ranking.ComputeResults(m.Items(), m.Comparisons())
}
