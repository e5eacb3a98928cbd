// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/danielhkuo/prioritisation-matrix/cliparse"
	"github.com/danielhkuo/prioritisation-matrix/matrix"
	"github.com/danielhkuo/prioritisation-matrix/models"
)

// StateStore persists the session blob
type StateStore interface {
	LoadState(key string) (models.State, error)
	SaveState(key string, state models.State) error
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Session is the in-memory matrix plus its persistence and prompts.
// The in-memory matrix is the source of truth; saves are best effort.
type Session struct {
	Matrix  *matrix.Matrix
	store   StateStore
	cfg     cliparse.Config
	confirm Confirmer
}

// NewSession loads state from store. Unreadable state is logged and replaced
// by the empty default.
func NewSession(store StateStore, cfg cliparse.Config, confirm Confirmer) *Session {
	state, err := store.LoadState(cfg.StorageKey)
	if err != nil {
		slog.Warn("failed to load state", "key", cfg.StorageKey, "error", err)
		state = models.EmptyState()
	}

	m := matrix.FromState(state)
	slog.Info("state loaded", "items", m.Len(), "comparisons", m.ComparedCount(), "phase", m.Phase())

	return &Session{
		Matrix:  m,
		store:   store,
		cfg:     cfg,
		confirm: confirm,
	}
}

// Config returns the session configuration
func (s *Session) Config() cliparse.Config {
	return s.cfg
}

// Save writes the current state. Failures are logged and otherwise ignored.
func (s *Session) Save() {
	if err := s.store.SaveState(s.cfg.StorageKey, s.Matrix.State()); err != nil {
		slog.Warn("failed to save state", "key", s.cfg.StorageKey, "error", err)
	}
}

// Confirm asks for confirmation unless AssumeYes is set
func (s *Session) Confirm(prompt string) bool {
	if s.cfg.AssumeYes {
		return true
	}
	if s.confirm == nil {
		return false
	}
	return s.confirm.Confirm(prompt)
}

// LineConfirmer reads y/N answers from the same line source as commands
type LineConfirmer struct {
	In      *bufio.Scanner
	Out     io.Writer
	Prompts bool
}

func (c *LineConfirmer) Confirm(prompt string) bool {
	if c.Prompts {
		fmt.Fprintf(c.Out, "%s [y/N] ", prompt)
	}
	if !c.In.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(c.In.Text()))
	return answer == "y" || answer == "yes"
}
