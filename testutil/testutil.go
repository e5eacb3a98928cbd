// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/prioritisation-matrix/cliparse"
	"github.com/danielhkuo/prioritisation-matrix/db"
	"github.com/danielhkuo/prioritisation-matrix/matrix"
	"github.com/danielhkuo/prioritisation-matrix/models"
)

// SetupTestDB creates a fresh SQLite database with the schema in a temp dir
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration for the given variant
func GetTestConfig(variant string) cliparse.Config {
	cfg := cliparse.Defaults()
	cfg.DatabaseURL = "test.db"
	cfg.StorageKey = "test-state"
	cfg.Variant = variant
	return cfg
}

// NewTestMatrix builds a matrix holding the given item names in order
func NewTestMatrix(t *testing.T, names ...string) *matrix.Matrix {
	t.Helper()

	m := matrix.New()
	for _, name := range names {
		if _, added, err := m.AddItem(name); err != nil || !added {
			t.Fatalf("Failed to add test item %q: added=%v err=%v", name, added, err)
		}
	}
	return m
}

// ItemNames lists names in order
func ItemNames(items []models.Item) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

// ItemIDs lists identifiers in order
func ItemIDs(items []models.Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

// MemoryStore is an in-memory handlers.StateStore. Setting FailSave makes
// every save fail.
type MemoryStore struct {
	States   map[string]models.State
	FailSave error
	FailLoad error
	Saves    int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{States: make(map[string]models.State)}
}

func (s *MemoryStore) LoadState(key string) (models.State, error) {
	if s.FailLoad != nil {
		return models.EmptyState(), s.FailLoad
	}
	state, ok := s.States[key]
	if !ok {
		return models.EmptyState(), nil
	}
	return state, nil
}

func (s *MemoryStore) SaveState(key string, state models.State) error {
	s.Saves++
	if s.FailSave != nil {
		return s.FailSave
	}
	s.States[key] = state
	return nil
}
