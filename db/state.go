// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/prioritisation-matrix/models"
)

var (
	ErrNotFound       = errors.New("key not found")
	ErrMalformedState = errors.New("malformed stored state")
)

// StateStore is a string key-value store backed by the kv table
type StateStore struct {
	db *sql.DB
}

func NewStateStore(db *sql.DB) *StateStore {
	return &StateStore{db: db}
}

// Get returns the value stored under key, or ErrNotFound
func (s *StateStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`
		SELECT value FROM kv WHERE key = $1
	`, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}

	return value, nil
}

// Put inserts or replaces the value under key
func (s *StateStore) Put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

// Delete removes key; deleting a missing key is not an error
func (s *StateStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// LoadState reads and decodes the session state.
//
// A missing key yields the empty state and no error. Anything unreadable, or
// a blob whose "items" is not an array, yields the empty state together with
// an error for the caller to log.
func (s *StateStore) LoadState(key string) (models.State, error) {
	raw, err := s.Get(key)
	if errors.Is(err, ErrNotFound) {
		return models.EmptyState(), nil
	}
	if err != nil {
		return models.EmptyState(), err
	}

	state, err := DecodeState([]byte(raw))
	if err != nil {
		return models.EmptyState(), err
	}
	return state, nil
}

// SaveState encodes and writes the session state
func (s *StateStore) SaveState(key string, state models.State) error {
	data, err := EncodeState(state)
	if err != nil {
		return err
	}
	return s.Put(key, string(data))
}

// EncodeState renders state as the persisted JSON blob
func EncodeState(state models.State) ([]byte, error) {
	if state.Items == nil {
		state.Items = []models.Item{}
	}
	if state.Comparisons == nil {
		state.Comparisons = map[string]string{}
	}

	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// DecodeState parses a persisted blob. The only structural check is that
// "items" is a JSON array.
func DecodeState(data []byte) (models.State, error) {
	var probe struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return models.EmptyState(), fmt.Errorf("%w: %v", ErrMalformedState, err)
	}

	items := bytes.TrimSpace(probe.Items)
	if len(items) == 0 || items[0] != '[' {
		return models.EmptyState(), fmt.Errorf("%w: items is not an array", ErrMalformedState)
	}

	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		return models.EmptyState(), fmt.Errorf("%w: %v", ErrMalformedState, err)
	}

	if state.Items == nil {
		state.Items = []models.Item{}
	}
	if state.Comparisons == nil {
		state.Comparisons = map[string]string{}
	}

	return state, nil
}
