// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

// Package storage persists warp records in BadgerDB. Warps are accessed by
// primary key only: one insert at creation, reads by ID, no update or
// delete path.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tastewarp/tastewarp/internal/config"
	"github.com/tastewarp/tastewarp/internal/models"
)

// warpKeyPrefix namespaces warp records in BadgerDB.
const warpKeyPrefix = "warp:"

// ErrWarpNotFound indicates no warp exists under the requested ID.
var ErrWarpNotFound = errors.New("warp not found")

// WarpStore is a BadgerDB-backed store for warp records.
type WarpStore struct {
	db *badger.DB
}

// Open opens (or creates) the warp store at the configured path.
// With InMemory set, the store lives entirely in RAM; used by tests.
func Open(cfg *config.StorageConfig) (*WarpStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	// Badger logs through its own logger by default; silence it in favor of
	// the store's own logging.
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", cfg.Path, err)
	}
	return &WarpStore{db: db}, nil
}

// Close releases the underlying database.
func (s *WarpStore) Close() error {
	return s.db.Close()
}

// Insert stores a new warp, assigning its ID and creation timestamp.
// Returns the assigned ID.
func (s *WarpStore) Insert(ctx context.Context, w *models.Warp) (string, error) {
	w.ID = uuid.New().String()
	w.CreatedAt = time.Now().UTC()

	data, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("marshal warp: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(warpKeyPrefix+w.ID), data)
	})
	if err != nil {
		return "", fmt.Errorf("set warp: %w", err)
	}
	return w.ID, nil
}

// Get retrieves a warp by ID. Returns ErrWarpNotFound for unknown IDs.
func (s *WarpStore) Get(ctx context.Context, id string) (*models.Warp, error) {
	var w models.Warp

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(warpKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrWarpNotFound
		}
		if err != nil {
			return fmt.Errorf("get warp: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &w)
		})
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Health verifies the store is usable by running an empty read transaction.
func (s *WarpStore) Health() error {
	return s.db.View(func(*badger.Txn) error { return nil })
}
