// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/tastewarp/tastewarp/internal/config"
	"github.com/tastewarp/tastewarp/internal/models"
)

func testStore(t *testing.T) *WarpStore {
	t.Helper()
	store, err := Open(&config.StorageConfig{InMemory: true})
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestInsertAndGet(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	ctx := context.Background()

	in := &models.Warp{
		Seeds:      []string{"Radiohead", "Pulp Fiction"},
		TargetYear: 1965,
		Bundle: models.RecommendationBundle{
			CategoryRecommendations: models.CategoryRecommendations{
				Music: "The Beatles", Film: "Doctor Zhivago", Food: "Beef Wellington",
				Fashion: "Mod Shift Dresses", Travel: "Swinging London",
			},
			ModernEquivalents: models.CategoryRecommendations{
				Music: "Taylor Swift - Anti-Hero", Film: "Everything Everywhere All at Once",
				Food: "Korean BBQ Tacos", Fashion: "Oversized Blazers & Wide-leg Pants", Travel: "Tokyo, Japan",
			},
		},
		Essay:      "In 1965 you'd be all about the British Invasion.",
		Divergence: 48,
	}

	id, err := store.Insert(ctx, in)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if id == "" {
		t.Fatal("Insert returned empty ID")
	}
	if in.CreatedAt.IsZero() {
		t.Error("Insert did not set CreatedAt")
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != id {
		t.Errorf("ID = %q, want %q", got.ID, id)
	}
	if got.TargetYear != in.TargetYear || got.Essay != in.Essay || got.Divergence != in.Divergence {
		t.Errorf("round-tripped warp = %+v, want %+v", got, in)
	}
	if got.Bundle != in.Bundle {
		t.Errorf("bundle = %+v, want %+v", got.Bundle, in.Bundle)
	}
	if len(got.Seeds) != 2 || got.Seeds[0] != "Radiohead" {
		t.Errorf("seeds = %v", got.Seeds)
	}
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	_, err := store.Get(context.Background(), "no-such-warp")
	if !errors.Is(err, ErrWarpNotFound) {
		t.Errorf("err = %v, want ErrWarpNotFound", err)
	}
}

func TestInsertAssignsDistinctIDs(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		id, err := store.Insert(ctx, &models.Warp{TargetYear: 1990})
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate ID %q", id)
		}
		seen[id] = true
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	if err := store.Health(); err != nil {
		t.Errorf("Health on open store = %v", err)
	}
}
