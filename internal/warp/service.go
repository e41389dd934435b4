// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package warp

import (
	"context"
	"time"

	"github.com/tastewarp/tastewarp/internal/logging"
	"github.com/tastewarp/tastewarp/internal/metrics"
	"github.com/tastewarp/tastewarp/internal/models"
)

// EssayGenerator produces the warp essay. Total: always returns usable text.
type EssayGenerator interface {
	Generate(ctx context.Context, seeds []string, targetYear int, bundle models.RecommendationBundle, userName string) string
}

// Store persists warp records. Insert assigns the record's ID and creation
// timestamp and returns the ID.
type Store interface {
	Insert(ctx context.Context, w *models.Warp) (string, error)
	Get(ctx context.Context, id string) (*models.Warp, error)
}

// Service orchestrates warp creation: bundle, essay, divergence, persist.
type Service struct {
	resolver InsightsResolver
	essays   EssayGenerator
	store    Store
}

// NewService wires a warp service.
func NewService(resolver InsightsResolver, essays EssayGenerator, store Store) *Service {
	return &Service{
		resolver: resolver,
		essays:   essays,
		store:    store,
	}
}

// Create generates and persists one warp for pre-validated entities and
// returns the assigned warp ID. Entities must be non-empty and carry id and
// name; the HTTP handler owns that validation.
//
// The essay prompt embeds the five target-year bundle entries, so the bundle
// is built first; the ten insights calls inside it run concurrently. Bundle
// and essay generation cannot fail, so the only error path is the store
// insert.
func (s *Service) Create(ctx context.Context, entities []models.SeedEntity, targetYear int, userName string) (string, error) {
	start := time.Now()

	bundle := BuildBundle(ctx, s.resolver, entities, targetYear)

	seeds := make([]string, 0, len(entities))
	for _, e := range entities {
		seeds = append(seeds, e.Name)
	}

	essay := s.essays.Generate(ctx, seeds, targetYear, bundle, userName)
	divergence := Divergence(targetYear)

	id, err := s.store.Insert(ctx, &models.Warp{
		Seeds:      seeds,
		TargetYear: targetYear,
		Bundle:     bundle,
		Essay:      essay,
		Divergence: divergence,
	})
	if err != nil {
		return "", err
	}

	metrics.WarpsCreatedTotal.Inc()
	metrics.WarpGenerationDuration.Observe(time.Since(start).Seconds())

	logger := logging.Ctx(ctx)
	logger.Info().
		Str("warp_id", id).
		Int("target_year", targetYear).
		Int("divergence", divergence).
		Int("seeds", len(seeds)).
		Dur("duration", time.Since(start)).
		Msg("Warp created")

	return id, nil
}

// Get returns a persisted warp by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Warp, error) {
	return s.store.Get(ctx, id)
}
