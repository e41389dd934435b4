// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package warp

import (
	"context"
	"sync"

	"github.com/tastewarp/tastewarp/internal/category"
	"github.com/tastewarp/tastewarp/internal/era"
	"github.com/tastewarp/tastewarp/internal/models"
)

// InsightsResolver resolves one category/year pair into a displayable
// recommendation string. Implementations must be total: any failure mode is
// absorbed into a fallback value, never an error.
type InsightsResolver interface {
	Resolve(ctx context.Context, entities []models.SeedEntity, cat category.Category, year int) string
}

// BuildBundle assembles the full recommendation bundle for the target year:
// one resolver call per category for targetYear and one per category for the
// modern reference year, all ten dispatched concurrently. Each goroutine
// owns exactly one output slot, so no synchronization beyond the join is
// needed and results land in canonical category order.
//
// The operation itself cannot fail; the resolver guarantees non-empty
// values, and the modern side additionally substitutes a static default if
// a 2025 call ever came back empty.
func BuildBundle(ctx context.Context, resolver InsightsResolver, entities []models.SeedEntity, targetYear int) models.RecommendationBundle {
	cats := category.All()

	var then, modern [category.Count]string
	var wg sync.WaitGroup

	for i, cat := range cats {
		wg.Add(2)
		go func(slot int, c category.Category) {
			defer wg.Done()
			then[slot] = resolver.Resolve(ctx, entities, c, targetYear)
		}(i, cat)
		go func(slot int, c category.Category) {
			defer wg.Done()
			modern[slot] = resolver.Resolve(ctx, entities, c, models.MaxYear)
		}(i, cat)
	}
	wg.Wait()

	for i, cat := range cats {
		if modern[i] == "" {
			modern[i] = era.ModernDefault(cat)
		}
	}

	return models.RecommendationBundle{
		CategoryRecommendations: models.CategoryRecommendations{
			Music:   then[0],
			Film:    then[1],
			Food:    then[2],
			Fashion: then[3],
			Travel:  then[4],
		},
		ModernEquivalents: models.CategoryRecommendations{
			Music:   modern[0],
			Film:    modern[1],
			Food:    modern[2],
			Fashion: modern[3],
			Travel:  modern[4],
		},
	}
}
