// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

// Package models defines the core data shapes shared across Tastewarp:
// seed entities, recommendation bundles, and persisted warp records.
package models

import "time"

// MinYear and MaxYear bound the supported target years. MaxYear doubles as
// the modern reference year for divergence and modern-equivalent lookups.
const (
	MinYear = 1900
	MaxYear = 2025
)

// SeedEntity is a user-selected cultural entity used as the input signal for
// recommendation generation. Produced by the entity search gateway or passed
// directly by the client. Transient: only Name values are persisted.
type SeedEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Valid reports whether the entity carries the fields required to act as a
// recommendation signal. Entities failing this check are silently dropped by
// warp creation, not rejected individually.
func (e SeedEntity) Valid() bool {
	return e.ID != "" && e.Name != ""
}

// CategoryRecommendations holds one recommendation string per category.
// Every field is always populated: a resolved name, a static decade
// fallback, or a category-labeled placeholder. Never empty.
type CategoryRecommendations struct {
	Music   string `json:"music"`
	Film    string `json:"film"`
	Food    string `json:"food"`
	Fashion string `json:"fashion"`
	Travel  string `json:"travel"`
}

// RecommendationBundle is the five-category recommendation set for the
// target year plus the modern (2025) equivalents.
type RecommendationBundle struct {
	CategoryRecommendations
	ModernEquivalents CategoryRecommendations `json:"modern_equivalents"`
}

// Warp is the persisted record of one completed time-warp request.
// Created exactly once, immutable thereafter, read by ID for display.
type Warp struct {
	ID         string               `json:"id"`
	Seeds      []string             `json:"seeds"`
	TargetYear int                  `json:"target_year"`
	Bundle     RecommendationBundle `json:"bundle"`
	Essay      string               `json:"essay"`
	Divergence int                  `json:"divergence"`
	CreatedAt  time.Time            `json:"created_at"`
}
