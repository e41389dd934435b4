// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

// Package warp assembles complete warps: the concurrent recommendation
// bundle, the essay, the divergence score, and persistence.
package warp

import "github.com/tastewarp/tastewarp/internal/models"

// Divergence scores how different a target year feels from the modern
// reference year (2025) on a 0-100 scale: min(floor(|2025-year|/1.25), 100).
//
// Computed as diff*4/5 in integer math, which is exactly floor(diff/1.25)
// without float rounding hazards. Saturates at 100 for year <= 1900.
// "Similarity to today" for display is 100 - Divergence(year).
func Divergence(targetYear int) int {
	diff := models.MaxYear - targetYear
	if diff < 0 {
		diff = -diff
	}
	d := diff * 4 / 5
	if d > 100 {
		return 100
	}
	return d
}
