// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

// Package era holds the static per-decade fallback tables used whenever live
// recommendation or essay generation fails or is unconfigured. The tables
// are process-wide constants loaded at startup with no reload path.
//
// Covered decades are 1920, 1950, 1970, 1990 and 2010; every other decade
// resolves to the 2010 entry.
package era

import (
	"fmt"

	"github.com/tastewarp/tastewarp/internal/category"
	"github.com/tastewarp/tastewarp/internal/models"
)

// coveredDecades anchors the fallback tables. Order matters only for tests.
var coveredDecades = []int{1920, 1950, 1970, 1990, 2010}

// eraData maps covered decades to one recommendation per category, indexed
// by the canonical category order.
var eraData = map[int][category.Count]string{
	1920: {
		"Duke Ellington - Cotton Club Nights",
		"The Cabinet of Dr. Caligari",
		"Oysters Rockefeller",
		"Flapper Dresses & Cloche Hats",
		"Paris, France",
	},
	1950: {
		"Elvis Presley - That's All Right",
		"Singin' in the Rain",
		"TV Dinners & Jello Salads",
		"Circle Skirts & Leather Jackets",
		"Route 66 Road Trip",
	},
	1970: {
		"Fleetwood Mac - Go Your Own Way",
		"The Godfather",
		"Fondue & Quiche Lorraine",
		"Bell-bottoms & Fringe Vests",
		"Woodstock, New York",
	},
	1990: {
		"Nirvana - Smells Like Teen Spirit",
		"Pulp Fiction",
		"Sushi & Bagel Everything",
		"Grunge Flannel & Doc Martens",
		"Seattle, Washington",
	},
	2010: {
		"Adele - Rolling in the Deep",
		"Inception",
		"Artisanal Cupcakes & Kale Salads",
		"Skinny Jeans & Statement Necklaces",
		"Portland, Oregon",
	},
}

// modernDefaults are the belt-and-suspenders modern-equivalent values used
// if a 2025 insights call unexpectedly yields nothing.
var modernDefaults = [category.Count]string{
	"Taylor Swift - Anti-Hero",
	"Everything Everywhere All at Once",
	"Korean BBQ Tacos",
	"Oversized Blazers & Wide-leg Pants",
	"Tokyo, Japan",
}

// Decade clamps a year to its decade (floor(year/10)*10).
func Decade(year int) int {
	return year / 10 * 10
}

// categoryIndex returns the slot of c in the canonical order.
func categoryIndex(c category.Category) int {
	for i, cc := range category.All() {
		if cc == c {
			return i
		}
	}
	return 0
}

// Recommendation returns the static fallback recommendation for a category
// and year. Uncovered decades map to the 2010 entry; if even that lookup
// misses, a category-labeled placeholder is returned so the result is never
// empty.
func Recommendation(c category.Category, year int) string {
	data, ok := eraData[Decade(year)]
	if !ok {
		data = eraData[2010]
	}
	if s := data[categoryIndex(c)]; s != "" {
		return s
	}
	return fmt.Sprintf("%ds %s recommendation", year, c.Key())
}

// ModernDefault returns the static modern-equivalent value for a category.
func ModernDefault(c category.Category) string {
	return modernDefaults[categoryIndex(c)]
}

// Recommendations returns the full five-category fallback set for a year.
func Recommendations(year int) models.CategoryRecommendations {
	return models.CategoryRecommendations{
		Music:   Recommendation(category.Music, year),
		Film:    Recommendation(category.Film, year),
		Food:    Recommendation(category.Food, year),
		Fashion: Recommendation(category.Fashion, year),
		Travel:  Recommendation(category.Travel, year),
	}
}
