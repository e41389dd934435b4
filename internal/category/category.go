// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

// Package category defines the closed set of recommendation categories and
// their static configuration: display labels, search placeholders, and the
// Qloo entity-type tags used for search classification and insights filters.
//
// The category set is a tagged enum rather than a string-keyed map so a
// switch over categories is checkable for exhaustiveness and adding a
// category is a deliberate, compile-visible change.
package category

import "strings"

// Category enumerates the five fixed recommendation categories.
type Category int

const (
	Music Category = iota
	Film
	Food
	Fashion
	Travel
)

// Count is the number of categories.
const Count = 5

// All returns every category in canonical order. The order is stable and
// matches the field order of models.CategoryRecommendations.
func All() [Count]Category {
	return [Count]Category{Music, Film, Food, Fashion, Travel}
}

// Key returns the lowercase wire identifier for the category.
func (c Category) Key() string {
	switch c {
	case Music:
		return "music"
	case Film:
		return "film"
	case Food:
		return "food"
	case Fashion:
		return "fashion"
	case Travel:
		return "travel"
	}
	return "unknown"
}

// Label returns the human-readable label shown in search prompts.
func (c Category) Label() string {
	switch c {
	case Music:
		return "Music Artist"
	case Film:
		return "Movie"
	case Food:
		return "Restaurant/Food"
	case Fashion:
		return "Fashion Brand"
	case Travel:
		return "Travel Destination"
	}
	return ""
}

// Placeholder returns the search prompt placeholder for the category.
func (c Category) Placeholder() string {
	switch c {
	case Music:
		return "Search for an artist (e.g., Beyoncé, The Beatles)"
	case Film:
		return "Search for a movie (e.g., Back to the Future, Titanic)"
	case Food:
		return "Search for a restaurant or cuisine (e.g., Chez Panisse, McDonald's)"
	case Fashion:
		return "Search for a fashion brand (e.g., Nike, Gucci)"
	case Travel:
		return "Search for a destination (e.g., Paris, Tokyo)"
	}
	return ""
}

// InsightsTypeFilters returns the broad urn:entity type filters attached to
// insights queries for this category. Deliberately wider than the category
// name suggests; narrow filters were observed to starve some category/year
// combinations of results.
func (c Category) InsightsTypeFilters() []string {
	switch c {
	case Music:
		return []string{"urn:entity:artist", "urn:entity:person"}
	case Film:
		return []string{"urn:entity:movie", "urn:entity:film"}
	case Food:
		return []string{"urn:entity:place", "urn:entity:restaurant"}
	case Fashion:
		return []string{"urn:entity:brand"}
	case Travel:
		return []string{"urn:entity:destination", "urn:entity:place"}
	}
	return nil
}

// typeTags lists the recognized upstream type tags per category, used to
// classify search results into categories. Includes both urn-style and bare
// tags since the search endpoint returns either.
func (c Category) typeTags() []string {
	switch c {
	case Music:
		return []string{"urn:entity:artist", "urn:entity:person", "artist", "musician", "band"}
	case Film:
		return []string{"urn:entity:movie", "urn:entity:film", "movie", "film"}
	case Food:
		return []string{"urn:entity:place", "urn:entity:restaurant", "restaurant", "place", "food", "cuisine"}
	case Fashion:
		return []string{"urn:entity:brand", "brand", "fashion", "clothing"}
	case Travel:
		return []string{"urn:entity:destination", "urn:entity:place", "destination", "place", "city", "country"}
	}
	return nil
}

// ForEntityType maps an upstream entity type tag to a category.
// Returns false when no category recognizes the tag.
func ForEntityType(entityType string) (Category, bool) {
	needle := strings.ToLower(entityType)
	for _, c := range All() {
		for _, tag := range c.typeTags() {
			if strings.Contains(needle, strings.TrimPrefix(strings.ToLower(tag), "urn:entity:")) {
				return c, true
			}
		}
	}
	return 0, false
}

// Parse returns the category for a wire key.
func Parse(key string) (Category, bool) {
	switch strings.ToLower(key) {
	case "music":
		return Music, true
	case "film":
		return Film, true
	case "food":
		return Food, true
	case "fashion":
		return Fashion, true
	case "travel":
		return Travel, true
	}
	return 0, false
}
