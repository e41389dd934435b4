// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package era

import (
	"strings"
	"testing"

	"github.com/tastewarp/tastewarp/internal/category"
	"github.com/tastewarp/tastewarp/internal/models"
)

func TestDecade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want int
	}{
		{1900, 1900},
		{1929, 1920},
		{1965, 1960},
		{1999, 1990},
		{2010, 2010},
		{2025, 2020},
	}

	for _, tt := range tests {
		if got := Decade(tt.year); got != tt.want {
			t.Errorf("Decade(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestRecommendationCoveredDecades(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cat  category.Category
		year int
		want string
	}{
		{"twenties music", category.Music, 1925, "Duke Ellington - Cotton Club Nights"},
		{"fifties film", category.Film, 1952, "Singin' in the Rain"},
		{"seventies food", category.Food, 1977, "Fondue & Quiche Lorraine"},
		{"nineties fashion", category.Fashion, 1994, "Grunge Flannel & Doc Martens"},
		{"twentytens travel", category.Travel, 2013, "Portland, Oregon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Recommendation(tt.cat, tt.year); got != tt.want {
				t.Errorf("Recommendation(%v, %d) = %q, want %q", tt.cat, tt.year, got, tt.want)
			}
		})
	}
}

func TestRecommendationUncoveredDecadeUses2010(t *testing.T) {
	t.Parallel()

	// 1965 is not a covered decade; it must serve the 2010 table rather
	// than fail or return empty.
	got := Recommendation(category.Music, 1965)
	want := Recommendation(category.Music, 2015)
	if got != want {
		t.Errorf("uncovered decade = %q, want 2010 entry %q", got, want)
	}
}

func TestRecommendationsNeverEmpty(t *testing.T) {
	t.Parallel()

	for year := models.MinYear; year <= models.MaxYear; year++ {
		for _, c := range category.All() {
			if Recommendation(c, year) == "" {
				t.Fatalf("Recommendation(%v, %d) is empty", c, year)
			}
		}
	}
}

func TestModernDefaults(t *testing.T) {
	t.Parallel()

	if got := ModernDefault(category.Music); got != "Taylor Swift - Anti-Hero" {
		t.Errorf("ModernDefault(Music) = %q", got)
	}
	for _, c := range category.All() {
		if ModernDefault(c) == "" {
			t.Errorf("ModernDefault(%v) is empty", c)
		}
	}
}

func TestEssayPersonalized(t *testing.T) {
	t.Parallel()

	got := Essay(1972, "Ada")
	if !strings.HasPrefix(got, "Ada, in 1972, you'd be all about") {
		t.Errorf("personalized essay = %q, want name/year prefix", got)
	}
}

func TestEssayGeneric(t *testing.T) {
	t.Parallel()

	got := Essay(1955, "")
	if !strings.HasPrefix(got, "The 1950s") {
		t.Errorf("generic essay = %q, want decade prefix", got)
	}
	if strings.Contains(got, "you'd be all about") {
		t.Errorf("generic essay unexpectedly personalized: %q", got)
	}
}

func TestEssayUncoveredDecade(t *testing.T) {
	t.Parallel()

	got := Essay(1948, "")
	if !strings.Contains(got, "unique cultural moment") {
		t.Errorf("uncovered decade essay = %q, want generic paragraph", got)
	}

	personalized := Essay(1948, "Grace")
	if !strings.HasPrefix(personalized, "Grace, in 1948,") {
		t.Errorf("uncovered personalized essay = %q, want name/year prefix", personalized)
	}
}

func TestEssayDeterministic(t *testing.T) {
	t.Parallel()

	if Essay(1990, "Ada") != Essay(1990, "Ada") {
		t.Error("Essay is not deterministic for identical inputs")
	}
}
