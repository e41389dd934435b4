// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package qloo

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/tastewarp/tastewarp/internal/category"
	"github.com/tastewarp/tastewarp/internal/era"
	"github.com/tastewarp/tastewarp/internal/models"
)

func seedEntities() []models.SeedEntity {
	return []models.SeedEntity{
		{ID: "urn:entity:artist:1", Name: "Radiohead", Type: "urn:entity:artist"},
		{ID: "urn:entity:movie:2", Name: "Pulp Fiction", Type: "urn:entity:movie"},
	}
}

func TestFirstEntityName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		want   string
		wantOK bool
	}{
		{
			"results object with entities",
			`{"results":{"entities":[{"name":"Duke Ellington"},{"name":"Louis Armstrong"}]}}`,
			"Duke Ellington", true,
		},
		{
			"top-level entities",
			`{"entities":[{"name":"Elvis Presley"}]}`,
			"Elvis Presley", true,
		},
		{
			"results as bare array",
			`{"results":[{"name":"Nirvana"}]}`,
			"Nirvana", true,
		},
		{
			"results object preferred over top-level entities",
			`{"results":{"entities":[{"name":"From Results"}]},"entities":[{"name":"From TopLevel"}]}`,
			"From Results", true,
		},
		{"empty results object", `{"results":{"entities":[]}}`, "", false},
		{"empty array", `{"results":[]}`, "", false},
		{"nameless entity", `{"entities":[{"name":""}]}`, "", false},
		{"empty body", `{}`, "", false},
		{"not json", `<!doctype html>`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := firstEntityName([]byte(tt.body))
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("firstEntityName(%s) = %q, %v; want %q, %v", tt.body, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveFiltered(t *testing.T) {
	t.Parallel()

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("signal.entities"); got != "urn:entity:artist:1,urn:entity:movie:2" {
			t.Errorf("signal.entities = %q", got)
		}
		if q.Get("filter.release_year.min") != "1955" || q.Get("filter.release_year.max") != "1975" {
			t.Errorf("year window = [%s,%s], want [1955,1975]",
				q.Get("filter.release_year.min"), q.Get("filter.release_year.max"))
		}
		if got := q["filter.type"]; len(got) != 2 {
			t.Errorf("filter.type = %v, want two music filters", got)
		}
		_, _ = w.Write([]byte(`{"results":{"entities":[{"name":"The Beatles"}]}}`))
	}))

	got := NewResolver(client).Resolve(context.Background(), seedEntities(), category.Music, 1965)
	if got != "The Beatles" {
		t.Errorf("Resolve = %q, want The Beatles", got)
	}
}

func TestResolveYearWindowClamped(t *testing.T) {
	t.Parallel()

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("filter.release_year.min") != "1900" {
			t.Errorf("min = %q, want clamped 1900", q.Get("filter.release_year.min"))
		}
		if q.Get("filter.release_year.max") != "1915" {
			t.Errorf("max = %q, want 1915", q.Get("filter.release_year.max"))
		}
		_, _ = w.Write([]byte(`{"entities":[{"name":"Scott Joplin"}]}`))
	}))

	if got := NewResolver(client).Resolve(context.Background(), seedEntities(), category.Music, 1905); got != "Scott Joplin" {
		t.Errorf("Resolve = %q, want Scott Joplin", got)
	}
}

func TestResolveRetriesWithoutFilters(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		// The filtered attempt fails; the unfiltered retry succeeds.
		if len(r.URL.Query()["filter.type"]) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"results":[{"name":"Fleetwood Mac"}]}`))
	}))

	got := NewResolver(client).Resolve(context.Background(), seedEntities(), category.Music, 1975)
	if got != "Fleetwood Mac" {
		t.Errorf("Resolve = %q, want Fleetwood Mac", got)
	}
	if calls.Load() != 2 {
		t.Errorf("upstream calls = %d, want 2 (filtered then unfiltered)", calls.Load())
	}
}

func TestResolveFallsBackToEraData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"upstream errors", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"empty responses", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"results":{"entities":[]}}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := testClient(t, tt.handler)
			got := NewResolver(client).Resolve(context.Background(), seedEntities(), category.Film, 1952)
			if want := era.Recommendation(category.Film, 1952); got != want {
				t.Errorf("Resolve = %q, want era fallback %q", got, want)
			}
		})
	}
}

func TestResolveNotConfiguredFallsBack(t *testing.T) {
	t.Parallel()

	client := testClient(t, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("upstream called without an API key")
	}))
	client.apiKey = ""

	got := NewResolver(client).Resolve(context.Background(), seedEntities(), category.Travel, 1925)
	if want := era.Recommendation(category.Travel, 1925); got != want {
		t.Errorf("Resolve = %q, want era fallback %q", got, want)
	}
}

func TestResolveEmptyEntities(t *testing.T) {
	t.Parallel()

	client := testClient(t, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("upstream called with no seed entities")
	}))

	if got := NewResolver(client).Resolve(context.Background(), nil, category.Music, 1990); got != "" {
		t.Errorf("Resolve with no entities = %q, want empty", got)
	}
}
