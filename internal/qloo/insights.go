// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package qloo

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tastewarp/tastewarp/internal/category"
	"github.com/tastewarp/tastewarp/internal/era"
	"github.com/tastewarp/tastewarp/internal/logging"
	"github.com/tastewarp/tastewarp/internal/metrics"
	"github.com/tastewarp/tastewarp/internal/models"
)

// insightsLimit is the fixed result cap for insights queries.
const insightsLimit = 5

// yearWindow is the half-width of the release-year filter around the target.
const yearWindow = 10

// Resolver turns seed entities, a category and a year into exactly one
// displayable recommendation string. It never fails: upstream errors, empty
// results and parse failures all degrade to the static era fallback.
type Resolver struct {
	client *Client
}

// NewResolver creates an insights resolver backed by the given client.
func NewResolver(client *Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve returns the recommendation for (entities, category, year).
//
// The first attempt carries the category's type filters. On any failure it
// retries once without filters; the effective filter support per
// category/year combination is not predictable upstream, and the unfiltered
// query frequently succeeds where the filtered one does not. If the retry
// also fails, or either response carries no entities, the static era
// fallback for (category, year) is returned.
//
// An empty entity slice short-circuits to an empty string with no call made.
func (r *Resolver) Resolve(ctx context.Context, entities []models.SeedEntity, cat category.Category, year int) string {
	if len(entities) == 0 {
		return ""
	}

	ids := make([]string, 0, len(entities))
	for _, e := range entities {
		ids = append(ids, e.ID)
	}

	body, err := r.client.insights(ctx, ids, year, cat.InsightsTypeFilters())
	if err != nil {
		body, err = r.client.insights(ctx, ids, year, nil)
		if err != nil {
			return r.fallback(ctx, cat, year)
		}
	}

	if name, ok := firstEntityName(body); ok {
		return name
	}
	return r.fallback(ctx, cat, year)
}

// fallback returns the era fallback and records that live resolution failed.
func (r *Resolver) fallback(ctx context.Context, cat category.Category, year int) string {
	metrics.FallbacksTotal.WithLabelValues("insights").Inc()
	logger := logging.Ctx(ctx)
	logger.Debug().
		Str("category", cat.Key()).
		Int("year", year).
		Msg("Serving era fallback recommendation")
	return era.Recommendation(cat, year)
}

// insights issues one insights query. typeFilters may be nil.
func (c *Client) insights(ctx context.Context, signalIDs []string, year int, typeFilters []string) ([]byte, error) {
	yearMin := year - yearWindow
	if yearMin < models.MinYear {
		yearMin = models.MinYear
	}
	yearMax := year + yearWindow
	if yearMax > models.MaxYear {
		yearMax = models.MaxYear
	}

	params := url.Values{}
	params.Set("signal.entities", strings.Join(signalIDs, ","))
	params.Set("filter.release_year.min", strconv.Itoa(yearMin))
	params.Set("filter.release_year.max", strconv.Itoa(yearMax))
	params.Set("limit", strconv.Itoa(insightsLimit))
	for _, t := range typeFilters {
		params.Add("filter.type", t)
	}

	return c.get(ctx, "qloo_insights", fmt.Sprintf("%s/v2/insights?%s", c.baseURL, params.Encode()))
}

// namedEntity is the minimal shape extracted from any insights envelope.
type namedEntity struct {
	Name string `json:"name"`
}

// insightsEnvelope covers the two top-level shapes the insights endpoint
// has been observed to return: results as an object or as a bare array,
// plus a top-level entities list.
type insightsEnvelope struct {
	Results  json.RawMessage `json:"results"`
	Entities []namedEntity   `json:"entities"`
}

// firstEntityName extracts the first entity name from an insights response,
// checking in order: results.entities, top-level entities, results as a bare
// array. The envelope shape varies per query in practice; this parsing is
// defensive by necessity and must not be "simplified" to a single shape.
func firstEntityName(body []byte) (string, bool) {
	var env insightsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", false
	}

	if len(env.Results) > 0 {
		trimmed := bytes.TrimSpace(env.Results)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			var nested struct {
				Entities []namedEntity `json:"entities"`
			}
			if err := json.Unmarshal(env.Results, &nested); err == nil &&
				len(nested.Entities) > 0 && nested.Entities[0].Name != "" {
				return nested.Entities[0].Name, true
			}
		}
	}

	if len(env.Entities) > 0 && env.Entities[0].Name != "" {
		return env.Entities[0].Name, true
	}

	if len(env.Results) > 0 {
		trimmed := bytes.TrimSpace(env.Results)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var list []namedEntity
			if err := json.Unmarshal(env.Results, &list); err == nil &&
				len(list) > 0 && list[0].Name != "" {
				return list[0].Name, true
			}
		}
	}

	return "", false
}
