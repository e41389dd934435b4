// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tastewarp/tastewarp/internal/category"
	"github.com/tastewarp/tastewarp/internal/logging"
	"github.com/tastewarp/tastewarp/internal/models"
	"github.com/tastewarp/tastewarp/internal/qloo"
)

// Search handles POST /api/v1/search: forwards a free-text query to the
// Qloo search endpoint and returns up to five normalized entities.
//
// Status mapping: query under 2 characters -> 400, missing credentials ->
// 500, upstream non-success -> 503, transport faults -> 500.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Query must be at least 2 characters", err)
		return
	}

	query := strings.TrimSpace(req.Query)
	if len(query) < 2 {
		respondError(w, r, http.StatusBadRequest, "Query must be at least 2 characters", nil)
		return
	}

	results, err := h.search.Search(r.Context(), query)
	switch {
	case errors.Is(err, qloo.ErrNotConfigured):
		respondError(w, r, http.StatusInternalServerError, "Qloo API key not configured", err)
		return
	case errors.Is(err, qloo.ErrUpstreamUnavailable):
		respondError(w, r, http.StatusServiceUnavailable, "Search service unavailable", err)
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, "Search service error", err)
		return
	}

	if cat, ok := category.Parse(req.Category); ok {
		results = filterByCategory(results, cat)
	}

	logger := logging.Ctx(r.Context())
	logger.Debug().
		Str("query", sanitizeLogValue(query)).
		Str("category", sanitizeLogValue(req.Category)).
		Int("results", len(results)).
		Msg("Entity search completed")

	if results == nil {
		results = []models.SeedEntity{}
	}
	respondJSON(w, http.StatusOK, models.SearchResponse{Results: results})
}

// filterByCategory keeps results whose upstream type maps to cat. Untyped
// results survive the filter: the search endpoint frequently omits types,
// and dropping those entities would empty out otherwise good queries.
func filterByCategory(results []models.SeedEntity, cat category.Category) []models.SeedEntity {
	kept := results[:0]
	for _, e := range results {
		got, ok := category.ForEntityType(e.Type)
		if !ok || got == cat {
			kept = append(kept, e)
		}
	}
	return kept
}
