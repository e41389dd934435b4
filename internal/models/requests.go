// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package models

// SearchRequest is the body of POST /api/v1/search. Category optionally
// restricts results to entities whose upstream type maps to that category;
// untyped results are kept either way.
type SearchRequest struct {
	Query    string `json:"query"`
	Category string `json:"category,omitempty"`
}

// SearchResponse is the success body of POST /api/v1/search. Ordering
// follows upstream relevance ranking; no re-sorting is applied.
type SearchResponse struct {
	Results []SeedEntity `json:"results"`
}

// WarpRequest is the body of POST /api/v1/warps.
//
// Shape validation (1-5 entities, year in range) yields 400; content
// validation (at least one entity with id and name) yields 422.
type WarpRequest struct {
	Entities   []SeedEntity `json:"entities" validate:"required,min=1,max=5"`
	TargetYear int          `json:"target_year" validate:"required,min=1900,max=2025"`
	UserName   string       `json:"user_name,omitempty" validate:"omitempty,max=100"`
}

// WarpResponse is the success body of POST /api/v1/warps.
type WarpResponse struct {
	WarpID string `json:"warp_id"`
}

// ErrorResponse is the uniform error body for all endpoints: a single
// human-readable string the client can display as-is.
type ErrorResponse struct {
	Error string `json:"error"`
}
