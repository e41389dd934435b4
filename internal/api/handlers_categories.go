// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package api

import (
	"net/http"

	"github.com/tastewarp/tastewarp/internal/category"
)

// categoryInfo is one entry in the categories listing.
type categoryInfo struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

// categoriesResponse is the body of GET /api/v1/categories.
type categoriesResponse struct {
	Categories []categoryInfo `json:"categories"`
}

// Categories lists the recommendation categories with their display labels
// and search placeholders, in canonical order. The set is fixed at compile
// time, so the response is always the same.
func (h *Handler) Categories(w http.ResponseWriter, _ *http.Request) {
	infos := make([]categoryInfo, 0, category.Count)
	for _, c := range category.All() {
		infos = append(infos, categoryInfo{
			Key:         c.Key(),
			Label:       c.Label(),
			Placeholder: c.Placeholder(),
		})
	}
	respondJSON(w, http.StatusOK, categoriesResponse{Categories: infos})
}
