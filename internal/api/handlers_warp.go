// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tastewarp/tastewarp/internal/models"
	"github.com/tastewarp/tastewarp/internal/storage"
	"github.com/tastewarp/tastewarp/internal/validation"
)

// CreateWarp handles POST /api/v1/warps: validates the request, generates
// the recommendation bundle, essay and divergence score, persists the warp
// and returns its ID.
func (h *Handler) CreateWarp(w http.ResponseWriter, r *http.Request) {
	var req models.WarpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Entities must be an array of 1-5 items", err)
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		switch {
		case verr.HasField("Entities"):
			respondError(w, r, http.StatusBadRequest, "Entities must be an array of 1-5 items", verr)
		case verr.HasField("TargetYear"):
			respondError(w, r, http.StatusBadRequest, "Target year must be between 1900-2025", verr)
		default:
			respondError(w, r, http.StatusBadRequest, verr.Error(), verr)
		}
		return
	}

	// Entities arrive from the search endpoint, but clients can send
	// anything; drop malformed ones and keep going with the rest. A missing
	// type is tolerated, matching what search returns for untyped entities.
	valid := make([]models.SeedEntity, 0, len(req.Entities))
	for _, e := range req.Entities {
		if e.Type == "" {
			e.Type = "unknown"
		}
		if e.Valid() {
			valid = append(valid, e)
		}
	}
	if len(valid) == 0 {
		respondError(w, r, http.StatusUnprocessableEntity,
			"Invalid entity data received. Please try selecting your favorites again.", nil)
		return
	}

	id, err := h.warps.Create(r.Context(), valid, req.TargetYear, req.UserName)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to save warp", err)
		return
	}

	respondJSON(w, http.StatusOK, models.WarpResponse{WarpID: id})
}

// GetWarp handles GET /api/v1/warps/{id}.
func (h *Handler) GetWarp(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	warp, err := h.warps.Get(r.Context(), id)
	switch {
	case errors.Is(err, storage.ErrWarpNotFound):
		respondError(w, r, http.StatusNotFound, "Warp not found", nil)
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, "Failed to load warp", err)
		return
	}

	respondJSON(w, http.StatusOK, warp)
}
