// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

// Package api provides the HTTP surface of Tastewarp: entity search, warp
// creation and retrieval, health, and Prometheus metrics.
package api

import (
	"net/http"
	"time"

	"github.com/tastewarp/tastewarp/internal/config"
	"github.com/tastewarp/tastewarp/internal/qloo"
	"github.com/tastewarp/tastewarp/internal/warp"
)

// HealthChecker reports store usability for the readiness payload.
type HealthChecker interface {
	Health() error
}

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	cfg     *config.Config
	search  *qloo.Client
	warps   *warp.Service
	health  HealthChecker
	started time.Time
}

// NewHandler creates the HTTP handler set.
func NewHandler(cfg *config.Config, search *qloo.Client, warps *warp.Service, health HealthChecker) *Handler {
	return &Handler{
		cfg:     cfg,
		search:  search,
		warps:   warps,
		health:  health,
		started: time.Now(),
	}
}

// healthResponse is the body of GET /api/v1/health.
type healthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Store         string `json:"store"`
	QlooReady     bool   `json:"qloo_configured"`
}

// Health reports liveness plus store and upstream configuration status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	storeStatus := "ok"
	status := "ok"
	if err := h.health.Health(); err != nil {
		storeStatus = "unavailable"
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, healthResponse{
		Status:        status,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Store:         storeStatus,
		QlooReady:     h.search.Configured(),
	})
}
