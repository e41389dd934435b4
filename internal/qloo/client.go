// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

// Package qloo implements the client for the Qloo cultural-affinity API:
// the entity search gateway and the insights resolver.
//
// All calls go through a circuit breaker. An open circuit is treated exactly
// like an unsuccessful upstream response, so the resolver's fallback chain
// keeps the service answering with static era data while the upstream is
// down.
package qloo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tastewarp/tastewarp/internal/config"
	"github.com/tastewarp/tastewarp/internal/logging"
	"github.com/tastewarp/tastewarp/internal/metrics"
)

// Sentinel errors surfaced by the client.
var (
	// ErrNotConfigured indicates no Qloo API key is configured.
	ErrNotConfigured = errors.New("qloo api key not configured")

	// ErrUpstreamUnavailable indicates the Qloo API returned a non-success
	// response or could not be reached.
	ErrUpstreamUnavailable = errors.New("qloo api unavailable")
)

// maxBodySize caps upstream response bodies. Qloo payloads are small; the
// limit guards against a misbehaving upstream.
const maxBodySize = 4 << 20

// Client talks to the Qloo API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a Qloo API client from configuration.
//
// Circuit breaker settings: opens after a 60% failure rate over at least 10
// requests in a 1 minute window, allows 3 probe requests after 2 minutes.
func NewClient(cfg *config.QlooConfig) *Client {
	cbName := "qloo-api"
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cb:         cb,
	}
}

// Configured reports whether the client has an API key.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// get executes one GET request through the circuit breaker and returns the
// response body. Non-2xx statuses, transport faults and open-circuit
// rejections all surface as ErrUpstreamUnavailable.
func (c *Client) get(ctx context.Context, service, reqURL string) ([]byte, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	start := time.Now()
	body, err := c.cb.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("create request failed: %w", err)
		}
		req.Header.Set("X-Api-Key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if err != nil {
			return nil, fmt.Errorf("read response failed: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
		}
		return data, nil
	})

	if err != nil {
		outcome := "failure"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		metrics.RecordUpstreamRequest(service, outcome, time.Since(start))

		logger := logging.Ctx(ctx)
		logger.Warn().
			Err(err).
			Str("service", service).
			Msg("Qloo request failed")

		if errors.Is(err, ErrUpstreamUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err)
	}

	metrics.RecordUpstreamRequest(service, "success", time.Since(start))
	return body, nil
}

// stateToFloat maps breaker states onto gauge values.
func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	}
	return 0
}
