// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

// Package essay generates the short cultural-context essay for a warp via
// the OpenAI chat-completion API, falling back to the static decade essays
// when credentials are missing or the call fails. Generation is total: it
// always returns a usable essay and never an error.
package essay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tastewarp/tastewarp/internal/config"
	"github.com/tastewarp/tastewarp/internal/era"
	"github.com/tastewarp/tastewarp/internal/logging"
	"github.com/tastewarp/tastewarp/internal/metrics"
	"github.com/tastewarp/tastewarp/internal/models"
)

// systemPrompt pins the model's register and length.
const systemPrompt = "You are a cultural historian who writes engaging, concise essays about different time periods. Keep responses to exactly 60 words."

// maxBodySize caps the completion response body.
const maxBodySize = 1 << 20

// Generator produces warp essays.
type Generator struct {
	cfg        config.OpenAIConfig
	httpClient *http.Client
}

// NewGenerator creates an essay generator from configuration.
func NewGenerator(cfg config.OpenAIConfig) *Generator {
	return &Generator{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// chatMessage is one message in a chat-completion request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the chat-completion request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// chatResponse is the subset of the completion response we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate returns the essay for a warp. With no API key configured it
// returns the static fallback immediately. Any request failure, non-success
// status or empty choices list also degrades to the fallback.
func (g *Generator) Generate(ctx context.Context, seeds []string, targetYear int, bundle models.RecommendationBundle, userName string) string {
	if !g.cfg.Configured() {
		return g.fallback(ctx, targetYear, userName, "no api key configured")
	}

	text, err := g.complete(ctx, g.buildPrompt(seeds, targetYear, bundle, userName))
	if err != nil {
		return g.fallback(ctx, targetYear, userName, err.Error())
	}
	return text
}

// buildPrompt assembles the user prompt from seeds, year and the target-year
// bundle entries. A present userName asks the model for a personalized
// opening phrase.
func (g *Generator) buildPrompt(seeds []string, targetYear int, bundle models.RecommendationBundle, userName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a concise 60-word cultural context essay about %d. ", targetYear)
	if userName != "" {
		fmt.Fprintf(&b, "Start with \"%s, in %d, you'd be all about...\"", userName, targetYear)
	}
	fmt.Fprintf(&b, "\nUser's favorites: %s", strings.Join(seeds, ", "))
	fmt.Fprintf(&b, "\nEra recommendations: Music: %s, Film: %s, Food: %s, Fashion: %s, Travel: %s",
		bundle.Music, bundle.Film, bundle.Food, bundle.Fashion, bundle.Travel)
	tone := "informative"
	if userName != "" {
		tone = "personal"
	}
	fmt.Fprintf(&b, "\nFocus on the cultural zeitgeist, artistic movements, and lifestyle trends that defined %d. Be engaging and %s.", targetYear, tone)
	return b.String()
}

// complete sends one chat-completion request and returns the trimmed text.
func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest("openai", "failure", time.Since(start))
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		metrics.RecordUpstreamRequest("openai", "failure", time.Since(start))
		return "", fmt.Errorf("read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.RecordUpstreamRequest("openai", "failure", time.Since(start))
		return "", fmt.Errorf("completion request failed with status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		metrics.RecordUpstreamRequest("openai", "failure", time.Since(start))
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		metrics.RecordUpstreamRequest("openai", "failure", time.Since(start))
		return "", fmt.Errorf("completion response has no choices")
	}

	metrics.RecordUpstreamRequest("openai", "success", time.Since(start))
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// fallback returns the static decade essay and records why.
func (g *Generator) fallback(ctx context.Context, targetYear int, userName, reason string) string {
	metrics.FallbacksTotal.WithLabelValues("essay").Inc()
	logger := logging.Ctx(ctx)
	logger.Debug().
		Int("year", targetYear).
		Str("reason", reason).
		Msg("Serving fallback essay")
	return era.Essay(targetYear, userName)
}
