// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package essay

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tastewarp/tastewarp/internal/config"
	"github.com/tastewarp/tastewarp/internal/era"
	"github.com/tastewarp/tastewarp/internal/models"
)

func testBundle() models.RecommendationBundle {
	return models.RecommendationBundle{
		CategoryRecommendations: models.CategoryRecommendations{
			Music:   "Duke Ellington - Cotton Club Nights",
			Film:    "The Cabinet of Dr. Caligari",
			Food:    "Oysters Rockefeller",
			Fashion: "Flapper Dresses & Cloche Hats",
			Travel:  "Paris, France",
		},
	}
}

func testGenerator(t *testing.T, handler http.Handler) *Generator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGenerator(config.OpenAIConfig{
		BaseURL:     srv.URL,
		APIKey:      "test-key",
		Model:       "gpt-3.5-turbo",
		MaxTokens:   100,
		Temperature: 0.7,
		Timeout:     5 * time.Second,
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	gen := testGenerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		body, _ := io.ReadAll(r.Body)
		var req chatRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-3.5-turbo" || req.MaxTokens != 100 || req.Temperature != 0.7 {
			t.Errorf("request parameters = %+v", req)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Fatalf("messages = %+v, want system then user", req.Messages)
		}
		prompt := req.Messages[1].Content
		for _, want := range []string{
			`Start with "Ada, in 1925, you'd be all about..."`,
			"User's favorites: Radiohead, Pulp Fiction",
			"Music: Duke Ellington - Cotton Club Nights",
			"Be engaging and personal.",
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt missing %q:\n%s", want, prompt)
			}
		}

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  Ada, in 1925, you'd be all about jazz.  "}}]}`))
	}))

	got := gen.Generate(context.Background(), []string{"Radiohead", "Pulp Fiction"}, 1925, testBundle(), "Ada")
	if got != "Ada, in 1925, you'd be all about jazz." {
		t.Errorf("Generate = %q, want trimmed completion text", got)
	}
}

func TestGenerateAnonymousTone(t *testing.T) {
	t.Parallel()

	gen := testGenerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req chatRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		prompt := req.Messages[1].Content
		if strings.Contains(prompt, "Start with") {
			t.Errorf("anonymous prompt asks for a personalized opening:\n%s", prompt)
		}
		if !strings.Contains(prompt, "Be engaging and informative.") {
			t.Errorf("anonymous prompt missing informative tone:\n%s", prompt)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"The twenties roared."}}]}`))
	}))

	if got := gen.Generate(context.Background(), []string{"Radiohead"}, 1925, testBundle(), ""); got != "The twenties roared." {
		t.Errorf("Generate = %q", got)
	}
}

func TestGenerateFallbackWithoutKey(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(config.OpenAIConfig{BaseURL: "http://localhost:0", Timeout: time.Second})
	got := gen.Generate(context.Background(), []string{"Radiohead"}, 1972, testBundle(), "Ada")
	if want := era.Essay(1972, "Ada"); got != want {
		t.Errorf("Generate without key = %q, want static essay %q", got, want)
	}
}

func TestGenerateFallbackOnFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"upstream error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}},
		{"empty choices", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}},
		{"malformed body", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gen := testGenerator(t, tt.handler)
			got := gen.Generate(context.Background(), []string{"Radiohead"}, 1955, testBundle(), "")
			if want := era.Essay(1955, ""); got != want {
				t.Errorf("Generate = %q, want static essay %q", got, want)
			}
		})
	}
}
