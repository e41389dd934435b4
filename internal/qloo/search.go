// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package qloo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tastewarp/tastewarp/internal/models"
)

// searchLimit is the fixed result cap for entity searches.
const searchLimit = 5

// searchResult is one raw entry from the Qloo search endpoint.
type searchResult struct {
	EntityID string   `json:"entity_id"`
	Name     string   `json:"name"`
	Types    []string `json:"types"`
}

// searchResponse is the Qloo search envelope.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

// Search forwards a free-text query to the Qloo search endpoint and
// normalizes each result into a SeedEntity. Ordering follows upstream
// relevance ranking. The caller is responsible for query-length validation.
func (c *Client) Search(ctx context.Context, query string) ([]models.SeedEntity, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(searchLimit))

	body, err := c.get(ctx, "qloo_search", fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %s", ErrUpstreamUnavailable, err)
	}

	entities := make([]models.SeedEntity, 0, len(resp.Results))
	for _, r := range resp.Results {
		entityType := "unknown"
		if len(r.Types) > 0 {
			entityType = r.Types[0]
		}
		entities = append(entities, models.SeedEntity{
			ID:   r.EntityID,
			Name: r.Name,
			Type: entityType,
		})
	}
	return entities, nil
}
