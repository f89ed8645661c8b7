package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sahulat/backend/internal/domain"
)

// defaultModel is the hard-coded identifier returned when neither the
// preferred model nor any fallback is available.
const defaultModel = "meta-llama/llama-3.1-8b-instruct"

// tierModels maps each capability tier to its preferred model.
var tierModels = map[domain.ModelTier]string{
	domain.TierChat:     "meta-llama/llama-3.1-8b-instruct",
	domain.TierFast:     "microsoft/phi-3-mini-4k-instruct",
	domain.TierCreative: "google/gemini-flash-1.5",
	domain.TierSmart:    "anthropic/claude-3-haiku",
}

// fallbackModels are universally reliable free models, in preference order.
var fallbackModels = []string{
	"meta-llama/llama-3.1-8b-instruct",
	"anthropic/claude-3-haiku",
	"google/gemini-flash-1.5",
	"microsoft/phi-3-mini-4k-instruct",
}

type modelsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// AvailableModels fetches the identifiers currently served by the catalog
// endpoint.
func (c *Client) AvailableModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamFailure, resp.StatusCode, string(body))
	}

	var modelsResp modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&modelsResp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	ids := make([]string, 0, len(modelsResp.Data))
	for _, m := range modelsResp.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// ResolveModel maps a capability tier to a concrete model identifier using
// the live catalog. It never fails: a catalog error yields the first static
// fallback, and an available set containing none of the known models yields
// the hard-coded default.
func (c *Client) ResolveModel(ctx context.Context, tier domain.ModelTier) string {
	preferred, ok := tierModels[tier]
	if !ok {
		preferred = tierModels[domain.TierChat]
	}

	available, err := c.AvailableModels(ctx)
	if err != nil {
		c.log.WithField("tier", string(tier)).WithError(err).
			Debug("model catalog unavailable, using static fallback")
		return fallbackModels[0]
	}

	availableSet := make(map[string]bool, len(available))
	for _, id := range available {
		availableSet[id] = true
	}

	if availableSet[preferred] {
		return preferred
	}

	for _, model := range fallbackModels {
		if availableSet[model] {
			c.log.WithFields(map[string]interface{}{
				"preferred": preferred,
				"selected":  model,
			}).Debug("preferred model unavailable")
			return model
		}
	}

	return defaultModel
}
