package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/sahulat/backend/internal/domain"
)

// SerperProvider queries the Serper.dev Google search API. It is the primary
// provider when a key is configured.
type SerperProvider struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewSerperProvider creates a Serper provider
func NewSerperProvider(apiKey, baseURL string, timeout time.Duration) *SerperProvider {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	// Serper's free tier is tight; one request per second is plenty
	limiter := rate.NewLimiter(rate.Limit(1), 2)

	return &SerperProvider{
		httpClient:  &http.Client{Timeout: timeout},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// Name identifies the provider in logs and result source labels
func (p *SerperProvider) Name() string { return "serper" }

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
		Date    string `json:"date,omitempty"`
	} `json:"organic"`
}

// Search runs one query against Serper and maps the organic results.
func (p *SerperProvider) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: serper api key not configured", domain.ErrUpstreamFailure)
	}

	if err := p.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	body, err := json.Marshal(serperRequest{Q: query, Num: 10})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-KEY", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamFailure, resp.StatusCode, string(respBody))
	}

	var searchResp serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(searchResp.Organic))
	for _, item := range searchResp.Organic {
		results = append(results, domain.SearchResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
			Source:  "Google Search",
			Date:    item.Date,
		})
	}

	return results, nil
}
