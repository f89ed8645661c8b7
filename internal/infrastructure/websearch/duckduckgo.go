package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sahulat/backend/internal/domain"
)

// DuckDuckGoProvider queries the DuckDuckGo Instant Answer API. Free with no
// key, so it serves as the secondary provider.
type DuckDuckGoProvider struct {
	httpClient *http.Client
	baseURL    string
}

// NewDuckDuckGoProvider creates a DuckDuckGo provider
func NewDuckDuckGoProvider(baseURL string, timeout time.Duration) *DuckDuckGoProvider {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &DuckDuckGoProvider{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Name identifies the provider in logs and result source labels
func (p *DuckDuckGoProvider) Name() string { return "duckduckgo" }

type ddgResponse struct {
	Abstract       string `json:"Abstract"`
	AbstractSource string `json:"AbstractSource"`
	AbstractURL    string `json:"AbstractURL"`
	RelatedTopics  []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

// Search runs one query against the instant answer API, mapping the abstract
// and up to five related topics.
func (p *DuckDuckGoProvider) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamFailure, resp.StatusCode)
	}

	var ddgResp ddgResponse
	if err := json.NewDecoder(resp.Body).Decode(&ddgResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var results []domain.SearchResult
	if ddgResp.Abstract != "" {
		results = append(results, domain.SearchResult{
			Title:   ddgResp.AbstractSource,
			Link:    ddgResp.AbstractURL,
			Snippet: ddgResp.Abstract,
			Source:  "DuckDuckGo Instant Answer",
		})
	}

	for i, topic := range ddgResp.RelatedTopics {
		if i >= 5 {
			break
		}
		if topic.Text == "" {
			continue
		}
		title := topic.Text
		if idx := strings.Index(title, " - "); idx > 0 {
			title = title[:idx]
		}
		results = append(results, domain.SearchResult{
			Title:   title,
			Link:    topic.FirstURL,
			Snippet: topic.Text,
			Source:  "DuckDuckGo Related",
		})
	}

	return results, nil
}
