package websearch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahulat/backend/internal/domain"
)

func TestSerperProvider(t *testing.T) {
	t.Run("maps organic results", func(t *testing.T) {
		var gotReq serperRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			w.Write([]byte(`{"organic": [
				{"title": "BISP", "link": "https://bisp.gov.pk", "snippet": "Benazir Income Support", "date": "2024-01-01"},
				{"title": "HEC", "link": "https://hec.gov.pk", "snippet": "Scholarships"}
			]}`))
		}))
		defer server.Close()

		provider := NewSerperProvider("test-key", server.URL, 5*time.Second)
		results, err := provider.Search(context.Background(), "government programs Pakistan")

		require.NoError(t, err)
		assert.Equal(t, "government programs Pakistan", gotReq.Q)
		assert.Equal(t, 10, gotReq.Num)
		require.Len(t, results, 2)
		assert.Equal(t, "BISP", results[0].Title)
		assert.Equal(t, "https://bisp.gov.pk", results[0].Link)
		assert.Equal(t, "Google Search", results[0].Source)
		assert.Equal(t, "2024-01-01", results[0].Date)
	})

	t.Run("missing key is an upstream failure", func(t *testing.T) {
		provider := NewSerperProvider("", "https://google.serper.dev", 0)
		_, err := provider.Search(context.Background(), "query")
		assert.True(t, errors.Is(err, domain.ErrUpstreamFailure))
	})

	t.Run("non-200 status is an upstream failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		provider := NewSerperProvider("test-key", server.URL, 5*time.Second)
		_, err := provider.Search(context.Background(), "query")
		assert.True(t, errors.Is(err, domain.ErrUpstreamFailure))
	})
}

func TestDuckDuckGoProvider(t *testing.T) {
	t.Run("maps abstract and related topics", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "government programs", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))

			w.Write([]byte(`{
				"Abstract": "Overview of programs",
				"AbstractSource": "Wikipedia",
				"AbstractURL": "https://en.wikipedia.org/wiki/X",
				"RelatedTopics": [
					{"Text": "BISP - cash transfer programme", "FirstURL": "https://bisp.gov.pk"},
					{"Text": "", "FirstURL": "https://skip.me"},
					{"Text": "Ehsaas", "FirstURL": "https://ehsaas.gov.pk"}
				]
			}`))
		}))
		defer server.Close()

		provider := NewDuckDuckGoProvider(server.URL, 5*time.Second)
		results, err := provider.Search(context.Background(), "government programs")

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "Wikipedia", results[0].Title)
		assert.Equal(t, "DuckDuckGo Instant Answer", results[0].Source)
		// Topic title is the text before the separator
		assert.Equal(t, "BISP", results[1].Title)
		assert.Equal(t, "https://bisp.gov.pk", results[1].Link)
		assert.Equal(t, "Ehsaas", results[2].Title)
	})

	t.Run("related topics are capped at five", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			resp := ddgResponse{}
			for i := 0; i < 8; i++ {
				resp.RelatedTopics = append(resp.RelatedTopics, struct {
					Text     string `json:"Text"`
					FirstURL string `json:"FirstURL"`
				}{Text: "topic", FirstURL: "https://t"})
			}
			json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		provider := NewDuckDuckGoProvider(server.URL, 5*time.Second)
		results, err := provider.Search(context.Background(), "query")

		require.NoError(t, err)
		assert.Len(t, results, 5)
	})

	t.Run("empty response yields no results without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Abstract": "", "RelatedTopics": []}`))
		}))
		defer server.Close()

		provider := NewDuckDuckGoProvider(server.URL, 5*time.Second)
		results, err := provider.Search(context.Background(), "query")

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("non-200 status is an upstream failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		provider := NewDuckDuckGoProvider(server.URL, 5*time.Second)
		_, err := provider.Search(context.Background(), "query")
		assert.True(t, errors.Is(err, domain.ErrUpstreamFailure))
	})
}
