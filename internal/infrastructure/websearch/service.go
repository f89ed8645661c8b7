package websearch

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sahulat/backend/internal/domain"
)

// Result caps per search variant
const (
	categoryResultCap = 10
	latestResultCap   = 8
)

// Provider is one web search backend.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

// Service queries search providers in a fixed fallback order and merges
// multi-query variants. Search failures never propagate as transport errors:
// the worst case is an empty result with ErrNoResults as the explanatory tag.
type Service struct {
	providers []Provider
	country   string
	log       *logrus.Entry
}

// NewService creates a search service. Providers are tried in slice order.
func NewService(providers []Provider, country string, log *logrus.Entry) *Service {
	if country == "" {
		country = "Pakistan"
	}
	return &Service{providers: providers, country: country, log: log}
}

// Search runs one query through the provider chain: the first provider that
// succeeds with at least one result wins. When every provider fails or comes
// back empty, the result is empty and tagged ErrNoResults.
func (s *Service) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	for _, provider := range s.providers {
		results, err := provider.Search(ctx, query)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"provider": provider.Name(),
				"query":    query,
			}).WithError(err).Debug("search provider failed, trying next")
			continue
		}
		if len(results) == 0 {
			continue
		}
		return results, nil
	}

	return nil, domain.ErrNoResults
}

// SearchPrograms builds a single query from the goal set plus profile
// attributes and runs it through the provider chain.
func (s *Service) SearchPrograms(ctx context.Context, profile *domain.UserProfile, goals []string) ([]domain.SearchResult, error) {
	var terms []string
	terms = append(terms, goals...)

	if profile != nil {
		if profile.Age != nil {
			terms = append(terms, fmt.Sprintf("age %d", *profile.Age))
		}
		if profile.Education != nil {
			terms = append(terms, string(*profile.Education)+" education")
		}
		if profile.Location != nil && profile.Location.City != "" {
			terms = append(terms, profile.Location.City)
		}
		if profile.Occupation != nil {
			terms = append(terms, *profile.Occupation)
		}
	}

	query := fmt.Sprintf("%s government programs %s 2024 official website",
		strings.Join(terms, " "), s.country)
	return s.Search(ctx, query)
}

// SearchByCategory fans a fixed query rotation for one category out over the
// provider chain, concatenates results in query order, dedupes by link and
// caps the output.
func (s *Service) SearchByCategory(ctx context.Context, category domain.Category) ([]domain.SearchResult, error) {
	queries := []string{
		fmt.Sprintf("%s government programs %s 2024", category, s.country),
		fmt.Sprintf("%s opportunities %s official website", category, s.country),
		fmt.Sprintf("%s grants %s government portal", category, s.country),
		fmt.Sprintf("%s scholarships %s latest", category, s.country),
	}
	return s.multiSearch(ctx, queries, categoryResultCap)
}

// SearchLatest looks for recently announced opportunities using a canned
// query rotation.
func (s *Service) SearchLatest(ctx context.Context) ([]domain.SearchResult, error) {
	queries := []string{
		fmt.Sprintf("latest government programs %s 2024", s.country),
		fmt.Sprintf("new scholarships %s official website", s.country),
		fmt.Sprintf("recent government grants %s", s.country),
		fmt.Sprintf("government opportunities %s this month", s.country),
	}
	return s.multiSearch(ctx, queries, latestResultCap)
}

// multiSearch issues the queries concurrently (they are independent network
// calls), then merges in query order so deduplication is deterministic.
func (s *Service) multiSearch(ctx context.Context, queries []string, limit int) ([]domain.SearchResult, error) {
	perQuery := make([][]domain.SearchResult, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, query := range queries {
		g.Go(func() error {
			results, err := s.Search(gctx, query)
			if err != nil {
				// Individual query misses are fine; the merge decides
				return nil
			}
			perQuery[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []domain.SearchResult
	for _, results := range perQuery {
		merged = append(merged, results...)
	}

	merged = dedupeByLink(merged)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	if len(merged) == 0 {
		return nil, domain.ErrNoResults
	}
	return merged, nil
}

// dedupeByLink drops entries whose link was already seen, keeping the first
// occurrence.
func dedupeByLink(results []domain.SearchResult) []domain.SearchResult {
	seen := make(map[string]bool, len(results))
	deduped := results[:0]
	for _, r := range results {
		if seen[r.Link] {
			continue
		}
		seen[r.Link] = true
		deduped = append(deduped, r)
	}
	return deduped
}
