package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/freightpay/investigator/internal/logger"
	"github.com/freightpay/investigator/internal/otm"
	"github.com/freightpay/investigator/models"
)

type searchService struct {
	otm     otm.Client
	catalog queryCatalog

	logger *logger.Logger
}

func NewSearchService(otmClient otm.Client, subdomain string, logger *logger.Logger) SearchService {
	return &searchService{
		otm:     otmClient,
		catalog: newQueryCatalog(subdomain),
		logger:  logger,
	}
}

// Search validates the request, runs both saved queries for the kind
// concurrently, and merges their hits. A single failed query degrades to an
// empty result and is reported in the response's Queries/Errors fields; when
// both fail the search aborts with [ErrUpstreamUnavailable] and no merge is
// attempted.
func (s *searchService) Search(ctx context.Context, term string, kind models.SearchKind) (models.SearchResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return models.SearchResponse{}, ErrEmptySearchTerm
	}

	templates, ok := s.catalog[kind]
	if !ok {
		return models.SearchResponse{}, fmt.Errorf("%w: %q", ErrUnknownSearchKind, kind)
	}

	results := s.dispatch(ctx, templates, term)
	if err := ctx.Err(); err != nil {
		return models.SearchResponse{}, fmt.Errorf("search cancelled: %w", err)
	}

	failed := 0
	for _, result := range results {
		if result.Err != "" {
			failed++
		}
	}
	if failed == len(results) {
		return models.SearchResponse{}, fmt.Errorf("%w: all %d queries failed", ErrUpstreamUnavailable, len(results))
	}

	merged := mergeResults(results)

	queries := make([]models.QuerySummary, 0, len(results))
	errs := make([]string, 0)
	for _, result := range results {
		queries = append(queries, models.QuerySummary{
			Name:  result.Query,
			Count: result.Count,
			Error: result.Err,
		})
		if result.Err != "" {
			errs = append(errs, result.Err)
		}
	}

	return models.SearchResponse{
		SearchType:  kind,
		SearchValue: term,
		TotalCount:  len(merged),
		Queries:     queries,
		Errors:      errs,
		Items:       merged,
	}, nil
}

// dispatch runs every template's saved query in its own goroutine and waits
// for all of them. Each goroutine writes to its own slot, indexed by
// template position, so completion order never affects result order. An
// execution error is recorded on the slot's Err field instead of aborting
// the others.
func (s *searchService) dispatch(ctx context.Context, templates []models.QueryTemplate, term string) []models.QueryResult {
	results := make([]models.QueryResult, len(templates))

	var wg sync.WaitGroup
	for i, tpl := range templates {
		wg.Add(1)
		go func(i int, tpl models.QueryTemplate) {
			defer wg.Done()

			result, err := s.otm.ExecuteSavedQuery(ctx, tpl.Name, term)
			if err != nil {
				s.logger.Warn().Err(err).Str("query", tpl.Name).Msg("saved query failed")
				results[i] = models.QueryResult{Query: tpl.Name, Items: []models.Shipment{}, Err: err.Error()}
				return
			}
			results[i] = result
		}(i, tpl)
	}
	wg.Wait()

	return results
}
