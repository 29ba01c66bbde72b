// Package contacts adapts the contact index in Elasticsearch to the
// search use cases: tier queries, name typeahead, and liveness.
package contacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"

	"github.com/gigcompass/venuesearch/internal/domain"
	"github.com/gigcompass/venuesearch/internal/domain/search/query"
	"github.com/gigcompass/venuesearch/internal/domain/search/result"
)

// highlightFields are returned alongside each hit for UI emphasis.
var highlightFields = map[string]any{
	"company":  map[string]any{},
	"headline": map[string]any{},
	"metadata": map[string]any{},
}

// typeaheadSource is the compact field set for name lookups.
var typeaheadSource = []string{"contactId", "company", "city", "state", "headline"}

// Repo implements the fallback.Backend, venue.NameSearcher, and
// health.BackendPinger contracts over one contact index.
type Repo struct {
	es    *elasticsearch.Client
	index string
}

// New creates a contact repository for the given index.
func New(es *elasticsearch.Client, index string) *Repo {
	return &Repo{es: es, index: index}
}

// Search executes one tier query and returns its scored hits.
func (r *Repo) Search(
	ctx context.Context, tier query.Tier, size int,
) ([]result.ScoredDocument, error) {
	body := map[string]any{
		"query":        tier.Body(),
		"size":         size,
		"track_scores": true,
		"_source":      true,
		"highlight":    map[string]any{"fields": highlightFields},
	}
	return r.search(ctx, body)
}

// SearchByName runs the typeahead lookup: prefix match on the company
// name preferred, fuzzy match as a fallback.
func (r *Repo) SearchByName(
	ctx context.Context, name string, limit int,
) ([]result.ScoredDocument, error) {
	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"should": []map[string]any{
					{"match_phrase_prefix": map[string]any{
						"company": map[string]any{"query": name, "boost": 3.0},
					}},
					{"match": map[string]any{
						"company": map[string]any{"query": name, "fuzziness": "AUTO", "boost": 1.0},
					}},
				},
				"minimum_should_match": 1,
			},
		},
		"size":    limit,
		"_source": typeaheadSource,
	}
	return r.search(ctx, body)
}

// Ping checks backend liveness.
func (r *Repo) Ping(ctx context.Context) error {
	res, err := r.es.Ping(r.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: ping status %s", domain.ErrBackendUnavailable, res.Status())
	}
	return nil
}

func (r *Repo) search(ctx context.Context, body map[string]any) ([]result.ScoredDocument, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}

	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(r.index),
		r.es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: search status %s", domain.ErrBackendUnavailable, res.Status())
	}

	var envelope searchEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return envelope.documents(), nil
}

// searchEnvelope is the subset of the search response the core reads.
// Missing fields decode to zero values and yield zero hits rather than
// an error.
type searchEnvelope struct {
	Hits struct {
		Hits []hitEnvelope `json:"hits"`
	} `json:"hits"`
}

type hitEnvelope struct {
	ID        string              `json:"_id"`
	Score     float64             `json:"_score"`
	Source    map[string]any      `json:"_source"`
	Highlight map[string][]string `json:"highlight"`
}

func (e *searchEnvelope) documents() []result.ScoredDocument {
	if len(e.Hits.Hits) == 0 {
		return nil
	}
	docs := make([]result.ScoredDocument, len(e.Hits.Hits))
	for i, h := range e.Hits.Hits {
		docs[i] = result.New(h.ID, h.Score, h.Source, h.Highlight)
	}
	return docs
}
