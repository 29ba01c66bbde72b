package fallback

import (
	"context"

	"github.com/gigcompass/venuesearch/internal/domain/search/query"
	"github.com/gigcompass/venuesearch/internal/domain/search/result"
)

// Backend executes one structured tier query against the search index.
type Backend interface {
	Search(ctx context.Context, tier query.Tier, size int) ([]result.ScoredDocument, error)
}
