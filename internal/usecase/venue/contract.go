package venue

import (
	"context"

	"github.com/gigcompass/venuesearch/internal/domain/search/query"
	"github.com/gigcompass/venuesearch/internal/domain/search/result"
)

// Compiler turns a raw query into an ordered tier plan.
type Compiler interface {
	Compile(raw string) query.Plan
}

// Executor runs a tier plan and returns the first non-empty outcome.
type Executor interface {
	Execute(ctx context.Context, plan query.Plan, size int) (result.Outcome, error)
}

// NameSearcher looks up venues by company name for typeahead.
type NameSearcher interface {
	SearchByName(ctx context.Context, name string, limit int) ([]result.ScoredDocument, error)
}
