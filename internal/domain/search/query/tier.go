// Package query models the structured boolean queries sent to the
// text-search backend: individual clauses, a Tier combining them, and a
// Plan of tiers ordered from strictest to broadest.
package query

import "github.com/gigcompass/venuesearch/internal/domain/location"

// TierCount is the fixed number of tiers in a plan.
const TierCount = 5

// Tier is one structured query variant in the fallback sequence.
// MustNot carries the category exclusions and is non-empty on every tier.
type Tier struct {
	Must               []Clause
	Filter             []Clause
	Should             []Clause
	MustNot            []Clause
	MinimumShouldMatch int
}

// Body returns the boolean query document for the tier.
func (t Tier) Body() map[string]any {
	b := map[string]any{
		"should":               bodies(t.Should),
		"must_not":             bodies(t.MustNot),
		"minimum_should_match": t.MinimumShouldMatch,
	}
	if len(t.Must) > 0 {
		b["must"] = bodies(t.Must)
	}
	if len(t.Filter) > 0 {
		b["filter"] = bodies(t.Filter)
	}
	return map[string]any{"bool": b}
}

// Plan is the ordered fallback sequence compiled for one query, with the
// location intent the compiler derived from it.
type Plan struct {
	tiers  [TierCount]Tier
	intent location.Intent
}

// NewPlan creates a plan.
func NewPlan(intent location.Intent, tiers [TierCount]Tier) Plan {
	return Plan{tiers: tiers, intent: intent}
}

// Tiers returns the tiers strictest first.
func (p *Plan) Tiers() []Tier { return p.tiers[:] }

// Intent returns the location intent the plan was compiled for.
func (p *Plan) Intent() location.Intent { return p.intent }
