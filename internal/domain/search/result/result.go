// Package result holds search backend hits and the terminal outcome of
// the tier fallback.
package result

// ScoredDocument is a single backend hit: a source field map, a
// relevance score, and optional field highlights. The core only
// interprets its city/state and exclusion-relevant text fields.
type ScoredDocument struct {
	id         string
	score      float64
	source     map[string]any
	highlights map[string][]string
}

// New creates a scored document.
func New(
	id string, score float64,
	source map[string]any, highlights map[string][]string,
) ScoredDocument {
	return ScoredDocument{id: id, score: score, source: source, highlights: highlights}
}

// ID returns the backend document identifier.
func (d *ScoredDocument) ID() string { return d.id }

// Score returns the relevance score.
func (d *ScoredDocument) Score() float64 { return d.score }

// Source returns the raw source field map.
func (d *ScoredDocument) Source() map[string]any { return d.source }

// Highlights returns the per-field highlight fragments.
func (d *ScoredDocument) Highlights() map[string][]string { return d.highlights }

// StringField returns a source field as a string, empty when absent or
// not a string.
func (d *ScoredDocument) StringField(name string) string {
	if s, ok := d.source[name].(string); ok {
		return s
	}
	return ""
}

// Outcome is the terminal result of running a tier plan: the tier that
// produced the first non-empty hit set (or the last tier on exhaustion),
// the hits, and an optional advisory message for the user.
type Outcome struct {
	tierUsed int
	hits     []ScoredDocument
	message  string
}

// NewOutcome creates an outcome.
func NewOutcome(tierUsed int, hits []ScoredDocument, message string) Outcome {
	return Outcome{tierUsed: tierUsed, hits: hits, message: message}
}

// TierUsed returns the 1-based tier that terminated the fallback.
func (o *Outcome) TierUsed() int { return o.tierUsed }

// Hits returns the ordered hit list, empty on exhaustion.
func (o *Outcome) Hits() []ScoredDocument { return o.hits }

// Message returns the advisory message, empty when tier 1 succeeded.
func (o *Outcome) Message() string { return o.message }
