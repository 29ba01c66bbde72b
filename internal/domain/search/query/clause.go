package query

// Clause is a single expression in the backend's boolean query DSL.
// Body returns the JSON-ready document fragment for the clause.
type Clause interface {
	Body() map[string]any
}

// Match operators for full-text clauses.
const (
	OperatorAnd = "AND"
	OperatorOr  = "OR"
)

// Multi-match types understood by the backend.
const (
	TypeBestFields   = "best_fields"
	TypeMostFields   = "most_fields"
	TypePhrase       = "phrase"
	TypePhrasePrefix = "phrase_prefix"
)

// MultiMatch is a weighted multi-field full-text match. Fields carry
// caret boost suffixes ("company^8"). Zero-valued options are omitted
// from the body.
type MultiMatch struct {
	Query              string
	Fields             []string
	Type               string
	Operator           string
	MinimumShouldMatch string
	Fuzziness          string
	TieBreaker         float64
	Boost              float64
}

// Body implements Clause.
func (m MultiMatch) Body() map[string]any {
	inner := map[string]any{
		"query":  m.Query,
		"fields": m.Fields,
	}
	if m.Type != "" {
		inner["type"] = m.Type
	}
	if m.Operator != "" {
		inner["operator"] = m.Operator
	}
	if m.MinimumShouldMatch != "" {
		inner["minimum_should_match"] = m.MinimumShouldMatch
	}
	if m.Fuzziness != "" {
		inner["fuzziness"] = m.Fuzziness
	}
	if m.TieBreaker != 0 {
		inner["tie_breaker"] = m.TieBreaker
	}
	if m.Boost != 0 {
		inner["boost"] = m.Boost
	}
	return map[string]any{"multi_match": inner}
}

// MatchPhrase is an exact phrase match on a single field.
type MatchPhrase struct {
	Field string
	Query string
	Boost float64
}

// Body implements Clause.
func (m MatchPhrase) Body() map[string]any {
	inner := map[string]any{"query": m.Query}
	if m.Boost != 0 {
		inner["boost"] = m.Boost
	}
	return map[string]any{"match_phrase": map[string]any{m.Field: inner}}
}

// Term is an exact-match filter or boost on a keyword field.
type Term struct {
	Field string
	Value string
	Boost float64
}

// Body implements Clause.
func (t Term) Body() map[string]any {
	if t.Boost == 0 {
		return map[string]any{"term": map[string]any{t.Field: t.Value}}
	}
	return map[string]any{"term": map[string]any{
		t.Field: map[string]any{"value": t.Value, "boost": t.Boost},
	}}
}

// TermsOr is an OR-group of exact matches on one field, satisfied when
// at least one value matches.
type TermsOr struct {
	Field  string
	Values []string
}

// Body implements Clause.
func (t TermsOr) Body() map[string]any {
	should := make([]map[string]any, len(t.Values))
	for i, v := range t.Values {
		should[i] = Term{Field: t.Field, Value: v}.Body()
	}
	return map[string]any{"bool": map[string]any{
		"should":               should,
		"minimum_should_match": 1,
	}}
}

// Wildcard is a pattern match on a single field.
type Wildcard struct {
	Field string
	Value string
	Boost float64
}

// Body implements Clause.
func (w Wildcard) Body() map[string]any {
	inner := map[string]any{"value": w.Value}
	if w.Boost != 0 {
		inner["boost"] = w.Boost
	}
	return map[string]any{"wildcard": map[string]any{w.Field: inner}}
}

// DisMax scores by the best of its sub-queries instead of their sum.
type DisMax struct {
	TieBreaker float64
	Queries    []Clause
}

// Body implements Clause.
func (d DisMax) Body() map[string]any {
	return map[string]any{"dis_max": map[string]any{
		"tie_breaker": d.TieBreaker,
		"queries":     bodies(d.Queries),
	}}
}

// BoolShould is a nested disjunction requiring MinimumShouldMatch of its
// sub-clauses.
type BoolShould struct {
	Should             []Clause
	MinimumShouldMatch int
}

// Body implements Clause.
func (b BoolShould) Body() map[string]any {
	return map[string]any{"bool": map[string]any{
		"should":               bodies(b.Should),
		"minimum_should_match": b.MinimumShouldMatch,
	}}
}

// MatchAll matches every document at the given weight. Used by the
// broadest tier so it can never be structurally empty.
type MatchAll struct {
	Boost float64
}

// Body implements Clause.
func (m MatchAll) Body() map[string]any {
	inner := map[string]any{}
	if m.Boost != 0 {
		inner["boost"] = m.Boost
	}
	return map[string]any{"match_all": inner}
}

func bodies(clauses []Clause) []map[string]any {
	out := make([]map[string]any, len(clauses))
	for i, c := range clauses {
		out[i] = c.Body()
	}
	return out
}
