// Package compile turns a raw venue query into an ordered five-tier
// plan of structured backend queries, strictest first. Compilation is a
// pure function of the query text and the two knowledge bases.
package compile

import (
	"regexp"
	"strings"

	"github.com/gigcompass/venuesearch/internal/domain/location"
	"github.com/gigcompass/venuesearch/internal/domain/search/query"
	"github.com/gigcompass/venuesearch/internal/domain/vocab"
)

// Field weight sets for the contact index.
var (
	searchFields = []string{
		"company^8", "headline^3", "metadata^2", "title^2",
		"city^4", "state^1", "address^1", "website^0.5",
	}
	nameFields         = []string{"company^10", "headline^2"}
	synonymBoostFields = []string{"company", "headline", "metadata", "title"}
	synonymMatchFields = []string{"company^3", "headline^2", "metadata", "title"}
	indicatorFields    = []string{"company^2", "headline^1.5", "metadata", "website"}
	vocabBoostFields   = []string{"company^2", "headline^1.5", "metadata"}
	exclusionFields    = []string{"company", "headline", "metadata", "title"}
)

// genericVenueQuery replaces residual query text too short to match on.
const genericVenueQuery = "music venue live music bar club venue"

// coreVenueVocabulary is the flat tier-4 boost toward venue terms.
const coreVenueVocabulary = "live music concert venue bar club theater"

// inLocationPattern strips "in <location>" phrasing from the query text.
var inLocationPattern = regexp.MustCompile(`\bin\s+[a-z\s,]+`)

// Normalizer extracts a location intent from raw query text.
type Normalizer interface {
	Normalize(raw string) location.Intent
}

// Service compiles tier plans.
type Service struct {
	normalizer Normalizer
	lex        *vocab.Lexicon
}

// New creates a compiler.
func New(normalizer Normalizer, lex *vocab.Lexicon) *Service {
	return &Service{normalizer: normalizer, lex: lex}
}

// Compile builds the five-tier plan for a raw query.
func (s *Service) Compile(raw string) query.Plan {
	intent := s.normalizer.Normalize(raw)
	filters := locationFilters(intent)
	cleaned := cleanQueryText(raw, intent)

	synonymBoosts := s.synonymBoosts()
	indicatorBoosts := s.indicatorBoosts()
	exclusions := s.exclusions()
	nycBoosts := nycBoroughBoosts(raw)

	sharedShoulds := make([]query.Clause, 0, len(synonymBoosts)+len(indicatorBoosts)+len(nycBoosts))
	sharedShoulds = append(sharedShoulds, synonymBoosts...)
	sharedShoulds = append(sharedShoulds, indicatorBoosts...)
	sharedShoulds = append(sharedShoulds, nycBoosts...)

	var tiers [query.TierCount]query.Tier
	tiers[0] = s.tier1(cleaned, filters, sharedShoulds, exclusions)
	tiers[1] = s.tier2(cleaned, filters, sharedShoulds, exclusions)
	tiers[2] = s.tier3(cleaned, filters, sharedShoulds, exclusions)
	tiers[3] = s.tier4(cleaned, filters, exclusions, synonymBoosts, indicatorBoosts)
	tiers[4] = s.tier5(raw, indicatorBoosts, exclusions)

	return query.NewPlan(intent, tiers)
}

// tier1 is the strict tier: AND-required multi-field match at 75% with
// full location filters and a phrase boost on name-priority fields.
func (s *Service) tier1(cleaned string, filters, shoulds, exclusions []query.Clause) query.Tier {
	should := append(append([]query.Clause{}, shoulds...), query.MultiMatch{
		Query:  cleaned,
		Fields: nameFields,
		Type:   query.TypePhrase,
		Boost:  2.0,
	})
	return query.Tier{
		Must: []query.Clause{query.MultiMatch{
			Query:              cleaned,
			Fields:             searchFields,
			Type:               query.TypeBestFields,
			Operator:           query.OperatorAnd,
			MinimumShouldMatch: "75%",
			TieBreaker:         0.3,
		}},
		Filter:  filters,
		Should:  should,
		MustNot: exclusions,
	}
}

// tier2 loosens matching to 50% OR with fuzziness, combined with a
// prefix-phrase alternative on name-priority fields.
func (s *Service) tier2(cleaned string, filters, shoulds, exclusions []query.Clause) query.Tier {
	return query.Tier{
		Must: []query.Clause{query.DisMax{
			TieBreaker: 0.3,
			Queries: []query.Clause{
				query.MultiMatch{
					Query:              cleaned,
					Fields:             searchFields,
					Type:               query.TypeBestFields,
					Operator:           query.OperatorOr,
					MinimumShouldMatch: "50%",
					Fuzziness:          "AUTO:4,7",
				},
				query.MultiMatch{
					Query:  cleaned,
					Fields: nameFields,
					Type:   query.TypePhrasePrefix,
					Boost:  1.5,
				},
			},
		}},
		Filter:  filters,
		Should:  shoulds,
		MustNot: exclusions,
	}
}

// tier3 demotes city filters to boosts, keeps state filters hard, drops
// the threshold to 35% and widens the text with leading synonyms.
func (s *Service) tier3(cleaned string, filters, shoulds, exclusions []query.Clause) query.Tier {
	widened := cleaned + " " + strings.Join(s.lex.VenueSynonyms()[:5], " ")

	should := append(cityFiltersAsBoosts(filters), shoulds...)
	should = append(should, query.Wildcard{
		Field: "company",
		Value: "*" + firstWord(cleaned) + "*",
		Boost: 0.5,
	})

	return query.Tier{
		Must: []query.Clause{query.MultiMatch{
			Query:              widened,
			Fields:             searchFields,
			Type:               query.TypeMostFields,
			Operator:           query.OperatorOr,
			MinimumShouldMatch: "35%",
			Fuzziness:          "AUTO",
		}},
		Filter:  stateOnlyFilters(filters),
		Should:  should,
		MustNot: exclusions,
	}
}

// tier4 keeps only the state filter and requires either a loose match on
// the user's text or a match against the full synonym list.
func (s *Service) tier4(
	cleaned string, filters, exclusions, synonymBoosts, indicatorBoosts []query.Clause,
) query.Tier {
	should := append(append([]query.Clause{}, synonymBoosts...), indicatorBoosts...)
	should = append(should, query.MultiMatch{
		Query:    coreVenueVocabulary,
		Fields:   vocabBoostFields,
		Operator: query.OperatorOr,
		Boost:    1.0,
	})

	return query.Tier{
		Must: []query.Clause{query.BoolShould{
			Should: []query.Clause{
				query.MultiMatch{
					Query:              cleaned,
					Fields:             searchFields,
					Operator:           query.OperatorOr,
					MinimumShouldMatch: "25%",
					Fuzziness:          "AUTO",
				},
				query.MultiMatch{
					Query:              strings.Join(s.lex.VenueSynonyms(), " "),
					Fields:             synonymMatchFields,
					Operator:           query.OperatorOr,
					MinimumShouldMatch: "20%",
				},
			},
			MinimumShouldMatch: 1,
		}},
		Filter:  stateOnlyFilters(filters),
		Should:  should,
		MustNot: exclusions,
	}
}

// tier5 is the broadest tier: no hard filters, should-only disjunction
// including a universal match so it can never be structurally empty.
func (s *Service) tier5(raw string, indicatorBoosts, exclusions []query.Clause) query.Tier {
	should := []query.Clause{
		query.MultiMatch{
			Query:     raw,
			Fields:    searchFields,
			Type:      query.TypeBestFields,
			Operator:  query.OperatorOr,
			Fuzziness: "AUTO",
			Boost:     2.0,
		},
		query.MultiMatch{
			Query:              strings.Join(s.lex.VenueSynonyms(), " "),
			Fields:             vocabBoostFields,
			Operator:           query.OperatorOr,
			MinimumShouldMatch: "10%",
			Boost:              1.0,
		},
	}
	should = append(should, indicatorBoosts...)
	should = append(should, query.MatchAll{Boost: 0.01})

	return query.Tier{
		Should:             should,
		MustNot:            exclusions,
		MinimumShouldMatch: 1,
	}
}

// synonymBoosts builds one phrase boost per boosted term per primary
// text field.
func (s *Service) synonymBoosts() []query.Clause {
	terms := s.lex.BoostedTerms()
	out := make([]query.Clause, 0, len(terms)*len(synonymBoostFields))
	for _, t := range terms {
		for _, f := range synonymBoostFields {
			out = append(out, query.MatchPhrase{Field: f, Query: t.Phrase, Boost: t.Boost})
		}
	}
	return out
}

// indicatorBoosts builds low-weight phrase boosts for venue indicators.
func (s *Service) indicatorBoosts() []query.Clause {
	phrases := s.lex.VenueIndicatorPhrases()
	out := make([]query.Clause, len(phrases))
	for i, p := range phrases {
		out[i] = query.MultiMatch{
			Query:  p,
			Fields: indicatorFields,
			Type:   query.TypePhrase,
			Boost:  0.5,
		}
	}
	return out
}

// exclusions builds the must_not clauses applied identically to every
// tier: per phrase, a disjunction of phrase matches over the text fields.
func (s *Service) exclusions() []query.Clause {
	phrases := s.lex.ExclusionPhrases()
	out := make([]query.Clause, len(phrases))
	for i, p := range phrases {
		should := make([]query.Clause, len(exclusionFields))
		for j, f := range exclusionFields {
			should[j] = query.MatchPhrase{Field: f, Query: p}
		}
		out[i] = query.BoolShould{Should: should, MinimumShouldMatch: 1}
	}
	return out
}

// locationFilters derives hard filters from the intent. The canonical
// New York/New York case widens the city filter to an OR-group over
// {New York, Brooklyn}: NYC borough data is inconsistently labeled
// city-by-city.
func locationFilters(intent location.Intent) []query.Clause {
	switch intent.Kind() {
	case location.KindCityState:
		if intent.City() == "New York" && intent.State() == "New York" {
			return []query.Clause{
				query.TermsOr{Field: "city.keyword", Values: []string{"New York", "Brooklyn"}},
				query.Term{Field: "state.keyword", Value: intent.State()},
			}
		}
		return []query.Clause{
			query.Term{Field: "city.keyword", Value: intent.City()},
			query.Term{Field: "state.keyword", Value: intent.State()},
		}
	case location.KindCityOnly:
		return []query.Clause{query.Term{Field: "city.keyword", Value: intent.City()}}
	case location.KindState:
		return []query.Clause{query.Term{Field: "state.keyword", Value: intent.State()}}
	default:
		return nil
	}
}

// stateOnlyFilters keeps state-level hard filters, dropping city
// equality filters and the NYC city OR-group.
func stateOnlyFilters(filters []query.Clause) []query.Clause {
	var out []query.Clause
	for _, f := range filters {
		if t, ok := f.(query.Term); ok && t.Field == "state.keyword" {
			out = append(out, f)
		}
	}
	return out
}

// cityFiltersAsBoosts converts city equality filters into boost-only
// clauses at weight 2.0.
func cityFiltersAsBoosts(filters []query.Clause) []query.Clause {
	var out []query.Clause
	for _, f := range filters {
		switch t := f.(type) {
		case query.Term:
			if t.Field == "city.keyword" {
				out = append(out, query.Term{Field: t.Field, Value: t.Value, Boost: 2.0})
			}
		case query.TermsOr:
			for _, v := range t.Values {
				out = append(out, query.Term{Field: t.Field, Value: v, Boost: 2.0})
			}
		}
	}
	return out
}

// nycBoroughBoosts down-weights outer boroughs relative to Manhattan
// when the query literally says "new york city" or "nyc".
func nycBoroughBoosts(raw string) []query.Clause {
	lower := strings.ToLower(raw)
	if !strings.Contains(lower, "new york city") && !strings.Contains(lower, "nyc") {
		return nil
	}
	return []query.Clause{
		query.Term{Field: "city.keyword", Value: "Brooklyn", Boost: 0.8},
		query.Term{Field: "city.keyword", Value: "Queens", Boost: 0.6},
		query.Term{Field: "city.keyword", Value: "Bronx", Boost: 0.6},
		query.Term{Field: "city.keyword", Value: "Staten Island", Boost: 0.5},
	}
}

// cleanQueryText strips the recognized location phrasing from the raw
// query. Residual text shorter than 3 characters is replaced with the
// generic venue phrase so the text clause is never degenerate.
func cleanQueryText(raw string, intent location.Intent) string {
	cleaned := strings.ToLower(raw)

	cleaned = inLocationPattern.ReplaceAllString(cleaned, "")

	if intent.HasState() {
		cleaned = trimTrailing(cleaned, intent.State())
	}
	if intent.HasCity() {
		cleaned = trimTrailing(cleaned, intent.City())
	}

	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if len(cleaned) < 3 {
		return genericVenueQuery
	}
	return cleaned
}

// trimTrailing removes name from the end of text, case-insensitively.
func trimTrailing(text, name string) string {
	trimmed := strings.TrimRight(text, " ")
	suffix := strings.ToLower(name)
	if strings.HasSuffix(trimmed, suffix) {
		return strings.TrimRight(trimmed[:len(trimmed)-len(suffix)], " ")
	}
	return text
}

func firstWord(text string) string {
	if fields := strings.Fields(text); len(fields) > 0 {
		return fields[0]
	}
	return text
}
