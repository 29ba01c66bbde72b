// Package normalize extracts a location intent from free-text venue
// queries via an ordered chain of classification rules.
package normalize

import (
	"regexp"
	"strings"

	"github.com/gigcompass/venuesearch/internal/domain/geo"
	"github.com/gigcompass/venuesearch/internal/domain/location"
)

// venuePatterns match "<venue-type noun(s)> <trailing text>" with an
// optional qualifier, capturing the trailing location candidate.
var venuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:music\s+)?venues?\s+(.+)$`),
	regexp.MustCompile(`(?:jazz\s+)?clubs?\s+(.+)$`),
	regexp.MustCompile(`(?:live\s+)?music\s+(.+)$`),
	regexp.MustCompile(`bars?\s+(.+)$`),
	regexp.MustCompile(`concert\s+halls?\s+(.+)$`),
	regexp.MustCompile(`theaters?\s+(.+)$`),
	regexp.MustCompile(`theatres?\s+(.+)$`),
	regexp.MustCompile(`lounges?\s+(.+)$`),
	regexp.MustCompile(`nightclubs?\s+(.+)$`),
}

// inPattern matches "in <place>" terminated by a venue-type noun or end
// of string.
var inPattern = regexp.MustCompile(
	`\bin\s+([a-z\s,]+?)(?:\s+(?:music|venue|venues|live|bar|bars|club|clubs)|$)`,
)

// cityStatePattern splits a "city, state" place candidate.
var cityStatePattern = regexp.MustCompile(`^([^,]+),\s*([a-z]+)$`)

// bareWordPattern accepts a single lowercase word as a city candidate.
var bareWordPattern = regexp.MustCompile(`^[a-z]+$`)

// punctReplacer strips commas and periods from trailing token candidates.
var punctReplacer = strings.NewReplacer(",", "", ".", "")

// Service classifies the location reference in a raw query. Rules run in
// strict priority order; the first match wins. Normalization is total:
// unparseable input yields KindNone, never an error.
type Service struct {
	gaz *geo.Gazetteer
}

// New creates a normalizer over the given gazetteer.
func New(gaz *geo.Gazetteer) *Service {
	return &Service{gaz: gaz}
}

// Normalize extracts the location intent from raw query text.
func (s *Service) Normalize(raw string) location.Intent {
	lower := strings.ToLower(strings.TrimSpace(raw))

	rules := []func(string) (location.Intent, bool){
		s.aliasRule,
		s.trailingNounPhraseRule,
		s.inPlaceRule,
		s.trailingTokensRule,
		s.boroughRule,
	}
	for _, rule := range rules {
		if intent, ok := rule(lower); ok {
			return intent
		}
	}
	return location.None()
}

// aliasRule matches borough/metro aliases anywhere in the query.
func (s *Service) aliasRule(lower string) (location.Intent, bool) {
	if place, ok := s.gaz.AliasIn(lower); ok {
		return location.CityState(place.City, place.State), true
	}
	return location.None(), false
}

// trailingNounPhraseRule matches "<venue noun> <place>" at the end of
// the query, e.g. "music venue boston", "jazz clubs california". Only
// the first matching noun pattern is considered.
func (s *Service) trailingNounPhraseRule(lower string) (location.Intent, bool) {
	for _, p := range venuePatterns {
		m := p.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		place := strings.TrimSpace(m[1])
		if intent, ok := s.classifyTrailingPlace(place); ok {
			return intent, true
		}
		break
	}
	return location.None(), false
}

// classifyTrailingPlace resolves a trailing location candidate:
// full state > major city > 2-word state > 3-word state > multi-word
// city > single bare word.
func (s *Service) classifyTrailingPlace(place string) (location.Intent, bool) {
	if state, ok := s.gaz.StateFromToken(place); ok {
		return location.State(state), true
	}
	if s.gaz.IsMajorCity(place) {
		return location.CityOnly(geo.ProperCase(place)), true
	}

	words := strings.Fields(place)
	if len(words) >= 2 {
		if state, ok := s.gaz.StateFromToken(strings.Join(words[:2], " ")); ok {
			return location.State(state), true
		}
	}
	if len(words) >= 3 {
		if state, ok := s.gaz.StateFromToken(strings.Join(words[:3], " ")); ok {
			return location.State(state), true
		}
	}

	if city, ok := s.gaz.MultiWordCityPrefix(place); ok {
		return location.CityOnly(geo.ProperCase(city)), true
	}

	if len(words) == 1 && len(place) > 2 && bareWordPattern.MatchString(place) {
		return location.CityOnly(geo.ProperCase(place)), true
	}
	return location.None(), false
}

// inPlaceRule matches "in <place>", classifying the place as a state, a
// major city, a "city, state" pair, or a bare city name.
func (s *Service) inPlaceRule(lower string) (location.Intent, bool) {
	m := inPattern.FindStringSubmatch(lower)
	if m == nil {
		return location.None(), false
	}
	place := strings.TrimSpace(m[1])

	if state, ok := s.gaz.StateFromToken(place); ok {
		return location.State(state), true
	}
	if s.gaz.IsMajorCity(place) {
		return location.CityOnly(geo.ProperCase(place)), true
	}

	if cs := cityStatePattern.FindStringSubmatch(place); cs != nil {
		city := strings.TrimSpace(cs[1])
		if state, ok := s.gaz.StateFromToken(cs[2]); ok {
			return location.CityState(geo.ProperCase(city), state), true
		}
		// Unresolvable state token: classify the city part alone.
		place = city
	}

	if len(place) > 2 {
		return location.CityOnly(geo.ProperCase(place)), true
	}
	return location.None(), false
}

// trailingTokensRule inspects the last 1, 2, and 3 tokens of the whole
// query against state names/abbreviations, then the major-city list.
func (s *Service) trailingTokensRule(lower string) (location.Intent, bool) {
	words := strings.Fields(lower)
	if len(words) < 2 {
		return location.None(), false
	}

	last1 := words[len(words)-1]
	last2 := strings.Join(words[len(words)-2:], " ")

	if state, ok := s.gaz.StateFromToken(last1); ok {
		return location.State(state), true
	}
	if state, ok := s.gaz.StateFromToken(last2); ok {
		return location.State(state), true
	}
	if len(words) >= 3 {
		last3 := strings.Join(words[len(words)-3:], " ")
		if state, ok := s.gaz.StateFromToken(last3); ok {
			return location.State(state), true
		}
	}

	if s.gaz.IsMajorCity(last1) {
		return location.CityOnly(geo.ProperCase(last1)), true
	}
	if city := strings.TrimSpace(punctReplacer.Replace(last2)); s.gaz.IsMajorCity(city) {
		return location.CityOnly(geo.ProperCase(city)), true
	}
	return location.None(), false
}

// boroughRule is the last resort: very specific NYC borough names
// anywhere in the query.
func (s *Service) boroughRule(lower string) (location.Intent, bool) {
	if borough, ok := s.gaz.BoroughIn(lower); ok {
		return location.CityOnly(geo.ProperCase(borough)), true
	}
	return location.None(), false
}
