// Package geo is the static geography knowledge base: borough/metro
// aliases, US state names and abbreviations, and a curated major-city
// list. All lookups are case-insensitive exact matches over
// pre-normalized keys; there is no fuzzy matching at this layer.
package geo

import (
	"strings"
	"unicode"
)

// Place is a canonical city/state pair.
type Place struct {
	City  string
	State string
}

// alias maps a metro/borough token to its canonical place.
type alias struct {
	name  string
	place Place
}

// Ordered so that substring scans are deterministic.
var boroughAliases = []alias{
	{"manhattan", Place{City: "New York", State: "New York"}},
	{"new york city", Place{City: "New York", State: "New York"}},
	{"nyc", Place{City: "New York", State: "New York"}},
	{"brooklyn", Place{City: "Brooklyn", State: "New York"}},
	{"queens", Place{City: "Queens", State: "New York"}},
	{"bronx", Place{City: "Bronx", State: "New York"}},
	{"staten island", Place{City: "Staten Island", State: "New York"}},
}

// stateTokens maps full lowercase state names and 2-letter abbreviations
// to the canonical full name, for all 50 states plus the federal district.
var stateTokens = map[string]string{
	"alabama": "Alabama", "al": "Alabama",
	"alaska": "Alaska", "ak": "Alaska",
	"arizona": "Arizona", "az": "Arizona",
	"arkansas": "Arkansas", "ar": "Arkansas",
	"california": "California", "ca": "California",
	"colorado": "Colorado", "co": "Colorado",
	"connecticut": "Connecticut", "ct": "Connecticut",
	"delaware": "Delaware", "de": "Delaware",
	"florida": "Florida", "fl": "Florida",
	"georgia": "Georgia", "ga": "Georgia",
	"hawaii": "Hawaii", "hi": "Hawaii",
	"idaho": "Idaho", "id": "Idaho",
	"illinois": "Illinois", "il": "Illinois",
	"indiana": "Indiana", "in": "Indiana",
	"iowa": "Iowa", "ia": "Iowa",
	"kansas": "Kansas", "ks": "Kansas",
	"kentucky": "Kentucky", "ky": "Kentucky",
	"louisiana": "Louisiana", "la": "Louisiana",
	"maine": "Maine", "me": "Maine",
	"maryland": "Maryland", "md": "Maryland",
	"massachusetts": "Massachusetts", "ma": "Massachusetts",
	"michigan": "Michigan", "mi": "Michigan",
	"minnesota": "Minnesota", "mn": "Minnesota",
	"mississippi": "Mississippi", "ms": "Mississippi",
	"missouri": "Missouri", "mo": "Missouri",
	"montana": "Montana", "mt": "Montana",
	"nebraska": "Nebraska", "ne": "Nebraska",
	"nevada": "Nevada", "nv": "Nevada",
	"new hampshire": "New Hampshire", "nh": "New Hampshire",
	"new jersey": "New Jersey", "nj": "New Jersey",
	"new mexico": "New Mexico", "nm": "New Mexico",
	"new york": "New York", "ny": "New York",
	"north carolina": "North Carolina", "nc": "North Carolina",
	"north dakota": "North Dakota", "nd": "North Dakota",
	"ohio": "Ohio", "oh": "Ohio",
	"oklahoma": "Oklahoma", "ok": "Oklahoma",
	"oregon": "Oregon", "or": "Oregon",
	"pennsylvania": "Pennsylvania", "pa": "Pennsylvania",
	"rhode island": "Rhode Island", "ri": "Rhode Island",
	"south carolina": "South Carolina", "sc": "South Carolina",
	"south dakota": "South Dakota", "sd": "South Dakota",
	"tennessee": "Tennessee", "tn": "Tennessee",
	"texas": "Texas", "tx": "Texas",
	"utah": "Utah", "ut": "Utah",
	"vermont": "Vermont", "vt": "Vermont",
	"virginia": "Virginia", "va": "Virginia",
	"washington": "Washington", "wa": "Washington",
	"west virginia": "West Virginia", "wv": "West Virginia",
	"wisconsin": "Wisconsin", "wi": "Wisconsin",
	"wyoming": "Wyoming", "wy": "Wyoming",
	"district of columbia": "District of Columbia", "dc": "District of Columbia",
}

// majorCities is a curated allow-list used only as a disambiguation hint,
// not an exhaustive gazetteer.
var majorCities = map[string]struct{}{
	"boise": {}, "los angeles": {}, "san francisco": {}, "san diego": {},
	"sacramento": {}, "denver": {}, "phoenix": {}, "tucson": {},
	"atlanta": {}, "miami": {}, "orlando": {}, "tampa": {},
	"chicago": {}, "indianapolis": {}, "detroit": {}, "columbus": {},
	"cleveland": {}, "cincinnati": {}, "boston": {}, "baltimore": {},
	"philadelphia": {}, "pittsburgh": {}, "nashville": {}, "memphis": {},
	"new orleans": {}, "houston": {}, "dallas": {}, "austin": {},
	"san antonio": {}, "seattle": {}, "portland": {}, "las vegas": {},
	"salt lake city": {}, "milwaukee": {}, "minneapolis": {},
	"st louis": {}, "kansas city": {}, "omaha": {}, "des moines": {},
	"oklahoma city": {}, "albuquerque": {}, "charlotte": {},
	"raleigh": {}, "richmond": {}, "washington dc": {},
}

// multiWordCities are ambiguous multi-word city names checked by prefix
// when a trailing location candidate is classified.
var multiWordCities = []string{
	"los angeles", "san francisco", "san diego", "san antonio", "san jose",
	"new orleans", "las vegas", "salt lake city", "des moines",
	"oklahoma city", "kansas city", "st louis", "virginia beach",
	"colorado springs", "fort worth", "el paso", "long beach",
	"washington dc",
}

// fallbackBoroughs are scanned anywhere in the query as a last resort.
var fallbackBoroughs = []string{"manhattan", "brooklyn", "queens", "bronx"}

// Gazetteer provides read-only geography lookups. Construct once at
// startup and share freely; all methods are safe for concurrent use.
type Gazetteer struct {
	aliases          []alias
	states           map[string]string
	majorCities      map[string]struct{}
	multiWordCities  []string
	fallbackBoroughs []string
}

// NewGazetteer builds the gazetteer from the built-in tables.
func NewGazetteer() *Gazetteer {
	return &Gazetteer{
		aliases:          boroughAliases,
		states:           stateTokens,
		majorCities:      majorCities,
		multiWordCities:  multiWordCities,
		fallbackBoroughs: fallbackBoroughs,
	}
}

// ResolveAlias resolves a borough/metro alias token to its canonical place.
func (g *Gazetteer) ResolveAlias(token string) (Place, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	for _, a := range g.aliases {
		if a.name == t {
			return a.place, true
		}
	}
	return Place{}, false
}

// AliasIn scans query for any alias substring and returns the first
// match in table order.
func (g *Gazetteer) AliasIn(query string) (Place, bool) {
	lower := strings.ToLower(query)
	for _, a := range g.aliases {
		if strings.Contains(lower, a.name) {
			return a.place, true
		}
	}
	return Place{}, false
}

// StateFromToken resolves a full state name or 2-letter abbreviation to
// the canonical full state name.
func (g *Gazetteer) StateFromToken(token string) (string, bool) {
	name, ok := g.states[strings.ToLower(strings.TrimSpace(token))]
	return name, ok
}

// IsMajorCity reports whether token is on the curated major-city list.
func (g *Gazetteer) IsMajorCity(token string) bool {
	_, ok := g.majorCities[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

// MultiWordCityPrefix returns the known multi-word city that place
// starts with, if any.
func (g *Gazetteer) MultiWordCityPrefix(place string) (string, bool) {
	lower := strings.ToLower(place)
	for _, city := range g.multiWordCities {
		if strings.HasPrefix(lower, city) {
			return city, true
		}
	}
	return "", false
}

// BoroughIn scans query for a very specific NYC borough name anywhere in
// the text and returns the first match.
func (g *Gazetteer) BoroughIn(query string) (string, bool) {
	lower := strings.ToLower(query)
	for _, b := range g.fallbackBoroughs {
		if strings.Contains(lower, b) {
			return b, true
		}
	}
	return "", false
}

// ProperCase capitalizes the first letter of every whitespace-delimited
// word.
func ProperCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
