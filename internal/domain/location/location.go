// Package location holds the normalized location interpretation extracted
// from a free-text query.
package location

// Kind discriminates the location interpretation.
type Kind string

// Location interpretation kinds.
const (
	// KindNone means no location reference was recognized.
	KindNone      Kind = "none"
	KindState     Kind = "state"
	KindCityOnly  Kind = "city_only"
	KindCityState Kind = "city_state"
)

// Intent is the canonical city/state interpretation of a query.
// City and state are always proper-cased full names, never abbreviations.
// The zero value behaves as KindNone.
type Intent struct {
	kind  Kind
	city  string
	state string
}

// None creates an intent with no recognized location.
func None() Intent {
	return Intent{kind: KindNone}
}

// State creates a state-level intent.
func State(state string) Intent {
	return Intent{kind: KindState, state: state}
}

// CityOnly creates a city-level intent without a known state.
func CityOnly(city string) Intent {
	return Intent{kind: KindCityOnly, city: city}
}

// CityState creates a fully resolved city+state intent.
func CityState(city, state string) Intent {
	return Intent{kind: KindCityState, city: city, state: state}
}

// Kind returns the interpretation kind.
func (i Intent) Kind() Kind {
	if i.kind == "" {
		return KindNone
	}
	return i.kind
}

// City returns the canonical city name, empty unless HasCity.
func (i Intent) City() string { return i.city }

// State returns the canonical full state name, empty unless HasState.
func (i Intent) State() string { return i.state }

// HasCity reports whether the intent carries a city.
func (i Intent) HasCity() bool {
	return i.Kind() == KindCityOnly || i.Kind() == KindCityState
}

// HasState reports whether the intent carries a state.
func (i Intent) HasState() bool {
	return i.Kind() == KindState || i.Kind() == KindCityState
}
