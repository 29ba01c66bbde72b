package normalize

import (
	"testing"

	"github.com/gigcompass/venuesearch/internal/domain/geo"
	"github.com/gigcompass/venuesearch/internal/domain/location"
)

func newService() *Service {
	return New(geo.NewGazetteer())
}

func TestNormalizeAliases(t *testing.T) {
	s := newService()

	tests := []struct {
		query string
		city  string
		state string
	}{
		{"manhattan jazz venues", "New York", "New York"},
		{"jazz venues in manhattan", "New York", "New York"},
		{"nyc music venues", "New York", "New York"},
		{"live music new york city", "New York", "New York"},
		{"shows in brooklyn", "Brooklyn", "New York"},
		{"staten island bars", "Staten Island", "New York"},
	}
	for _, tc := range tests {
		intent := s.Normalize(tc.query)
		if intent.Kind() != location.KindCityState {
			t.Errorf("%q: kind = %q, want city_state", tc.query, intent.Kind())
			continue
		}
		if intent.City() != tc.city || intent.State() != tc.state {
			t.Errorf("%q: got %s/%s, want %s/%s",
				tc.query, intent.City(), intent.State(), tc.city, tc.state)
		}
	}
}

func TestNormalizeTrailingNounPhrase(t *testing.T) {
	s := newService()

	tests := []struct {
		query string
		want  location.Intent
	}{
		{"music venue california", location.State("California")},
		{"best venues texas", location.State("Texas")},
		{"jazz clubs north carolina", location.State("North Carolina")},
		{"rock clubs seattle", location.CityOnly("Seattle")},
		{"live music boston", location.CityOnly("Boston")},
		{"blues bars new orleans", location.CityOnly("New Orleans")},
		{"concert halls denver", location.CityOnly("Denver")},
	}
	for _, tc := range tests {
		if got := s.Normalize(tc.query); got != tc.want {
			t.Errorf("%q: got %+v, want %+v", tc.query, got, tc.want)
		}
	}
}

// A trailing token after a known multi-word city is ignored rather than
// promoted to a state.
func TestNormalizeMultiWordCityPrefix(t *testing.T) {
	s := newService()

	got := s.Normalize("venues salt lake city utah")
	want := location.CityOnly("Salt Lake City")
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNormalizeInPlace(t *testing.T) {
	s := newService()

	tests := []struct {
		query string
		want  location.Intent
	}{
		{"venues in idaho", location.State("Idaho")},
		{"live music in chicago", location.CityOnly("Chicago")},
		{"venues in nashville, tennessee", location.CityState("Nashville", "Tennessee")},
		{"venues in springfield, qq", location.CityOnly("Springfield")},
		{"bands playing in portland", location.CityOnly("Portland")},
	}
	for _, tc := range tests {
		if got := s.Normalize(tc.query); got != tc.want {
			t.Errorf("%q: got %+v, want %+v", tc.query, got, tc.want)
		}
	}
}

func TestNormalizeTrailingTokens(t *testing.T) {
	s := newService()

	tests := []struct {
		query string
		want  location.Intent
	}{
		{"karaoke spots tx", location.State("Texas")},
		{"honky tonk tennessee", location.State("Tennessee")},
		{"something rhode island", location.State("Rhode Island")},
		{"dive spots memphis", location.CityOnly("Memphis")},
	}
	for _, tc := range tests {
		if got := s.Normalize(tc.query); got != tc.want {
			t.Errorf("%q: got %+v, want %+v", tc.query, got, tc.want)
		}
	}
}

func TestNormalizeNoLocation(t *testing.T) {
	s := newService()

	for _, q := range []string{"", "coffee", "jazz", "best live sound"} {
		if got := s.Normalize(q); got.Kind() != location.KindNone {
			t.Errorf("%q: kind = %q, want none", q, got.Kind())
		}
	}
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	s := newService()

	if got := s.Normalize("Music Venue CALIFORNIA"); got != location.State("California") {
		t.Errorf("got %+v, want California state intent", got)
	}
}
