package compile

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gigcompass/venuesearch/internal/domain/geo"
	"github.com/gigcompass/venuesearch/internal/domain/location"
	"github.com/gigcompass/venuesearch/internal/domain/search/query"
	"github.com/gigcompass/venuesearch/internal/domain/vocab"
	"github.com/gigcompass/venuesearch/internal/usecase/normalize"
)

func newService() *Service {
	return New(normalize.New(geo.NewGazetteer()), vocab.NewLexicon())
}

func mustClauses(t *testing.T, tier query.Tier) (query.MultiMatch, bool) {
	t.Helper()
	if len(tier.Must) != 1 {
		t.Fatalf("must clauses = %d, want 1", len(tier.Must))
	}
	mm, ok := tier.Must[0].(query.MultiMatch)
	return mm, ok
}

func TestCompileTierCount(t *testing.T) {
	plan := newService().Compile("jazz clubs in austin")
	if got := len(plan.Tiers()); got != query.TierCount {
		t.Fatalf("tiers = %d, want %d", got, query.TierCount)
	}
}

func TestCompileTierOneStrict(t *testing.T) {
	plan := newService().Compile("blue note jazz club")
	mm, ok := mustClauses(t, plan.Tiers()[0])
	if !ok {
		t.Fatalf("tier 1 must clause is %T, want MultiMatch", plan.Tiers()[0].Must[0])
	}
	if mm.Operator != query.OperatorAnd {
		t.Errorf("operator = %q, want AND", mm.Operator)
	}
	if mm.MinimumShouldMatch != "75%" {
		t.Errorf("minimum_should_match = %q, want 75%%", mm.MinimumShouldMatch)
	}
	if mm.Fuzziness != "" {
		t.Errorf("tier 1 fuzziness = %q, want none", mm.Fuzziness)
	}
}

func TestCompileLocationFilters(t *testing.T) {
	plan := newService().Compile("venues in nashville, tennessee")

	if plan.Intent() != location.CityState("Nashville", "Tennessee") {
		t.Fatalf("intent = %+v", plan.Intent())
	}
	filters := plan.Tiers()[0].Filter
	if len(filters) != 2 {
		t.Fatalf("tier 1 filters = %d, want 2", len(filters))
	}
	city, ok := filters[0].(query.Term)
	if !ok || city.Field != "city.keyword" || city.Value != "Nashville" {
		t.Errorf("city filter = %+v", filters[0])
	}
	state, ok := filters[1].(query.Term)
	if !ok || state.Field != "state.keyword" || state.Value != "Tennessee" {
		t.Errorf("state filter = %+v", filters[1])
	}
}

// The canonical New York intent widens the city filter to an OR-group
// over New York and Brooklyn.
func TestCompileNewYorkCityWidening(t *testing.T) {
	plan := newService().Compile("manhattan jazz venues")

	filters := plan.Tiers()[0].Filter
	if len(filters) != 2 {
		t.Fatalf("tier 1 filters = %d, want 2", len(filters))
	}
	group, ok := filters[0].(query.TermsOr)
	if !ok {
		t.Fatalf("city filter is %T, want TermsOr", filters[0])
	}
	if !reflect.DeepEqual(group.Values, []string{"New York", "Brooklyn"}) {
		t.Errorf("city group values = %v", group.Values)
	}
}

func TestCompileBoroughBoosts(t *testing.T) {
	plan := newService().Compile("nyc music venues")

	var boroughs []string
	for _, c := range plan.Tiers()[0].Should {
		if term, ok := c.(query.Term); ok && term.Field == "city.keyword" {
			boroughs = append(boroughs, term.Value)
		}
	}
	want := []string{"Brooklyn", "Queens", "Bronx", "Staten Island"}
	if !reflect.DeepEqual(boroughs, want) {
		t.Errorf("borough boosts = %v, want %v", boroughs, want)
	}

	plain := newService().Compile("venues in chicago")
	for _, c := range plain.Tiers()[0].Should {
		if term, ok := c.(query.Term); ok && term.Field == "city.keyword" {
			t.Errorf("unexpected borough boost %+v outside the NYC metro", term)
		}
	}
}

func TestCompileTierTwoFuzzy(t *testing.T) {
	plan := newService().Compile("blue note jazz club")

	dm, ok := plan.Tiers()[1].Must[0].(query.DisMax)
	if !ok {
		t.Fatalf("tier 2 must clause is %T, want DisMax", plan.Tiers()[1].Must[0])
	}
	if len(dm.Queries) != 2 {
		t.Fatalf("dis_max queries = %d, want 2", len(dm.Queries))
	}
	loose := dm.Queries[0].(query.MultiMatch)
	if loose.Fuzziness != "AUTO:4,7" || loose.MinimumShouldMatch != "50%" {
		t.Errorf("loose arm = %+v", loose)
	}
	prefix := dm.Queries[1].(query.MultiMatch)
	if prefix.Type != query.TypePhrasePrefix {
		t.Errorf("prefix arm type = %q", prefix.Type)
	}
}

// Tier 3 demotes the city filter to a boost and keeps only the state
// filter hard.
func TestCompileTierThreeRelaxesCity(t *testing.T) {
	plan := newService().Compile("venues in nashville, tennessee")
	tier := plan.Tiers()[2]

	if len(tier.Filter) != 1 {
		t.Fatalf("tier 3 filters = %d, want 1", len(tier.Filter))
	}
	if state := tier.Filter[0].(query.Term); state.Field != "state.keyword" {
		t.Errorf("tier 3 filter = %+v, want state only", state)
	}

	var cityBoosted bool
	for _, c := range tier.Should {
		if term, ok := c.(query.Term); ok &&
			term.Field == "city.keyword" && term.Value == "Nashville" && term.Boost == 2.0 {
			cityBoosted = true
		}
	}
	if !cityBoosted {
		t.Error("tier 3 should clauses carry no city boost")
	}

	mm := tier.Must[0].(query.MultiMatch)
	if mm.Type != query.TypeMostFields || mm.MinimumShouldMatch != "35%" {
		t.Errorf("tier 3 text clause = %+v", mm)
	}
	if !strings.Contains(mm.Query, "music venue") {
		t.Errorf("tier 3 text %q lacks synonym widening", mm.Query)
	}
}

func TestCompileTierFiveUnfiltered(t *testing.T) {
	plan := newService().Compile("venues in nashville, tennessee")
	tier := plan.Tiers()[4]

	if len(tier.Must) != 0 || len(tier.Filter) != 0 {
		t.Fatalf("tier 5 has %d must and %d filter clauses, want none",
			len(tier.Must), len(tier.Filter))
	}
	if tier.MinimumShouldMatch != 1 {
		t.Errorf("tier 5 minimum_should_match = %d, want 1", tier.MinimumShouldMatch)
	}

	last := tier.Should[len(tier.Should)-1]
	if _, ok := last.(query.MatchAll); !ok {
		t.Errorf("tier 5 last should clause is %T, want MatchAll", last)
	}
}

func TestCompileExclusionsOnEveryTier(t *testing.T) {
	plan := newService().Compile("live music boston")
	for i, tier := range plan.Tiers() {
		if len(tier.MustNot) == 0 {
			t.Errorf("tier %d has no exclusion clauses", i+1)
		}
	}
}

// Location phrasing is stripped from the matched text so filters do the
// location work.
func TestCompileCleanQueryText(t *testing.T) {
	plan := newService().Compile("jazz clubs in austin")
	mm, _ := mustClauses(t, plan.Tiers()[0])
	if mm.Query != "jazz clubs" {
		t.Errorf("cleaned text = %q, want %q", mm.Query, "jazz clubs")
	}
}

// A query that is pure location falls back to the generic venue phrase.
func TestCompileGenericFallbackText(t *testing.T) {
	plan := newService().Compile("in idaho")
	mm, _ := mustClauses(t, plan.Tiers()[0])
	if mm.Query != genericVenueQuery {
		t.Errorf("cleaned text = %q, want generic phrase", mm.Query)
	}
}

func TestCompileDeterministic(t *testing.T) {
	s := newService()
	a := s.Compile("manhattan jazz venues")
	b := s.Compile("manhattan jazz venues")
	if !reflect.DeepEqual(a, b) {
		t.Error("compiling the same query twice produced different plans")
	}
}
