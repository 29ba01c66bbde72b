package venue

import "github.com/gigcompass/venuesearch/internal/domain/location"

// suggest derives follow-up hints from how the fallback resolved. It is
// a pure function of the terminal tier, the post-filter result count,
// and the location intent the plan was compiled for.
func suggest(tierUsed, count int, intent location.Intent) []string {
	var hints []string

	if tierUsed > 2 && count < 5 {
		if intent.HasCity() {
			hints = append(hints, "Try searching for the entire state")
		}
		hints = append(hints, `Try using broader terms like "venue" or "live music"`)
		hints = append(hints, "Remove specific requirements and search more generally")
	}

	if tierUsed == 1 && count > 100 {
		hints = append(hints, "Add more specific terms to narrow results")
		if intent.Kind() == location.KindState {
			hints = append(hints, "Try adding a city name for more targeted results")
		}
	}

	return hints
}
