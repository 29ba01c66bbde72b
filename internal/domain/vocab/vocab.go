// Package vocab is the static domain term knowledge base: venue
// synonyms, boosted phrases, exclusion phrases for non-venue business
// categories, and phrases that positively indicate a live-music venue.
// All values are fixed at build time and never mutated.
package vocab

// BoostedTerm pairs a phrase with its relevance boost weight.
type BoostedTerm struct {
	Phrase string
	Boost  float64
}

var venueSynonyms = []string{
	"music venue",
	"venue",
	"venues",
	"live music",
	"club",
	"clubs",
	"bar",
	"bars",
	"lounge",
	"lounges",
	"performance space",
	"concert hall",
	"theater",
	"theatre",
	"amphitheater",
	"amphitheatre",
	"nightclub",
	"jazz club",
	"blues club",
	"rock club",
	"tavern",
	"pub",
	"saloon",
	"cabaret",
	"speakeasy",
	"auditorium",
	"ballroom",
	"pavilion",
	"arena",
	"civic center",
	"performing arts center",
	"house of blues",
	"fillmore",
}

var boostedTerms = []BoostedTerm{
	{Phrase: "music venue", Boost: 3.0},
	{Phrase: "concert hall", Boost: 2.8},
	{Phrase: "live music", Boost: 2.5},
	{Phrase: "venue", Boost: 2.0},
	{Phrase: "performing arts center", Boost: 2.0},
	{Phrase: "theater", Boost: 1.8},
	{Phrase: "theatre", Boost: 1.8},
	{Phrase: "amphitheater", Boost: 1.8},
	{Phrase: "club", Boost: 1.5},
	{Phrase: "nightclub", Boost: 1.5},
	{Phrase: "jazz club", Boost: 1.5},
	{Phrase: "blues club", Boost: 1.5},
	{Phrase: "bar", Boost: 1.2},
	{Phrase: "lounge", Boost: 1.2},
	{Phrase: "tavern", Boost: 1.0},
	{Phrase: "pub", Boost: 1.0},
	{Phrase: "saloon", Boost: 1.0},
}

// Business categories that surface for venue-ish text but are not venues.
var exclusionPhrases = []string{
	// Wedding/event services
	"wedding band agency",
	"wedding planner",
	"wedding photographer",
	"wedding dj",
	"event planner",
	"party planner",

	// Equipment/services
	"dj rental",
	"equipment rental",
	"sound equipment",
	"lighting rental",
	"stage rental",
	"audio visual rental",

	// Non-venue entertainment
	"karaoke only",
	"karaoke machine rental",
	"mobile dj",
	"dj service",
	"band for hire",
	"musicians for hire",
	"tribute band",
	"cover band",

	// Religious/community
	"church service",
	"worship service",
	"sunday school",
	"bible study",

	// Educational institutions
	"elementary school",
	"middle school",
	"high school music department",
	"music lessons",
	"music teacher",
	"private lessons",
	"music tutor",

	// Corporate/office
	"corporate events only",
	"conference room",
	"meeting space",
	"office space",
	"coworking space",

	// Recording/production, not live venues
	"recording studio only",
	"production studio",
	"rehearsal space only",
	"practice room",

	// Other non-venues
	"music store",
	"instrument store",
	"guitar shop",
	"record store",
	"music school administration",
	"ticket broker",
	"booking agency",
	"talent agency",
	"management company",
	"record label",
	"music publisher",

	// Academic positions
	"university president",
	"college president",
	"dean of",
	"professor of music",
	"faculty member",
	"adjunct professor",
	"music department chair",
	"conservatory director",
}

// Phrases that positively indicate a live-music venue.
var venueIndicatorPhrases = []string{
	"live music",
	"live entertainment",
	"concerts",
	"shows",
	"performances",
	"stage",
	"tickets",
	"box office",
	"upcoming events",
	"calendar",
	"tonight",
	"doors open",
	"showtime",
	"admission",
	"cover charge",
	"happy hour",
	"open mic",
	"music calendar",
	"event space",
	"capacity",
	"standing room",
	"seated venue",
	"general admission",
	"vip section",
	"backstage",
	"green room",
	"sound system",
	"lighting rig",
	"dance floor",
}

// Lexicon provides read-only accessors over the curated term lists.
// Construct once at startup; callers must not mutate the returned slices.
type Lexicon struct{}

// NewLexicon creates the shared lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{}
}

// VenueSynonyms returns venue-type synonym phrases in curated order.
func (l *Lexicon) VenueSynonyms() []string { return venueSynonyms }

// BoostedTerms returns phrase/boost pairs for relevance shaping.
func (l *Lexicon) BoostedTerms() []BoostedTerm { return boostedTerms }

// ExclusionPhrases returns phrases identifying non-venue businesses.
func (l *Lexicon) ExclusionPhrases() []string { return exclusionPhrases }

// VenueIndicatorPhrases returns phrases that positively signal a venue.
func (l *Lexicon) VenueIndicatorPhrases() []string { return venueIndicatorPhrases }
