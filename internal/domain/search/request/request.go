// Package request holds the validated inbound venue search request.
package request

import "fmt"

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 1024
	DefaultLimit   = 100
	MaxLimit       = 500
)

// Request is a validated venue search request. Verification status and
// exclude IDs are post-filters the query DSL cannot express.
type Request struct {
	query              string
	limit              int
	verificationStatus string
	excludeIDs         map[string]struct{}
}

// New validates and normalizes search parameters.
// Defaults: limit=100, clamped to MaxLimit.
func New(query string, limit int, verificationStatus string, excludeIDs []string) (Request, error) {
	if query == "" {
		return Request{}, fmt.Errorf("query is required")
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var excluded map[string]struct{}
	if len(excludeIDs) > 0 {
		excluded = make(map[string]struct{}, len(excludeIDs))
		for _, id := range excludeIDs {
			excluded[id] = struct{}{}
		}
	}

	return Request{
		query:              query,
		limit:              limit,
		verificationStatus: verificationStatus,
		excludeIDs:         excluded,
	}, nil
}

// Query returns the raw search query text.
func (r *Request) Query() string { return r.query }

// Limit returns the maximum results to return.
func (r *Request) Limit() int { return r.limit }

// VerificationStatus returns the required verification status, empty
// when unfiltered.
func (r *Request) VerificationStatus() string { return r.verificationStatus }

// Excludes reports whether the given contact identifier is excluded.
func (r *Request) Excludes(id string) bool {
	_, ok := r.excludeIDs[id]
	return ok
}
