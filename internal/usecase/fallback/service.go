// Package fallback walks a tier plan strictest first and returns the
// first tier that produces hits.
package fallback

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/gigcompass/venuesearch/internal/domain/search/query"
	"github.com/gigcompass/venuesearch/internal/domain/search/result"
	"github.com/gigcompass/venuesearch/internal/logger"
	"github.com/gigcompass/venuesearch/internal/metrics"
)

// tierMessages explain loosened results to the end user. Tier 1 carries
// no message.
var tierMessages = map[int]string{
	2: "Showing results with flexible matching",
	3: "Expanded search to nearby areas",
	4: "Showing all venues in the state",
	5: "Showing broadest results - try adding a location",
}

// exhaustedMessage is returned when every tier comes back empty.
const exhaustedMessage = "No results found. Try broadening your search terms."

// Service executes tier plans against a backend.
type Service struct {
	backend     Backend
	tierTimeout time.Duration
}

// New creates an executor. tierTimeout bounds each backend round-trip
// separately.
func New(backend Backend, tierTimeout time.Duration) *Service {
	return &Service{backend: backend, tierTimeout: tierTimeout}
}

// Execute runs the plan's tiers in order and returns the outcome of the
// first tier with at least one hit. A tier error is logged and treated
// as empty. Only context cancellation aborts the walk early.
func (s *Service) Execute(ctx context.Context, plan query.Plan, size int) (result.Outcome, error) {
	log := logger.FromContext(ctx)

	for i, tier := range plan.Tiers() {
		if err := ctx.Err(); err != nil {
			return result.Outcome{}, err
		}
		tierNum := i + 1

		hits, err := s.searchTier(ctx, tier, tierNum, size)
		if err != nil {
			log.Warn("tier search failed",
				zap.Int("tier", tierNum),
				zap.Error(err),
			)
			metrics.BackendTierErrorsTotal.WithLabelValues(strconv.Itoa(tierNum)).Inc()
			continue
		}
		if len(hits) == 0 {
			continue
		}

		log.Debug("tier resolved",
			zap.Int("tier", tierNum),
			zap.Int("hits", len(hits)),
		)
		metrics.SearchesTotal.WithLabelValues(strconv.Itoa(tierNum)).Inc()
		return result.NewOutcome(tierNum, hits, tierMessages[tierNum]), nil
	}

	log.Info("all tiers exhausted")
	metrics.SearchesTotal.WithLabelValues("exhausted").Inc()
	return result.NewOutcome(query.TierCount, nil, exhaustedMessage), nil
}

func (s *Service) searchTier(
	ctx context.Context, tier query.Tier, tierNum, size int,
) ([]result.ScoredDocument, error) {
	if s.tierTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.tierTimeout)
		defer cancel()
	}

	start := time.Now()
	hits, err := s.backend.Search(ctx, tier, size)
	metrics.BackendTierDuration.
		WithLabelValues(strconv.Itoa(tierNum)).
		Observe(time.Since(start).Seconds())
	return hits, err
}
