package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jswiatek/kapital/internal/cache"
	"github.com/jswiatek/kapital/internal/modules/analytics"
)

// RefreshJob recomputes the full analytics overview in the background and
// primes the result cache, so dashboard requests inside the TTL window are
// served without touching the record store.
type RefreshJob struct {
	service *analytics.Service
	cache   *cache.Cache
	log     zerolog.Logger
}

// NewRefreshJob creates the cache warm-up job.
func NewRefreshJob(service *analytics.Service, c *cache.Cache, log zerolog.Logger) *RefreshJob {
	return &RefreshJob{
		service: service,
		cache:   c,
		log:     log.With().Str("job", "analytics_refresh").Logger(),
	}
}

// Name returns the job name
func (j *RefreshJob) Name() string {
	return "analytics_refresh"
}

// Run recomputes everything from one snapshot and replaces the cached results.
func (j *RefreshJob) Run(ctx context.Context) error {
	start := time.Now()
	overview, err := j.service.Overview(ctx)
	if err != nil {
		return fmt.Errorf("refreshing analytics: %w", err)
	}

	// Parameterized endpoints key their defaults as ":0", matching a
	// request without the query parameter.
	entries := map[string]interface{}{
		analytics.CacheKeyInvestors:                        overview.Investors,
		analytics.CacheKeyStatistics:                       overview.Statistics,
		analytics.CacheKeyConcentration:                    overview.Concentration,
		analytics.CacheKeyVoting:                           overview.Voting,
		analytics.CacheKeyInsights:                         overview.Insights,
		fmt.Sprintf("%s:%g", analytics.CacheKeyRisk, 0.0):      overview.Risk,
		fmt.Sprintf("%s:%g", analytics.CacheKeyCoalition, 0.0): overview.Coalition,
	}
	for key, value := range entries {
		if err := j.cache.Set(key, value); err != nil {
			j.log.Warn().Err(err).Str("key", key).Msg("Failed to cache refreshed result")
		}
	}

	j.log.Info().
		Str("batch_id", overview.BatchID).
		Int("investors", len(overview.Investors)).
		Dur("elapsed", time.Since(start)).
		Msg("Analytics cache refreshed")

	return nil
}
