package workers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
)

const (
	summaryCacheKey = "zenhabit:dashboard_summary"
	summaryCacheTTL = 30 * time.Minute
)

type EntrySource interface {
	All() []domain.JournalEntry
}

// SummaryWorker keeps a cached dashboard projection warm in redis. Journal
// mutations enqueue a recompute; the stale cache entry is dropped up front
// so readers fall back to a live computation until the job lands. Entirely
// optional: with no redis client everything degrades to live computation.
type SummaryWorker struct {
	journal EntrySource
	cache   *redis.Client
	log     zerolog.Logger
	jobs    chan struct{}
}

func NewSummaryWorker(journal EntrySource, cache *redis.Client, log zerolog.Logger) *SummaryWorker {
	return &SummaryWorker{
		journal: journal,
		cache:   cache,
		log:     log,
		jobs:    make(chan struct{}, 16),
	}
}

func (w *SummaryWorker) Start(ctx context.Context) {
	go func() {
		w.log.Info().Msg("summary worker started")
		for {
			select {
			case <-w.jobs:
				w.processJob(ctx)
			case <-ctx.Done():
				w.log.Info().Msg("summary worker shutting down")
				return
			}
		}
	}()
}

func (w *SummaryWorker) Enqueue(ctx context.Context) {
	if w.cache == nil {
		return
	}

	if err := w.cache.Del(ctx, summaryCacheKey).Err(); err != nil {
		w.log.Warn().Err(err).Msg("summary cache invalidation failed")
	}

	select {
	case w.jobs <- struct{}{}:
	default:
		// A recompute is already pending; it will pick up the latest state.
	}
}

// Cached returns the warm dashboard projection, or a miss on any cache
// problem so callers recompute from the live collection.
func (w *SummaryWorker) Cached(ctx context.Context) (*domain.DashboardStats, bool) {
	if w.cache == nil {
		return nil, false
	}

	val, err := w.cache.Get(ctx, summaryCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			w.log.Warn().Err(err).Msg("summary cache read failed")
		}
		return nil, false
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		w.log.Warn().Err(err).Msg("summary cache corrupt, dropping key")
		w.cache.Del(ctx, summaryCacheKey)
		return nil, false
	}

	return &stats, true
}

func (w *SummaryWorker) processJob(ctx context.Context) {
	stats := domain.BuildDashboardStats(w.journal.All())

	data, err := json.Marshal(stats)
	if err != nil {
		w.log.Warn().Err(err).Msg("summary marshal failed")
		return
	}

	if err := w.cache.Set(ctx, summaryCacheKey, data, summaryCacheTTL).Err(); err != nil {
		w.log.Warn().Err(err).Msg("summary cache write failed")
	}
}
