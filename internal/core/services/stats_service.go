package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
	"github.com/zenhabit/zenhabit-engine/internal/core/workers"
)

// StatsService serves the dashboard projection, preferring the summary
// cache maintained by the background worker and recomputing from the live
// collection on a miss.
type StatsService struct {
	journal *JournalService
	worker  *workers.SummaryWorker
	log     zerolog.Logger
}

func NewStatsService(journal *JournalService, worker *workers.SummaryWorker, log zerolog.Logger) *StatsService {
	return &StatsService{
		journal: journal,
		worker:  worker,
		log:     log,
	}
}

func (s *StatsService) Dashboard(ctx context.Context) *domain.DashboardStats {
	if s.worker != nil {
		if cached, ok := s.worker.Cached(ctx); ok {
			return cached
		}
	}
	return domain.BuildDashboardStats(s.journal.All())
}
