package workers

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
)

type staticSource struct {
	entries []domain.JournalEntry
}

func (s *staticSource) All() []domain.JournalEntry { return s.entries }

func TestSummaryWorker_NilCacheIsSafe(t *testing.T) {
	ctx := context.Background()
	w := NewSummaryWorker(&staticSource{}, nil, zerolog.Nop())

	assert.NotPanics(t, func() {
		w.Enqueue(ctx)
		w.Enqueue(ctx)
	})

	stats, ok := w.Cached(ctx)
	assert.Nil(t, stats)
	assert.False(t, ok, "no cache means always a miss, callers recompute live")
}

func TestSummaryWorker_JobChannelNeverBlocks(t *testing.T) {
	w := NewSummaryWorker(&staticSource{}, nil, zerolog.Nop())

	// Without a running Start loop the buffered channel fills; the send must
	// fall through to the default branch instead of blocking.
	for i := 0; i < cap(w.jobs)*2; i++ {
		select {
		case w.jobs <- struct{}{}:
		default:
		}
	}
	assert.Len(t, w.jobs, cap(w.jobs))
}
