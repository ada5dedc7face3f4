package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
)

// JournalService owns the authoritative in-memory entry collection and
// keeps the document store consistent with it. Every mutation re-serializes
// the full collection; a failed write is surfaced but never rolls back the
// in-memory state, which stays the source of truth for the session.
type JournalService struct {
	store  domain.DocumentStore
	log    zerolog.Logger
	notify func(context.Context)

	mu      sync.RWMutex
	entries []domain.JournalEntry
}

func NewJournalService(store domain.DocumentStore, log zerolog.Logger) *JournalService {
	return &JournalService{
		store: store,
		log:   log,
	}
}

// OnMutation registers a callback fired after every add or remove, used to
// kick the dashboard summary worker. Optional.
func (s *JournalService) OnMutation(fn func(context.Context)) {
	s.notify = fn
}

type CreateEntryInput struct {
	Date            string
	HappyReason     string
	AngerReason     string
	ThingsToImprove string
	NewLearnings    string
	ScreenTime      float64
	MoodScore       int
}

// Load reads the persisted collection once at startup. A missing or corrupt
// document degrades to an empty collection with a logged warning; startup
// never fails on storage problems.
func (s *JournalService) Load(ctx context.Context) []domain.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil

	raw, err := s.store.Read(ctx)
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		s.log.Debug().Msg("no journal document yet, starting empty")
	case err != nil:
		s.log.Warn().Err(err).Msg("journal document unreadable, starting empty")
	default:
		var loaded []domain.JournalEntry
		if err := json.Unmarshal(raw, &loaded); err != nil {
			s.log.Warn().Err(err).Msg("journal document corrupt, starting empty")
		} else {
			s.entries = loaded
		}
	}

	return s.snapshotLocked()
}

// Add validates, appends and persists a new entry. The created entry is
// returned even when the persist write fails, in which case the error wraps
// domain.ErrPersistence and the in-memory collection keeps the entry.
func (s *JournalService) Add(ctx context.Context, input CreateEntryInput) (*domain.JournalEntry, error) {
	entry := domain.NewJournalEntry(
		input.Date,
		input.HappyReason,
		input.AngerReason,
		input.ThingsToImprove,
		input.NewLearnings,
		input.ScreenTime,
		input.MoodScore,
	)

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries = append(s.entries, *entry)
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	// Notify outside the lock, the callback may hit the network.
	if s.notify != nil {
		s.notify(ctx)
	}

	if err != nil {
		s.log.Warn().Err(err).Str("entry_id", entry.ID).Msg("entry kept in memory, persist failed")
		return entry, err
	}

	return entry, nil
}

// Remove deletes the entry with the given id if present and reports whether
// a removal occurred. An absent id is a no-op, not an error.
func (s *JournalService) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	idx := -1
	for i, e := range s.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false, nil
	}

	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	if s.notify != nil {
		s.notify(ctx)
	}

	if err != nil {
		s.log.Warn().Err(err).Str("entry_id", id).Msg("removal kept in memory, persist failed")
		return true, err
	}

	return true, nil
}

// All returns a copied snapshot of the collection in append order.
func (s *JournalService) All() []domain.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *JournalService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *JournalService) snapshotLocked() []domain.JournalEntry {
	out := make([]domain.JournalEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *JournalService) persistLocked(ctx context.Context) error {
	document, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if err := s.store.Write(ctx, document); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
