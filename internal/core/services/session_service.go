package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
)

var (
	ErrUnknownView         = errors.New("unknown view")
	ErrInsightInFlight     = errors.New("insight request already in flight")
	ErrInsufficientEntries = errors.New("not enough entries for insights")
)

const deleteConfirmationText = "Are you sure you want to delete this reflection?"

type View string

const (
	ViewDashboard View = "dashboard"
	ViewJournal   View = "journal"
	ViewNewEntry  View = "new_entry"
	ViewInsights  View = "insights"
)

// MinInsightEntries is how many entries must exist before insights unlock.
const MinInsightEntries = 3

// SessionService is the view/intent router: it holds which screen is
// active, dispatches user intents to the journal and insight services, and
// enforces the cooperative single-flight discipline around insight
// refreshes. Insights are transient session state and are never persisted.
type SessionService struct {
	journal  *JournalService
	insights *InsightService
	confirm  domain.Confirmer
	log      zerolog.Logger

	mu         sync.Mutex
	activeView View
	current    *domain.AIInsight
	loading    bool
}

func NewSessionService(journal *JournalService, insights *InsightService, confirm domain.Confirmer, log zerolog.Logger) *SessionService {
	return &SessionService{
		journal:    journal,
		insights:   insights,
		confirm:    confirm,
		log:        log,
		activeView: ViewDashboard,
	}
}

func (s *SessionService) ActiveView() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeView
}

func (s *SessionService) SwitchView(v View) error {
	switch v {
	case ViewDashboard, ViewJournal, ViewNewEntry, ViewInsights:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownView, v)
	}

	s.mu.Lock()
	s.activeView = v
	s.mu.Unlock()
	return nil
}

// SubmitEntry adds a reflection and, on success, lands the session on the
// journal view. A persist failure still counts as success for navigation:
// the entry lives in memory for the rest of the session.
func (s *SessionService) SubmitEntry(ctx context.Context, input CreateEntryInput) (*domain.JournalEntry, error) {
	entry, err := s.journal.Add(ctx, input)
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		return nil, err
	}

	s.mu.Lock()
	s.activeView = ViewJournal
	s.mu.Unlock()

	return entry, err
}

// DeleteEntry removes a reflection after the injected confirmer approves.
// A declined confirmation never reaches the store.
func (s *SessionService) DeleteEntry(ctx context.Context, id string) (bool, error) {
	if !s.confirm.Confirm(deleteConfirmationText) {
		s.log.Debug().Str("entry_id", id).Msg("deletion declined")
		return false, nil
	}
	return s.journal.Remove(ctx, id)
}

// RefreshInsights issues one analysis request. A second refresh while one
// is in flight is rejected so the view layer can disable its trigger; the
// flag clears once the request resolves, with a real insight or the
// fallback.
func (s *SessionService) RefreshInsights(ctx context.Context) (*domain.AIInsight, error) {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, ErrInsightInFlight
	}
	if s.journal.Count() < MinInsightEntries {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: need at least %d", ErrInsufficientEntries, MinInsightEntries)
	}
	s.loading = true
	s.mu.Unlock()

	insight := s.insights.Request(ctx, s.journal.All())

	s.mu.Lock()
	s.current = insight
	s.loading = false
	s.mu.Unlock()

	return insight, nil
}

// CurrentInsight reports the last fetched insight (nil before the first
// refresh) and whether a request is currently in flight.
func (s *SessionService) CurrentInsight() (*domain.AIInsight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.loading
}
