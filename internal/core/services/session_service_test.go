package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zenhabit/zenhabit-engine/internal/adapters/docstore"
	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
	"github.com/zenhabit/zenhabit-engine/internal/core/services"
)

// scriptedConfirmer answers a fixed verdict and records prompts.
type scriptedConfirmer struct {
	answer  bool
	prompts []string
}

func (c *scriptedConfirmer) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

// blockingGenerator parks until released, to exercise the in-flight guard.
type blockingGenerator struct {
	started chan struct{}
	release chan struct{}
}

func (g *blockingGenerator) Generate(ctx context.Context, prompt string) (*domain.AIInsight, error) {
	close(g.started)
	<-g.release
	return &domain.AIInsight{Summary: "s", Suggestions: []string{"x"}, Affirmation: "a"}, nil
}

func newSession(t *testing.T, gen domain.InsightGenerator, confirm domain.Confirmer) (*services.SessionService, *services.JournalService) {
	t.Helper()

	journal := services.NewJournalService(docstore.NewMemoryStore(), zerolog.Nop())
	journal.Load(context.Background())

	insights := services.NewInsightService(gen, zerolog.Nop())
	return services.NewSessionService(journal, insights, confirm, zerolog.Nop()), journal
}

func TestSessionService_Views(t *testing.T) {
	session, _ := newSession(t, new(MockGenerator), &scriptedConfirmer{answer: true})

	assert.Equal(t, services.ViewDashboard, session.ActiveView())

	require.NoError(t, session.SwitchView(services.ViewInsights))
	assert.Equal(t, services.ViewInsights, session.ActiveView())

	err := session.SwitchView(services.View("settings"))
	assert.ErrorIs(t, err, services.ErrUnknownView)
	assert.Equal(t, services.ViewInsights, session.ActiveView())
}

func TestSessionService_SubmitEntry(t *testing.T) {
	ctx := context.Background()
	session, journal := newSession(t, new(MockGenerator), &scriptedConfirmer{answer: true})

	entry, err := session.SubmitEntry(ctx, validInput())
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, services.ViewJournal, session.ActiveView(), "a saved reflection lands on the journal view")
	assert.Len(t, journal.All(), 1)

	_, err = session.SubmitEntry(ctx, services.CreateEntryInput{Date: "2024-01-01", MoodScore: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidEntry)
	assert.Len(t, journal.All(), 1)
}

func TestSessionService_DeleteEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("declined confirmation never reaches the store", func(t *testing.T) {
		confirm := &scriptedConfirmer{answer: false}
		session, journal := newSession(t, new(MockGenerator), confirm)

		entry, err := session.SubmitEntry(ctx, validInput())
		require.NoError(t, err)

		deleted, err := session.DeleteEntry(ctx, entry.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Len(t, journal.All(), 1)
		assert.Len(t, confirm.prompts, 1)
	})

	t.Run("accepted confirmation removes the entry", func(t *testing.T) {
		session, journal := newSession(t, new(MockGenerator), &scriptedConfirmer{answer: true})

		entry, err := session.SubmitEntry(ctx, validInput())
		require.NoError(t, err)

		deleted, err := session.DeleteEntry(ctx, entry.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Empty(t, journal.All())
	})
}

func TestSessionService_RefreshInsights(t *testing.T) {
	ctx := context.Background()

	t.Run("locked below three entries", func(t *testing.T) {
		session, _ := newSession(t, new(MockGenerator), &scriptedConfirmer{answer: true})

		_, err := session.SubmitEntry(ctx, validInput())
		require.NoError(t, err)

		insight, err := session.RefreshInsights(ctx)
		assert.Nil(t, insight)
		assert.ErrorIs(t, err, services.ErrInsufficientEntries)
	})

	t.Run("stores the result as current insight", func(t *testing.T) {
		gen := new(MockGenerator)
		session, _ := newSession(t, gen, &scriptedConfirmer{answer: true})

		for i := 0; i < 3; i++ {
			_, err := session.SubmitEntry(ctx, validInput())
			require.NoError(t, err)
		}

		want := &domain.AIInsight{Summary: "s", Suggestions: []string{"x"}, Affirmation: "a"}
		gen.On("Generate", ctx, mock.AnythingOfType("string")).Return(want, nil)

		before, loading := session.CurrentInsight()
		assert.Nil(t, before)
		assert.False(t, loading)

		got, err := session.RefreshInsights(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		current, loading := session.CurrentInsight()
		assert.Equal(t, want, current)
		assert.False(t, loading)
	})

	t.Run("rejects overlapping refreshes", func(t *testing.T) {
		gen := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
		session, _ := newSession(t, gen, &scriptedConfirmer{answer: true})

		for i := 0; i < 3; i++ {
			_, err := session.SubmitEntry(ctx, validInput())
			require.NoError(t, err)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, err := session.RefreshInsights(ctx)
			assert.NoError(t, err)
		}()

		<-gen.started

		_, loading := session.CurrentInsight()
		assert.True(t, loading)

		_, err := session.RefreshInsights(ctx)
		assert.ErrorIs(t, err, services.ErrInsightInFlight)

		close(gen.release)

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("refresh did not finish")
		}

		_, loading = session.CurrentInsight()
		assert.False(t, loading)
	})
}
