package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
)

// InsightWindow is how many of the most recent entries (by append order)
// feed a single analysis request.
const InsightWindow = 7

// InsightService turns recent entries into a structured reflection via the
// external completion collaborator. Every failure mode of that collaborator
// is absorbed here: callers always get an insight, the canned fallback in
// the worst case, never an error.
type InsightService struct {
	gen domain.InsightGenerator
	log zerolog.Logger
}

func NewInsightService(gen domain.InsightGenerator, log zerolog.Logger) *InsightService {
	return &InsightService{
		gen: gen,
		log: log,
	}
}

func (s *InsightService) Request(ctx context.Context, entries []domain.JournalEntry) *domain.AIInsight {
	window := entries
	if len(window) > InsightWindow {
		window = window[len(window)-InsightWindow:]
	}

	insight, err := s.gen.Generate(ctx, BuildPrompt(window))
	if err != nil {
		s.log.Warn().Err(err).Msg("insight generation failed, serving fallback")
		return domain.FallbackInsight()
	}

	if err := insight.Validate(); err != nil {
		s.log.Warn().Err(err).Msg("insight response malformed, serving fallback")
		return domain.FallbackInsight()
	}

	return insight
}

// BuildPrompt renders the analysis request for the generation service, one
// block per entry in the window.
func BuildPrompt(entries []domain.JournalEntry) string {
	var b strings.Builder

	b.WriteString("Analyze the following habit journal entries from the last 7 days and provide:\n")
	b.WriteString("1. A short, supportive summary of the user's current mental state and habits.\n")
	b.WriteString("2. Three actionable suggestions for improvement based on their 'things to improve' and 'new learnings'.\n")
	b.WriteString("3. A personalized daily affirmation.\n\nEntries:\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "\nDate: %s\n", e.Date)
		fmt.Fprintf(&b, "Mood Score: %d/10\n", e.MoodScore)
		fmt.Fprintf(&b, "Happy: %s\n", e.HappyReason)
		fmt.Fprintf(&b, "Anger: %s\n", e.AngerReason)
		fmt.Fprintf(&b, "Improvement Focus: %s\n", e.ThingsToImprove)
		fmt.Fprintf(&b, "Screen Time: %gh\n", e.ScreenTime)
		fmt.Fprintf(&b, "Learnings: %s\n", e.NewLearnings)
	}

	return b.String()
}
