package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidInsight = errors.New("insight response does not match expected shape")

// AIInsight is the structured reflection produced from recent entries.
// It is transient view state and is never persisted.
type AIInsight struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
	Affirmation string   `json:"affirmation"`
}

// Validate checks that every required field of the schema contract is
// present. The suggestion count is deliberately not constrained: the
// service asks for three but renders whatever comes back.
func (i *AIInsight) Validate() error {
	if i.Summary == "" {
		return fmt.Errorf("%w: missing summary", ErrInvalidInsight)
	}
	if i.Suggestions == nil {
		return fmt.Errorf("%w: missing suggestions", ErrInvalidInsight)
	}
	if i.Affirmation == "" {
		return fmt.Errorf("%w: missing affirmation", ErrInvalidInsight)
	}
	return nil
}

// Fallback content returned whenever the generation service is unreachable
// or answers with an unusable payload. These strings are part of the
// observable contract and must not drift.
const (
	FallbackSummary     = "I'm having trouble analyzing your entries right now, but keep up the great work of journaling!"
	FallbackAffirmation = "You are making progress every single day."
)

func FallbackInsight() *AIInsight {
	return &AIInsight{
		Summary: FallbackSummary,
		Suggestions: []string{
			"Stay consistent with your daily log",
			"Reflect on your small wins",
			"Ensure you get enough rest",
		},
		Affirmation: FallbackAffirmation,
	}
}
