package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEntry  = errors.New("invalid journal entry data")
	ErrEntryNotFound = errors.New("journal entry not found")
)

// DateLayout is the calendar-date format entries are recorded with.
const DateLayout = "2006-01-02"

const (
	MinMoodScore = 1
	MaxMoodScore = 10
)

type JournalEntry struct {
	ID   string `json:"id"`
	Date string `json:"date"`

	HappyReason     string `json:"happy_reason"`
	AngerReason     string `json:"anger_reason,omitempty"`
	ThingsToImprove string `json:"things_to_improve,omitempty"`
	NewLearnings    string `json:"new_learnings,omitempty"`

	ScreenTime float64 `json:"screen_time"`
	MoodScore  int     `json:"mood_score"`

	// CreatedAt is epoch milliseconds, kept for audit only. Display
	// ordering always goes through Date or append order.
	CreatedAt int64 `json:"created_at"`
}

func NewJournalEntry(date, happyReason, angerReason, thingsToImprove, newLearnings string, screenTime float64, moodScore int) *JournalEntry {
	return &JournalEntry{
		ID:              uuid.New().String(),
		Date:            date,
		HappyReason:     happyReason,
		AngerReason:     angerReason,
		ThingsToImprove: thingsToImprove,
		NewLearnings:    newLearnings,
		ScreenTime:      screenTime,
		MoodScore:       moodScore,
		CreatedAt:       time.Now().UTC().UnixMilli(),
	}
}

func (e *JournalEntry) Validate() error {
	if strings.TrimSpace(e.HappyReason) == "" {
		return fmt.Errorf("%w: happy_reason is required", ErrInvalidEntry)
	}
	if e.MoodScore < MinMoodScore || e.MoodScore > MaxMoodScore {
		return fmt.Errorf("%w: mood_score must be between %d and %d", ErrInvalidEntry, MinMoodScore, MaxMoodScore)
	}
	if e.ScreenTime < 0 {
		return fmt.Errorf("%w: screen_time cannot be negative", ErrInvalidEntry)
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", ErrInvalidEntry)
	}
	return nil
}

// day returns the calendar day of the entry. Entries are validated at
// creation, but documents loaded from storage may carry junk dates; those
// sort as the zero time.
func (e *JournalEntry) day() time.Time {
	t, _ := time.Parse(DateLayout, e.Date)
	return t
}
