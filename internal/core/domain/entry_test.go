package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() *JournalEntry {
	return NewJournalEntry("2024-03-15", "Finished a long run", "", "Sleep earlier", "Learned about sorting stability", 2.5, 8)
}

func TestNewJournalEntry(t *testing.T) {
	e := validEntry()

	assert.NotEmpty(t, e.ID)
	assert.Positive(t, e.CreatedAt)
	assert.Equal(t, "2024-03-15", e.Date)
	assert.Equal(t, 8, e.MoodScore)

	other := validEntry()
	assert.NotEqual(t, e.ID, other.ID, "ids must be unique per entry")
	assert.GreaterOrEqual(t, other.CreatedAt, e.CreatedAt, "timestamps are monotonically non-decreasing")
}

func TestJournalEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *JournalEntry)
		wantErr bool
	}{
		{
			name:   "valid entry",
			mutate: func(e *JournalEntry) {},
		},
		{
			name:    "empty happy reason",
			mutate:  func(e *JournalEntry) { e.HappyReason = "   " },
			wantErr: true,
		},
		{
			name:    "mood score below range",
			mutate:  func(e *JournalEntry) { e.MoodScore = 0 },
			wantErr: true,
		},
		{
			name:    "mood score above range",
			mutate:  func(e *JournalEntry) { e.MoodScore = 11 },
			wantErr: true,
		},
		{
			name:   "mood score boundaries are inclusive",
			mutate: func(e *JournalEntry) { e.MoodScore = 1 },
		},
		{
			name:    "negative screen time",
			mutate:  func(e *JournalEntry) { e.ScreenTime = -0.5 },
			wantErr: true,
		},
		{
			name:   "zero screen time is allowed",
			mutate: func(e *JournalEntry) { e.ScreenTime = 0 },
		},
		{
			name:    "malformed date",
			mutate:  func(e *JournalEntry) { e.Date = "15/03/2024" },
			wantErr: true,
		},
		{
			name:    "empty date",
			mutate:  func(e *JournalEntry) { e.Date = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(e)

			err := e.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidEntry)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
