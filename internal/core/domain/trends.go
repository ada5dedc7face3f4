package domain

import (
	"math"
	"sort"
)

// Derived views are pure projections over a collection snapshot. They never
// mutate their input and are deterministic for a given input.

// RecentChronological returns the last n entries ordered ascending by
// calendar date, ties broken by original collection order. Used for trend
// charts.
func RecentChronological(entries []JournalEntry, n int) []JournalEntry {
	sorted := sortedByDateAscending(entries)
	if n < len(sorted) {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

// RecentByCreation returns the last n entries by append order, most recent
// first. Used for the recent-highlights summary.
func RecentByCreation(entries []JournalEntry, n int) []JournalEntry {
	start := len(entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]JournalEntry, 0, len(entries)-start)
	for i := len(entries) - 1; i >= start; i-- {
		out = append(out, entries[i])
	}
	return out
}

// AllByDateDescending returns the full collection ordered descending by
// date, ties broken by reverse original order. Used for the journal listing.
func AllByDateDescending(entries []JournalEntry) []JournalEntry {
	reversed := make([]JournalEntry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}
	sort.SliceStable(reversed, func(i, j int) bool {
		return reversed[i].day().After(reversed[j].day())
	})
	return reversed
}

// AverageMood is the arithmetic mean of mood scores rounded to one decimal
// place, 0 for an empty collection.
func AverageMood(entries []JournalEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		sum += float64(e.MoodScore)
	}
	return roundOne(sum / float64(len(entries)))
}

// AverageScreenTime is the arithmetic mean of screen-time hours rounded to
// one decimal place, 0 for an empty collection.
func AverageScreenTime(entries []JournalEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		sum += e.ScreenTime
	}
	return roundOne(sum / float64(len(entries)))
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}

// sortedByDateAscending sorts a copy using calendar semantics, not string
// comparison, so ordering stays correct across month and year boundaries.
func sortedByDateAscending(entries []JournalEntry) []JournalEntry {
	out := make([]JournalEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].day().Before(out[j].day())
	})
	return out
}
