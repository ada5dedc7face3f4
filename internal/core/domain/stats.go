package domain

const (
	// TrendDays is how many calendar-recent entries feed the dashboard charts.
	TrendDays = 14
	// HighlightCount is how many recent reflections the dashboard shows.
	HighlightCount = 3
)

type DashboardStats struct {
	TotalEntries      int            `json:"total_entries"`
	AverageMood       float64        `json:"average_mood"`
	AverageScreenTime float64        `json:"average_screen_time"`
	MoodTrend         []TrendPoint   `json:"mood_trend"`
	RecentHighlights  []JournalEntry `json:"recent_highlights"`
}

type TrendPoint struct {
	Date       string  `json:"date"`
	MoodScore  int     `json:"mood_score"`
	ScreenTime float64 `json:"screen_time"`
}

// BuildDashboardStats assembles the dashboard projection from a collection
// snapshot: one-decimal averages, a calendar-ordered trend slice and the
// most recent reflections.
func BuildDashboardStats(entries []JournalEntry) *DashboardStats {
	trendEntries := RecentChronological(entries, TrendDays)
	trend := make([]TrendPoint, 0, len(trendEntries))
	for _, e := range trendEntries {
		trend = append(trend, TrendPoint{
			Date:       e.Date,
			MoodScore:  e.MoodScore,
			ScreenTime: e.ScreenTime,
		})
	}

	return &DashboardStats{
		TotalEntries:      len(entries),
		AverageMood:       AverageMood(entries),
		AverageScreenTime: AverageScreenTime(entries),
		MoodTrend:         trend,
		RecentHighlights:  RecentByCreation(entries, HighlightCount),
	}
}
