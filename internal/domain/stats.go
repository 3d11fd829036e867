package domain

import (
	"time"

	"github.com/focuskit/focuskit/internal/timeutil"
)

// FocusStats aggregates session history into the derived read model
// exposed to callers. All fields are recomputed from stored data; there is
// no separate commit step.
type FocusStats struct {
	TotalFocusTime    time.Duration
	TotalSessions     int
	TodayFocusTime    time.Duration
	TodaySessions     int
	ThisWeekFocusTime time.Duration
	ThisWeekSessions  int
	AverageDuration   time.Duration
	TotalDistractions int
}

// ComputeStats derives FocusStats from the bounded session history.
func ComputeStats(history []CompletedSession, now time.Time) FocusStats {
	var stats FocusStats

	for _, cs := range history {
		stats.TotalFocusTime += cs.Duration
		stats.TotalSessions++
		stats.TotalDistractions += cs.DistractionCount

		if timeutil.SameDay(cs.EndedAt, now) {
			stats.TodayFocusTime += cs.Duration
			stats.TodaySessions++
		}
		if timeutil.SameWeek(cs.EndedAt, now) {
			stats.ThisWeekFocusTime += cs.Duration
			stats.ThisWeekSessions++
		}
	}

	if stats.TotalSessions > 0 {
		stats.AverageDuration = stats.TotalFocusTime / time.Duration(stats.TotalSessions)
	}

	return stats
}
