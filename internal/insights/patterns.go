package insights

import (
	"sort"
	"time"

	"github.com/focuskit/focuskit/internal/domain"
	"github.com/focuskit/focuskit/internal/timeutil"
)

// Minimum event counts before a pattern is reported.
const (
	minPeakHourEvents = 5
	minWeekdayEvents  = 10
)

// Patterns holds the independent heuristics derived from the event log.
type Patterns struct {
	PeakHour     int
	HasPeakHour  bool
	BestWeekday  time.Weekday
	HasBestDay   bool
	HabitStreaks []HabitStreak
}

// HabitStreak is the current consecutive-day run for one habit.
type HabitStreak struct {
	HabitID string
	Days    int
}

// Detect runs all pattern heuristics over the event log. Each heuristic is
// independent; they share nothing but the log itself.
func Detect(events []domain.Event) Patterns {
	p := Patterns{
		HabitStreaks: habitStreaks(events),
	}
	p.PeakHour, p.HasPeakHour = peakHour(events)
	p.BestWeekday, p.HasBestDay = bestWeekday(events)
	return p
}

// peakHour returns the mode of event hours-of-day, reported only past the
// minimum sample size.
func peakHour(events []domain.Event) (int, bool) {
	if len(events) <= minPeakHourEvents {
		return 0, false
	}

	counts := map[int]int{}
	for _, e := range events {
		counts[e.Timestamp.Hour()]++
	}

	best, bestCount := 0, 0
	for hour, count := range counts {
		if count > bestCount || (count == bestCount && hour < best) {
			best, bestCount = hour, count
		}
	}
	return best, true
}

// bestWeekday returns the mode of event weekdays, reported only past the
// minimum sample size.
func bestWeekday(events []domain.Event) (time.Weekday, bool) {
	if len(events) <= minWeekdayEvents {
		return time.Sunday, false
	}

	counts := map[time.Weekday]int{}
	for _, e := range events {
		counts[e.Timestamp.Weekday()]++
	}

	best, bestCount := time.Sunday, 0
	for day, count := range counts {
		if count > bestCount || (count == bestCount && day < best) {
			best, bestCount = day, count
		}
	}
	return best, true
}

// habitStreaks walks each habit's sorted completion dates and counts the
// run of consecutive one-day gaps ending at the most recent completion.
func habitStreaks(events []domain.Event) []HabitStreak {
	dates := map[string]map[string]struct{}{}
	for _, e := range events {
		if e.Kind != domain.EventHabit || e.RefID == "" {
			continue
		}
		if dates[e.RefID] == nil {
			dates[e.RefID] = map[string]struct{}{}
		}
		dates[e.RefID][timeutil.DateKey(e.Timestamp)] = struct{}{}
	}

	var streaks []HabitStreak
	for habitID, dateSet := range dates {
		keys := make([]string, 0, len(dateSet))
		for key := range dateSet {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		run := 1
		for i := len(keys) - 1; i > 0; i-- {
			if timeutil.DaysBetween(keys[i-1], keys[i]) == 1 {
				run++
			} else {
				break
			}
		}
		streaks = append(streaks, HabitStreak{HabitID: habitID, Days: run})
	}

	sort.Slice(streaks, func(i, j int) bool {
		if streaks[i].Days != streaks[j].Days {
			return streaks[i].Days > streaks[j].Days
		}
		return streaks[i].HabitID < streaks[j].HabitID
	})
	return streaks
}
