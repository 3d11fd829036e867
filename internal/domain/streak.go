package domain

import "github.com/focuskit/focuskit/internal/timeutil"

// FocusStreak is the running tally of consecutive calendar days with at
// least one completed session.
type FocusStreak struct {
	CurrentStreak   int    `json:"current_streak"`
	LongestStreak   int    `json:"longest_streak"`
	LastSessionDate string `json:"last_session_date,omitempty"`
}

// Record advances the streak for a session completed on todayKey.
// Same-day repeats are no-ops; a completion on the day after the last one
// increments; anything else resets to 1. LongestStreak never decreases.
func (f *FocusStreak) Record(todayKey string) {
	switch {
	case f.LastSessionDate == todayKey:
		return
	case timeutil.IsYesterday(f.LastSessionDate, todayKey):
		f.CurrentStreak++
	default:
		f.CurrentStreak = 1
	}

	f.LastSessionDate = todayKey
	if f.CurrentStreak > f.LongestStreak {
		f.LongestStreak = f.CurrentStreak
	}
}

// DailyGoal tracks per-day focus targets and progress.
type DailyGoal struct {
	TargetMinutes     int    `json:"target_minutes"`
	CompletedMinutes  int    `json:"completed_minutes"`
	SessionsCompleted int    `json:"sessions_completed"`
	Date              string `json:"date"`
}

// Rollover zeroes progress when the stored date-key is not todayKey.
func (g *DailyGoal) Rollover(todayKey string) {
	if g.Date == todayKey {
		return
	}
	g.Date = todayKey
	g.CompletedMinutes = 0
	g.SessionsCompleted = 0
}

// Add records a completed session's contribution to today's goal.
func (g *DailyGoal) Add(minutes int, todayKey string) {
	g.Rollover(todayKey)
	g.CompletedMinutes += minutes
	g.SessionsCompleted++
}

// Progress returns the fraction of the target reached, clamped to [0, 1].
func (g *DailyGoal) Progress() float64 {
	if g.TargetMinutes <= 0 {
		return 0
	}
	p := float64(g.CompletedMinutes) / float64(g.TargetMinutes)
	if p > 1 {
		return 1
	}
	return p
}
