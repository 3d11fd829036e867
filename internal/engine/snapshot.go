package engine

import (
	"time"

	"github.com/focuskit/focuskit/internal/domain"
)

// Snapshot is the engine's derived read model: everything a view needs to
// render the current state, recomputed on demand from stored data.
type Snapshot struct {
	Mode           domain.Mode
	Active         *domain.FocusSession
	Remaining      time.Duration
	Elapsed        time.Duration
	Progress       float64
	Stats          domain.FocusStats
	Streak         domain.FocusStreak
	Goal           domain.DailyGoal
	PomodorosToday int
}

// Snapshot returns the current derived state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	snap := Snapshot{
		Mode:           e.mode,
		Stats:          domain.ComputeStats(e.history, now),
		Streak:         e.streak,
		Goal:           e.goal,
		PomodorosToday: e.pomodoros.Count,
	}

	switch e.mode {
	case domain.ModeFocusing, domain.ModePaused:
		if e.active != nil {
			active := *e.active
			snap.Active = &active
			snap.Remaining = e.active.Remaining(now)
			snap.Elapsed = e.active.Elapsed(now)
			snap.Progress = e.active.Progress(now)
		}

	case domain.ModeBreak, domain.ModeLongBreak:
		snap.Remaining = e.breakRemaining
		total := e.settings.BreakDuration(e.breakLong)
		if total > 0 {
			// breakRemaining can exceed the configured total when settings
			// shrink mid-break; clamp so Progress stays within [0, 1].
			snap.Elapsed = total - e.breakRemaining
			if snap.Elapsed < 0 {
				snap.Elapsed = 0
			}
			snap.Progress = float64(snap.Elapsed) / float64(total)
			if snap.Progress > 1 {
				snap.Progress = 1
			}
		}
	}

	return snap
}
