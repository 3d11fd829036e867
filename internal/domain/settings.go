package domain

import "time"

// TimerSettings configures the focus engine's timer behavior. Settings are
// persisted on every change; a reload must round-trip them through JSON.
type TimerSettings struct {
	FocusDuration      time.Duration `json:"focus_duration"`
	ShortBreakDuration time.Duration `json:"short_break_duration"`
	LongBreakDuration  time.Duration `json:"long_break_duration"`
	SessionsUntilLong  int           `json:"sessions_until_long"`
	AutoStartBreaks    bool          `json:"auto_start_breaks"`
	AutoStartFocus     bool          `json:"auto_start_focus"`
	Sound              bool          `json:"sound"`
}

// DefaultTimerSettings returns the classic pomodoro cadence.
func DefaultTimerSettings() TimerSettings {
	return TimerSettings{
		FocusDuration:      25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  15 * time.Minute,
		SessionsUntilLong:  4,
		Sound:              true,
	}
}

// BreakDuration returns the configured duration for a break of the given kind.
func (s TimerSettings) BreakDuration(long bool) time.Duration {
	if long {
		return s.LongBreakDuration
	}
	return s.ShortBreakDuration
}
