package domain

import "time"

// Mode identifies which branch of the timer loop is active.
type Mode string

const (
	ModeIdle      Mode = "idle"
	ModeFocusing  Mode = "focusing"
	ModePaused    Mode = "paused"
	ModeBreak     Mode = "break"
	ModeLongBreak Mode = "long_break"
)

// Label returns a human-readable label for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeFocusing:
		return "Focusing"
	case ModePaused:
		return "Paused"
	case ModeBreak:
		return "Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// EndReason records why a focus session ended.
type EndReason string

const (
	EndCompleted EndReason = "completed"
	EndCancelled EndReason = "cancelled"

	// Reserved for host-environment signals (e.g. OS suspend).
	// No code path produces these today.
	EndInterrupted EndReason = "interrupted"
	EndTimeout     EndReason = "timeout"
)

// FocusSession is the single in-progress timer instance. At most one
// exists at a time; the engine enforces this.
type FocusSession struct {
	ID               string
	SubjectID        string
	SubjectTitle     string
	StartedAt        time.Time
	PausedAt         *time.Time
	TotalPaused      time.Duration
	TargetDuration   time.Duration
	DistractionCount int
	Notes            []string
	GitBranch        string
	GitCommit        string
}

// NewFocusSession creates a session against an optional subject snapshot.
func NewFocusSession(subject *Subject, target time.Duration, now time.Time) *FocusSession {
	s := &FocusSession{
		ID:             generateID(),
		StartedAt:      now,
		TargetDuration: target,
	}
	if subject != nil {
		s.SubjectID = subject.ID
		s.SubjectTitle = subject.Title
	}
	return s
}

// Pause records the pause timestamp. No-op if already paused.
func (s *FocusSession) Pause(now time.Time) {
	if s.PausedAt != nil {
		return
	}
	t := now
	s.PausedAt = &t
}

// Resume folds the elapsed pause interval into TotalPaused and clears the
// pause marker. No-op if not paused.
func (s *FocusSession) Resume(now time.Time) {
	if s.PausedAt == nil {
		return
	}
	s.TotalPaused += now.Sub(*s.PausedAt)
	s.PausedAt = nil
}

// Extend grows the planned session length. TargetDuration only grows.
func (s *FocusSession) Extend(by time.Duration) {
	if by <= 0 {
		return
	}
	s.TargetDuration += by
}

// RecordDistraction increments the distraction counter.
func (s *FocusSession) RecordDistraction() {
	s.DistractionCount++
}

// AddNote appends a free-text annotation.
func (s *FocusSession) AddNote(text string) {
	if text == "" {
		return
	}
	s.Notes = append(s.Notes, text)
}

// SetGitContext stores git information for the session.
func (s *FocusSession) SetGitContext(branch, commit string) {
	s.GitBranch = branch
	s.GitCommit = commit
}

// Elapsed returns effective focused time: wall time since start minus all
// paused time, including the currently open pause interval.
func (s *FocusSession) Elapsed(now time.Time) time.Duration {
	paused := s.TotalPaused
	if s.PausedAt != nil {
		paused += now.Sub(*s.PausedAt)
	}
	elapsed := now.Sub(s.StartedAt) - paused
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Remaining returns time left against the target, floored at zero.
func (s *FocusSession) Remaining(now time.Time) time.Duration {
	remaining := s.TargetDuration - s.Elapsed(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Progress returns the completion fraction, clamped to [0, 1].
func (s *FocusSession) Progress(now time.Time) float64 {
	if s.TargetDuration <= 0 {
		return 0
	}
	p := float64(s.Elapsed(now)) / float64(s.TargetDuration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Finish converts the active session into its immutable historical record.
// An open pause interval is closed as of now.
func (s *FocusSession) Finish(now time.Time, reason EndReason) CompletedSession {
	s.Resume(now)
	return CompletedSession{
		ID:               s.ID,
		SubjectID:        s.SubjectID,
		SubjectTitle:     s.SubjectTitle,
		StartedAt:        s.StartedAt,
		EndedAt:          now,
		Duration:         now.Sub(s.StartedAt) - s.TotalPaused,
		PausedTime:       s.TotalPaused,
		DistractionCount: s.DistractionCount,
		EndReason:        reason,
		Notes:            s.Notes,
		GitBranch:        s.GitBranch,
		GitCommit:        s.GitCommit,
	}
}

// CompletedSession is an immutable historical record, created exactly once
// when a session ends.
type CompletedSession struct {
	ID               string        `json:"id"`
	SubjectID        string        `json:"subject_id,omitempty"`
	SubjectTitle     string        `json:"subject_title,omitempty"`
	StartedAt        time.Time     `json:"started_at"`
	EndedAt          time.Time     `json:"ended_at"`
	Duration         time.Duration `json:"duration"`
	PausedTime       time.Duration `json:"paused_time"`
	DistractionCount int           `json:"distraction_count"`
	EndReason        EndReason     `json:"end_reason"`
	Notes            []string      `json:"notes,omitempty"`
	GitBranch        string        `json:"git_branch,omitempty"`
	GitCommit        string        `json:"git_commit,omitempty"`
}

// HistoryLimit bounds the persisted session history.
const HistoryLimit = 100

// AppendHistory appends a completed session, dropping the oldest entries
// beyond the retention cap.
func AppendHistory(history []CompletedSession, cs CompletedSession) []CompletedSession {
	history = append(history, cs)
	if len(history) > HistoryLimit {
		history = history[len(history)-HistoryLimit:]
	}
	return history
}
