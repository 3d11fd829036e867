package ports

import "github.com/focuskit/focuskit/internal/domain"

// Notifier delivers best-effort cues at session transitions. Failures are
// swallowed by implementations; feedback never affects engine state.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// SessionStarted fires when a focus session begins.
	SessionStarted(session *domain.FocusSession)

	// SessionCompleted fires when a focus session ends with reason completed.
	SessionCompleted(record domain.CompletedSession)

	// SessionPaused fires when the active session is paused.
	SessionPaused(session *domain.FocusSession)

	// BreakOver fires when a break interval reaches zero.
	BreakOver(long bool)

	// SetSound toggles the audio cue accompanying notifications.
	SetSound(enabled bool)
}
