// Package notification provides desktop notification and sound cues.
package notification

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/focuskit/focuskit/internal/domain"
	"github.com/focuskit/focuskit/internal/ports"
)

// Notifier implements ports.Notifier using desktop notifications. All cues
// are best-effort: delivery errors are discarded.
type Notifier struct {
	enabled bool
	sound   bool
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier.
func New(enabled, sound bool) *Notifier {
	return &Notifier{enabled: enabled, sound: sound}
}

// SetSound toggles the audio cue.
func (n *Notifier) SetSound(sound bool) {
	n.sound = sound
}

// SessionStarted fires when a focus session begins.
func (n *Notifier) SessionStarted(session *domain.FocusSession) {
	title := "Focus started"
	message := fmt.Sprintf("%s of focused work ahead.", session.TargetDuration)
	if session.SubjectTitle != "" {
		message = fmt.Sprintf("%s on %q.", session.TargetDuration, session.SubjectTitle)
	}
	n.notify(title, message)
}

// SessionCompleted fires when a focus session ends with reason completed.
func (n *Notifier) SessionCompleted(record domain.CompletedSession) {
	n.notify("Focus complete!", fmt.Sprintf("Great job! You focused for %s.", record.Duration.Round(time.Second)))
	n.beep()
}

// SessionPaused fires when the active session is paused.
func (n *Notifier) SessionPaused(session *domain.FocusSession) {
	n.notify("Focus paused", "Timer paused. Resume when you're ready.")
}

// BreakOver fires when a break interval reaches zero.
func (n *Notifier) BreakOver(long bool) {
	kind := "short"
	if long {
		kind = "long"
	}
	n.notify("Break over!", fmt.Sprintf("Your %s break is complete. Ready to focus?", kind))
	n.beep()
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	_ = beeep.Notify(title, message, "")
}

func (n *Notifier) beep() {
	if !n.enabled || !n.sound {
		return
	}
	_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}
