package domain

import "time"

// EventKind classifies entries in the activity event log.
type EventKind string

const (
	EventHabit   EventKind = "habit"
	EventTask    EventKind = "task"
	EventWorkout EventKind = "workout"
	EventJournal EventKind = "journal"
	EventSpark   EventKind = "spark"
	EventFocus   EventKind = "focus"
)

// ValidEventKinds lists all supported event kinds.
var ValidEventKinds = []EventKind{
	EventHabit, EventTask, EventWorkout, EventJournal, EventSpark, EventFocus,
}

// Event is one append-only entry in the rolling activity log consumed by
// the insights module.
type Event struct {
	ID        string    `json:"id"`
	Kind      EventKind `json:"kind"`
	RefID     string    `json:"ref_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// NewEvent creates an event with a generated id.
func NewEvent(kind EventKind, refID string, value float64, ts time.Time) Event {
	return Event{
		ID:        generateID(),
		Kind:      kind,
		RefID:     refID,
		Timestamp: ts,
		Value:     value,
	}
}

// EventWindow is the retention window for the activity log.
const EventWindow = 90 * 24 * time.Hour

// AppendEvent appends e and drops entries older than the retention window.
// Filtering on write keeps the log bounded without a separate compaction
// step.
func AppendEvent(log []Event, e Event, now time.Time) []Event {
	cutoff := now.Add(-EventWindow)
	kept := log[:0]
	for _, old := range log {
		if old.Timestamp.After(cutoff) {
			kept = append(kept, old)
		}
	}
	return append(kept, e)
}
