// Package domain contains the core business entities for FocusKit.
// These entities represent the fundamental concepts of the focus engine
// and are independent of any external frameworks or infrastructure.
package domain

import (
	"errors"
	"time"
)

// Common domain errors.
var (
	ErrEmptySubjectTitle = errors.New("subject title cannot be empty")
	ErrSubjectNotFound   = errors.New("subject not found")
	ErrInvalidDuration   = errors.New("invalid duration")
	ErrSessionActive     = errors.New("a focus session is already active")
	ErrNoActiveSession   = errors.New("no active focus session")
	ErrNotOnBreak        = errors.New("not currently on a break")
)

// SubjectStatus represents the current state of a subject.
type SubjectStatus string

const (
	SubjectTodo  SubjectStatus = "todo"
	SubjectDoing SubjectStatus = "doing"
	SubjectDone  SubjectStatus = "done"
)

// Subject is an item a focus session can be tracked against. Subjects are
// owned by the caller; the engine only snapshots id and title and may
// request a todo -> doing transition when a session starts.
type Subject struct {
	ID          string
	Title       string
	Status      SubjectStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// NewSubject creates a new subject with the given title.
func NewSubject(title string) (*Subject, error) {
	if title == "" {
		return nil, ErrEmptySubjectTitle
	}

	now := time.Now()
	return &Subject{
		ID:        generateID(),
		Title:     title,
		Status:    SubjectTodo,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Start marks the subject as being worked on.
func (s *Subject) Start() {
	s.Status = SubjectDoing
	s.UpdatedAt = time.Now()
}

// Complete marks the subject as done.
func (s *Subject) Complete() {
	now := time.Now()
	s.Status = SubjectDone
	s.CompletedAt = &now
	s.UpdatedAt = now
}

// IsActive returns true if the subject is currently being worked on.
func (s *Subject) IsActive() bool {
	return s.Status == SubjectDoing
}
