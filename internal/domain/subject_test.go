package domain

import (
	"errors"
	"testing"
)

func TestNewSubject(t *testing.T) {
	subject, err := NewSubject("read atomic habits")
	if err != nil {
		t.Fatalf("NewSubject() error = %v", err)
	}
	if subject.ID == "" {
		t.Error("NewSubject() generated empty id")
	}
	if subject.Status != SubjectTodo {
		t.Errorf("Status = %v, want %v", subject.Status, SubjectTodo)
	}

	if _, err := NewSubject(""); !errors.Is(err, ErrEmptySubjectTitle) {
		t.Errorf("NewSubject(\"\") error = %v, want ErrEmptySubjectTitle", err)
	}
}

func TestSubject_Lifecycle(t *testing.T) {
	subject, err := NewSubject("ship the release")
	if err != nil {
		t.Fatalf("NewSubject() error = %v", err)
	}

	if subject.IsActive() {
		t.Error("IsActive() = true for a todo subject")
	}

	subject.Start()
	if !subject.IsActive() {
		t.Error("IsActive() = false after Start()")
	}
	if subject.Status != SubjectDoing {
		t.Errorf("Status after Start() = %v, want %v", subject.Status, SubjectDoing)
	}

	subject.Complete()
	if subject.IsActive() {
		t.Error("IsActive() = true after Complete()")
	}
	if subject.Status != SubjectDone {
		t.Errorf("Status after Complete() = %v, want %v", subject.Status, SubjectDone)
	}
	if subject.CompletedAt == nil {
		t.Error("CompletedAt not set by Complete()")
	}
}
