// Package ports defines the interfaces (driven and driving ports)
// for FocusKit following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"

	"github.com/focuskit/focuskit/internal/domain"
)

// Fixed keys for engine state persisted through the key/value store.
const (
	KeySettings       = "focus_settings"
	KeyHistory        = "focus_history"
	KeyStreak         = "focus_streak"
	KeyDailyGoal      = "focus_daily_goal"
	KeyPomodorosToday = "focus_pomodoros_today"
	KeyEvents         = "focus_events"
	KeyActive         = "focus_active"
)

// KVStore is the engine's persistence port: JSON-serialized values under
// fixed keys. The engine treats writes as fire-and-forget; a failed write
// never rolls back in-memory state.
// This is a driven port (implemented by adapters).
type KVStore interface {
	// Load reads the value stored under key into dest. The boolean is
	// false when the key has never been written.
	Load(ctx context.Context, key string, dest any) (bool, error)

	// Save serializes value and stores it under key, replacing any
	// previous value.
	Save(ctx context.Context, key string, value any) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// SubjectRepository defines the interface for subject persistence.
// This is a driven port (implemented by adapters).
type SubjectRepository interface {
	// Save persists a subject to storage.
	Save(ctx context.Context, subject *domain.Subject) error

	// FindByID retrieves a subject by its unique identifier.
	FindByID(ctx context.Context, id string) (*domain.Subject, error)

	// FindAll retrieves all subjects, optionally filtered by status.
	FindAll(ctx context.Context, status *domain.SubjectStatus) ([]*domain.Subject, error)

	// FindMatching returns subjects whose titles fuzzy-match the query,
	// best matches first.
	FindMatching(ctx context.Context, query string) ([]*domain.Subject, error)

	// Update modifies an existing subject.
	Update(ctx context.Context, subject *domain.Subject) error

	// Delete removes a subject from storage.
	Delete(ctx context.Context, id string) error
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// KV provides access to the engine's key/value state.
	KV() KVStore

	// Subjects provides access to subject operations.
	Subjects() SubjectRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
