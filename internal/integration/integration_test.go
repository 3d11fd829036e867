package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/focuskit/focuskit/internal/adapters/storage"
	"github.com/focuskit/focuskit/internal/domain"
	"github.com/focuskit/focuskit/internal/engine"
	"github.com/focuskit/focuskit/internal/ports"
)

// setupTestStorage creates a temporary database for integration tests
func setupTestStorage(t *testing.T) ports.Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := storage.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func newEngine(t *testing.T, store ports.Storage, clock func() time.Time) *engine.Engine {
	t.Helper()

	eng := engine.New(store, nil, nil)
	eng.SetClock(clock)
	if err := eng.Load(context.Background()); err != nil {
		t.Fatalf("failed to load engine: %v", err)
	}
	return eng
}

// TestFullSessionLifecycle walks a session from start through pause, resume,
// and completion against real file-backed storage.
func TestFullSessionLifecycle(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	eng := newEngine(t, store, clock)

	subject, err := domain.NewSubject("write integration tests")
	if err != nil {
		t.Fatalf("failed to create subject: %v", err)
	}
	if err := store.Subjects().Save(ctx, subject); err != nil {
		t.Fatalf("failed to save subject: %v", err)
	}

	// 1. Start a session against the subject
	session, err := eng.StartSession(ctx, subject, 25*time.Minute)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	if session.SubjectID != subject.ID {
		t.Errorf("expected session subject %s, got %s", subject.ID, session.SubjectID)
	}

	updated, err := store.Subjects().FindByID(ctx, subject.ID)
	if err != nil {
		t.Fatalf("failed to reload subject: %v", err)
	}
	if updated.Status != domain.SubjectDoing {
		t.Errorf("expected subject status doing, got %v", updated.Status)
	}

	// 2. Pause, wait, resume
	now = now.Add(10 * time.Minute)
	if err := eng.PauseSession(); err != nil {
		t.Fatalf("failed to pause session: %v", err)
	}

	now = now.Add(5 * time.Minute)
	if err := eng.ResumeSession(); err != nil {
		t.Fatalf("failed to resume session: %v", err)
	}

	// 3. Run out the clock; the tick loop completes the session
	now = now.Add(15 * time.Minute)
	eng.Tick(now)

	snap := eng.Snapshot()
	if snap.Mode != domain.ModeIdle {
		t.Fatalf("expected idle after completion, got %v", snap.Mode)
	}
	if snap.Stats.TotalSessions != 1 {
		t.Errorf("expected 1 completed session, got %d", snap.Stats.TotalSessions)
	}
	if snap.Streak.CurrentStreak != 1 {
		t.Errorf("expected streak 1, got %d", snap.Streak.CurrentStreak)
	}

	history := eng.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(history))
	}
	record := history[0]
	if record.Duration != 25*time.Minute {
		t.Errorf("expected 25m duration, got %v", record.Duration)
	}
	if record.PausedTime != 5*time.Minute {
		t.Errorf("expected 5m paused, got %v", record.PausedTime)
	}
	if record.EndReason != domain.EndCompleted {
		t.Errorf("expected end reason completed, got %v", record.EndReason)
	}
}

// TestSessionSurvivesProcessRestart starts a session with one engine and
// picks it up with a second one over the same database, as separate CLI
// invocations do.
func TestSessionSurvivesProcessRestart(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	first := newEngine(t, store, clock)
	if _, err := first.StartSession(ctx, nil, 25*time.Minute); err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	// A new process 10 minutes later sees the same session mid-flight.
	now = now.Add(10 * time.Minute)
	second := newEngine(t, store, clock)

	snap := second.Snapshot()
	if snap.Mode != domain.ModeFocusing {
		t.Fatalf("expected restored session to be focusing, got %v", snap.Mode)
	}
	if snap.Remaining != 15*time.Minute {
		t.Errorf("expected 15m remaining, got %v", snap.Remaining)
	}

	if err := second.PauseSession(); err != nil {
		t.Fatalf("failed to pause restored session: %v", err)
	}

	// A third process sees it paused and can finish it.
	third := newEngine(t, store, clock)
	if got := third.Snapshot().Mode; got != domain.ModePaused {
		t.Fatalf("expected restored session to be paused, got %v", got)
	}

	record, err := third.EndSession(domain.EndCompleted)
	if err != nil {
		t.Fatalf("failed to end restored session: %v", err)
	}
	if record.Duration != 10*time.Minute {
		t.Errorf("expected 10m duration, got %v", record.Duration)
	}

	// Once finished, nothing is restored anymore.
	fourth := newEngine(t, store, clock)
	if got := fourth.Snapshot().Mode; got != domain.ModeIdle {
		t.Errorf("expected idle after completion, got %v", got)
	}
	if got := len(fourth.History()); got != 1 {
		t.Errorf("expected 1 history record, got %d", got)
	}
}

// TestExpiredSessionFinalizedOnLoad covers a session whose deadline passed
// while no process was running: the next load completes it at the deadline.
func TestExpiredSessionFinalizedOnLoad(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	first := newEngine(t, store, clock)
	if _, err := first.StartSession(ctx, nil, 25*time.Minute); err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	// Come back an hour later.
	now = now.Add(time.Hour)
	second := newEngine(t, store, clock)

	snap := second.Snapshot()
	if snap.Mode != domain.ModeIdle {
		t.Fatalf("expected idle after expired session, got %v", snap.Mode)
	}

	history := second.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(history))
	}
	if history[0].EndReason != domain.EndCompleted {
		t.Errorf("expected end reason completed, got %v", history[0].EndReason)
	}
	if history[0].Duration != 25*time.Minute {
		t.Errorf("expected duration capped at target, got %v", history[0].Duration)
	}
}
