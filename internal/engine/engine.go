// Package engine implements the focus-session state machine: the lifecycle
// controller, the wall-clock-delta timer loop, and the derived statistics
// exposed to callers. In-memory state is the source of truth; persistence
// through the key/value store is a fire-and-forget side effect of each
// transition.
package engine

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/focuskit/focuskit/internal/domain"
	"github.com/focuskit/focuskit/internal/ports"
	"github.com/focuskit/focuskit/internal/timeutil"
)

// TickInterval is the timer loop period. Remaining time is derived from
// real timestamps rather than a fixed decrement, so the loop stays correct
// across delayed ticks.
const TickInterval = 100 * time.Millisecond

// pomodoroCount is the persisted daily pomodoro counter.
type pomodoroCount struct {
	Count int    `json:"count"`
	Date  string `json:"date"`
}

func (p *pomodoroCount) rollover(todayKey string) {
	if p.Date != todayKey {
		p.Date = todayKey
		p.Count = 0
	}
}

// activeState is the persisted snapshot of an in-flight session or break,
// written on every transition so a new process can pick up where the last
// one left off.
type activeState struct {
	Session        *domain.FocusSession `json:"session,omitempty"`
	Mode           domain.Mode          `json:"mode"`
	BreakRemaining time.Duration        `json:"break_remaining,omitempty"`
	BreakLong      bool                 `json:"break_long,omitempty"`
	SavedAt        time.Time            `json:"saved_at"`
}

// Engine is the focus-session state machine. At most one session is active
// at a time; all transitions go through its guarded methods.
type Engine struct {
	store    ports.KVStore
	subjects ports.SubjectRepository
	notifier ports.Notifier
	git      ports.GitDetector
	logger   *slog.Logger
	now      func() time.Time

	mu             sync.Mutex
	settings       domain.TimerSettings
	mode           domain.Mode
	active         *domain.FocusSession
	breakRemaining time.Duration
	breakLong      bool
	lastTick       time.Time

	history   []domain.CompletedSession
	streak    domain.FocusStreak
	goal      domain.DailyGoal
	pomodoros pomodoroCount
	events    []domain.Event
}

// New creates an engine over the given storage. Notifier and git detector
// are optional.
func New(storage ports.Storage, notifier ports.Notifier, git ports.GitDetector) *Engine {
	return &Engine{
		store:    storage.KV(),
		subjects: storage.Subjects(),
		notifier: notifier,
		git:      git,
		logger:   slog.Default(),
		now:      time.Now,
		settings: domain.DefaultTimerSettings(),
		mode:     domain.ModeIdle,
	}
}

// SetClock overrides the engine's clock source. Intended for tests.
func (e *Engine) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
}

// SetLogger overrides the engine's logger.
func (e *Engine) SetLogger(logger *slog.Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logger = logger
}

// Load restores persisted settings, history, streak, daily goal, pomodoro
// counter, and the event log. Stale daily records are rolled over to today.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := timeutil.DateKey(e.now())

	if _, err := e.store.Load(ctx, ports.KeySettings, &e.settings); err != nil {
		return err
	}
	if _, err := e.store.Load(ctx, ports.KeyHistory, &e.history); err != nil {
		return err
	}
	if _, err := e.store.Load(ctx, ports.KeyStreak, &e.streak); err != nil {
		return err
	}
	if _, err := e.store.Load(ctx, ports.KeyDailyGoal, &e.goal); err != nil {
		return err
	}
	if _, err := e.store.Load(ctx, ports.KeyPomodorosToday, &e.pomodoros); err != nil {
		return err
	}
	if _, err := e.store.Load(ctx, ports.KeyEvents, &e.events); err != nil {
		return err
	}

	e.goal.Rollover(today)
	e.pomodoros.rollover(today)

	var act activeState
	ok, err := e.store.Load(ctx, ports.KeyActive, &act)
	if err != nil {
		return err
	}
	if ok {
		e.restoreActiveLocked(act)
	}

	return nil
}

// restoreActiveLocked resumes a session or break saved by a previous
// process. A focus session whose deadline has already passed is finalized
// as completed at that deadline; an expired break falls back to idle.
func (e *Engine) restoreActiveLocked(act activeState) {
	now := e.now()

	switch act.Mode {
	case domain.ModeFocusing:
		if act.Session == nil {
			return
		}
		e.active = act.Session
		e.mode = domain.ModeFocusing
		e.lastTick = now
		if e.active.Remaining(now) == 0 {
			deadline := e.active.StartedAt.Add(e.active.TargetDuration + e.active.TotalPaused)
			if deadline.After(now) {
				deadline = now
			}
			e.endLocked(deadline, domain.EndCompleted)
		}

	case domain.ModePaused:
		if act.Session == nil {
			return
		}
		e.active = act.Session
		e.mode = domain.ModePaused
		e.lastTick = now

	case domain.ModeBreak, domain.ModeLongBreak:
		remaining := act.BreakRemaining - now.Sub(act.SavedAt)
		if remaining <= 0 {
			e.persistActiveLocked()
			return
		}
		e.breakRemaining = remaining
		e.breakLong = act.BreakLong
		e.mode = act.Mode
		e.lastTick = now
	}
}

// Settings returns the current timer settings.
func (e *Engine) Settings() domain.TimerSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// UpdateSettings replaces the timer settings and persists them. The sound
// toggle is forwarded to the notifier.
func (e *Engine) UpdateSettings(s domain.TimerSettings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = s
	if e.notifier != nil {
		e.notifier.SetSound(s.Sound)
	}
	e.persist(ports.KeySettings, e.settings)
}

// SetDailyGoalTarget updates the daily target and persists it.
func (e *Engine) SetDailyGoalTarget(minutes int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.goal.Rollover(timeutil.DateKey(e.now()))
	e.goal.TargetMinutes = minutes
	e.persist(ports.KeyDailyGoal, e.goal)
}

// StartSession begins a focus session against an optional subject. The
// duration defaults to the configured focus duration. If the subject is
// still "todo" it is marked "doing". Returns domain.ErrSessionActive when a
// session is already running or paused.
func (e *Engine) StartSession(ctx context.Context, subject *domain.Subject, duration time.Duration) (*domain.FocusSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil {
		return nil, domain.ErrSessionActive
	}
	// Starting during a break implicitly skips it.
	if e.mode == domain.ModeBreak || e.mode == domain.ModeLongBreak {
		e.breakRemaining = 0
		e.mode = domain.ModeIdle
	}

	if duration <= 0 {
		duration = e.settings.FocusDuration
	}

	now := e.now()
	session := domain.NewFocusSession(subject, duration, now)

	if subject != nil && subject.Status == domain.SubjectTodo {
		subject.Start()
		if err := e.subjects.Update(ctx, subject); err != nil {
			e.logger.Warn("failed to update subject status", "subject", subject.ID, "error", err)
		}
	}

	if e.git != nil && e.git.IsAvailable() {
		if info, err := e.git.Detect(ctx, ""); err == nil && info != nil {
			session.SetGitContext(info.Branch, info.Commit)
		}
	}

	e.active = session
	e.mode = domain.ModeFocusing
	e.lastTick = now
	e.persistActiveLocked()

	if e.notifier != nil {
		e.notifier.SessionStarted(session)
	}

	return session, nil
}

// PauseSession pauses the active session. No-op unless focusing.
func (e *Engine) PauseSession() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != domain.ModeFocusing || e.active == nil {
		return domain.ErrNoActiveSession
	}

	e.active.Pause(e.now())
	e.mode = domain.ModePaused
	e.persistActiveLocked()

	if e.notifier != nil {
		e.notifier.SessionPaused(e.active)
	}
	return nil
}

// ResumeSession resumes a paused session. No-op unless paused.
func (e *Engine) ResumeSession() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != domain.ModePaused || e.active == nil {
		return domain.ErrNoActiveSession
	}

	now := e.now()
	e.active.Resume(now)
	e.mode = domain.ModeFocusing
	e.lastTick = now
	e.persistActiveLocked()
	return nil
}

// EndSession ends the active session with the given reason. Idempotent
// with respect to "no active session".
func (e *Engine) EndSession(reason domain.EndReason) (*domain.CompletedSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return nil, domain.ErrNoActiveSession
	}

	record := e.endLocked(e.now(), reason)
	return &record, nil
}

// CancelSession ends the active session with reason cancelled.
func (e *Engine) CancelSession() error {
	_, err := e.EndSession(domain.EndCancelled)
	return err
}

// ExtendSession grows the active session's target by the given number of
// minutes. Legal only while focusing.
func (e *Engine) ExtendSession(minutes int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != domain.ModeFocusing || e.active == nil {
		return domain.ErrNoActiveSession
	}
	if minutes <= 0 {
		return domain.ErrInvalidDuration
	}

	e.active.Extend(time.Duration(minutes) * time.Minute)
	e.persistActiveLocked()
	return nil
}

// StartBreak begins a break interval. Legal only from idle.
func (e *Engine) StartBreak(long bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil {
		return domain.ErrSessionActive
	}
	if e.mode != domain.ModeIdle {
		return domain.ErrSessionActive
	}

	e.startBreakLocked(long)
	e.persistActiveLocked()
	return nil
}

func (e *Engine) startBreakLocked(long bool) {
	e.breakRemaining = e.settings.BreakDuration(long)
	e.breakLong = long
	e.lastTick = e.now()
	if long {
		e.mode = domain.ModeLongBreak
	} else {
		e.mode = domain.ModeBreak
	}
}

// SkipBreak zeroes the break timer and forces idle.
func (e *Engine) SkipBreak() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != domain.ModeBreak && e.mode != domain.ModeLongBreak {
		return domain.ErrNotOnBreak
	}

	e.breakRemaining = 0
	e.mode = domain.ModeIdle
	e.persistActiveLocked()
	return nil
}

// RecordDistraction increments the active session's distraction counter.
func (e *Engine) RecordDistraction() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return domain.ErrNoActiveSession
	}
	e.active.RecordDistraction()
	e.persistActiveLocked()
	return nil
}

// AddNote appends a note to the active session.
func (e *Engine) AddNote(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return domain.ErrNoActiveSession
	}
	e.active.AddNote(text)
	e.persistActiveLocked()
	return nil
}

// RecordEvent appends an entry to the rolling activity log and persists it.
func (e *Engine) RecordEvent(kind domain.EventKind, refID string, value float64) domain.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recordEventLocked(kind, refID, value)
}

func (e *Engine) recordEventLocked(kind domain.EventKind, refID string, value float64) domain.Event {
	now := e.now()
	event := domain.NewEvent(kind, refID, value, now)
	e.events = domain.AppendEvent(e.events, event, now)
	e.persist(ports.KeyEvents, e.events)
	return event
}

// Events returns a copy of the activity log.
func (e *Engine) Events() []domain.Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.Event, len(e.events))
	copy(out, e.events)
	return out
}

// History returns a copy of the bounded session history.
func (e *Engine) History() []domain.CompletedSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.CompletedSession, len(e.history))
	copy(out, e.history)
	return out
}

// Tick advances the timer loop to now. While focusing, a session whose
// remaining time reaches zero is auto-ended with reason completed; a break
// reaching zero returns to idle (or straight into the next focus session
// when auto-start-focus is enabled).
func (e *Engine) Tick(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delta := now.Sub(e.lastTick)
	e.lastTick = now
	if delta < 0 {
		delta = 0
	}

	switch e.mode {
	case domain.ModeFocusing:
		if e.active != nil && e.active.Remaining(now) == 0 {
			e.endLocked(now, domain.EndCompleted)
		}

	case domain.ModeBreak, domain.ModeLongBreak:
		e.breakRemaining -= delta
		if e.breakRemaining <= 0 {
			e.breakRemaining = 0
			long := e.breakLong
			e.mode = domain.ModeIdle
			if e.notifier != nil {
				e.notifier.BreakOver(long)
			}
			if e.settings.AutoStartFocus {
				session := domain.NewFocusSession(nil, e.settings.FocusDuration, now)
				e.active = session
				e.mode = domain.ModeFocusing
				if e.notifier != nil {
					e.notifier.SessionStarted(session)
				}
			}
			e.persistActiveLocked()
		}
	}
}

// Run drives the timer loop until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			e.Tick(t)
		}
	}
}

// endLocked finalizes the active session. Caller holds the mutex.
func (e *Engine) endLocked(now time.Time, reason domain.EndReason) domain.CompletedSession {
	record := e.active.Finish(now, reason)
	e.active = nil
	e.mode = domain.ModeIdle

	today := timeutil.DateKey(now)
	minutes := int(math.Round(record.Duration.Minutes()))

	e.history = domain.AppendHistory(e.history, record)
	e.goal.Add(minutes, today)

	if reason == domain.EndCompleted {
		e.streak.Record(today)
		e.pomodoros.rollover(today)
		e.pomodoros.Count++
		e.recordEventLocked(domain.EventFocus, record.SubjectID, float64(minutes))

		if e.notifier != nil {
			e.notifier.SessionCompleted(record)
		}
		if e.settings.AutoStartBreaks {
			long := e.settings.SessionsUntilLong > 0 && e.pomodoros.Count%e.settings.SessionsUntilLong == 0
			e.startBreakLocked(long)
		}
	}

	e.persistActiveLocked()
	e.persist(ports.KeyHistory, e.history)
	e.persist(ports.KeyStreak, e.streak)
	e.persist(ports.KeyDailyGoal, e.goal)
	e.persist(ports.KeyPomodorosToday, e.pomodoros)

	return record
}

// persist is the fire-and-forget write path. Failures are logged and never
// roll back in-memory state.
func (e *Engine) persist(key string, value any) {
	if err := e.store.Save(context.Background(), key, value); err != nil {
		e.logger.Warn("failed to persist engine state", "key", key, "error", err)
	}
}

// persistActiveLocked saves the in-flight session or break, or clears the
// key when the engine is idle. Caller holds the mutex.
func (e *Engine) persistActiveLocked() {
	if e.mode == domain.ModeIdle {
		if err := e.store.Delete(context.Background(), ports.KeyActive); err != nil {
			e.logger.Warn("failed to clear active session state", "error", err)
		}
		return
	}

	e.persist(ports.KeyActive, activeState{
		Session:        e.active,
		Mode:           e.mode,
		BreakRemaining: e.breakRemaining,
		BreakLong:      e.breakLong,
		SavedAt:        e.now(),
	})
}
