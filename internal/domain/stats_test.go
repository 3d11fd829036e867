package domain

import (
	"testing"
	"time"
)

func TestComputeStats(t *testing.T) {
	// A Tuesday; the week runs Monday 2024-03-04 through Sunday 2024-03-10.
	now := time.Date(2024, time.March, 5, 18, 0, 0, 0, time.Local)

	history := []CompletedSession{
		{EndedAt: now.Add(-2 * time.Hour), Duration: 25 * time.Minute, DistractionCount: 2},
		{EndedAt: now.Add(-1 * time.Hour), Duration: 50 * time.Minute},
		{EndedAt: now.AddDate(0, 0, -1), Duration: 25 * time.Minute, DistractionCount: 1}, // Monday, same week
		{EndedAt: now.AddDate(0, 0, -7), Duration: 30 * time.Minute},                      // previous week
	}

	stats := ComputeStats(history, now)

	if stats.TotalSessions != 4 {
		t.Errorf("TotalSessions = %d, want 4", stats.TotalSessions)
	}
	if stats.TotalFocusTime != 130*time.Minute {
		t.Errorf("TotalFocusTime = %v, want 130m", stats.TotalFocusTime)
	}
	if stats.TodaySessions != 2 || stats.TodayFocusTime != 75*time.Minute {
		t.Errorf("today = %d sessions / %v, want 2 / 75m", stats.TodaySessions, stats.TodayFocusTime)
	}
	if stats.ThisWeekSessions != 3 || stats.ThisWeekFocusTime != 100*time.Minute {
		t.Errorf("this week = %d sessions / %v, want 3 / 100m", stats.ThisWeekSessions, stats.ThisWeekFocusTime)
	}
	if stats.AverageDuration != 130*time.Minute/4 {
		t.Errorf("AverageDuration = %v, want %v", stats.AverageDuration, 130*time.Minute/4)
	}
	if stats.TotalDistractions != 3 {
		t.Errorf("TotalDistractions = %d, want 3", stats.TotalDistractions)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())

	if stats.AverageDuration != 0 {
		t.Errorf("AverageDuration on empty history = %v, want 0", stats.AverageDuration)
	}
	if stats.TotalSessions != 0 {
		t.Errorf("TotalSessions = %d, want 0", stats.TotalSessions)
	}
}

func TestAppendEvent_Window(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.Local)

	log := []Event{
		NewEvent(EventHabit, "h1", 1, now.AddDate(0, 0, -120)),
		NewEvent(EventTask, "t1", 1, now.AddDate(0, 0, -30)),
	}

	log = AppendEvent(log, NewEvent(EventFocus, "", 25, now), now)

	if len(log) != 2 {
		t.Fatalf("log length = %d, want 2 (stale entry pruned)", len(log))
	}
	for _, e := range log {
		if e.Kind == EventHabit {
			t.Error("entry older than 90 days should have been pruned")
		}
	}
}
