package domain

import "testing"

func TestFocusStreak_Record(t *testing.T) {
	tests := []struct {
		name        string
		streak      FocusStreak
		today       string
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "first ever session",
			streak:      FocusStreak{},
			today:       "2024-03-05",
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "consecutive day increments",
			streak:      FocusStreak{CurrentStreak: 3, LongestStreak: 3, LastSessionDate: "2024-03-04"},
			today:       "2024-03-05",
			wantCurrent: 4,
			wantLongest: 4,
		},
		{
			name:        "same day is a no-op",
			streak:      FocusStreak{CurrentStreak: 4, LongestStreak: 6, LastSessionDate: "2024-03-05"},
			today:       "2024-03-05",
			wantCurrent: 4,
			wantLongest: 6,
		},
		{
			name:        "gap resets to one",
			streak:      FocusStreak{CurrentStreak: 9, LongestStreak: 9, LastSessionDate: "2024-03-01"},
			today:       "2024-03-05",
			wantCurrent: 1,
			wantLongest: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.streak.Record(tt.today)
			if tt.streak.CurrentStreak != tt.wantCurrent {
				t.Errorf("CurrentStreak = %d, want %d", tt.streak.CurrentStreak, tt.wantCurrent)
			}
			if tt.streak.LongestStreak != tt.wantLongest {
				t.Errorf("LongestStreak = %d, want %d", tt.streak.LongestStreak, tt.wantLongest)
			}
			if tt.streak.LastSessionDate != tt.today {
				t.Errorf("LastSessionDate = %q, want %q", tt.streak.LastSessionDate, tt.today)
			}
		})
	}
}

func TestFocusStreak_LongestNeverDecreases(t *testing.T) {
	streak := FocusStreak{}
	days := []string{
		"2024-03-01", "2024-03-02", "2024-03-03", // streak 3
		"2024-03-10",               // reset
		"2024-03-11", "2024-03-11", // same-day repeat
	}

	longest := 0
	for _, day := range days {
		streak.Record(day)
		if streak.LongestStreak < longest {
			t.Fatalf("LongestStreak decreased from %d to %d on %s", longest, streak.LongestStreak, day)
		}
		longest = streak.LongestStreak
	}

	if streak.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", streak.CurrentStreak)
	}
	if streak.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", streak.LongestStreak)
	}
}

func TestDailyGoal_Rollover(t *testing.T) {
	goal := DailyGoal{
		TargetMinutes:     120,
		CompletedMinutes:  90,
		SessionsCompleted: 4,
		Date:              "2024-03-04",
	}

	goal.Rollover("2024-03-05")

	if goal.CompletedMinutes != 0 || goal.SessionsCompleted != 0 {
		t.Error("Rollover() should zero progress on a new day")
	}
	if goal.TargetMinutes != 120 {
		t.Error("Rollover() should keep the target")
	}
	if goal.Date != "2024-03-05" {
		t.Errorf("Date = %q, want 2024-03-05", goal.Date)
	}
}

func TestDailyGoal_Add(t *testing.T) {
	goal := DailyGoal{TargetMinutes: 100, Date: "2024-03-05"}

	goal.Add(25, "2024-03-05")
	goal.Add(25, "2024-03-05")

	if goal.CompletedMinutes != 50 || goal.SessionsCompleted != 2 {
		t.Errorf("goal = %+v, want 50 minutes over 2 sessions", goal)
	}
	if goal.Progress() != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", goal.Progress())
	}

	// Adding on a later day rolls over first.
	goal.Add(25, "2024-03-06")
	if goal.CompletedMinutes != 25 || goal.SessionsCompleted != 1 {
		t.Errorf("goal after rollover = %+v, want fresh 25 minutes", goal)
	}
}
