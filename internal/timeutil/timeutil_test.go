package timeutil

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.Local)
	if got := DateKey(ts); got != "2024-03-05" {
		t.Errorf("DateKey() = %q, want 2024-03-05", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"wednesday", time.Date(2024, time.March, 6, 15, 0, 0, 0, time.Local), "2024-03-04"},
		{"monday", time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local), "2024-03-04"},
		{"sunday", time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local), "2024-03-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateKey(StartOfWeek(tt.in)); got != tt.want {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSameWeek(t *testing.T) {
	mon := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.Local)
	sun := time.Date(2024, time.March, 10, 21, 0, 0, 0, time.Local)
	nextMon := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.Local)

	if !SameWeek(mon, sun) {
		t.Error("SameWeek(mon, sun) = false, want true")
	}
	if SameWeek(sun, nextMon) {
		t.Error("SameWeek(sun, nextMon) = true, want false")
	}
}

func TestIsYesterday(t *testing.T) {
	tests := []struct {
		prev, today string
		want        bool
	}{
		{"2024-03-04", "2024-03-05", true},
		{"2024-03-03", "2024-03-05", false},
		{"2024-03-05", "2024-03-05", false},
		{"2024-02-29", "2024-03-01", true},
		{"garbage", "2024-03-01", false},
	}

	for _, tt := range tests {
		if got := IsYesterday(tt.prev, tt.today); got != tt.want {
			t.Errorf("IsYesterday(%q, %q) = %v, want %v", tt.prev, tt.today, got, tt.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween("2024-03-01", "2024-03-05"); got != 4 {
		t.Errorf("DaysBetween() = %d, want 4", got)
	}
	if got := DaysBetween("2024-03-05", "2024-03-01"); got != 4 {
		t.Errorf("DaysBetween() reversed = %d, want 4", got)
	}
}
