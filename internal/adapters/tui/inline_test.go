package tui

import (
	"testing"
	"time"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{25 * time.Minute, "25:00"},
		{90 * time.Second, "01:30"},
		{59 * time.Second, "00:59"},
		{time.Hour + 5*time.Minute + 3*time.Second, "1:05:03"},
		{0, "00:00"},
	}

	for _, tt := range tests {
		if got := formatRemaining(tt.in); got != tt.want {
			t.Errorf("formatRemaining(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
