package cmd

import (
	"testing"
	"time"
)

func TestRootCmd_Structure(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}
	if rootCmd.Use != "focuskit" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "focuskit")
	}

	// Every documented command must be registered.
	want := []string{
		"add", "list", "done", "delete",
		"start", "pause", "resume", "stop", "cancel", "extend",
		"break", "skip", "distract", "note",
		"status", "stats", "insights", "log", "goal", "config", "mcp",
	}
	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered on root", name)
		}
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"db", "json", "inline"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root should have --%s flag", name)
		}
	}
}

func TestStartCmd_Flags(t *testing.T) {
	flag := startCmd.Flags().Lookup("duration")
	if flag == nil {
		t.Fatal("startCmd should have --duration flag")
	}
	if flag.Shorthand != "d" {
		t.Errorf("duration flag shorthand = %q, want %q", flag.Shorthand, "d")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{25 * time.Minute, "25:00"},
		{90*time.Minute + 15*time.Second, "90:15"},
	}

	for _, tt := range tests {
		if got := formatClock(tt.d); got != tt.want {
			t.Errorf("formatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{20 * time.Second, "less than a minute"},
		{time.Minute, "1 minute"},
		{25 * time.Minute, "25 minutes"},
	}

	for _, tt := range tests {
		if got := formatMinutes(tt.d); got != tt.want {
			t.Errorf("formatMinutes(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID() = %q, want %q", got, "01234567")
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID() = %q, want %q", got, "abc")
	}
}
