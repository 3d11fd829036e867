package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if time.Duration(cfg.Timer.FocusDuration) != 25*time.Minute {
		t.Errorf("FocusDuration = %v, want 25m", cfg.Timer.FocusDuration)
	}
	if cfg.Timer.SessionsUntilLong != 4 {
		t.Errorf("SessionsUntilLong = %d, want 4", cfg.Timer.SessionsUntilLong)
	}
	if !cfg.Notifications.Enabled || !cfg.Notifications.Sound {
		t.Error("notifications should default to enabled with sound")
	}
	if cfg.Storage.DataDir != "~/.focuskit" {
		t.Errorf("DataDir = %q, want ~/.focuskit", cfg.Storage.DataDir)
	}
}

func TestDuration_TextRoundTrip(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("25m")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if time.Duration(d) != 25*time.Minute {
		t.Errorf("Duration = %v, want 25m", time.Duration(d))
	}

	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "25m0s" {
		t.Errorf("MarshalText() = %q, want 25m0s", text)
	}
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("not-a-duration")); err == nil {
		t.Error("UnmarshalText() should fail on garbage input")
	}
}

func TestConfig_TimerSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timer.AutoStartBreaks = true
	cfg.Notifications.Sound = false

	settings := cfg.TimerSettings()

	if settings.FocusDuration != 25*time.Minute {
		t.Errorf("FocusDuration = %v, want 25m", settings.FocusDuration)
	}
	if !settings.AutoStartBreaks {
		t.Error("AutoStartBreaks should carry over")
	}
	if settings.Sound {
		t.Error("Sound should follow the notifications config")
	}
}
