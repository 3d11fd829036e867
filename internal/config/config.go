// Package config provides configuration management for FocusKit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/focuskit/focuskit/internal/domain"
)

// Config holds all configuration for the FocusKit application.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Goal          GoalConfig         `mapstructure:"goal"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
}

// TimerConfig holds focus timer settings.
type TimerConfig struct {
	FocusDuration     Duration `mapstructure:"focus_duration"`
	ShortBreak        Duration `mapstructure:"short_break"`
	LongBreak         Duration `mapstructure:"long_break"`
	SessionsUntilLong int      `mapstructure:"sessions_until_long"`
	AutoStartBreaks   bool     `mapstructure:"auto_start_breaks"`
	AutoStartFocus    bool     `mapstructure:"auto_start_focus"`
}

// GoalConfig holds daily goal settings.
type GoalConfig struct {
	TargetMinutes int `mapstructure:"target_minutes"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			FocusDuration:     Duration(25 * time.Minute),
			ShortBreak:        Duration(5 * time.Minute),
			LongBreak:         Duration(15 * time.Minute),
			SessionsUntilLong: 4,
		},
		Goal: GoalConfig{
			TargetMinutes: 100,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Storage: StorageConfig{
			DataDir: "~/.focuskit",
		},
	}
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.focuskit" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".focuskit")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("timer.focus_duration", cfg.Timer.FocusDuration.String())
	viper.Set("timer.short_break", cfg.Timer.ShortBreak.String())
	viper.Set("timer.long_break", cfg.Timer.LongBreak.String())
	viper.Set("timer.sessions_until_long", cfg.Timer.SessionsUntilLong)
	viper.Set("timer.auto_start_breaks", cfg.Timer.AutoStartBreaks)
	viper.Set("timer.auto_start_focus", cfg.Timer.AutoStartFocus)
	viper.Set("goal.target_minutes", cfg.Goal.TargetMinutes)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".focuskit", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "focuskit.db")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("timer.focus_duration", "25m")
	viper.SetDefault("timer.short_break", "5m")
	viper.SetDefault("timer.long_break", "15m")
	viper.SetDefault("timer.sessions_until_long", 4)
	viper.SetDefault("timer.auto_start_breaks", false)
	viper.SetDefault("timer.auto_start_focus", false)
	viper.SetDefault("goal.target_minutes", 100)
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.sound", true)
	viper.SetDefault("storage.data_dir", "~/.focuskit")
}

// TimerSettings converts the config's timer section to domain settings.
func (c *Config) TimerSettings() domain.TimerSettings {
	return domain.TimerSettings{
		FocusDuration:      time.Duration(c.Timer.FocusDuration),
		ShortBreakDuration: time.Duration(c.Timer.ShortBreak),
		LongBreakDuration:  time.Duration(c.Timer.LongBreak),
		SessionsUntilLong:  c.Timer.SessionsUntilLong,
		AutoStartBreaks:    c.Timer.AutoStartBreaks,
		AutoStartFocus:     c.Timer.AutoStartFocus,
		Sound:              c.Notifications.Sound,
	}
}
