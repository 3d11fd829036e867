package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/focuskit/focuskit/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  `Print the effective configuration and the path of the config file to edit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		cfg := app.config
		if jsonOutput {
			return printJSON(map[string]any{
				"path":                path,
				"focus_duration":      cfg.Timer.FocusDuration.String(),
				"short_break":         cfg.Timer.ShortBreak.String(),
				"long_break":          cfg.Timer.LongBreak.String(),
				"sessions_until_long": cfg.Timer.SessionsUntilLong,
				"auto_start_breaks":   cfg.Timer.AutoStartBreaks,
				"auto_start_focus":    cfg.Timer.AutoStartFocus,
				"goal_minutes":        cfg.Goal.TargetMinutes,
				"notifications":       cfg.Notifications.Enabled,
				"sound":               cfg.Notifications.Sound,
				"data_dir":            cfg.Storage.DataDir,
			})
		}

		fmt.Printf("Config: %s\n\n", path)
		fmt.Printf("  focus duration:       %s\n", time.Duration(cfg.Timer.FocusDuration))
		fmt.Printf("  short break:          %s\n", time.Duration(cfg.Timer.ShortBreak))
		fmt.Printf("  long break:           %s\n", time.Duration(cfg.Timer.LongBreak))
		fmt.Printf("  sessions until long:  %d\n", cfg.Timer.SessionsUntilLong)
		fmt.Printf("  auto-start breaks:    %v\n", cfg.Timer.AutoStartBreaks)
		fmt.Printf("  auto-start focus:     %v\n", cfg.Timer.AutoStartFocus)
		fmt.Printf("  daily goal:           %dm\n", cfg.Goal.TargetMinutes)
		fmt.Printf("  notifications:        %v (sound: %v)\n", cfg.Notifications.Enabled, cfg.Notifications.Sound)
		fmt.Printf("  data dir:             %s\n", cfg.Storage.DataDir)
		return nil
	},
}
