package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/focuskit/focuskit/internal/config"
)

// goalCmd represents the goal command
var goalCmd = &cobra.Command{
	Use:   "goal [minutes]",
	Short: "Show or set the daily focus goal",
	Long: `With no arguments, show today's progress toward the daily goal.
With a minute count, set a new daily target.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			minutes, err := strconv.Atoi(args[0])
			if err != nil || minutes <= 0 {
				return fmt.Errorf("invalid goal %q: expected a positive number of minutes", args[0])
			}

			app.engine.SetDailyGoalTarget(minutes)
			app.config.Goal.TargetMinutes = minutes
			if err := config.Save(app.config); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("🎯 Daily goal set to %d minutes\n", minutes)
			return nil
		}

		snap := app.engine.Snapshot()
		goal := snap.Goal
		if goal.TargetMinutes <= 0 {
			fmt.Println("No daily goal set. Set one with: focuskit goal <minutes>")
			return nil
		}

		if jsonOutput {
			return printJSON(map[string]any{
				"target_minutes":     goal.TargetMinutes,
				"completed_minutes":  goal.CompletedMinutes,
				"sessions_completed": goal.SessionsCompleted,
				"progress":           goal.Progress(),
			})
		}

		fmt.Printf("🎯 %d/%d minutes (%.0f%%) in %d session(s) today\n",
			goal.CompletedMinutes, goal.TargetMinutes, goal.Progress()*100, goal.SessionsCompleted)
		return nil
	},
}
