package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/focuskit/focuskit/internal/domain"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session and today's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := app.engine.Snapshot()

		if jsonOutput {
			out := map[string]any{
				"mode":            string(snap.Mode),
				"streak":          snap.Streak.CurrentStreak,
				"longest_streak":  snap.Streak.LongestStreak,
				"pomodoros_today": snap.PomodorosToday,
				"goal_minutes":    snap.Goal.TargetMinutes,
				"goal_completed":  snap.Goal.CompletedMinutes,
			}
			if snap.Active != nil {
				out["subject"] = snap.Active.SubjectTitle
				out["remaining"] = formatClock(snap.Remaining)
				out["progress"] = snap.Progress
				out["distractions"] = snap.Active.DistractionCount
			}
			return printJSON(out)
		}

		switch snap.Mode {
		case domain.ModeFocusing, domain.ModePaused:
			state := "Focusing"
			if snap.Mode == domain.ModePaused {
				state = "Paused"
			}
			fmt.Printf("🎯 %s", state)
			if snap.Active != nil && snap.Active.SubjectTitle != "" {
				fmt.Printf(" on %s", snap.Active.SubjectTitle)
			}
			fmt.Printf(", %s remaining (%.0f%%)\n", formatClock(snap.Remaining), snap.Progress*100)
			if snap.Active != nil && snap.Active.DistractionCount > 0 {
				fmt.Printf("   Distractions: %d\n", snap.Active.DistractionCount)
			}
		case domain.ModeBreak, domain.ModeLongBreak:
			fmt.Printf("☕ On a %s, %s remaining\n", snap.Mode.Label(), formatClock(snap.Remaining))
		default:
			fmt.Println("💤 Idle. Start a session with: focuskit start")
		}

		fmt.Printf("   Today: %d session(s), %s focused", snap.Stats.TodaySessions, formatMinutes(snap.Stats.TodayFocusTime))
		if snap.Goal.TargetMinutes > 0 {
			fmt.Printf(", goal %d/%dm (%.0f%%)", snap.Goal.CompletedMinutes, snap.Goal.TargetMinutes, snap.Goal.Progress()*100)
		}
		fmt.Println()

		if snap.Streak.CurrentStreak > 0 {
			fmt.Printf("   Streak: %d day(s) (best %d)\n", snap.Streak.CurrentStreak, snap.Streak.LongestStreak)
		}
		return nil
	},
}
