package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/focuskit/focuskit/internal/insights"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show correlations and patterns mined from your activity",
	Long: `Analyze the last 30 days of activity for correlations between habits,
tasks, workouts, journaling, and focus time, plus peak hours, best
weekdays, and habit streaks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		events := app.engine.Events()
		correlations := insights.Correlations(events, now)
		patterns := insights.Detect(events)

		if jsonOutput {
			out := map[string]any{"correlations": correlations}
			if patterns.HasPeakHour {
				out["peak_hour"] = patterns.PeakHour
			}
			if patterns.HasBestDay {
				out["best_weekday"] = patterns.BestWeekday.String()
			}
			if len(patterns.HabitStreaks) > 0 {
				out["habit_streaks"] = patterns.HabitStreaks
			}
			return printJSON(out)
		}

		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FE0"))
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
		valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))

		fmt.Println()
		fmt.Printf("  %s\n\n", titleStyle.Render("Insights"))

		if len(correlations) == 0 {
			fmt.Printf("  %s\n", dimStyle.Render("Not enough activity yet for correlations. Keep logging!"))
		}
		for _, c := range correlations {
			fmt.Printf("  %s %s\n", valueStyle.Render(fmt.Sprintf("[%s]", c.Strength)), c.Insight)
			fmt.Printf("    %s\n", dimStyle.Render(fmt.Sprintf("r = %+.2f (%s vs %s)", c.Score, c.SeriesA, c.SeriesB)))
		}
		fmt.Println()

		if patterns.HasPeakHour {
			fmt.Printf("  %s %s\n",
				dimStyle.Render("Peak hour:"),
				valueStyle.Render(fmt.Sprintf("%02d:00 to %02d:00", patterns.PeakHour, (patterns.PeakHour+1)%24)),
			)
		}
		if patterns.HasBestDay {
			fmt.Printf("  %s %s\n",
				dimStyle.Render("Best day:"),
				valueStyle.Render(patterns.BestWeekday.String()),
			)
		}
		for _, hs := range patterns.HabitStreaks {
			fmt.Printf("  %s %s\n",
				dimStyle.Render("Habit streak:"),
				valueStyle.Render(fmt.Sprintf("%s, %d day(s)", hs.HabitID, hs.Days)),
			)
		}
		if patterns.HasPeakHour || patterns.HasBestDay || len(patterns.HabitStreaks) > 0 {
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
