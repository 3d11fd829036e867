package cmd

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/focuskit/focuskit/internal/domain"
	"github.com/focuskit/focuskit/internal/engine"
	"github.com/focuskit/focuskit/internal/timeutil"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a dashboard of focus statistics",
	Long:  `Display a terminal dashboard with session counts, focus hours, streaks, and a daily trend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := app.engine.Snapshot()

		if jsonOutput {
			return printJSON(map[string]any{
				"total_sessions":     snap.Stats.TotalSessions,
				"total_focus_time":   snap.Stats.TotalFocusTime.String(),
				"today_sessions":     snap.Stats.TodaySessions,
				"today_focus_time":   snap.Stats.TodayFocusTime.String(),
				"week_sessions":      snap.Stats.ThisWeekSessions,
				"week_focus_time":    snap.Stats.ThisWeekFocusTime.String(),
				"average_duration":   snap.Stats.AverageDuration.String(),
				"total_distractions": snap.Stats.TotalDistractions,
				"current_streak":     snap.Streak.CurrentStreak,
				"longest_streak":     snap.Streak.LongestStreak,
			})
		}

		fmt.Println()
		renderDashboard(snap, app.engine.History())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func renderDashboard(snap engine.Snapshot, history []domain.CompletedSession) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FE0"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))
	barColor := lipgloss.NewStyle().Foreground(lipgloss.Color("#7C6FE0"))

	// Header
	fmt.Printf("  %s\n", titleStyle.Render("Focus Stats"))
	fmt.Printf("  %s\n\n", dimStyle.Render(strings.Repeat("─", 40)))

	// Summary line
	fmt.Printf("  Total: %s sessions, %s focused\n",
		valueStyle.Render(fmt.Sprintf("%d", snap.Stats.TotalSessions)),
		valueStyle.Render(formatHours(snap.Stats.TotalFocusTime.Hours())),
	)
	fmt.Printf("  Week:  %s sessions, %s focused\n\n",
		valueStyle.Render(fmt.Sprintf("%d", snap.Stats.ThisWeekSessions)),
		valueStyle.Render(formatHours(snap.Stats.ThisWeekFocusTime.Hours())),
	)

	if snap.Stats.TotalSessions == 0 {
		fmt.Printf("  %s\n\n", dimStyle.Render("No completed sessions yet."))
		return
	}

	// Bar chart: focus time per day, last 7 days
	fmt.Printf("  %s\n", dimStyle.Render("Last 7 days"))
	now := time.Now()
	daily := make(map[string]time.Duration)
	for _, cs := range history {
		daily[timeutil.DateKey(cs.EndedAt)] += cs.Duration
	}

	var maxDay time.Duration
	for i := 6; i >= 0; i-- {
		if d := daily[timeutil.DateKey(now.AddDate(0, 0, -i))]; d > maxDay {
			maxDay = d
		}
	}

	maxBarWidth := 30
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		total := daily[timeutil.DateKey(day)]
		barWidth := 0
		if maxDay > 0 {
			barWidth = int(math.Round(float64(total) / float64(maxDay) * float64(maxBarWidth)))
		}
		if barWidth < 1 && total > 0 {
			barWidth = 1
		}
		fmt.Printf("  %s %s %s\n",
			dimStyle.Render(day.Format("Mon")),
			barColor.Render(buildBar(barWidth)),
			formatHours(total.Hours()),
		)
	}
	fmt.Println()

	// Averages and distractions
	fmt.Printf("  %s  %s\n",
		dimStyle.Render("Avg session:"),
		valueStyle.Render(formatMinutes(snap.Stats.AverageDuration)),
	)
	if snap.Stats.TotalDistractions > 0 {
		fmt.Printf("  %s  %s\n",
			dimStyle.Render("Distractions:"),
			valueStyle.Render(fmt.Sprintf("%d", snap.Stats.TotalDistractions)),
		)
	}

	// Streak
	if snap.Streak.CurrentStreak > 0 {
		fmt.Printf("  %s  %s %s\n",
			dimStyle.Render("Streak:"),
			valueStyle.Render(fmt.Sprintf("%d day(s)", snap.Streak.CurrentStreak)),
			dimStyle.Render(fmt.Sprintf("(best %d)", snap.Streak.LongestStreak)),
		)
	}
	fmt.Println()
}

func buildBar(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("█", width)
}

func formatHours(hours float64) string {
	if hours < 1 {
		return fmt.Sprintf("%.0fm", hours*60)
	}
	return fmt.Sprintf("%.1fh", hours)
}
