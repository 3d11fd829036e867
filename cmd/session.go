package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/focuskit/focuskit/internal/domain"
)

var extendMinutes int

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the current focus session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.engine.PauseSession(); err != nil {
			return fmt.Errorf("failed to pause session: %w", err)
		}

		snap := app.engine.Snapshot()
		fmt.Printf("⏸️  Session paused. Remaining: %s\n", formatClock(snap.Remaining))
		return nil
	},
}

// resumeCmd represents the resume command
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused focus session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.engine.ResumeSession(); err != nil {
			return fmt.Errorf("failed to resume session: %w", err)
		}

		snap := app.engine.Snapshot()
		fmt.Printf("▶️  Session resumed. Remaining: %s\n", formatClock(snap.Remaining))
		return nil
	},
}

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current session, counting it as completed",
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := app.engine.EndSession(domain.EndCompleted)
		if err != nil {
			return fmt.Errorf("failed to stop session: %w", err)
		}

		fmt.Printf("🏁 Session completed after %s", formatMinutes(record.Duration))
		if record.SubjectTitle != "" {
			fmt.Printf(" on %s", record.SubjectTitle)
		}
		fmt.Println()
		return nil
	},
}

// cancelCmd represents the cancel command
var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the current session without counting it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.engine.CancelSession(); err != nil {
			return fmt.Errorf("failed to cancel session: %w", err)
		}

		fmt.Println("⏹️  Session cancelled. It will not count toward your streak.")
		return nil
	},
}

// extendCmd represents the extend command
var extendCmd = &cobra.Command{
	Use:   "extend",
	Short: "Extend the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.engine.ExtendSession(extendMinutes); err != nil {
			return fmt.Errorf("failed to extend session: %w", err)
		}

		snap := app.engine.Snapshot()
		fmt.Printf("⏱️  Extended by %dm. Remaining: %s\n", extendMinutes, formatClock(snap.Remaining))
		return nil
	},
}

// skipCmd represents the skip command
var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Skip the current break",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.engine.SkipBreak(); err != nil {
			return fmt.Errorf("failed to skip break: %w", err)
		}

		fmt.Println("⏭️  Break skipped. Ready when you are.")
		return nil
	},
}

// distractCmd represents the distract command
var distractCmd = &cobra.Command{
	Use:   "distract",
	Short: "Record a distraction during the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.engine.RecordDistraction(); err != nil {
			return fmt.Errorf("failed to record distraction: %w", err)
		}

		snap := app.engine.Snapshot()
		count := 0
		if snap.Active != nil {
			count = snap.Active.DistractionCount
		}
		fmt.Printf("📝 Distraction noted (%d this session). Back to it.\n", count)
		return nil
	},
}

// noteCmd represents the note command
var noteCmd = &cobra.Command{
	Use:   "note [text]",
	Short: "Attach a note to the current session",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.engine.AddNote(strings.Join(args, " ")); err != nil {
			return fmt.Errorf("failed to add note: %w", err)
		}

		fmt.Println("🗒️  Note added.")
		return nil
	},
}

func init() {
	extendCmd.Flags().IntVarP(&extendMinutes, "minutes", "m", 5, "Minutes to add to the session")
}

func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}

func formatMinutes(d time.Duration) string {
	minutes := int(d.Round(time.Minute).Minutes())
	if minutes < 1 {
		return "less than a minute"
	}
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}
