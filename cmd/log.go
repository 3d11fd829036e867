package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/focuskit/focuskit/internal/domain"
)

var logRef string

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log [kind] [value]",
	Short: "Log an activity event",
	Long: `Append an entry to the activity log that feeds insights. Kind is one
of: habit, task, workout, journal, spark. An optional numeric value
defaults to 1. Use --ref to tie habit entries to a stable id so their
streaks can be tracked.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := domain.EventKind(args[0])
		valid := false
		for _, k := range domain.ValidEventKinds {
			if kind == k && kind != domain.EventFocus {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid event kind %q (expected habit, task, workout, journal, or spark)", args[0])
		}

		value := 1.0
		if len(args) == 2 {
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}
			value = v
		}

		event := app.engine.RecordEvent(kind, logRef, value)

		fmt.Printf("📒 Logged %s", event.Kind)
		if event.RefID != "" {
			fmt.Printf(" (%s)", event.RefID)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	logCmd.Flags().StringVarP(&logRef, "ref", "r", "", "Stable reference id for the logged entry (e.g. a habit name)")
}
