package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/focuskit/focuskit/internal/adapters/tui"
)

var breakLong bool

// breakCmd represents the break command
var breakCmd = &cobra.Command{
	Use:   "break",
	Short: "Start a break",
	Long:  `Start a short break, or a long one with --long.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.engine.StartBreak(breakLong); err != nil {
			return fmt.Errorf("failed to start break: %w", err)
		}

		kind := "Short"
		if breakLong {
			kind = "Long"
		}
		snap := app.engine.Snapshot()
		fmt.Printf("☕ %s break started. Back in %s\n", kind, formatClock(snap.Remaining))

		if inlineMode {
			return tui.Run(app.engine)
		}
		return nil
	},
}

func init() {
	breakCmd.Flags().BoolVarP(&breakLong, "long", "l", false, "Take a long break")
}
