package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/focuskit/focuskit/internal/adapters/tui"
	"github.com/focuskit/focuskit/internal/domain"
)

var startMinutes int

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start [subject]",
	Short: "Start a focus session",
	Long: `Start a new focus session. Optionally name a subject (by id or fuzzy
title match) to track the session against. The session runs on the wall
clock, so it keeps counting down after the command exits; use --inline to
stay attached to a live timer instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var subject *domain.Subject
		if len(args) > 0 {
			var err error
			subject, err = resolveSubject(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
		}

		session, err := app.engine.StartSession(ctx, subject, time.Duration(startMinutes)*time.Minute)
		if err != nil {
			if err == domain.ErrSessionActive {
				return fmt.Errorf("a session is already running; stop it first with: focuskit stop")
			}
			return fmt.Errorf("failed to start session: %w", err)
		}

		fmt.Printf("🎯 Focus session started! Duration: %s\n", session.TargetDuration)
		if subject != nil {
			fmt.Printf("   Subject: %s\n", subject.Title)
		}
		if session.GitBranch != "" {
			fmt.Printf("   Git: %s @ %s\n", session.GitBranch, shortID(session.GitCommit))
		}

		if inlineMode {
			return tui.Run(app.engine)
		}
		fmt.Println("   Check progress with: focuskit status")
		return nil
	},
}

func init() {
	startCmd.Flags().IntVarP(&startMinutes, "duration", "d", 0, "Session length in minutes (default: configured focus duration)")
}
