package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/focuskit/focuskit/internal/domain"
)

var listStatus string

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new subject",
	Long:  `Add a new subject to track focus sessions against.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		subject, err := domain.NewSubject(strings.Join(args, " "))
		if err != nil {
			return err
		}

		if err := app.storage.Subjects().Save(ctx, subject); err != nil {
			return fmt.Errorf("failed to add subject: %w", err)
		}

		if jsonOutput {
			return printJSON(map[string]any{
				"id":         subject.ID,
				"title":      subject.Title,
				"status":     string(subject.Status),
				"created_at": subject.CreatedAt.Format("2006-01-02T15:04:05"),
			})
		}

		fmt.Printf("✅ Subject added: %s (ID: %s)\n", subject.Title, shortID(subject.ID))
		return nil
	},
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects",
	Long:  `List all subjects, optionally filtered by status (todo, doing, done).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var filter *domain.SubjectStatus
		if listStatus != "" {
			status := domain.SubjectStatus(listStatus)
			switch status {
			case domain.SubjectTodo, domain.SubjectDoing, domain.SubjectDone:
				filter = &status
			default:
				return fmt.Errorf("invalid status %q (expected todo, doing, or done)", listStatus)
			}
		}

		subjects, err := app.storage.Subjects().FindAll(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to list subjects: %w", err)
		}

		if jsonOutput {
			out := make([]map[string]any, 0, len(subjects))
			for _, s := range subjects {
				out = append(out, map[string]any{
					"id":     s.ID,
					"title":  s.Title,
					"status": string(s.Status),
				})
			}
			return printJSON(out)
		}

		if len(subjects) == 0 {
			fmt.Println("No subjects yet. Add one with: focuskit add <title>")
			return nil
		}

		for _, s := range subjects {
			marker := " "
			switch {
			case s.IsActive():
				marker = ">"
			case s.Status == domain.SubjectDone:
				marker = "x"
			}
			fmt.Printf("[%s] %s  %s\n", marker, shortID(s.ID), s.Title)
		}
		return nil
	},
}

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done [subject]",
	Short: "Mark a subject as done",
	Long:  `Mark a subject as completed, by id or fuzzy title match.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		subject, err := resolveSubject(ctx, args[0])
		if err != nil {
			return err
		}

		subject.Complete()
		if err := app.storage.Subjects().Update(ctx, subject); err != nil {
			return fmt.Errorf("failed to update subject: %w", err)
		}

		// Completed subjects feed the activity log for insights.
		app.engine.RecordEvent(domain.EventTask, subject.ID, 1)

		fmt.Printf("🎉 Done: %s\n", subject.Title)
		return nil
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [subject]",
	Short: "Delete a subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		subject, err := resolveSubject(ctx, args[0])
		if err != nil {
			return err
		}

		if err := app.storage.Subjects().Delete(ctx, subject.ID); err != nil {
			return fmt.Errorf("failed to delete subject: %w", err)
		}

		fmt.Printf("🗑️  Deleted: %s\n", subject.Title)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status: todo, doing, done")
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
