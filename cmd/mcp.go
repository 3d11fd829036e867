package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/focuskit/focuskit/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI
assistants. The server provides tools for controlling sessions and
querying FocusKit state over stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(os.Stderr, "🚀 Starting MCP server...")
		fmt.Fprintln(os.Stderr, "   The server will communicate via stdio")
		fmt.Fprintln(os.Stderr, "   Press Ctrl+C to stop")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		// Keep the timer loop running so sessions complete while serving.
		go app.engine.Run(ctx)

		server := mcp.NewServer(app.engine, app.storage.Subjects())
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}
