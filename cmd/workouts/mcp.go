// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the workout store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/workouts/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for assistant integration.

The server communicates via stdin/stdout.

AVAILABLE TOOLS:

  list_workouts              List workouts, most recent first
  get_workout                Get a workout with its exercises
  add_workout                Create a workout session
  delete_workout             Delete a workout and its exercises
  list_exercises             List exercises in a workout
  add_exercise               Record an exercise
  list_predefined_exercises  List the exercise catalog
  get_predefined_exercise    Get a catalog entry by id
  add_predefined_exercise    Add a catalog entry
  list_messages              List messages
  add_message                Store a message

AVAILABLE RESOURCES:

  workouts://recent          Last 10 workouts with exercises`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, version, mcp.WithLogger(logger))
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
