// ABOUTME: CLI commands for free-text messages.
// ABOUTME: Supports add, list, and delete subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/workouts/internal/models"
)

var messageCmd = &cobra.Command{
	Use:     "message",
	Aliases: []string{"m"},
	Short:   "Manage messages",
}

var messageAddCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Store a message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := models.NewMessageWith(strings.Join(args, " "))
		if _, err := repo.CreateMessage(m); err != nil {
			return fmt.Errorf("failed to store message: %w", err)
		}

		color.Green("✓ Stored message")
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(m.UUID))
		return nil
	},
}

var messageListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		messages, err := repo.ListMessages()
		if err != nil {
			return fmt.Errorf("failed to list messages: %w", err)
		}

		if len(messages) == 0 {
			fmt.Println("No messages found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range messages {
			fmt.Printf("%s %s\n", faint.Sprint(m.UUID), truncate(m.Content, 60))
		}
		return nil
	},
}

var messageDeleteCmd = &cobra.Command{
	Use:     "delete <uuid>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a message",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteMessage(args[0]); err != nil {
			return fmt.Errorf("failed to delete message: %w", err)
		}
		color.Yellow("✗ Deleted message %s", args[0])
		return nil
	},
}

func init() {
	messageCmd.AddCommand(messageAddCmd)
	messageCmd.AddCommand(messageListCmd)
	messageCmd.AddCommand(messageDeleteCmd)
	rootCmd.AddCommand(messageCmd)
}
