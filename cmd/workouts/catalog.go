// ABOUTME: CLI commands for the predefined exercise catalog.
// ABOUTME: Supports add, list, show, and delete subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/workouts/internal/models"
	"github.com/harperreed/workouts/internal/storage"
)

var catalogCmd = &cobra.Command{
	Use:     "catalog",
	Aliases: []string{"c"},
	Short:   "Manage the predefined exercise catalog",
	Long: `Manage the catalog of exercises that workouts reference.

Every recorded exercise points at one catalog entry by its numeric id.
An entry that is still referenced cannot be deleted.`,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an exercise to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.NewCatalogEntry(args[0])
		id, err := repo.CreatePredefinedExercise(p)
		if err != nil {
			return fmt.Errorf("failed to add catalog entry: %w", err)
		}

		color.Green("✓ Added %s", p.Name)
		fmt.Printf("  ID: %d\n", id)
		fmt.Printf("  UUID: %s\n", p.UUID)
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List catalog entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := repo.ListPredefinedExercises()
		if err != nil {
			return fmt.Errorf("failed to list catalog: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("Catalog is empty.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range entries {
			fmt.Printf("%s %s %s\n",
				padRight(strconv.FormatInt(p.ID, 10), 5),
				padRight(p.Name, 24),
				faint.Sprint(p.UUID))
		}
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		p, err := repo.GetPredefinedExerciseByID(id)
		if err != nil {
			if storage.IsNotFound(err) {
				return fmt.Errorf("catalog entry not found: %d", id)
			}
			return fmt.Errorf("failed to get catalog entry: %w", err)
		}

		fmt.Printf("Name: %s\n", p.Name)
		fmt.Printf("ID: %d\n", p.ID)
		fmt.Printf("UUID: %s\n", p.UUID)
		return nil
	},
}

var catalogDeleteCmd = &cobra.Command{
	Use:     "delete <uuid>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a catalog entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeletePredefinedExercise(args[0]); err != nil {
			if storage.IsConstraintViolation(err) {
				return fmt.Errorf("catalog entry %s is still used by recorded exercises", args[0])
			}
			return fmt.Errorf("failed to delete catalog entry: %w", err)
		}
		color.Yellow("✗ Deleted catalog entry %s", args[0])
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogDeleteCmd)
	rootCmd.AddCommand(catalogCmd)
}
