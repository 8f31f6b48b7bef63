// ABOUTME: CLI command for schema migrations.
// ABOUTME: Applies pending migrations and prints the migration ledger.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations and show status",
	Long: `Apply any pending schema migrations and print the migration ledger.

Migrations also run automatically whenever the database is opened, so this
command is mostly useful to inspect which versions are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.Migrate(); err != nil {
			return err
		}

		statuses, err := repo.MigrationStatus()
		if err != nil {
			return err
		}

		version, err := repo.SchemaVersion()
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		for _, s := range statuses {
			state := color.YellowString("pending")
			if s.Applied {
				state = color.GreenString("applied")
			}
			fmt.Printf("%3d %s %s %s\n", s.Version, padRight(s.Name, 44), state, faint.Sprint(s.AppliedAt))
		}
		fmt.Printf("\nSchema version: %d\n", version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
