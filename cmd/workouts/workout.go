// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Supports add, list, show, and delete subcommands.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/workouts/internal/models"
	"github.com/harperreed/workouts/internal/storage"
)

var workoutDate string

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Track workout sessions.

A workout is a titled session on a date. Exercises are recorded against it
with 'workouts exercise add'.

COMMANDS:

  add      Create a new workout session
  list     List workouts
  show     View a workout with its exercises
  delete   Delete a workout and its exercises`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new workout",
	Long: `Add a new workout session.

Examples:
  workouts workout add "Leg Day" --date 2024-01-01T08:00
  workouts workout add Push`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workDate := time.Now()
		if workoutDate != "" {
			t, err := models.ParseWorkDate(workoutDate)
			if err != nil {
				return err
			}
			workDate = t
		}

		w := models.NewWorkoutAt(args[0], workDate)
		id, err := repo.CreateWorkout(w)
		if err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		color.Green("✓ Added workout %s", w.Title)
		fmt.Printf("  ID: %d\n", id)
		fmt.Printf("  UUID: %s\n", w.UUID)
		fmt.Printf("  Date: %s\n", models.FormatWorkDate(w.WorkDate))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := repo.ListWorkouts()
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(w.UUID),
				faint.Sprint(models.FormatWorkDate(w.WorkDate)),
				truncate(w.Title, 40))
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <uuid>",
	Short: "Show workout details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := repo.GetWorkoutDetail(args[0])
		if err != nil {
			if storage.IsNotFound(err) {
				return fmt.Errorf("workout not found: %s", args[0])
			}
			return fmt.Errorf("failed to get workout: %w", err)
		}

		fmt.Printf("Workout: %s\n", w.Title)
		fmt.Printf("UUID: %s\n", w.UUID)
		fmt.Printf("Date: %s\n", models.FormatWorkDate(w.WorkDate))

		if len(w.Exercises) > 0 {
			fmt.Println("\nExercises:")
			for _, e := range w.Exercises {
				fmt.Printf("  %s %gx%g @ %s\n",
					padRight(e.Name, 20), e.Sets, e.Reps, formatWeight(e.Weight))
			}
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <uuid>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout and its exercises",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteWorkout(args[0]); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		color.Yellow("✗ Deleted workout %s", args[0])
		return nil
	},
}

func init() {
	workoutAddCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "work date (YYYY-MM-DDTHH:MM), defaults to now")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
