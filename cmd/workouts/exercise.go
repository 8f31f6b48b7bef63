// ABOUTME: CLI commands for recording exercises within a workout.
// ABOUTME: Supports add, list, and delete subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/workouts/internal/models"
	"github.com/harperreed/workouts/internal/storage"
)

var (
	exerciseSets   float64
	exerciseReps   float64
	exerciseWeight string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage exercises in a workout",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <workout-uuid> <predefined-id>",
	Short: "Record an exercise",
	Long: `Record an exercise in a workout. The predefined id is the catalog
entry id shown by 'workouts catalog list'. Omit --weight for bodyweight work.

Examples:
  workouts exercise add 3f2a... 1 --sets 3 --reps 10
  workouts exercise add 3f2a... 2 --sets 5 --reps 5 --weight 100`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		predefinedID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid predefined exercise id: %s", args[1])
		}
		if exerciseSets <= 0 || exerciseReps <= 0 {
			return fmt.Errorf("--sets and --reps must be positive")
		}

		w, err := repo.GetWorkoutByUUID(args[0])
		if err != nil {
			if storage.IsNotFound(err) {
				return fmt.Errorf("workout not found: %s", args[0])
			}
			return fmt.Errorf("failed to get workout: %w", err)
		}

		e := models.NewExerciseFor(w.ID, predefinedID, exerciseSets, exerciseReps)
		if exerciseWeight != "" {
			weight, err := strconv.ParseFloat(exerciseWeight, 64)
			if err != nil {
				return fmt.Errorf("invalid weight: %s", exerciseWeight)
			}
			e.WithWeight(weight)
		}

		if _, err := repo.CreateExercise(e); err != nil {
			if storage.IsConstraintViolation(err) {
				return fmt.Errorf("unknown predefined exercise: %d", predefinedID)
			}
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added exercise to %s", w.Title)
		fmt.Printf("  %s %gx%g @ %s\n",
			color.New(color.Faint).Sprint(e.UUID), e.Sets, e.Reps, formatWeight(e.Weight))
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list <workout-uuid>",
	Aliases: []string{"ls"},
	Short:   "List exercises in a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := repo.GetWorkoutDetail(args[0])
		if err != nil {
			if storage.IsNotFound(err) {
				return fmt.Errorf("workout not found: %s", args[0])
			}
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		if len(w.Exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range w.Exercises {
			fmt.Printf("%s %s %gx%g @ %s\n",
				faint.Sprint(e.UUID), padRight(e.Name, 20), e.Sets, e.Reps, formatWeight(e.Weight))
		}
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <uuid>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteExercise(args[0]); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}
		color.Yellow("✗ Deleted exercise %s", args[0])
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().Float64VarP(&exerciseSets, "sets", "s", 0, "number of sets")
	exerciseAddCmd.Flags().Float64VarP(&exerciseReps, "reps", "r", 0, "repetitions per set")
	exerciseAddCmd.Flags().StringVarP(&exerciseWeight, "weight", "w", "", "weight used (omit for bodyweight)")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
