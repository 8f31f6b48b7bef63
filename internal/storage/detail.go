// ABOUTME: Workout detail assembly: a workout with its named exercises.
// ABOUTME: Composes ListExercisesByWorkout with one catalog lookup per entry.
package storage

import (
	"fmt"

	"github.com/harperreed/workouts/internal/models"
)

// GetWorkoutDetail returns the workout with the given uuid together with its
// exercises, each carrying the name of its catalog entry.
func (d *DB) GetWorkoutDetail(uuid string) (*models.WorkoutDetail, error) {
	w, err := d.GetWorkoutByUUID(uuid)
	if err != nil {
		return nil, err
	}

	exercises, err := d.ListExercisesByWorkout(w.ID)
	if err != nil {
		return nil, err
	}

	detail := &models.WorkoutDetail{
		Workout:   *w,
		Exercises: make([]models.ExerciseDetail, 0, len(exercises)),
	}

	names := make(map[int64]string)
	for _, e := range exercises {
		name, ok := names[e.PredefinedExerciseID]
		if !ok {
			p, err := d.GetPredefinedExerciseByID(e.PredefinedExerciseID)
			if err != nil {
				return nil, fmt.Errorf("exercise %s: %w", e.UUID, err)
			}
			name = p.Name
			names[e.PredefinedExerciseID] = name
		}
		detail.Exercises = append(detail.Exercises, models.ExerciseDetail{Exercise: *e, Name: name})
	}

	return detail, nil
}
