// ABOUTME: JSON views of stored records returned by tools and resources.
// ABOUTME: Work dates are rendered as text in the stored layout.
package mcp

import (
	"sort"

	"github.com/harperreed/workouts/internal/models"
)

type workoutView struct {
	ID       int64  `json:"id"`
	UUID     string `json:"uuid"`
	Title    string `json:"title"`
	WorkDate string `json:"work_date"`
}

type exerciseView struct {
	ID                   int64    `json:"id"`
	UUID                 string   `json:"uuid"`
	Name                 string   `json:"name"`
	Sets                 float64  `json:"sets"`
	Reps                 float64  `json:"reps"`
	Weight               *float64 `json:"weight,omitempty"`
	PredefinedExerciseID int64    `json:"predefined_exercise_id"`
}

type workoutDetailView struct {
	ID        int64          `json:"id"`
	UUID      string         `json:"uuid"`
	Title     string         `json:"title"`
	WorkDate  string         `json:"work_date"`
	Exercises []exerciseView `json:"exercises"`
}

func newWorkoutView(w *models.Workout) workoutView {
	return workoutView{
		ID:       w.ID,
		UUID:     w.UUID,
		Title:    w.Title,
		WorkDate: models.FormatWorkDate(w.WorkDate),
	}
}

func newWorkoutDetailView(d *models.WorkoutDetail) workoutDetailView {
	w := newWorkoutView(&d.Workout)
	view := workoutDetailView{
		ID:        w.ID,
		UUID:      w.UUID,
		Title:     w.Title,
		WorkDate:  w.WorkDate,
		Exercises: make([]exerciseView, 0, len(d.Exercises)),
	}
	for _, e := range d.Exercises {
		view.Exercises = append(view.Exercises, exerciseView{
			ID:                   e.ID,
			UUID:                 e.UUID,
			Name:                 e.Name,
			Sets:                 e.Sets,
			Reps:                 e.Reps,
			Weight:               e.Weight,
			PredefinedExerciseID: e.PredefinedExerciseID,
		})
	}
	return view
}

// recentWorkouts returns up to limit workouts ordered by work date, newest first.
func (s *Server) recentWorkouts(limit int) ([]*models.Workout, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	workouts, err := s.repo.ListWorkouts()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].WorkDate.After(workouts[j].WorkDate)
	})
	if len(workouts) > limit {
		workouts = workouts[:limit]
	}
	return workouts, nil
}
