// ABOUTME: Exercise and PredefinedExercise models plus their pre-insert variants.
// ABOUTME: Exercises belong to a workout and reference a catalog entry.
package models

import (
	"github.com/google/uuid"
)

// PredefinedExercise is a named catalog entry such as "Squat".
type PredefinedExercise struct {
	ID   int64  `json:"id" yaml:"id"`
	UUID string `json:"uuid" yaml:"uuid"`
	Name string `json:"name" yaml:"name"`
}

// NewPredefinedExercise is a catalog entry that has not been inserted yet.
type NewPredefinedExercise struct {
	UUID string
	Name string
}

// NewCatalogEntry creates a NewPredefinedExercise with a generated UUID.
func NewCatalogEntry(name string) *NewPredefinedExercise {
	return &NewPredefinedExercise{UUID: uuid.NewString(), Name: name}
}

// Exercise is one performed instance of a predefined exercise within a workout.
type Exercise struct {
	ID                   int64    `json:"id" yaml:"id"`
	UUID                 string   `json:"uuid" yaml:"uuid"`
	Sets                 float64  `json:"sets" yaml:"sets"`
	Reps                 float64  `json:"reps" yaml:"reps"`
	Weight               *float64 `json:"weight" yaml:"weight"` // nil for bodyweight
	PredefinedExerciseID int64    `json:"predefined_exercise_id" yaml:"predefined_exercise_id"`
	WorkoutID            int64    `json:"workout_id" yaml:"workout_id"`
}

// IsBodyweight reports whether no weight was recorded.
func (e *Exercise) IsBodyweight() bool {
	return e.Weight == nil
}

// NewExercise is an exercise that has not been inserted yet.
type NewExercise struct {
	UUID                 string
	Sets                 float64
	Reps                 float64
	Weight               *float64
	PredefinedExerciseID int64
	WorkoutID            int64
}

// NewExerciseFor creates a NewExercise with a generated UUID and no weight.
func NewExerciseFor(workoutID, predefinedID int64, sets, reps float64) *NewExercise {
	return &NewExercise{
		UUID:                 uuid.NewString(),
		Sets:                 sets,
		Reps:                 reps,
		PredefinedExerciseID: predefinedID,
		WorkoutID:            workoutID,
	}
}

// WithWeight records the weight used.
func (e *NewExercise) WithWeight(weight float64) *NewExercise {
	e.Weight = &weight
	return e
}

// WithUUID overrides the generated UUID.
func (e *NewExercise) WithUUID(id string) *NewExercise {
	e.UUID = id
	return e
}

// ExerciseDetail is an exercise enriched with its catalog entry name.
type ExerciseDetail struct {
	Exercise `yaml:",inline"`
	Name     string `json:"name" yaml:"name"`
}

// WorkoutDetail is a workout together with its exercises.
type WorkoutDetail struct {
	Workout   `yaml:",inline"`
	Exercises []ExerciseDetail `json:"exercises" yaml:"exercises"`
}
