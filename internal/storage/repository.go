// ABOUTME: Repository interface for workout data storage.
// ABOUTME: Defines the CRUD contract for workouts, exercises, the catalog and messages.
package storage

import (
	"github.com/harperreed/workouts/internal/models"
)

// Repository defines the storage interface for workout data.
// Lookups by uuid are canonical; lookups by id are a secondary path.
type Repository interface {
	// Workout operations
	ListWorkouts() ([]*models.Workout, error)
	GetWorkoutByUUID(uuid string) (*models.Workout, error)
	GetWorkoutByID(id int64) (*models.Workout, error)
	CreateWorkout(w *models.NewWorkout) (int64, error)
	DeleteWorkout(uuid string) error
	DeleteWorkoutByID(id int64) error
	GetWorkoutDetail(uuid string) (*models.WorkoutDetail, error)

	// Exercise operations
	ListExercisesByWorkout(workoutID int64) ([]*models.Exercise, error)
	GetExerciseByUUID(uuid string) (*models.Exercise, error)
	CreateExercise(e *models.NewExercise) (int64, error)
	DeleteExercise(uuid string) error

	// Catalog operations
	ListPredefinedExercises() ([]*models.PredefinedExercise, error)
	GetPredefinedExerciseByID(id int64) (*models.PredefinedExercise, error)
	GetPredefinedExerciseByUUID(uuid string) (*models.PredefinedExercise, error)
	CreatePredefinedExercise(p *models.NewPredefinedExercise) (int64, error)
	DeletePredefinedExercise(uuid string) error

	// Message operations
	ListMessages() ([]*models.Message, error)
	GetMessageByUUID(uuid string) (*models.Message, error)
	CreateMessage(m *models.NewMessage) (int64, error)
	DeleteMessage(uuid string) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) (*ImportSummary, error)

	// Lifecycle
	Close() error
}

// Compile-time check that DB implements Repository.
var _ Repository = (*DB)(nil)
