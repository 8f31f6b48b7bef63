// ABOUTME: Exercise CRUD operations for SQLite storage.
// ABOUTME: Foreign keys to workouts and the catalog are enforced by SQLite.
package storage

import (
	"database/sql"
	"errors"

	"github.com/harperreed/workouts/internal/models"
)

const exerciseColumns = "id, uuid, sets, reps, weight, predefined_exercise_id, workout_id"

// ListExercisesByWorkout returns the exercises of one workout in storage order.
func (d *DB) ListExercisesByWorkout(workoutID int64) ([]*models.Exercise, error) {
	rows, err := d.db.Query(
		"SELECT "+exerciseColumns+" FROM exercises WHERE workout_id = ? ORDER BY id",
		workoutID,
	)
	if err != nil {
		return nil, queryError("list exercises", err)
	}
	defer rows.Close()

	exercises := []*models.Exercise{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("list exercises", err)
	}
	return exercises, nil
}

// GetExerciseByUUID retrieves an exercise by its uuid.
func (d *DB) GetExerciseByUUID(uuid string) (*models.Exercise, error) {
	row := d.db.QueryRow("SELECT "+exerciseColumns+" FROM exercises WHERE uuid = ?", uuid)
	e, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("get exercise", "exercise", uuid)
	}
	return e, err
}

// CreateExercise inserts an exercise and returns its store-assigned id.
// A missing workout or catalog entry fails with a constraint violation.
func (d *DB) CreateExercise(e *models.NewExercise) (int64, error) {
	var weight sql.NullFloat64
	if e.Weight != nil {
		weight = sql.NullFloat64{Float64: *e.Weight, Valid: true}
	}

	result, err := d.db.Exec(`
		INSERT INTO exercises (uuid, sets, reps, weight, predefined_exercise_id, workout_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.UUID, e.Sets, e.Reps, weight, e.PredefinedExerciseID, e.WorkoutID,
	)
	if err != nil {
		return 0, queryError("create exercise", err)
	}
	return lastInsertID("create exercise", result)
}

// DeleteExercise removes the exercise with the given uuid, if present.
func (d *DB) DeleteExercise(uuid string) error {
	if _, err := d.db.Exec("DELETE FROM exercises WHERE uuid = ?", uuid); err != nil {
		return queryError("delete exercise", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExercise(row rowScanner) (*models.Exercise, error) {
	var e models.Exercise
	var weight sql.NullFloat64

	err := row.Scan(&e.ID, &e.UUID, &e.Sets, &e.Reps, &weight, &e.PredefinedExerciseID, &e.WorkoutID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, queryError("scan exercise", err)
	}

	if weight.Valid {
		w := weight.Float64
		e.Weight = &w
	}

	return &e, nil
}
