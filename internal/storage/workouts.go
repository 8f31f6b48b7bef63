// ABOUTME: Workout CRUD operations for SQLite storage.
// ABOUTME: Deleting a workout cascades to its exercises.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/workouts/internal/models"
)

const workoutColumns = "id, uuid, title, work_date"

// ListWorkouts returns every workout in storage order.
func (d *DB) ListWorkouts() ([]*models.Workout, error) {
	rows, err := d.db.Query("SELECT " + workoutColumns + " FROM workouts ORDER BY id")
	if err != nil {
		return nil, queryError("list workouts", err)
	}
	defer rows.Close()

	return d.scanWorkouts(rows)
}

// GetWorkoutByUUID retrieves a workout by its uuid.
func (d *DB) GetWorkoutByUUID(uuid string) (*models.Workout, error) {
	row := d.db.QueryRow("SELECT "+workoutColumns+" FROM workouts WHERE uuid = ?", uuid)
	w, err := d.scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("get workout", "workout", uuid)
	}
	return w, err
}

// GetWorkoutByID retrieves a workout by its surrogate id.
func (d *DB) GetWorkoutByID(id int64) (*models.Workout, error) {
	row := d.db.QueryRow("SELECT "+workoutColumns+" FROM workouts WHERE id = ?", id)
	w, err := d.scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("get workout", "workout", id)
	}
	return w, err
}

// CreateWorkout inserts a workout and returns its store-assigned id.
func (d *DB) CreateWorkout(w *models.NewWorkout) (int64, error) {
	result, err := d.db.Exec(
		"INSERT INTO workouts (uuid, title, work_date) VALUES (?, ?, ?)",
		w.UUID, w.Title, models.FormatWorkDate(w.WorkDate),
	)
	if err != nil {
		return 0, queryError("create workout", err)
	}
	return lastInsertID("create workout", result)
}

// DeleteWorkout removes the workout with the given uuid and its exercises.
// Deleting a missing workout is not an error.
func (d *DB) DeleteWorkout(uuid string) error {
	if _, err := d.db.Exec("DELETE FROM workouts WHERE uuid = ?", uuid); err != nil {
		return queryError("delete workout", err)
	}
	return nil
}

// DeleteWorkoutByID removes the workout with the given id and its exercises.
func (d *DB) DeleteWorkoutByID(id int64) error {
	if _, err := d.db.Exec("DELETE FROM workouts WHERE id = ?", id); err != nil {
		return queryError("delete workout", err)
	}
	return nil
}

// scanWorkout scans a single row into a Workout. sql.ErrNoRows is returned
// unwrapped so callers can build a not-found error.
func (d *DB) scanWorkout(row *sql.Row) (*models.Workout, error) {
	var w models.Workout
	var workDate string

	if err := row.Scan(&w.ID, &w.UUID, &w.Title, &workDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, queryError("scan workout", err)
	}

	t, err := parseStoredWorkDate(workDate)
	if err != nil {
		return nil, queryError("scan workout", err)
	}
	w.WorkDate = t

	return &w, nil
}

// scanWorkouts scans multiple rows into a slice of Workouts.
func (d *DB) scanWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	workouts := []*models.Workout{}

	for rows.Next() {
		var w models.Workout
		var workDate string

		if err := rows.Scan(&w.ID, &w.UUID, &w.Title, &workDate); err != nil {
			return nil, queryError("scan workout", err)
		}

		t, err := parseStoredWorkDate(workDate)
		if err != nil {
			return nil, queryError("scan workout", err)
		}
		w.WorkDate = t

		workouts = append(workouts, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, queryError("scan workouts", err)
	}
	return workouts, nil
}

// parseStoredWorkDate reads a work_date column value.
func parseStoredWorkDate(s string) (time.Time, error) {
	if t, err := models.ParseWorkDate(s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid work_date %q in database", s)
	}
	return models.NormalizeWorkDate(t), nil
}

func lastInsertID(op string, result sql.Result) (int64, error) {
	id, err := result.LastInsertId()
	if err != nil {
		return 0, queryError(op, err)
	}
	return id, nil
}
