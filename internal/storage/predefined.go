// ABOUTME: Predefined exercise catalog operations for SQLite storage.
// ABOUTME: Catalog entries referenced by exercises cannot be deleted.
package storage

import (
	"database/sql"
	"errors"

	"github.com/harperreed/workouts/internal/models"
)

// ListPredefinedExercises returns the whole catalog in storage order.
func (d *DB) ListPredefinedExercises() ([]*models.PredefinedExercise, error) {
	rows, err := d.db.Query("SELECT id, uuid, name FROM predefined_exercises ORDER BY id")
	if err != nil {
		return nil, queryError("list predefined exercises", err)
	}
	defer rows.Close()

	catalog := []*models.PredefinedExercise{}
	for rows.Next() {
		var p models.PredefinedExercise
		if err := rows.Scan(&p.ID, &p.UUID, &p.Name); err != nil {
			return nil, queryError("scan predefined exercise", err)
		}
		catalog = append(catalog, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("list predefined exercises", err)
	}
	return catalog, nil
}

// GetPredefinedExerciseByID retrieves a catalog entry by id.
func (d *DB) GetPredefinedExerciseByID(id int64) (*models.PredefinedExercise, error) {
	var p models.PredefinedExercise
	err := d.db.QueryRow("SELECT id, uuid, name FROM predefined_exercises WHERE id = ?", id).
		Scan(&p.ID, &p.UUID, &p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("get predefined exercise", "predefined exercise", id)
	}
	if err != nil {
		return nil, queryError("get predefined exercise", err)
	}
	return &p, nil
}

// GetPredefinedExerciseByUUID retrieves a catalog entry by uuid.
func (d *DB) GetPredefinedExerciseByUUID(uuid string) (*models.PredefinedExercise, error) {
	var p models.PredefinedExercise
	err := d.db.QueryRow("SELECT id, uuid, name FROM predefined_exercises WHERE uuid = ?", uuid).
		Scan(&p.ID, &p.UUID, &p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("get predefined exercise", "predefined exercise", uuid)
	}
	if err != nil {
		return nil, queryError("get predefined exercise", err)
	}
	return &p, nil
}

// CreatePredefinedExercise inserts a catalog entry and returns its id.
func (d *DB) CreatePredefinedExercise(p *models.NewPredefinedExercise) (int64, error) {
	result, err := d.db.Exec("INSERT INTO predefined_exercises (uuid, name) VALUES (?, ?)", p.UUID, p.Name)
	if err != nil {
		return 0, queryError("create predefined exercise", err)
	}
	return lastInsertID("create predefined exercise", result)
}

// DeletePredefinedExercise removes a catalog entry by uuid, if present.
func (d *DB) DeletePredefinedExercise(uuid string) error {
	if _, err := d.db.Exec("DELETE FROM predefined_exercises WHERE uuid = ?", uuid); err != nil {
		return queryError("delete predefined exercise", err)
	}
	return nil
}
