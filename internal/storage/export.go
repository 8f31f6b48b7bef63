// ABOUTME: Export and import functionality for workout data.
// ABOUTME: Supports JSON and YAML backups; surrogate ids are remapped on import.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/workouts/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportFormatVersion is written into every export.
const ExportFormatVersion = "1.0"

// ExportData represents the full export format for workout data.
type ExportData struct {
	Version    string                       `json:"version" yaml:"version"`
	ExportedAt time.Time                    `json:"exported_at" yaml:"exported_at"`
	Tool       string                       `json:"tool" yaml:"tool"`
	Catalog    []*models.PredefinedExercise `json:"predefined_exercises" yaml:"predefined_exercises"`
	Workouts   []*models.WorkoutDetail      `json:"workouts" yaml:"workouts"`
	Messages   []*models.Message            `json:"messages" yaml:"messages"`
}

// ImportSummary holds counts of imported entities.
type ImportSummary struct {
	Catalog   int
	Workouts  int
	Exercises int
	Messages  int
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	catalog, err := d.ListPredefinedExercises()
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	workouts, err := d.ListWorkouts()
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	details := make([]*models.WorkoutDetail, 0, len(workouts))
	for _, w := range workouts {
		detail, err := d.GetWorkoutDetail(w.UUID)
		if err != nil {
			return nil, fmt.Errorf("workout %s: %w", w.UUID, err)
		}
		details = append(details, detail)
	}

	messages, err := d.ListMessages()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return &ExportData{
		Version:    ExportFormatVersion,
		ExportedAt: time.Now().UTC(),
		Tool:       "workouts",
		Catalog:    catalog,
		Workouts:   details,
		Messages:   messages,
	}, nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) (*ImportSummary, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}

// ImportYAML imports data from YAML bytes.
func (d *DB) ImportYAML(data []byte) (*ImportSummary, error) {
	var exportData ExportData
	if err := yaml.Unmarshal(data, &exportData); err != nil {
		return nil, fmt.Errorf("unmarshal YAML: %w", err)
	}
	return d.ImportData(&exportData)
}

// ImportData inserts an export in a single transaction. UUIDs are kept, ids
// are assigned by the store and references are remapped. A uuid that already
// exists aborts the whole import.
func (d *DB) ImportData(data *ExportData) (*ImportSummary, error) {
	if err := validateImport(data); err != nil {
		return nil, queryError("import", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, queryError("import", err)
	}
	defer func() { _ = tx.Rollback() }()

	summary := &ImportSummary{}

	catalogIDs := make(map[int64]int64, len(data.Catalog))
	for _, p := range data.Catalog {
		id, err := insertReturningID(tx,
			"INSERT INTO predefined_exercises (uuid, name) VALUES (?, ?)", p.UUID, p.Name)
		if err != nil {
			return nil, queryError("import predefined exercise "+p.UUID, err)
		}
		catalogIDs[p.ID] = id
		summary.Catalog++
	}

	for _, w := range data.Workouts {
		workoutID, err := insertReturningID(tx,
			"INSERT INTO workouts (uuid, title, work_date) VALUES (?, ?, ?)",
			w.UUID, w.Title, models.FormatWorkDate(w.WorkDate))
		if err != nil {
			return nil, queryError("import workout "+w.UUID, err)
		}
		summary.Workouts++

		for _, e := range w.Exercises {
			predefinedID, ok := catalogIDs[e.PredefinedExerciseID]
			if !ok {
				return nil, queryError("import exercise "+e.UUID,
					fmt.Errorf("%w: predefined exercise %d", ErrNotFound, e.PredefinedExerciseID))
			}
			var weight sql.NullFloat64
			if e.Weight != nil {
				weight = sql.NullFloat64{Float64: *e.Weight, Valid: true}
			}
			if _, err := tx.Exec(`
				INSERT INTO exercises (uuid, sets, reps, weight, predefined_exercise_id, workout_id)
				VALUES (?, ?, ?, ?, ?, ?)`,
				e.UUID, e.Sets, e.Reps, weight, predefinedID, workoutID); err != nil {
				return nil, queryError("import exercise "+e.UUID, err)
			}
			summary.Exercises++
		}
	}

	for _, m := range data.Messages {
		if _, err := tx.Exec("INSERT INTO messages (uuid, content) VALUES (?, ?)", m.UUID, m.Content); err != nil {
			return nil, queryError("import message "+m.UUID, err)
		}
		summary.Messages++
	}

	if err := tx.Commit(); err != nil {
		return nil, queryError("import", err)
	}
	return summary, nil
}

func validateImport(data *ExportData) error {
	if data == nil {
		return fmt.Errorf("no data")
	}
	for i, p := range data.Catalog {
		if p == nil {
			return fmt.Errorf("predefined exercise %d is null", i)
		}
	}
	for i, w := range data.Workouts {
		if w == nil {
			return fmt.Errorf("workout %d is null", i)
		}
	}
	for i, m := range data.Messages {
		if m == nil {
			return fmt.Errorf("message %d is null", i)
		}
	}
	return nil
}

func insertReturningID(tx *sql.Tx, query string, args ...any) (int64, error) {
	result, err := tx.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
