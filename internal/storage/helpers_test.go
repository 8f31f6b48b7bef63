// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestDB and small seeding helpers.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/workouts/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mustCreateWorkout(t *testing.T, db *DB, uuid, title, date string) int64 {
	t.Helper()
	workDate, err := models.ParseWorkDate(date)
	if err != nil {
		t.Fatalf("ParseWorkDate(%q) failed: %v", date, err)
	}
	id, err := db.CreateWorkout(models.NewWorkoutAt(title, workDate).WithUUID(uuid))
	if err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	return id
}

func mustCreateCatalogEntry(t *testing.T, db *DB, uuid, name string) int64 {
	t.Helper()
	id, err := db.CreatePredefinedExercise(&models.NewPredefinedExercise{UUID: uuid, Name: name})
	if err != nil {
		t.Fatalf("CreatePredefinedExercise failed: %v", err)
	}
	return id
}

func countRows(t *testing.T, db *DB, table string) int {
	t.Helper()
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

var legDay = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
