// ABOUTME: Tests for workout, exercise, catalog and message operations.
// ABOUTME: Exercises uniqueness, referential integrity and cascade behavior.
package storage

import (
	"errors"
	"testing"

	"github.com/harperreed/workouts/internal/models"
)

func TestWorkoutRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	id, err := db.CreateWorkout(models.NewWorkoutAt("Leg Day", legDay).WithUUID("w1"))
	if err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	got, err := db.GetWorkoutByUUID("w1")
	if err != nil {
		t.Fatalf("GetWorkoutByUUID failed: %v", err)
	}
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.Title != "Leg Day" {
		t.Errorf("Title = %s, want Leg Day", got.Title)
	}
	if !got.WorkDate.Equal(legDay) {
		t.Errorf("WorkDate = %v, want %v", got.WorkDate, legDay)
	}

	byID, err := db.GetWorkoutByID(id)
	if err != nil {
		t.Fatalf("GetWorkoutByID failed: %v", err)
	}
	if byID.UUID != "w1" {
		t.Errorf("UUID = %s, want w1", byID.UUID)
	}
}

func TestListWorkoutsOrder(t *testing.T) {
	db := setupTestDB(t)

	workouts, err := db.ListWorkouts()
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if workouts == nil || len(workouts) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", workouts)
	}

	mustCreateWorkout(t, db, "w1", "First", "2024-01-03 08:00:00")
	mustCreateWorkout(t, db, "w2", "Second", "2024-01-01 08:00:00")

	workouts, err = db.ListWorkouts()
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("got %d workouts, want 2", len(workouts))
	}
	if workouts[0].UUID != "w1" || workouts[1].UUID != "w2" {
		t.Errorf("unexpected order: %s, %s", workouts[0].UUID, workouts[1].UUID)
	}
}

func TestIdsAreNotReused(t *testing.T) {
	db := setupTestDB(t)

	first := mustCreateWorkout(t, db, "w1", "One", "2024-01-01 08:00:00")
	if err := db.DeleteWorkout("w1"); err != nil {
		t.Fatalf("DeleteWorkout failed: %v", err)
	}
	second := mustCreateWorkout(t, db, "w2", "Two", "2024-01-02 08:00:00")

	if second <= first {
		t.Errorf("new id %d should be greater than deleted id %d", second, first)
	}
}

func TestDuplicateUUIDRejected(t *testing.T) {
	tests := []struct {
		name   string
		create func(db *DB) error
		table  string
	}{
		{
			name: "workout",
			create: func(db *DB) error {
				_, err := db.CreateWorkout(models.NewWorkoutAt("Again", legDay).WithUUID("dup"))
				return err
			},
			table: "workouts",
		},
		{
			name: "predefined exercise",
			create: func(db *DB) error {
				_, err := db.CreatePredefinedExercise(&models.NewPredefinedExercise{UUID: "dup", Name: "Squat"})
				return err
			},
			table: "predefined_exercises",
		},
		{
			name: "message",
			create: func(db *DB) error {
				_, err := db.CreateMessage(&models.NewMessage{UUID: "dup", Content: "hi"})
				return err
			},
			table: "messages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			if err := tt.create(db); err != nil {
				t.Fatalf("first create failed: %v", err)
			}
			err := tt.create(db)
			if !errors.Is(err, ErrQuery) {
				t.Fatalf("expected ErrQuery, got %v", err)
			}
			if !IsConstraintViolation(err) {
				t.Errorf("expected constraint violation, got %v", err)
			}
			if got := countRows(t, db, tt.table); got != 1 {
				t.Errorf("%s rows = %d, want 1", tt.table, got)
			}
		})
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name string
		get  func() error
	}{
		{"workout by uuid", func() error { _, err := db.GetWorkoutByUUID("nope"); return err }},
		{"workout by id", func() error { _, err := db.GetWorkoutByID(42); return err }},
		{"exercise", func() error { _, err := db.GetExerciseByUUID("nope"); return err }},
		{"catalog by id", func() error { _, err := db.GetPredefinedExerciseByID(42); return err }},
		{"catalog by uuid", func() error { _, err := db.GetPredefinedExerciseByUUID("nope"); return err }},
		{"message", func() error { _, err := db.GetMessageByUUID("nope"); return err }},
		{"workout detail", func() error { _, err := db.GetWorkoutDetail("nope"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.get()
			if !IsNotFound(err) {
				t.Errorf("expected not found, got %v", err)
			}
			if KindOf(err) != ErrQuery {
				t.Errorf("KindOf = %v, want ErrQuery", KindOf(err))
			}
		})
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	mustCreateWorkout(t, db, "w1", "Leg Day", "2024-01-01 08:00:00")

	for i := 0; i < 2; i++ {
		if err := db.DeleteWorkout("w1"); err != nil {
			t.Fatalf("DeleteWorkout #%d failed: %v", i+1, err)
		}
	}
	if err := db.DeleteWorkoutByID(999); err != nil {
		t.Errorf("DeleteWorkoutByID on missing id failed: %v", err)
	}
	if err := db.DeleteExercise("missing"); err != nil {
		t.Errorf("DeleteExercise on missing uuid failed: %v", err)
	}
	if err := db.DeletePredefinedExercise("missing"); err != nil {
		t.Errorf("DeletePredefinedExercise on missing uuid failed: %v", err)
	}
	if err := db.DeleteMessage("missing"); err != nil {
		t.Errorf("DeleteMessage on missing uuid failed: %v", err)
	}
	if got := countRows(t, db, "workouts"); got != 0 {
		t.Errorf("workouts = %d, want 0", got)
	}
}

func TestExerciseRequiresExistingParents(t *testing.T) {
	db := setupTestDB(t)
	workoutID := mustCreateWorkout(t, db, "w1", "Leg Day", "2024-01-01 08:00:00")
	catalogID := mustCreateCatalogEntry(t, db, "p1", "Squat")

	tests := []struct {
		name         string
		workoutID    int64
		predefinedID int64
	}{
		{"missing workout", workoutID + 100, catalogID},
		{"missing catalog entry", workoutID, catalogID + 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.CreateExercise(models.NewExerciseFor(tt.workoutID, tt.predefinedID, 3, 10).WithUUID("e-" + tt.name))
			if !errors.Is(err, ErrQuery) {
				t.Fatalf("expected ErrQuery, got %v", err)
			}
			if !IsConstraintViolation(err) {
				t.Errorf("expected constraint violation, got %v", err)
			}
			if got := countRows(t, db, "exercises"); got != 0 {
				t.Errorf("exercises = %d, want 0", got)
			}
		})
	}
}

func TestExerciseWeight(t *testing.T) {
	db := setupTestDB(t)
	workoutID := mustCreateWorkout(t, db, "w1", "Leg Day", "2024-01-01 08:00:00")
	catalogID := mustCreateCatalogEntry(t, db, "p1", "Squat")

	if _, err := db.CreateExercise(models.NewExerciseFor(workoutID, catalogID, 3, 10).WithUUID("bodyweight")); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}
	if _, err := db.CreateExercise(models.NewExerciseFor(workoutID, catalogID, 5, 5).WithWeight(102.5).WithUUID("loaded")); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	bw, err := db.GetExerciseByUUID("bodyweight")
	if err != nil {
		t.Fatalf("GetExerciseByUUID failed: %v", err)
	}
	if bw.Weight != nil {
		t.Errorf("expected nil weight, got %v", *bw.Weight)
	}

	loaded, err := db.GetExerciseByUUID("loaded")
	if err != nil {
		t.Fatalf("GetExerciseByUUID failed: %v", err)
	}
	if loaded.Weight == nil || *loaded.Weight != 102.5 {
		t.Errorf("expected weight 102.5, got %v", loaded.Weight)
	}
	if loaded.Sets != 5 || loaded.Reps != 5 {
		t.Errorf("sets/reps = %v/%v, want 5/5", loaded.Sets, loaded.Reps)
	}
}

func TestListExercisesByWorkout(t *testing.T) {
	db := setupTestDB(t)
	w1 := mustCreateWorkout(t, db, "w1", "Leg Day", "2024-01-01 08:00:00")
	w2 := mustCreateWorkout(t, db, "w2", "Arm Day", "2024-01-02 08:00:00")
	p := mustCreateCatalogEntry(t, db, "p1", "Squat")

	for _, uuid := range []string{"a", "b"} {
		if _, err := db.CreateExercise(models.NewExerciseFor(w1, p, 3, 10).WithUUID(uuid)); err != nil {
			t.Fatalf("CreateExercise failed: %v", err)
		}
	}
	if _, err := db.CreateExercise(models.NewExerciseFor(w2, p, 3, 10).WithUUID("c")); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	list, err := db.ListExercisesByWorkout(w1)
	if err != nil {
		t.Fatalf("ListExercisesByWorkout failed: %v", err)
	}
	if len(list) != 2 || list[0].UUID != "a" || list[1].UUID != "b" {
		t.Errorf("unexpected exercises for w1: %+v", list)
	}

	empty, err := db.ListExercisesByWorkout(w2 + 100)
	if err != nil {
		t.Fatalf("ListExercisesByWorkout failed: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil list, got %v", empty)
	}
}

func TestDeleteWorkoutCascadesToExercises(t *testing.T) {
	db := setupTestDB(t)
	p := mustCreateCatalogEntry(t, db, "p1", "Squat")
	w := mustCreateWorkout(t, db, "w1", "Leg Day", "2024-01-01 08:00:00")

	if _, err := db.CreateExercise(models.NewExerciseFor(w, p, 3, 10).WithUUID("e1")); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	if err := db.DeleteWorkout("w1"); err != nil {
		t.Fatalf("DeleteWorkout failed: %v", err)
	}

	if _, err := db.GetExerciseByUUID("e1"); !IsNotFound(err) {
		t.Errorf("expected exercise to be gone, got %v", err)
	}
	if got := countRows(t, db, "predefined_exercises"); got != 1 {
		t.Errorf("catalog entries = %d, want 1", got)
	}
}

func TestDeleteReferencedCatalogEntryRestricted(t *testing.T) {
	db := setupTestDB(t)
	p := mustCreateCatalogEntry(t, db, "p1", "Squat")
	w := mustCreateWorkout(t, db, "w1", "Leg Day", "2024-01-01 08:00:00")

	if _, err := db.CreateExercise(models.NewExerciseFor(w, p, 3, 10).WithUUID("e1")); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	err := db.DeletePredefinedExercise("p1")
	if !IsConstraintViolation(err) {
		t.Fatalf("expected constraint violation, got %v", err)
	}

	if err := db.DeleteExercise("e1"); err != nil {
		t.Fatalf("DeleteExercise failed: %v", err)
	}
	if err := db.DeletePredefinedExercise("p1"); err != nil {
		t.Errorf("DeletePredefinedExercise after unlinking failed: %v", err)
	}
}

func TestCatalogOperations(t *testing.T) {
	db := setupTestDB(t)
	mustCreateCatalogEntry(t, db, "p2", "Bench Press")
	squat := mustCreateCatalogEntry(t, db, "p1", "Squat")

	list, err := db.ListPredefinedExercises()
	if err != nil {
		t.Fatalf("ListPredefinedExercises failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d entries, want 2", len(list))
	}

	byID, err := db.GetPredefinedExerciseByID(squat)
	if err != nil {
		t.Fatalf("GetPredefinedExerciseByID failed: %v", err)
	}
	if byID.Name != "Squat" || byID.UUID != "p1" {
		t.Errorf("unexpected entry: %+v", byID)
	}

	byUUID, err := db.GetPredefinedExerciseByUUID("p2")
	if err != nil {
		t.Fatalf("GetPredefinedExerciseByUUID failed: %v", err)
	}
	if byUUID.Name != "Bench Press" {
		t.Errorf("Name = %s, want Bench Press", byUUID.Name)
	}
}

func TestMessageOperations(t *testing.T) {
	db := setupTestDB(t)

	id, err := db.CreateMessage(&models.NewMessage{UUID: "m1", Content: "felt strong"})
	if err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	got, err := db.GetMessageByUUID("m1")
	if err != nil {
		t.Fatalf("GetMessageByUUID failed: %v", err)
	}
	if got.ID != id || got.Content != "felt strong" {
		t.Errorf("unexpected message: %+v", got)
	}

	if _, err := db.CreateMessage(models.NewMessageWith("second")); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	list, err := db.ListMessages()
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d messages, want 2", len(list))
	}

	if err := db.DeleteMessage("m1"); err != nil {
		t.Fatalf("DeleteMessage failed: %v", err)
	}
	if _, err := db.GetMessageByUUID("m1"); !IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestWorkoutDetail(t *testing.T) {
	db := setupTestDB(t)
	squat := mustCreateCatalogEntry(t, db, "p1", "Squat")
	lunge := mustCreateCatalogEntry(t, db, "p2", "Lunge")
	w := mustCreateWorkout(t, db, "w1", "Leg Day", "2024-01-01 08:00:00")

	for _, e := range []*models.NewExercise{
		models.NewExerciseFor(w, squat, 3, 10).WithUUID("e1"),
		models.NewExerciseFor(w, lunge, 3, 12).WithUUID("e2"),
		models.NewExerciseFor(w, squat, 1, 5).WithWeight(140).WithUUID("e3"),
	} {
		if _, err := db.CreateExercise(e); err != nil {
			t.Fatalf("CreateExercise failed: %v", err)
		}
	}

	detail, err := db.GetWorkoutDetail("w1")
	if err != nil {
		t.Fatalf("GetWorkoutDetail failed: %v", err)
	}
	if detail.Title != "Leg Day" {
		t.Errorf("Title = %s, want Leg Day", detail.Title)
	}

	want := []string{"Squat", "Lunge", "Squat"}
	if len(detail.Exercises) != len(want) {
		t.Fatalf("got %d exercises, want %d", len(detail.Exercises), len(want))
	}
	for i, name := range want {
		if detail.Exercises[i].Name != name {
			t.Errorf("exercise %d name = %s, want %s", i, detail.Exercises[i].Name, name)
		}
	}
}

func TestLegDayScenario(t *testing.T) {
	db := setupTestDB(t)

	p1, err := db.CreatePredefinedExercise(&models.NewPredefinedExercise{UUID: "p1", Name: "Squat"})
	if err != nil {
		t.Fatalf("CreatePredefinedExercise failed: %v", err)
	}
	if p1 != 1 {
		t.Errorf("first catalog id = %d, want 1", p1)
	}

	w1 := mustCreateWorkout(t, db, "w1", "Leg Day", "2024-01-01 08:00:00")

	if _, err := db.CreateExercise(&models.NewExercise{
		UUID:                 "e1",
		Sets:                 3,
		Reps:                 10,
		PredefinedExerciseID: p1,
		WorkoutID:            w1,
	}); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	list, err := db.ListExercisesByWorkout(w1)
	if err != nil {
		t.Fatalf("ListExercisesByWorkout failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d exercises, want 1", len(list))
	}
	e := list[0]
	if e.UUID != "e1" || e.Sets != 3 || e.Reps != 10 || e.Weight != nil {
		t.Errorf("unexpected exercise: %+v", e)
	}
	if e.PredefinedExerciseID != p1 || e.WorkoutID != w1 {
		t.Errorf("unexpected references: predefined=%d workout=%d", e.PredefinedExerciseID, e.WorkoutID)
	}

	if err := db.DeleteWorkout("w1"); err != nil {
		t.Fatalf("DeleteWorkout failed: %v", err)
	}
	if _, err := db.GetWorkoutByUUID("w1"); !IsNotFound(err) {
		t.Errorf("expected workout not found, got %v", err)
	}
	if _, err := db.GetExerciseByUUID("e1"); !IsNotFound(err) {
		t.Errorf("expected exercise not found, got %v", err)
	}
}
