// ABOUTME: Versioned schema migrations for the workout store.
// ABOUTME: Changes are additive: messages, then workouts, then the exercise tables.
package storage

// Migration is one versioned schema change.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_messages",
		SQL: `
		CREATE TABLE messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uuid TEXT NOT NULL UNIQUE,
			content TEXT NOT NULL
		);
		`,
	},
	{
		Version: 2,
		Name:    "create_workouts",
		SQL: `
		CREATE TABLE workouts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uuid TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			work_date TEXT NOT NULL
		);

		CREATE INDEX idx_workouts_work_date ON workouts(work_date DESC);
		`,
	},
	{
		Version: 3,
		Name:    "create_predefined_exercises_and_exercises",
		SQL: `
		CREATE TABLE predefined_exercises (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uuid TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL
		);

		CREATE TABLE exercises (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uuid TEXT NOT NULL UNIQUE,
			sets REAL NOT NULL,
			reps REAL NOT NULL,
			weight REAL,
			predefined_exercise_id INTEGER NOT NULL,
			workout_id INTEGER NOT NULL,
			FOREIGN KEY (predefined_exercise_id) REFERENCES predefined_exercises(id) ON DELETE RESTRICT,
			FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
		);

		CREATE INDEX idx_exercises_workout ON exercises(workout_id);
		CREATE INDEX idx_exercises_predefined ON exercises(predefined_exercise_id);
		`,
	},
}

// Migrations returns the ordered list of known migrations.
func Migrations() []Migration {
	out := make([]Migration, len(migrations))
	copy(out, migrations)
	return out
}

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at TEXT NOT NULL
)`
