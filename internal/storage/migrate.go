// ABOUTME: Schema migration manager backed by a ledger table inside the store.
// ABOUTME: Applies pending migrations in order, each in its own transaction.
package storage

import (
	"fmt"
	"time"
)

// MigrationStatus describes one known migration and whether it is applied.
type MigrationStatus struct {
	Migration
	Applied   bool
	AppliedAt string
}

// Migrate applies every pending migration. Already-applied versions are
// skipped, so calling it repeatedly is safe.
func (d *DB) Migrate() error {
	if _, err := d.db.Exec(ledgerSchema); err != nil {
		return newError(ErrMigration, "create migration ledger", err)
	}

	applied, err := d.appliedVersions()
	if err != nil {
		return newError(ErrMigration, "read migration ledger", err)
	}

	for _, m := range migrations {
		if _, ok := applied[m.Version]; ok {
			continue
		}
		if err := d.apply(m); err != nil {
			return newError(ErrMigration, fmt.Sprintf("apply migration %d (%s)", m.Version, m.Name), err)
		}
		d.logger.Info("applied migration", "version", m.Version, "name", m.Name)
	}

	return nil
}

// SchemaVersion returns the highest applied migration version, 0 if none.
func (d *DB) SchemaVersion() (int, error) {
	var version int
	err := d.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, queryError("schema version", err)
	}
	return version, nil
}

// MigrationStatus reports every known migration with its applied state.
func (d *DB) MigrationStatus() ([]MigrationStatus, error) {
	applied, err := d.appliedVersions()
	if err != nil {
		return nil, queryError("migration status", err)
	}

	out := make([]MigrationStatus, 0, len(migrations))
	for _, m := range migrations {
		at, ok := applied[m.Version]
		out = append(out, MigrationStatus{Migration: m, Applied: ok, AppliedAt: at})
	}
	return out, nil
}

func (d *DB) apply(m Migration) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)",
		m.Version, m.Name, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("record version: %w", err)
	}

	return tx.Commit()
}

func (d *DB) appliedVersions() (map[int]string, error) {
	rows, err := d.db.Query("SELECT version, applied_at FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]string)
	for rows.Next() {
		var version int
		var at string
		if err := rows.Scan(&version, &at); err != nil {
			return nil, err
		}
		applied[version] = at
	}
	return applied, rows.Err()
}
