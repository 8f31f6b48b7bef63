// ABOUTME: SQLite database connection and lifecycle management.
// ABOUTME: Resolves the per-user database path and opens a migrated handle.
package storage

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	_ "modernc.org/sqlite"
)

const (
	appDirName = ".workout_track"
	dbFileName = "database.db"
)

// pragmas are applied to every pooled connection through the DSN.
var pragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
}

// DB wraps the SQLite database connection.
type DB struct {
	db     *sql.DB
	dbPath string
	logger *log.Logger

	closeOnce sync.Once
	closeErr  error
}

// Option configures Open.
type Option func(*DB)

// WithLogger sets the logger used for lifecycle and migration events.
func WithLogger(l *log.Logger) Option {
	return func(d *DB) {
		if l != nil {
			d.logger = l
		}
	}
}

// Open opens or creates the database at dbPath and applies pending migrations.
// The path is handed to the driver as a DSN with pragmas appended after a '?',
// so a path that itself contains '?' fails with ErrCouldNotConvertPath.
func Open(dbPath string, opts ...Option) (*DB, error) {
	d := &DB{dbPath: dbPath, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(d)
	}

	if err := validatePath(dbPath); err != nil {
		return nil, newError(ErrCouldNotConvertPath, "open", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, newError(ErrFilesystem, "create data directory", err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, newError(ErrCouldNotConnect, "open database", err)
	}
	// SQLite serializes writers; one connection keeps pragmas and locks simple.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, newError(ErrCouldNotConnect, "open database", err)
	}

	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, newError(ErrFilesystem, "set database permissions", err)
	}

	d.db = db
	d.logger.Debug("opened database", "path", dbPath)

	if err := d.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return d, nil
}

// OpenDefault opens the database at the default per-user path.
func OpenDefault(opts ...Option) (*DB, error) {
	path, err := DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// DataDir returns the per-user application directory (~/.workout_track).
func DataDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", newError(ErrFilesystem, "resolve home directory", err)
	}
	if home == "" {
		return "", newError(ErrFilesystem, "resolve home directory", fmt.Errorf("empty home directory"))
	}
	return filepath.Join(home, appDirName), nil
}

// DefaultDBPath returns the default database path inside DataDir.
func DefaultDBPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFileName), nil
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.dbPath
}

// Close closes the database connection. Later calls return the first result;
// queries on a closed DB fail with ErrQuery.
func (d *DB) Close() error {
	d.closeOnce.Do(func() {
		d.closeErr = d.db.Close()
		d.logger.Debug("closed database", "path", d.dbPath)
	})
	return d.closeErr
}

func validatePath(p string) error {
	switch {
	case p == "":
		return fmt.Errorf("empty path")
	case strings.ContainsRune(p, 0):
		return fmt.Errorf("path contains NUL byte")
	case !utf8.ValidString(p):
		return fmt.Errorf("path is not valid UTF-8")
	case strings.ContainsRune(p, '?'):
		return fmt.Errorf("path contains '?'")
	}
	return nil
}

func dsn(path string) string {
	params := make([]string, 0, len(pragmas))
	for _, p := range pragmas {
		params = append(params, "_pragma="+p)
	}
	return path + "?" + strings.Join(params, "&")
}
