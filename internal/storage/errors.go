// ABOUTME: Closed error taxonomy for the workout store.
// ABOUTME: Wraps filesystem, connection, query and migration failures with their cause.
package storage

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	ErrFilesystem          = errors.New("filesystem error")
	ErrCouldNotConnect     = errors.New("could not connect to database")
	ErrCouldNotConvertPath = errors.New("could not convert database path to string")
	ErrQuery               = errors.New("could not query database")
	ErrMigration           = errors.New("could not migrate database")
)

// ErrNotFound is the cause carried by an ErrQuery error when no row matched.
var ErrNotFound = errors.New("not found")

// Error is a store failure of a given kind, carrying the original cause.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func queryError(op string, err error) error {
	return newError(ErrQuery, op, err)
}

func notFound(op, entity string, key any) error {
	return newError(ErrQuery, op, fmt.Errorf("%w: %s %v", ErrNotFound, entity, key))
}

// KindOf returns the kind of a store error, or nil if err is not one.
func KindOf(err error) error {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return nil
}

// IsNotFound reports whether err is a query error for a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrQuery) && errors.Is(err, ErrNotFound)
}

// IsConstraintViolation reports whether err was caused by a UNIQUE, FOREIGN KEY
// or other SQLite constraint failing.
func IsConstraintViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}
