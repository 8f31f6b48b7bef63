// ABOUTME: Workout model and its pre-insert NewWorkout variant.
// ABOUTME: Also parses the work date formats accepted by the CLI and MCP callers.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WorkDateLayout is the zone-less layout work dates are stored and displayed in.
const WorkDateLayout = "2006-01-02 15:04:05"

// workDateLayouts lists accepted input layouts, most common first.
var workDateLayouts = []string{
	"2006-01-02T15:04",
	WorkDateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// Workout is a logged exercise session.
type Workout struct {
	ID       int64     `json:"id" yaml:"id"`
	UUID     string    `json:"uuid" yaml:"uuid"`
	Title    string    `json:"title" yaml:"title"`
	WorkDate time.Time `json:"work_date" yaml:"work_date"`
}

// NewWorkout is a workout that has not been inserted yet.
type NewWorkout struct {
	UUID     string
	Title    string
	WorkDate time.Time
}

// NewWorkoutAt creates a NewWorkout with a freshly generated UUID.
func NewWorkoutAt(title string, workDate time.Time) *NewWorkout {
	return &NewWorkout{
		UUID:     uuid.NewString(),
		Title:    title,
		WorkDate: NormalizeWorkDate(workDate),
	}
}

// WithUUID overrides the generated UUID.
func (w *NewWorkout) WithUUID(id string) *NewWorkout {
	w.UUID = id
	return w
}

// ParseWorkDate parses a work date in one of the accepted layouts.
// The result carries no zone information (UTC location).
func ParseWorkDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range workDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid work date %q: expected YYYY-MM-DDTHH:MM or YYYY-MM-DD HH:MM:SS", s)
}

// NormalizeWorkDate drops the zone and sub-second part, keeping the wall clock.
func NormalizeWorkDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// FormatWorkDate renders t in WorkDateLayout.
func FormatWorkDate(t time.Time) string {
	return NormalizeWorkDate(t).Format(WorkDateLayout)
}
