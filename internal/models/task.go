package models

import (
	"strings"
	"time"
)

// Task represents a single item on the task list.
type Task struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"createdAt"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
}

// NormalizeTitle trims surrounding whitespace and reports whether anything
// is left. A task is never created with an empty title.
func NormalizeTitle(title string) (string, bool) {
	trimmed := strings.TrimSpace(title)
	return trimmed, trimmed != ""
}

// IsOverdue returns true if the task's due date falls on a calendar day
// strictly before today. Time of day is ignored; completion status is a
// display concern layered on top by the caller.
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil {
		return false
	}
	return dayOrdinal(*t.DueDate) < dayOrdinal(time.Now())
}

// IsDueToday returns true if the task's due date falls on today's calendar day.
func (t *Task) IsDueToday() bool {
	if t.DueDate == nil {
		return false
	}
	return dayOrdinal(*t.DueDate) == dayOrdinal(time.Now())
}

// dayOrdinal collapses a time to its calendar day, read in the zone the
// value carries. Due dates are date-only values; shifting them into the
// host zone would move their midnight across a day boundary.
func dayOrdinal(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
