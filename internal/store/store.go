package store

import (
	"context"
	"time"

	"tasklite/internal/models"
)

// Stats summarizes the collection for the caller.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Remaining int `json:"remaining"`
}

// Store defines the task-list operations exposed to callers.
type Store interface {
	// Add creates a task from the given title and optional due date.
	// Whitespace-only titles are ignored and return nil.
	Add(ctx context.Context, title string, dueDate *time.Time) *models.Task

	// Toggle flips the completed flag of the task with the given id and
	// returns the updated task, or nil if no such task exists.
	Toggle(ctx context.Context, id int64) *models.Task

	// Delete removes the task with the given id; absent ids are a no-op.
	Delete(ctx context.Context, id int64)

	// ClearCompleted removes every completed task.
	ClearCompleted(ctx context.Context)

	// List returns the tasks newest-first.
	List() []models.Task

	// Stats reports total, completed, and remaining counts.
	Stats() Stats
}
