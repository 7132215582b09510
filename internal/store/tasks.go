package store

import (
	"context"
	"log"
	"sync"
	"time"

	"tasklite/internal/models"
)

// TaskStore holds the authoritative in-memory task collection, newest
// first. Every mutation is followed by a synchronous snapshot save;
// persistence is best-effort, so a failed save leaves the in-memory state
// authoritative for the rest of the session.
type TaskStore struct {
	mu      sync.Mutex
	tasks   []models.Task
	nextID  int64
	adapter *Adapter
}

// NewTaskStore restores the persisted collection through the adapter and
// seeds the id counter past the highest persisted id. A failed restore is
// not fatal: the session starts empty and the next save overwrites the
// snapshot.
func NewTaskStore(ctx context.Context, adapter *Adapter) *TaskStore {
	tasks, err := adapter.Load(ctx)
	if err != nil {
		log.Printf("failed to restore tasks, starting empty: %v", err)
		tasks = nil
	}

	var maxID int64
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	return &TaskStore{
		tasks:   tasks,
		nextID:  maxID + 1,
		adapter: adapter,
	}
}

// Add creates a task and prepends it to the collection. Titles that are
// empty after trimming are ignored; nil is returned and nothing is saved.
func (s *TaskStore) Add(ctx context.Context, title string, dueDate *time.Time) *models.Task {
	trimmed, ok := models.NormalizeTitle(title)
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:        s.nextID,
		Title:     trimmed,
		Completed: false,
		CreatedAt: time.Now(),
		DueDate:   dueDate,
	}
	s.nextID++

	s.tasks = append([]models.Task{task}, s.tasks...)
	s.persist(ctx)

	return &task
}

// Toggle flips the completed flag of the task with the given id. Unknown
// ids are a no-op and return nil.
func (s *TaskStore) Toggle(ctx context.Context, id int64) *models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			s.persist(ctx)
			task := s.tasks[i]
			return &task
		}
	}

	return nil
}

// Delete removes the task with the given id. Unknown ids are a no-op.
func (s *TaskStore) Delete(ctx context.Context, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// ClearCompleted removes every completed task. The save is skipped when
// nothing was removed.
func (s *TaskStore) ClearCompleted(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.tasks[:0:0]
	for _, t := range s.tasks {
		if !t.Completed {
			remaining = append(remaining, t)
		}
	}

	if len(remaining) == len(s.tasks) {
		return
	}

	s.tasks = remaining
	s.persist(ctx)
}

// List returns a copy of the collection, newest first.
func (s *TaskStore) List() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Stats reports the derived counts; Total == Completed + Remaining.
func (s *TaskStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Remaining = stats.Total - stats.Completed

	return stats
}

// persist writes the current snapshot. Failures are logged, never
// propagated: the in-memory collection stays usable either way.
// Callers must hold the mutex.
func (s *TaskStore) persist(ctx context.Context) {
	if err := s.adapter.Save(ctx, s.tasks); err != nil {
		log.Printf("failed to persist tasks: %v", err)
	}
}
