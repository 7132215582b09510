package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"tasklite/internal/kv"
	"tasklite/internal/models"
)

// snapshotKey is the single key the full task collection lives under.
const snapshotKey = "tasks"

// Adapter persists the task collection as a JSON snapshot in a key-value
// store. Saves overwrite the previous snapshot; loads restore it.
type Adapter struct {
	kv kv.KV
}

// NewAdapter creates an adapter over the given key-value store.
func NewAdapter(store kv.KV) *Adapter {
	return &Adapter{kv: store}
}

// Load reads the persisted snapshot. An absent key yields an empty
// collection. A snapshot that fails to parse is discarded with a log line
// rather than propagated; losing history is recoverable, crashing is not.
func (a *Adapter) Load(ctx context.Context) ([]models.Task, error) {
	data, err := a.kv.Get(ctx, snapshotKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		log.Printf("discarding corrupt task snapshot: %v", err)
		return nil, nil
	}

	return tasks, nil
}

// Save serializes the full collection and overwrites the stored snapshot.
func (a *Adapter) Save(ctx context.Context, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := a.kv.Put(ctx, snapshotKey, data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}
