package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tasklite/internal/models"
	"tasklite/internal/store"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	store store.Store
}

// New creates a new Handlers instance.
func New(s store.Store) *Handlers {
	return &Handlers{store: s}
}

// taskView is a task decorated with the due-date flags the caller renders.
// Overdue follows the display rule: a completed task is never shown overdue.
type taskView struct {
	models.Task
	Overdue  bool `json:"overdue"`
	DueToday bool `json:"dueToday"`
}

func newTaskView(t models.Task) taskView {
	return taskView{
		Task:     t,
		Overdue:  t.IsOverdue() && !t.Completed,
		DueToday: t.IsDueToday(),
	}
}

// parseID extracts and parses an integer ID from URL parameters.
func parseID(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	return strconv.ParseInt(idStr, 10, 64)
}

// parseDate parses a date string in YYYY-MM-DD format.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	w.Write([]byte(message))
}

// respondJSON writes data as a JSON response body.
func respondJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
