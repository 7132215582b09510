package handlers

import (
	"net/http"
)

// CreateTask creates a new task from form values. A title that is empty
// after trimming is ignored without an error, matching the store contract.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	dueDate := parseDate(r.FormValue("due_date"))
	if r.FormValue("due_date") != "" && dueDate == nil {
		respondError(w, http.StatusBadRequest, "invalid due date")
		return
	}

	task := h.store.Add(ctx, r.FormValue("title"), dueDate)
	if task == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusCreated, newTaskView(*task))
}

// ToggleTask flips the completion status of a task.
func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task := h.store.Toggle(ctx, id)
	if task == nil {
		// Unknown ids are a no-op, not an error.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusOK, newTaskView(*task))
}

// DeleteTask deletes a task.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	h.store.Delete(ctx, id)
	w.WriteHeader(http.StatusOK)
}

// ClearCompleted removes every completed task.
func (h *Handlers) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	h.store.ClearCompleted(r.Context())
	respondJSON(w, http.StatusOK, h.store.Stats())
}

// ListTasks returns all tasks, newest first, with due-date flags.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks := h.store.List()

	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, newTaskView(t))
	}

	respondJSON(w, http.StatusOK, views)
}

// Stats returns the total/completed/remaining counts.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Stats())
}
