package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tasklite/internal/handlers"
	"tasklite/internal/kv"
	"tasklite/internal/store"
)

func main() {
	// Configuration
	port := getEnv("PORT", "8080")
	dbPath := getEnv("DB_PATH", "./data/tasklite.db")

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Initialize storage
	db, err := kv.NewSQLiteKV(dbPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer db.Close()

	s := store.NewTaskStore(context.Background(), store.NewAdapter(db))

	// Initialize handlers
	h := handlers.New(s)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Task API routes
	r.Post("/api/tasks", h.CreateTask)
	r.Post("/api/tasks/clear-completed", h.ClearCompleted)
	r.Post("/api/tasks/{id}/toggle", h.ToggleTask)
	r.Delete("/api/tasks/{id}", h.DeleteTask)
	r.Get("/api/tasks", h.ListTasks)
	r.Get("/api/stats", h.Stats)

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting server on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
