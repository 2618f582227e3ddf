package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskboard/internal/api"
	apiMiddleware "github.com/phrazzld/taskboard/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewCORSMiddleware(app.config.CORS))

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/stats", taskHandler.GetTaskStats)
		r.Put("/{id}", taskHandler.ToggleTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.metricsRegistry != nil {
		r.Method(http.MethodGet, app.config.Metrics.Path, promhttp.HandlerFor(
			app.metricsRegistry,
			promhttp.HandlerOpts{ErrorLog: slogErrorLogger{app.logger}},
		))
	}

	return r
}

// slogErrorLogger adapts a slog.Logger to promhttp's error logger.
type slogErrorLogger struct {
	logger *slog.Logger
}

func (l slogErrorLogger) Println(v ...interface{}) {
	l.logger.Error("metrics handler error", "error", fmt.Sprint(v...))
}
