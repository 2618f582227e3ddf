package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard/internal/config"
	"github.com/phrazzld/taskboard/internal/events"
	"github.com/phrazzld/taskboard/internal/platform/memory"
	"github.com/phrazzld/taskboard/internal/platform/metrics"
	"github.com/phrazzld/taskboard/internal/service"
	"github.com/phrazzld/taskboard/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores
	taskStore store.TaskStore

	// Service interfaces
	taskService service.TaskService

	// Event system
	eventEmitter *events.InMemoryEventEmitter

	// Metrics; nil when disabled
	metricsRegistry *prometheus.Registry
	recorder        *metrics.Recorder
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	app.taskStore = memory.NewMemoryTaskStore(logger)
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	if cfg.Metrics.Enabled {
		if err := app.setupMetrics(); err != nil {
			return nil, fmt.Errorf("failed to set up metrics: %w", err)
		}
	}

	logger.Info("Application initialized successfully",
		"event_handlers", app.eventEmitter.HandlerCount(),
		"metrics_enabled", cfg.Metrics.Enabled)
	return app, nil
}

// setupMetrics creates a dedicated registry and subscribes the recorder to task events.
func (app *application) setupMetrics() error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder, err := metrics.NewRecorder(metrics.DefaultNamespace, reg, app.taskService.TaskStats, app.logger)
	if err != nil {
		return err
	}

	app.eventEmitter.RegisterHandler(recorder)
	app.metricsRegistry = reg
	app.recorder = recorder
	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
// Tasks live only in memory and are discarded here.
func (app *application) cleanup() {
	if ms, ok := app.taskStore.(*memory.MemoryTaskStore); ok {
		app.logger.Info("Discarding in-memory tasks", "count", ms.Len())
	}
}
