package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/recipe-ai/internal/config"
	"github.com/phrazzld/recipe-ai/internal/generation"
	"github.com/phrazzld/recipe-ai/internal/platform/gemini"
	"github.com/phrazzld/recipe-ai/internal/session"
	"github.com/phrazzld/recipe-ai/internal/task"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator generation.Generator

	// Task handling
	taskQueue  *task.TaskQueue
	workerPool *task.WorkerPool

	sessions    *session.Manager
	stopSweeper context.CancelFunc
}

// newApplication creates a new application instance with all dependencies initialized.
// A nil generator is replaced by a Gemini-backed one built from cfg.LLM.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	if generator == nil {
		g, err := gemini.NewGeminiGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
		}
		generator = g
	}
	app.generator = generator
	logger.Info("LLM generator initialized successfully")

	app.taskQueue = task.NewTaskQueue(cfg.Task.QueueSize, logger)
	app.workerPool = task.NewWorkerPool(app.taskQueue, task.WorkerPoolConfig{
		WorkerCount: cfg.Task.WorkerCount,
	}, logger)
	app.workerPool.SetErrorHandler(func(t task.Task, err error) {
		logger.Debug("generation task finished with error",
			"task_id", t.ID(),
			"task_type", t.Type())
	})
	app.workerPool.Start()

	app.sessions = session.NewManager(app.generator, app.taskQueue, session.ManagerConfig{
		TTL: cfg.Session.TTL(),
	}, logger)

	sweepCtx, cancel := context.WithCancel(context.Background())
	app.stopSweeper = cancel
	if interval := cfg.Session.SweepInterval(); interval > 0 {
		go app.sessions.Run(sweepCtx, interval)
	}

	logger.Info("Application initialized successfully",
		"worker_count", cfg.Task.WorkerCount,
		"queue_size", cfg.Task.QueueSize,
		"session_ttl", cfg.Session.TTL().String())
	return app, nil
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
func (app *application) cleanup() {
	if app.stopSweeper != nil {
		app.stopSweeper()
	}

	if app.sessions != nil {
		app.sessions.CloseAll()
	}

	if app.taskQueue != nil {
		app.logger.Info("Draining task queue", "pending_tasks", app.taskQueue.Len())
		app.taskQueue.Close()
	}

	if app.workerPool != nil {
		app.workerPool.Stop()
	}

	app.logger.Info("Application shutdown completed")
}
