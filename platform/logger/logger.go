// Package logger provides structured logging infrastructure for the engine.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging.
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment.
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPanel returns a logger scoped to a panel ID, mirroring the teacher's
// request-scoped WithRequestID helper.
func (l *Logger) WithPanel(panelID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("panel_id", panelID)),
	}
}

// CatalogLoaded logs a successful catalog load.
func (l *Logger) CatalogLoaded(moduleCount, ruleCount int) {
	l.Info("catalog_loaded",
		slog.Int("module_count", moduleCount),
		slog.Int("placement_rule_count", ruleCount),
	)
}

// SolverFallback logs that the engine fell back to the greedy selector.
func (l *Logger) SolverFallback(reason string) {
	l.Warn("solver_fallback",
		slog.String("reason", reason),
	)
}

// OptimizationComplete logs the outcome of a single panel optimization.
func (l *Logger) OptimizationComplete(panelID, status string, moduleCount int, costCents int64) {
	l.Info("optimization_complete",
		slog.String("panel_id", panelID),
		slog.String("status", status),
		slog.Int("module_count", moduleCount),
		slog.Int64("estimated_cost_cents", costCents),
	)
}
