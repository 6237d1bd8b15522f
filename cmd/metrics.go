package main

import (
	"context"
	"errors"
	"expvar"
	"log/slog"

	"stellar-ads/internal/adapter/worker"
	"stellar-ads/internal/core/port"
)

// taskErrors counts failed background tasks by cause. It is served on
// /api/v1/debug/vars.
var taskErrors = expvar.NewMap("settlement_task_errors")

func taskErrorKind(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, port.ErrSettlementFailed):
		return "settlement"
	case errors.Is(err, port.ErrBudgetExhausted):
		return "budget"
	case errors.Is(err, port.ErrStoreUnavailable):
		return "store"
	default:
		return "other"
	}
}

func recordTaskError(log *slog.Logger, te worker.TaskError) {
	kind := taskErrorKind(te.Err)
	taskErrors.Add(kind, 1)
	log.Error("background task failed",
		slog.String("task", te.Name),
		slog.String("kind", kind),
		slog.Any("error", te.Err))
}
