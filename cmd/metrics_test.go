package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"stellar-ads/internal/adapter/worker"
	"stellar-ads/internal/core/port"
)

func TestTaskErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: %w", port.ErrSettlementFailed, context.DeadlineExceeded), "timeout"},
		{fmt.Errorf("submit: %w", port.ErrSettlementFailed), "settlement"},
		{fmt.Errorf("reserve: %w", port.ErrBudgetExhausted), "budget"},
		{fmt.Errorf("grant: %w", port.ErrStoreUnavailable), "store"},
		{errors.New("boom"), "other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, taskErrorKind(tt.err), tt.err.Error())
	}
}

func TestRecordTaskError(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	before := int64(0)
	if v, ok := taskErrors.Get("settlement").(interface{ Value() int64 }); ok {
		before = v.Value()
	}

	recordTaskError(log, worker.TaskError{Name: "settle-click-1", Err: port.ErrSettlementFailed})

	v, ok := taskErrors.Get("settlement").(interface{ Value() int64 })
	if assert.True(t, ok) {
		assert.Equal(t, before+1, v.Value())
	}
}

func TestRootCommandWiring(t *testing.T) {
	cmd := rootCmd()
	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "seed"}, names)
}
