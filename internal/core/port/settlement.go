package port

import (
	"context"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
)

// SettlementGateway moves funds on the settlement network. Submit is
// all-or-nothing for the payments of one instruction. A context timeout
// is reported as a failure; callers never retry automatically.
type SettlementGateway interface {
	Submit(ctx context.Context, in domain.Instruction) (domain.Receipt, error)
	// AccountBalance returns ErrAccountNotFound for unfunded addresses.
	AccountBalance(ctx context.Context, address string) (decimal.Decimal, error)
}

// Task is a unit of background work.
type Task func(ctx context.Context) error

// TaskQueue hands work to a background pool. Submit never blocks; it
// returns ErrQueueFull when the queue is saturated.
type TaskQueue interface {
	Submit(name string, task Task) error
}
