package settlement

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

var _ port.SettlementGateway = (*Simulated)(nil)

// Simulated is an in-process settlement network. It keeps balances in
// memory, credits every destination of a successful instruction and
// answers repeated idempotency keys with the original receipt. It is used
// when no contract API is configured.
type Simulated struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	receipts map[string]domain.Receipt
	fail     func(domain.Instruction) error
}

type SimulatedOption func(*Simulated)

// WithFailure makes Submit return the error produced by fn when it is
// not nil.
func WithFailure(fn func(domain.Instruction) error) SimulatedOption {
	return func(s *Simulated) { s.fail = fn }
}

func NewSimulated(opts ...SimulatedOption) *Simulated {
	s := &Simulated{
		balances: make(map[string]decimal.Decimal),
		receipts: make(map[string]domain.Receipt),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fund creates the account if needed and adds amount to it.
func (s *Simulated) Fund(address string, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[address] = s.balances[address].Add(amount)
}

func (s *Simulated) Submit(ctx context.Context, in domain.Instruction) (domain.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %w", port.ErrSettlementFailed, err)
	}
	if len(in.Payments) == 0 {
		return domain.Receipt{}, fmt.Errorf("%w: instruction has no payments", port.ErrSettlementFailed)
	}
	for _, p := range in.Payments {
		if p.Destination == "" || !p.Amount.IsPositive() {
			return domain.Receipt{}, fmt.Errorf("%w: invalid payment to %q of %s", port.ErrSettlementFailed, p.Destination, p.Amount)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if in.IdempotencyKey != "" {
		if r, ok := s.receipts[in.IdempotencyKey]; ok {
			return r, nil
		}
	}
	if s.fail != nil {
		if err := s.fail(in); err != nil {
			return domain.Receipt{}, fmt.Errorf("%w: %w", port.ErrSettlementFailed, err)
		}
	}

	for _, p := range in.Payments {
		s.balances[p.Destination] = s.balances[p.Destination].Add(p.Amount)
	}
	r := domain.Receipt{Reference: "sim-" + uuid.NewString()}
	if in.IdempotencyKey != "" {
		s.receipts[in.IdempotencyKey] = r
	}
	return r, nil
}

func (s *Simulated) AccountBalance(_ context.Context, address string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.balances[address]
	if !ok {
		return decimal.Zero, fmt.Errorf("account %s: %w", address, port.ErrAccountNotFound)
	}
	return b, nil
}
