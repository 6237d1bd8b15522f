package usecase

import (
	"context"
	"strings"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

// LookupSettlement resolves the memo attached to a settlement payment back
// to the event it paid for.
func (u *AdUseCase) LookupSettlement(ctx context.Context, memo string) (domain.Event, error) {
	memo = strings.TrimSpace(memo)
	if memo == "" || len(memo) > maxMemoLength {
		return domain.Event{}, port.NewValidationError("memo", "invalid settlement memo")
	}
	kind, id, err := u.memos.Decode(memo)
	if err != nil {
		return domain.Event{}, port.NewValidationError("memo", "invalid settlement memo")
	}
	return u.events.GetEvent(ctx, kind, id)
}
