package usecase

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/port"
)

var hundred = decimal.NewFromInt(100)

// RewardStatus reports whether the viewer could collect a reward on the
// site right now. A ledger failure is answered with eligible=false.
func (u *AdUseCase) RewardStatus(ctx context.Context, req port.RewardStatusRequest) (*port.RewardStatus, error) {
	if err := u.check(req); err != nil {
		return nil, err
	}
	id, err := u.identity.Resolve(req.Viewer)
	if err != nil {
		return nil, err
	}

	cooldown := u.cooldownFor(id)
	status := &port.RewardStatus{
		Identity: id,
		Cooldown: cooldown,
		Rates: port.RewardRates{
			ImpressionReward:      u.cfg.ImpressionReward,
			ClickRewardPercentage: u.cfg.ClickRewardFraction.Mul(hundred),
		},
	}

	eligible, err := u.ledger.CanReward(ctx, id, req.SiteID, cooldown)
	if err != nil {
		u.log.Warn("reward status: ledger", slog.String("site_id", req.SiteID), slog.Any("error", err))
		return status, nil
	}
	entry, err := u.ledger.Stats(ctx, id.Value, req.SiteID)
	if err != nil {
		u.log.Warn("reward status: ledger stats", slog.String("site_id", req.SiteID), slog.Any("error", err))
		return status, nil
	}
	status.Eligible = eligible
	status.Stats = entry
	if entry != nil && !eligible {
		status.CooldownRemaining = entry.CooldownRemaining(u.now(), cooldown)
	}
	return status, nil
}
