package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

// RegisterImpression records that an ad was shown. When the viewer is
// outside its cooldown the reward is granted in the ledger right away
// and paid by a background task; the returned status is then pending.
func (u *AdUseCase) RegisterImpression(ctx context.Context, req port.ImpressionRequest) (*port.ImpressionResult, error) {
	if err := u.check(req); err != nil {
		return nil, err
	}
	site, err := u.store.GetSite(ctx, req.SiteID)
	if err != nil {
		return nil, err
	}
	if site.Disabled {
		return nil, fmt.Errorf("site %q disabled: %w", site.ID, port.ErrNotFound)
	}
	campaign, err := u.store.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	id, err := u.identity.Resolve(req.Viewer)
	if err != nil {
		return nil, err
	}

	now := u.now()
	cooldown := u.cooldownFor(id)
	amount := decimal.Zero
	if !id.Anonymous() {
		amount = u.cfg.ImpressionReward
	}
	ev := domain.Event{
		ID:           u.ids.Generate(),
		Kind:         domain.KindImpression,
		CampaignID:   campaign.ID,
		SiteID:       site.ID,
		Identity:     id,
		IPAddress:    req.Viewer.IPAddress,
		UserAgent:    req.Viewer.UserAgent,
		Cost:         decimal.Zero,
		RewardAmount: decimal.Zero,
		Status:       domain.StatusSkipped,
		CreatedAt:    now,
	}
	res := &port.ImpressionResult{EventID: ev.ID, Reward: decimal.Zero, Status: domain.StatusSkipped}

	// paused or exhausted campaigns are not servable; the view is recorded
	// but nothing is granted
	if !campaign.Eligible() {
		if err = u.events.CreateEvent(ctx, ev); err != nil {
			return nil, err
		}
		res.Registered = true
		return res, nil
	}

	grant := domain.RewardGrant{
		Identity:   id,
		SiteID:     site.ID,
		CampaignID: campaign.ID,
		Kind:       domain.KindImpression,
		Amount:     amount,
		Cooldown:   cooldown,
	}
	entry, err := u.ledger.Grant(ctx, grant)
	switch {
	case errors.Is(err, port.ErrCooldownActive):
		res.CooldownRemaining = entry.CooldownRemaining(now, cooldown)
	case err != nil:
		// fail closed: the ad was seen but nothing is paid
		u.log.Error("impression: grant reward",
			slog.String("identity", id.Short()), slog.String("site_id", site.ID), slog.Any("error", err))
	default:
		res.Eligible = true
	}

	if !res.Eligible || amount.IsZero() {
		if err = u.events.CreateEvent(ctx, ev); err != nil {
			if res.Eligible {
				u.revert(ctx, grant, entry)
			}
			return nil, err
		}
		res.Registered = true
		return res, nil
	}

	ev.Status = domain.StatusPending
	ev.RewardAmount = amount
	if err = u.events.CreateEvent(ctx, ev); err != nil {
		u.revert(ctx, grant, entry)
		return nil, err
	}
	res.Registered = true

	name := fmt.Sprintf("settle-impression-%d", ev.ID)
	if err = u.queue.Submit(name, u.settleImpression(ev, &heldGrant{grant: grant, entry: entry})); err != nil {
		u.log.Error("impression: queue settlement", slog.Int64("event_id", ev.ID.Int64()), slog.Any("error", err))
		u.revert(ctx, grant, entry)
		if ferr := u.finalize(ctx, ev, domain.Outcome{Status: domain.StatusFailed, RewardAmount: decimal.Zero}); ferr != nil {
			u.log.Error("impression: finalize", slog.Any("error", ferr))
		}
		res.Status = domain.StatusFailed
		return res, nil
	}

	res.Status = domain.StatusPending
	res.Reward = amount
	return res, nil
}

func (u *AdUseCase) settleImpression(ev domain.Event, held *heldGrant) port.Task {
	return func(ctx context.Context) error {
		memo, err := u.memos.Encode(ev.Kind, ev.ID)
		if err != nil {
			return u.failSettlement(ctx, ev, held, err)
		}
		receipt, err := u.gateway.Submit(ctx, domain.Instruction{
			IdempotencyKey: idempotencyKey(ev),
			Memo:           memo,
			Payments:       []domain.Payment{{Destination: ev.Identity.Value, Amount: ev.RewardAmount}},
		})
		if err != nil {
			return u.failSettlement(ctx, ev, held, err)
		}

		u.log.Info("impression reward paid",
			slog.Int64("event_id", ev.ID.Int64()),
			slog.String("identity", ev.Identity.Short()),
			slog.String("amount", ev.RewardAmount.String()),
			slog.String("reference", receipt.Reference))
		return u.finalize(ctx, ev, domain.Outcome{
			Status:        domain.StatusCompleted,
			RewardAmount:  ev.RewardAmount,
			SettlementRef: receipt.Reference,
		})
	}
}

// heldGrant is a ledger grant that has to be reverted if its settlement
// fails.
type heldGrant struct {
	grant domain.RewardGrant
	entry domain.LedgerEntry
}

// failSettlement compensates the ledger and records the event as failed.
// The returned error carries the cause for the dispatcher error channel.
func (u *AdUseCase) failSettlement(ctx context.Context, ev domain.Event, held *heldGrant, cause error) error {
	if held != nil {
		u.revert(ctx, held.grant, held.entry)
	}
	err := fmt.Errorf("settle %s %d: %w", ev.Kind, ev.ID, cause)
	if ferr := u.finalize(ctx, ev, domain.Outcome{Status: domain.StatusFailed, RewardAmount: decimal.Zero}); ferr != nil {
		return errors.Join(err, ferr)
	}
	return err
}

// idempotencyKey derives a stable key from the event so a resubmitted
// instruction cannot pay twice.
func idempotencyKey(ev domain.Event) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s:%d", ev.Kind, ev.ID))).String()
}
