package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
	"stellar-ads/internal/core/reward"
)

// RegisterClick records the click and returns the campaign target URL
// without waiting for settlement. If the campaign or site cannot be
// resolved the fallback URL is returned along with the error.
func (u *AdUseCase) RegisterClick(ctx context.Context, req port.ClickRequest) (string, error) {
	if err := u.check(req); err != nil {
		return "", err
	}
	id, err := u.identity.Resolve(req.Viewer)
	if err != nil {
		return "", err
	}
	campaign, err := u.store.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return u.cfg.FallbackRedirectURL, err
	}
	site, err := u.store.GetSite(ctx, req.SiteID)
	if err != nil {
		return u.cfg.FallbackRedirectURL, err
	}
	if site.Disabled {
		return u.cfg.FallbackRedirectURL, fmt.Errorf("site %q disabled: %w", site.ID, port.ErrNotFound)
	}

	ev := domain.Event{
		ID:           u.ids.Generate(),
		Kind:         domain.KindClick,
		CampaignID:   campaign.ID,
		SiteID:       site.ID,
		Identity:     id,
		IPAddress:    req.Viewer.IPAddress,
		UserAgent:    req.Viewer.UserAgent,
		Cost:         campaign.CostPerClick,
		RewardAmount: decimal.Zero,
		Status:       domain.StatusPending,
		CreatedAt:    u.now(),
	}
	if err = u.events.CreateEvent(ctx, ev); err != nil {
		// the user still gets where they were going; nothing was billed
		return campaign.TargetURL, err
	}

	name := fmt.Sprintf("settle-click-%d", ev.ID)
	if err = u.queue.Submit(name, u.settleClick(ev, site)); err != nil {
		u.log.Error("click: queue settlement", slog.Int64("event_id", ev.ID.Int64()), slog.Any("error", err))
		if ferr := u.finalize(ctx, ev, domain.Outcome{Status: domain.StatusFailed, RewardAmount: decimal.Zero}); ferr != nil {
			u.log.Error("click: finalize", slog.Any("error", ferr))
		}
	}
	return campaign.TargetURL, nil
}

// settleClick bills the campaign and pays the publisher and, when the
// viewer has a wallet and is outside its cooldown, the viewer.
func (u *AdUseCase) settleClick(ev domain.Event, site domain.Site) port.Task {
	return func(ctx context.Context) error {
		campaign, err := u.store.GetCampaign(ctx, ev.CampaignID)
		if err != nil {
			return u.abandonClick(ctx, ev, err)
		}
		if !campaign.Active {
			return u.abandonClick(ctx, ev, nil)
		}

		payViewer := !ev.Identity.Anonymous()
		split := reward.Compute(ev.Cost, site.RevenueShare, u.cfg.ClickRewardFraction, payViewer)
		grant := domain.RewardGrant{
			Identity:   ev.Identity,
			SiteID:     ev.SiteID,
			CampaignID: ev.CampaignID,
			Kind:       domain.KindClick,
			Amount:     split.Viewer,
			Cooldown:   u.cooldownFor(ev.Identity),
		}
		var held *heldGrant
		entry, err := u.ledger.Grant(ctx, grant)
		if err == nil {
			held = &heldGrant{grant: grant, entry: entry}
		} else {
			if !errors.Is(err, port.ErrCooldownActive) {
				u.log.Error("click: grant reward",
					slog.Int64("event_id", ev.ID.Int64()), slog.Any("error", err))
			}
			split = reward.Compute(ev.Cost, site.RevenueShare, u.cfg.ClickRewardFraction, false)
		}

		release, err := u.budget.Reserve(ctx, ev.CampaignID, ev.Cost)
		if err != nil {
			if held != nil {
				u.revert(ctx, held.grant, held.entry)
			}
			if errors.Is(err, port.ErrBudgetExhausted) {
				return u.abandonClick(ctx, ev, nil)
			}
			return u.abandonClick(ctx, ev, err)
		}
		defer release()

		var receipt domain.Receipt
		if in := u.clickInstruction(ev, site, split); len(in.Payments) > 0 {
			in.Memo, err = u.memos.Encode(ev.Kind, ev.ID)
			if err == nil {
				receipt, err = u.gateway.Submit(ctx, in)
			}
			if err != nil {
				return u.failSettlement(ctx, ev, held, err)
			}
		}

		spendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
		defer cancel()
		spent, err := u.store.IncrementSpent(spendCtx, ev.CampaignID, ev.Cost)
		if err != nil {
			// payouts already went out; keep the event completed and surface the error
			u.log.Error("click: increment spent",
				slog.String("campaign_id", ev.CampaignID),
				slog.String("reference", receipt.Reference),
				slog.Any("error", err))
		}

		u.log.Info("click settled",
			slog.Int64("event_id", ev.ID.Int64()),
			slog.String("campaign_id", ev.CampaignID),
			slog.String("publisher", split.Publisher.String()),
			slog.String("viewer", split.Viewer.String()),
			slog.String("platform", split.PlatformNet.String()),
			slog.String("spent", spent.String()),
			slog.String("reference", receipt.Reference))

		ferr := u.finalize(ctx, ev, domain.Outcome{
			Status:        domain.StatusCompleted,
			RewardAmount:  split.Viewer,
			SettlementRef: receipt.Reference,
		})
		if err != nil {
			return errors.Join(fmt.Errorf("record spend of click %d: %w", ev.ID, err), ferr)
		}
		return ferr
	}
}

func (u *AdUseCase) clickInstruction(ev domain.Event, site domain.Site, split reward.Split) domain.Instruction {
	in := domain.Instruction{IdempotencyKey: idempotencyKey(ev)}
	if split.Publisher.IsPositive() && site.PayoutAddress != "" {
		in.Payments = append(in.Payments, domain.Payment{Destination: site.PayoutAddress, Amount: split.Publisher})
	}
	if split.Viewer.IsPositive() {
		in.Payments = append(in.Payments, domain.Payment{Destination: ev.Identity.Value, Amount: split.Viewer})
	}
	return in
}

// abandonClick marks a click skipped without billing. cause is returned
// for reporting when not nil.
func (u *AdUseCase) abandonClick(ctx context.Context, ev domain.Event, cause error) error {
	ferr := u.finalize(ctx, ev, domain.Outcome{Status: domain.StatusSkipped, RewardAmount: decimal.Zero})
	if cause != nil {
		return errors.Join(fmt.Errorf("settle click %d: %w", ev.ID, cause), ferr)
	}
	return ferr
}
