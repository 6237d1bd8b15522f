package postgres

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

var _ port.EventRepository = (*EventRepository)(nil)

// EventRepository stores impressions and clicks in their own tables.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a new repository instance.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func eventTable(kind domain.EventKind) (string, error) {
	switch kind {
	case domain.KindImpression:
		return "impressions", nil
	case domain.KindClick:
		return "clicks", nil
	default:
		return "", port.NewValidationError("kind", fmt.Sprintf("unknown event kind %q", kind))
	}
}

// CreateEvent inserts a new event.
func (r *EventRepository) CreateEvent(ctx context.Context, e domain.Event) error {
	table, err := eventTable(e.Kind)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, fmt.Sprintf(`INSERT INTO %s
    (id, campaign_id, site_id, identity, identity_kind, ip_address, user_agent,
     cost, reward_amount, settlement_status, settlement_ref, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`, table),
		int64(e.ID), e.CampaignID, e.SiteID, e.Identity.Value, string(e.Identity.Kind),
		e.IPAddress, e.UserAgent, e.Cost, e.RewardAmount, string(e.Status), e.SettlementRef, e.CreatedAt)
	if err != nil {
		return wrapErr(fmt.Sprintf("insert %s %d", e.Kind, e.ID), err)
	}
	return nil
}

// FinalizeEvent applies the outcome if the event is still pending.
func (r *EventRepository) FinalizeEvent(ctx context.Context, kind domain.EventKind, id snowflake.ID, out domain.Outcome) error {
	table, err := eventTable(kind)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`UPDATE %s SET
        settlement_status = $2,
        reward_amount = $3,
        settlement_ref = $4,
        settled_at = $5
    WHERE id = $1 AND settlement_status = 'pending'`, table),
		int64(id), string(out.Status), out.RewardAmount, out.SettlementRef, out.SettledAt)
	if err != nil {
		return wrapErr(fmt.Sprintf("finalize %s %d", kind, id), err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var status string
	err = r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT settlement_status FROM %s WHERE id = $1`, table), int64(id)).Scan(&status)
	if err != nil {
		return wrapErr(fmt.Sprintf("finalize %s %d", kind, id), err)
	}
	return fmt.Errorf("%s %d is %s: %w", kind, id, status, port.ErrEventFinalized)
}

// GetEvent returns an event by kind and id.
func (r *EventRepository) GetEvent(ctx context.Context, kind domain.EventKind, id snowflake.ID) (domain.Event, error) {
	table, err := eventTable(kind)
	if err != nil {
		return domain.Event{}, err
	}
	var (
		e            domain.Event
		rawID        int64
		identityKind string
		status       string
	)
	err = r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT id, campaign_id, site_id, identity, identity_kind,
        ip_address, user_agent, cost, reward_amount, settlement_status, settlement_ref, created_at, settled_at
    FROM %s WHERE id = $1`, table), int64(id)).Scan(
		&rawID,
		&e.CampaignID,
		&e.SiteID,
		&e.Identity.Value,
		&identityKind,
		&e.IPAddress,
		&e.UserAgent,
		&e.Cost,
		&e.RewardAmount,
		&status,
		&e.SettlementRef,
		&e.CreatedAt,
		&e.SettledAt,
	)
	if err != nil {
		return domain.Event{}, wrapErr(fmt.Sprintf("get %s %d", kind, id), err)
	}
	e.ID = snowflake.ID(rawID)
	e.Kind = kind
	e.Identity.Kind = domain.IdentityKind(identityKind)
	e.Status = domain.SettlementStatus(status)
	return e, nil
}

// GetStats returns aggregated events for the period [From, To).
func (r *EventRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{req.From, req.To}
	where := ""
	if req.CampaignID != nil {
		args = append(args, *req.CampaignID)
		where += fmt.Sprintf(" AND campaign_id = $%d", len(args))
	}
	if req.SiteID != nil {
		args = append(args, *req.SiteID)
		where += fmt.Sprintf(" AND site_id = $%d", len(args))
	}

	var (
		resp                       = &port.StatsResp{}
		impRewarded, clickRewarded int64
		impRewards, clickRewards   decimal.Decimal
	)
	impQuery := fmt.Sprintf(`SELECT
        count(*),
        count(*) FILTER (WHERE settlement_status = 'completed' AND reward_amount > 0),
        COALESCE(sum(reward_amount) FILTER (WHERE settlement_status = 'completed'), 0)
    FROM impressions WHERE created_at >= $1 AND created_at < $2%s`, where)
	err := r.pool.QueryRow(ctx, impQuery, args...).Scan(&resp.Impressions, &impRewarded, &impRewards)
	if err != nil {
		return nil, wrapErr("impression stats", err)
	}

	clickQuery := fmt.Sprintf(`SELECT
        count(*),
        count(*) FILTER (WHERE settlement_status = 'completed' AND reward_amount > 0),
        COALESCE(sum(reward_amount) FILTER (WHERE settlement_status = 'completed'), 0),
        COALESCE(sum(cost) FILTER (WHERE settlement_status = 'completed'), 0)
    FROM clicks WHERE created_at >= $1 AND created_at < $2%s`, where)
	err = r.pool.QueryRow(ctx, clickQuery, args...).Scan(&resp.Clicks, &clickRewarded, &clickRewards, &resp.Spend)
	if err != nil {
		return nil, wrapErr("click stats", err)
	}

	resp.RewardedEvents = impRewarded + clickRewarded
	resp.Rewards = impRewards.Add(clickRewards)
	resp.Derive()
	return resp, nil
}
