package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// EventKind distinguishes impressions from clicks.
type EventKind string

const (
	KindImpression EventKind = "impression"
	KindClick      EventKind = "click"
)

// SettlementStatus is the lifecycle state of an event's settlement. An
// event starts pending and moves to exactly one terminal state.
type SettlementStatus string

const (
	StatusPending   SettlementStatus = "pending"
	StatusCompleted SettlementStatus = "completed"
	StatusFailed    SettlementStatus = "failed"
	StatusSkipped   SettlementStatus = "skipped"
)

// Terminal reports whether the status is final.
func (s SettlementStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusSkipped
}

// Event is a record of an ad being shown (impression) or clicked.
type Event struct {
	ID            snowflake.ID
	Kind          EventKind
	CampaignID    string
	SiteID        string
	Identity      Identity
	IPAddress     string
	UserAgent     string
	Cost          decimal.Decimal // charged to the campaign, zero for impressions
	RewardAmount  decimal.Decimal // paid to the viewer, zero if none
	Status        SettlementStatus
	SettlementRef string
	CreatedAt     time.Time
	SettledAt     *time.Time
}

// Outcome is the single in-place update applied to a pending event.
type Outcome struct {
	Status        SettlementStatus
	RewardAmount  decimal.Decimal
	SettlementRef string
	SettledAt     time.Time
}
