package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Site is a publisher placement that requests ads. Only RevenueShare,
// PayoutAddress and Disabled change after onboarding.
type Site struct {
	ID            string
	Name          string
	Domain        string
	PayoutAddress string
	RevenueShare  decimal.Decimal // fraction of each click paid to the publisher, 0..1
	Disabled      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SiteUpdate carries the mutable fields of a site. Nil fields are left
// untouched.
type SiteUpdate struct {
	RevenueShare  *decimal.Decimal
	PayoutAddress *string
	Disabled      *bool
}

// Empty reports whether the update changes nothing.
func (u SiteUpdate) Empty() bool {
	return u.RevenueShare == nil && u.PayoutAddress == nil && u.Disabled == nil
}
