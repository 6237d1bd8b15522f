package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimal places the settlement asset
// supports. Amounts are truncated to it before they are paid out.
const AmountPrecision = 7

// Campaign represents an advertiser's funded unit of creative, targeting
// and budget. Money is stored as decimals in asset units.
type Campaign struct {
	ID                string
	AdvertiserName    string
	AdvertiserAddress string
	ImageURL          string
	TargetURL         string
	Budget            decimal.Decimal
	Spent             decimal.Decimal // monotonic, only grows
	CostPerClick      decimal.Decimal
	Active            bool
	Tags              []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Remaining returns the unspent budget. It may be negative when a single
// in-flight click overshot the budget.
func (c Campaign) Remaining() decimal.Decimal {
	return c.Budget.Sub(c.Spent)
}

// Eligible reports whether the campaign can be served.
func (c Campaign) Eligible() bool {
	return c.Active && c.Spent.LessThan(c.Budget)
}
