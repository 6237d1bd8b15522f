package domain

import "github.com/shopspring/decimal"

// Payment is a single transfer inside a settlement instruction.
type Payment struct {
	Destination string
	Amount      decimal.Decimal
}

// Instruction asks the settlement gateway to move funds. All payments of
// an instruction succeed or fail together.
type Instruction struct {
	IdempotencyKey string
	Payments       []Payment
	Memo           string
}

// Total sums the payment amounts.
func (i Instruction) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range i.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Receipt is returned by the gateway for a successful instruction.
type Receipt struct {
	Reference string
}
