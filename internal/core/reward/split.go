// Package reward computes how a click's cost is divided between the
// publisher, the viewer and the platform.
package reward

import (
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
)

// Split is the distribution of a single click's cost. Publisher, Viewer
// and PlatformNet always add up to Cost.
type Split struct {
	Cost          decimal.Decimal
	Publisher     decimal.Decimal
	PlatformShare decimal.Decimal // cost minus the publisher part, viewer reward included
	Viewer        decimal.Decimal
	PlatformNet   decimal.Decimal
}

// Compute divides cpc. The publisher gets revenueShare of it and the
// viewer gets viewerFraction of it, paid out of the platform share. The
// viewer part is zero when payViewer is false. Amounts are truncated to
// the asset precision so rounding always stays with the platform.
func Compute(cpc, revenueShare, viewerFraction decimal.Decimal, payViewer bool) Split {
	publisher := cpc.Mul(revenueShare).Truncate(domain.AmountPrecision)
	if publisher.IsNegative() {
		publisher = decimal.Zero
	}
	if publisher.GreaterThan(cpc) {
		publisher = cpc
	}
	platform := cpc.Sub(publisher)

	viewer := decimal.Zero
	if payViewer {
		viewer = cpc.Mul(viewerFraction).Truncate(domain.AmountPrecision)
		if viewer.IsNegative() {
			viewer = decimal.Zero
		}
		if viewer.GreaterThan(platform) {
			viewer = platform
		}
	}

	return Split{
		Cost:          cpc,
		Publisher:     publisher,
		PlatformShare: platform,
		Viewer:        viewer,
		PlatformNet:   platform.Sub(viewer),
	}
}
