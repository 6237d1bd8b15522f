package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
)

type settlementView struct {
	EventID       string                  `json:"eventId"`
	Kind          domain.EventKind        `json:"kind"`
	CampaignID    string                  `json:"campaignId"`
	SiteID        string                  `json:"siteId"`
	Cost          decimal.Decimal         `json:"cost"`
	RewardAmount  decimal.Decimal         `json:"rewardAmount"`
	Status        domain.SettlementStatus `json:"status"`
	SettlementRef string                  `json:"settlementRef,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
	SettledAt     *time.Time              `json:"settledAt,omitempty"`
}

// handleSettlement answers which event a payment memo seen on the
// settlement network belongs to. Viewer identities are not exposed.
func (h *Handler) handleSettlement(w http.ResponseWriter, r *http.Request) {
	ev, err := h.svc.LookupSettlement(r.Context(), chi.URLParam(r, "memo"))
	if err != nil {
		h.fail(w, r, "lookup settlement", err)
		return
	}
	h.write(w, http.StatusOK, settlementView{
		EventID:       ev.ID.String(),
		Kind:          ev.Kind,
		CampaignID:    ev.CampaignID,
		SiteID:        ev.SiteID,
		Cost:          ev.Cost,
		RewardAmount:  ev.RewardAmount,
		Status:        ev.Status,
		SettlementRef: ev.SettlementRef,
		CreatedAt:     ev.CreatedAt,
		SettledAt:     ev.SettledAt,
	})
}
