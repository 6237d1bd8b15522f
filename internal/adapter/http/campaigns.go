package httpadapter

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

type campaignView struct {
	ID                string          `json:"id"`
	AdvertiserName    string          `json:"advertiserName"`
	AdvertiserAddress string          `json:"advertiserAddress"`
	ImageURL          string          `json:"imageUrl"`
	TargetURL         string          `json:"targetUrl"`
	Budget            decimal.Decimal `json:"budget"`
	Spent             decimal.Decimal `json:"spent"`
	Remaining         decimal.Decimal `json:"remaining"`
	CostPerClick      decimal.Decimal `json:"costPerClick"`
	Active            bool            `json:"active"`
	Tags              []string        `json:"tags"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func newCampaignView(c domain.Campaign) campaignView {
	return campaignView{
		ID:                c.ID,
		AdvertiserName:    c.AdvertiserName,
		AdvertiserAddress: c.AdvertiserAddress,
		ImageURL:          c.ImageURL,
		TargetURL:         c.TargetURL,
		Budget:            c.Budget,
		Spent:             c.Spent,
		Remaining:         c.Remaining(),
		CostPerClick:      c.CostPerClick,
		Active:            c.Active,
		Tags:              c.Tags,
		CreatedAt:         c.CreatedAt,
	}
}

// handleListCampaigns lists the campaigns that can currently be served,
// with their remaining budget.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.fail(w, r, "list campaigns", err)
		return
	}
	out := make([]campaignView, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, newCampaignView(c))
	}
	h.write(w, http.StatusOK, out)
}

type createCampaignBody struct {
	ID                string          `json:"id"`
	AdvertiserName    string          `json:"advertiserName"`
	AdvertiserAddress string          `json:"advertiserAddress"`
	ImageURL          string          `json:"imageUrl"`
	TargetURL         string          `json:"targetUrl"`
	Budget            decimal.Decimal `json:"budget"`
	CostPerClick      decimal.Decimal `json:"costPerClick"`
	Tags              []string        `json:"tags"`
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body createCampaignBody
	if err := readJSON(w, r, &body); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignRequest(body))
	if err != nil {
		h.fail(w, r, "create campaign", err)
		return
	}
	h.write(w, http.StatusCreated, newCampaignView(c))
}
