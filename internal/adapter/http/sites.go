package httpadapter

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

type siteView struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Domain        string          `json:"domain"`
	PayoutAddress string          `json:"payoutAddress"`
	RevenueShare  decimal.Decimal `json:"revenueShare"`
	Disabled      bool            `json:"disabled"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func newSiteView(s domain.Site) siteView {
	return siteView{
		ID:            s.ID,
		Name:          s.Name,
		Domain:        s.Domain,
		PayoutAddress: s.PayoutAddress,
		RevenueShare:  s.RevenueShare,
		Disabled:      s.Disabled,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (h *Handler) handleListSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.svc.ListSites(r.Context())
	if err != nil {
		h.fail(w, r, "list sites", err)
		return
	}
	out := make([]siteView, 0, len(sites))
	for _, s := range sites {
		out = append(out, newSiteView(s))
	}
	h.write(w, http.StatusOK, out)
}

type createSiteBody struct {
	Name          string          `json:"name"`
	Domain        string          `json:"domain"`
	PayoutAddress string          `json:"payoutAddress"`
	RevenueShare  decimal.Decimal `json:"revenueShare"`
}

// handleCreateSite onboards a publisher. A domain that is already
// registered answers 409.
func (h *Handler) handleCreateSite(w http.ResponseWriter, r *http.Request) {
	var body createSiteBody
	if err := readJSON(w, r, &body); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	site, err := h.svc.CreateSite(r.Context(), port.CreateSiteRequest{
		Name:          body.Name,
		Domain:        body.Domain,
		PayoutAddress: strings.TrimSpace(body.PayoutAddress),
		RevenueShare:  body.RevenueShare,
	})
	if err != nil {
		h.fail(w, r, "create site", err)
		return
	}
	h.write(w, http.StatusCreated, newSiteView(site))
}

type updateSiteBody struct {
	RevenueShare  *decimal.Decimal `json:"revenueShare"`
	PayoutAddress *string          `json:"payoutAddress"`
	Disabled      *bool            `json:"disabled"`
}

func (h *Handler) handleUpdateSite(w http.ResponseWriter, r *http.Request) {
	var body updateSiteBody
	if err := readJSON(w, r, &body); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	site, err := h.svc.UpdateSite(r.Context(), chi.URLParam(r, "siteID"), domain.SiteUpdate{
		RevenueShare:  body.RevenueShare,
		PayoutAddress: body.PayoutAddress,
		Disabled:      body.Disabled,
	})
	if err != nil {
		h.fail(w, r, "update site", err)
		return
	}
	h.write(w, http.StatusOK, newSiteView(site))
}

type validateSiteView struct {
	Site          siteView        `json:"site"`
	AccountExists bool            `json:"accountExists"`
	Balance       decimal.Decimal `json:"balance"`
}

// handleValidateSite checks that a site exists and that its payout
// account is open on the settlement network.
func (h *Handler) handleValidateSite(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SiteID string `json:"siteId"`
	}
	if err := readJSON(w, r, &body); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	res, err := h.svc.ValidateSite(r.Context(), strings.TrimSpace(body.SiteID))
	if err != nil {
		h.fail(w, r, "validate site", err)
		return
	}
	h.write(w, http.StatusOK, validateSiteView{
		Site:          newSiteView(res.Site),
		AccountExists: res.AccountExists,
		Balance:       res.Balance,
	})
}
