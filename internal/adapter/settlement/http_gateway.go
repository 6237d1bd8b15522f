// Package settlement contains the port.SettlementGateway adapters.
package settlement

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

var _ port.SettlementGateway = (*HTTPGateway)(nil)

// HTTPGateway talks JSON to the contract execution API that signs and
// submits transactions on the network.
type HTTPGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPGateway(baseURL, apiKey string, client *http.Client) *HTTPGateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: client,
	}
}

type paymentPayload struct {
	Destination string          `json:"destination"`
	Amount      decimal.Decimal `json:"amount"`
}

type submitPayload struct {
	Payments []paymentPayload `json:"payments"`
	Memo     string           `json:"memo"`
}

// Submit posts the instruction. Any non-2xx answer, transport error or
// timeout is reported as ErrSettlementFailed.
func (g *HTTPGateway) Submit(ctx context.Context, in domain.Instruction) (domain.Receipt, error) {
	payload := submitPayload{Memo: in.Memo, Payments: make([]paymentPayload, 0, len(in.Payments))}
	for _, p := range in.Payments {
		payload.Payments = append(payload.Payments, paymentPayload{Destination: p.Destination, Amount: p.Amount})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("encode instruction: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if in.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", in.IdempotencyKey)
	}
	g.authorize(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: submit request: %w", port.ErrSettlementFailed, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Receipt{}, fmt.Errorf("%w: http=%d body=%s", port.ErrSettlementFailed, resp.StatusCode, string(raw))
	}

	var res struct {
		Hash       string `json:"hash"`
		Successful *bool  `json:"successful"`
	}
	if err = json.Unmarshal(raw, &res); err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: decode submit response: %v", port.ErrSettlementFailed, err)
	}
	if res.Successful != nil && !*res.Successful {
		return domain.Receipt{}, fmt.Errorf("%w: transaction %s rejected", port.ErrSettlementFailed, res.Hash)
	}
	if res.Hash == "" {
		return domain.Receipt{}, fmt.Errorf("%w: empty transaction hash", port.ErrSettlementFailed)
	}
	return domain.Receipt{Reference: res.Hash}, nil
}

// AccountBalance returns the native balance of the account.
func (g *HTTPGateway) AccountBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s/balance", g.baseURL, url.PathEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("build balance request: %w", err)
	}
	g.authorize(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balance request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return decimal.Zero, fmt.Errorf("account %s: %w", address, port.ErrAccountNotFound)
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("balance failed: http=%d body=%s", resp.StatusCode, string(raw))
	}

	var res struct {
		Balance decimal.Decimal `json:"balance"`
	}
	if err = json.Unmarshal(raw, &res); err != nil {
		return decimal.Zero, fmt.Errorf("decode balance: %w", err)
	}
	return res.Balance, nil
}

func (g *HTTPGateway) authorize(req *http.Request) {
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}
}
