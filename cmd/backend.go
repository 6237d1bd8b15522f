package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/adapter/memory"
	"stellar-ads/internal/adapter/postgres"
	"stellar-ads/internal/adapter/settlement"
	"stellar-ads/internal/config/configs"
	"stellar-ads/internal/core/port"
	"stellar-ads/internal/db"
)

// simulatedFunding is the starting balance of every demo account on the
// simulated settlement network.
var simulatedFunding = decimal.NewFromInt(10_000)

// backend bundles the store ports of the selected driver.
type backend struct {
	store  port.CampaignStore
	ledger port.RewardLedger
	events port.EventRepository
	close  func()
}

func (a *app) openBackend(ctx context.Context) (*backend, error) {
	switch a.cfg.Store.Driver {
	case configs.StoreDriverMemory:
		mem := memory.New()
		if _, err := db.Seed(ctx, mem, a.logger); err != nil {
			return nil, err
		}
		a.logger.Warn("using in-memory store; state is lost on exit")
		return &backend{store: mem, ledger: mem, events: mem, close: func() {}}, nil

	default:
		if a.cfg.Psql.RunMigrations {
			version, err := db.Migrate(a.cfg.Psql.Addr.String())
			if err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			a.logger.Info("migrations applied", slog.Uint64("version", uint64(version)))
		}
		pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &backend{
			store:  postgres.NewCampaignRepository(pool),
			ledger: postgres.NewLedgerRepository(pool),
			events: postgres.NewEventRepository(pool),
			close:  pool.Close,
		}, nil
	}
}

func (a *app) newGateway() (port.SettlementGateway, error) {
	cfg := a.cfg.Settlement
	if cfg.Driver == configs.SettlementDriverHTTP {
		a.logger.Info("settling through contract API", slog.String("url", cfg.URL))
		return settlement.NewHTTPGateway(cfg.URL, cfg.APIKey, &http.Client{Timeout: cfg.Timeout}), nil
	}

	seed, err := db.LoadSeed()
	if err != nil {
		return nil, err
	}
	sim := settlement.NewSimulated()
	for _, addr := range seed.Addresses() {
		sim.Fund(addr, simulatedFunding)
	}
	a.logger.Warn("using simulated settlement; no funds move")
	return sim, nil
}
