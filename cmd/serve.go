package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "stellar-ads/internal/adapter/http"
	"stellar-ads/internal/adapter/usecase"
	"stellar-ads/internal/adapter/worker"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the ad API and the settlement workers",
		Long: `Run the HTTP API together with the background settlement workers.

The store and settlement drivers are chosen with STORE_DRIVER and
SETTLEMENT_DRIVER. The memory store is seeded with demo data on start.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg

	be, err := a.openBackend(ctx)
	if err != nil {
		return err
	}
	defer be.close()

	gateway, err := a.newGateway()
	if err != nil {
		return err
	}

	dispatcher := worker.NewDispatcher(a.logger, cfg.Settlement.Workers, cfg.Settlement.QueueSize, cfg.Settlement.Timeout)
	svc, err := usecase.NewAdUseCase(usecase.Config{
		APIBaseURL:          cfg.HTTP.APIBaseURL,
		FallbackRedirectURL: cfg.HTTP.FallbackRedirectURL,
		ImpressionReward:    cfg.Reward.ImpressionAmount,
		ClickRewardFraction: cfg.Reward.ClickFraction,
		WalletCooldown:      cfg.Reward.WalletCooldown,
		AnonymousCooldown:   cfg.Reward.AnonymousCooldown,
		WeightScale:         cfg.Reward.WeightScale,
		FingerprintSalt:     cfg.Reward.FingerprintSalt,
		MemoSalt:            cfg.Settlement.MemoSalt,
		NodeID:              cfg.Settlement.NodeID,
	}, usecase.Deps{
		Log:     a.logger,
		Store:   be.store,
		Ledger:  be.ledger,
		Events:  be.events,
		Gateway: gateway,
		Queue:   dispatcher,
	})
	if err != nil {
		return fmt.Errorf("build ad engine: %w", err)
	}

	handler := httpadapter.NewHandler(svc, a.logger, httpadapter.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Workers outlive the server: settlements accepted before shutdown
	// still run to completion.
	workCtx, stopWork := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWork()
	workersDone := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		defer stopWork()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown error", slog.Any("error", err))
			return nil
		}
		a.logger.Info("server gracefully stopped")
		return nil
	})
	g.Go(func() error {
		defer close(workersDone)
		return dispatcher.Run(workCtx)
	})
	g.Go(func() error {
		for {
			select {
			case te := <-dispatcher.Errors():
				recordTaskError(a.logger, te)
			case <-workersDone:
				for {
					select {
					case te := <-dispatcher.Errors():
						recordTaskError(a.logger, te)
					default:
						return nil
					}
				}
			}
		}
	})

	err = g.Wait()
	a.logger.Info("settlement workers stopped")
	return err
}
