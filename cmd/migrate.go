package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"stellar-ads/internal/config/configs"
	"stellar-ads/internal/db"
)

func migrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations to PSQL_ADDRESS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Store.Driver == configs.StoreDriverMemory {
				return fmt.Errorf("nothing to migrate with the %s store", configs.StoreDriverMemory)
			}
			version, err := db.Migrate(a.cfg.Psql.Addr.String())
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			a.logger.Info("migrations applied", slog.Uint64("version", uint64(version)))
			return nil
		},
	}
}
