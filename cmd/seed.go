package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stellar-ads/internal/config/configs"
	"stellar-ads/internal/db"
)

func seedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo sites and campaigns",
		Long: `Insert the demo sites and campaigns into the configured store.
Existing records are kept, so the command can be run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Store.Driver == configs.StoreDriverMemory {
				return fmt.Errorf("the %s store is seeded by serve", configs.StoreDriverMemory)
			}
			be, err := a.openBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer be.close()

			_, err = db.Seed(cmd.Context(), be.store, a.logger)
			return err
		},
	}
}
