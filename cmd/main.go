package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"stellar-ads/internal/config"
)

var version = "dev"

// app carries what every subcommand needs once the root command has
// loaded the configuration.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// main is the entry point of stellar-ads. The root command loads the
// configuration and logger; subcommands run the server, apply
// migrations or seed demo data. SIGINT and SIGTERM cancel the command
// context so that long running commands shut down gracefully.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		envFile string
		a       = &app{}
	)
	cmd := &cobra.Command{
		Use:           "stellar-ads",
		Short:         "Ad matching and viewer reward engine settling on Stellar",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			a.logger = cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading the environment (default .env)")

	cmd.AddCommand(serveCmd(a))
	cmd.AddCommand(migrateCmd(a))
	cmd.AddCommand(seedCmd(a))
	return cmd
}
