package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Store      configs.Store      `envPrefix:"STORE_"`
	Reward     configs.Reward     `envPrefix:"REWARD_"`
	Settlement configs.Settlement `envPrefix:"SETTLEMENT_"`
}

// Load reads configuration from environment variables into a Config.
// Variables from the given dotenv files (".env" when none are given) are
// loaded first without overriding the real environment; missing files
// are ignored.
func Load(files ...string) (Config, error) {
	var cfg Config
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", f, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var decimalOne = decimal.NewFromInt(1)

func (c Config) validate() error {
	switch c.Store.Driver {
	case configs.StoreDriverPostgres, configs.StoreDriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	switch c.Settlement.Driver {
	case configs.SettlementDriverSimulated:
	case configs.SettlementDriverHTTP:
		if c.Settlement.URL == "" {
			return errors.New("SETTLEMENT_URL is required for the http settlement driver")
		}
	default:
		return fmt.Errorf("unknown settlement driver %q", c.Settlement.Driver)
	}
	if c.Settlement.Workers < 1 {
		return errors.New("SETTLEMENT_WORKERS must be at least 1")
	}
	if c.Reward.ClickFraction.IsNegative() || c.Reward.ClickFraction.GreaterThan(decimalOne) {
		return errors.New("REWARD_CLICK_FRACTION must be between 0 and 1")
	}
	return nil
}
