package configs

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	SettlementDriverSimulated = "simulated"
	SettlementDriverHTTP      = "http"
)

// Store selects the persistence backend. The memory driver keeps all
// state in process and is seeded on startup.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Reward holds the reward policy. Amounts are in asset units.
type Reward struct {
	ImpressionAmount decimal.Decimal `env:"IMPRESSION_AMOUNT" envDefault:"0.001"`
	// ClickFraction is the share of the click cost paid to the viewer,
	// carved out of the platform share.
	ClickFraction     decimal.Decimal `env:"CLICK_FRACTION" envDefault:"0.1"`
	WalletCooldown    time.Duration   `env:"WALLET_COOLDOWN" envDefault:"10m"`
	AnonymousCooldown time.Duration   `env:"ANONYMOUS_COOLDOWN" envDefault:"6h"`
	// WeightScale converts remaining budget into selection weight units.
	WeightScale     int64  `env:"WEIGHT_SCALE" envDefault:"10"`
	FingerprintSalt string `env:"FINGERPRINT_SALT" envDefault:"stellar-ads"`
}

// Settlement configures payouts and the background queue that runs them.
type Settlement struct {
	Driver    string        `env:"DRIVER" envDefault:"simulated"`
	URL       string        `env:"URL"`
	APIKey    string        `env:"API_KEY"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"30s"`
	Workers   int           `env:"WORKERS" envDefault:"8"`
	QueueSize int           `env:"QUEUE_SIZE" envDefault:"1024"`
	MemoSalt  string        `env:"MEMO_SALT" envDefault:"stellar-ads"`
	// NodeID distinguishes event id generators of concurrent instances.
	NodeID int64 `env:"NODE_ID" envDefault:"1"`
}
