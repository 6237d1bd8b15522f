package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// APIBaseURL is the public origin used to build click and impression
	// URLs handed to widgets.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	// FallbackRedirectURL receives clicks that cannot be resolved.
	FallbackRedirectURL string        `env:"FALLBACK_REDIRECT_URL" envDefault:"https://stellar.org"`
	AllowedOrigins      []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://*,http://*"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}
