package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	do "github.com/samber/do/v2"

	"github.com/concordlib/concord/internal/core/domain"
)

var Package = do.Package(
	do.Lazy[*Config](NewConfig),
)

// Config holds the application configuration.
type Config struct {
	BaseURL       string             `env:"CONCORD_BASE_URL" envDefault:"https://api.concord.chat/v1"`
	Token         string             `env:"CONCORD_TOKEN,required"`
	IngestAddress string             `env:"CONCORD_INGEST_ADDRESS" envDefault:":8080"`
	Guilds        []domain.Snowflake `env:"CONCORD_GUILDS"`
}

// NewConfig creates a new configuration from environment variables (for DI).
func NewConfig(_ do.Injector) (*Config, error) {
	return New()
}

// New creates a new configuration from environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}
