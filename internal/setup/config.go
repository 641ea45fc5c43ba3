package setup

import (
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

type Config struct {
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	RulesPath     string `env:"RULES_CONFIG_PATH"`
	TokenEncoding string `env:"TOKEN_ENCODING" envDefault:"cl100k_base"`

	Output Output
	Redis  Redis

	APIPort int `env:"LISTING_API_PORT" envDefault:"8080"`
}

type Output struct {
	Dir           string `env:"LISTING_OUTPUT_DIR" envDefault:"."`
	DefaultFile   string `env:"LISTING_DEFAULT_FILE" envDefault:"opis_produktu.txt"`
	Format        string `env:"LISTING_OUTPUT_FORMAT" envDefault:"txt"`
	PublishStream bool   `env:"LISTING_PUBLISH_STREAM" envDefault:"false"`
}

type Redis struct {
	Addr       string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password   string `env:"REDIS_PASSWORD"`
	Stream     string `env:"LISTING_STREAM" envDefault:"listing-events"`
	MaxRetries int    `env:"REDIS_MAX_RETRIES" envDefault:"3"`
}

func LoadConfig() (*Config, error) {
	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if _, err := models.ParseOutputFormat(cfg.Output.Format); err != nil {
		return nil, err
	}

	return cfg, nil
}
