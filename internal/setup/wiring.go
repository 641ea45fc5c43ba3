package setup

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/config"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/formatter"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/output"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/prompt"
	red "github.com/povarna/generative-ai-agents/listing-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/tokens"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/validation"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Rules     config.Rules
	Builder   *prompt.Builder
	Validator *validation.Validator
	Formatter *formatter.Formatter
	Tokens    *tokens.Counter
	Format    models.OutputFormat
	Sinks     []output.Sink
	Logger    *zerolog.Logger

	redis *redis.Client
}

type WireOptions struct {
	// WithSinks builds the delivery sinks; only the interactive workflow
	// needs them.
	WithSinks bool
}

func Wire(ctx context.Context, cfg *Config, opts WireOptions, logger *zerolog.Logger) (*Dependencies, error) {
	// Rules are loaded once and shared read-only
	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	logger.Debug().
		Str("path", cfg.RulesPath).
		Int("banned_terms", rules.BannedTerms.Len()).
		Msg("rules loaded")

	format, err := models.ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		Rules:     rules,
		Builder:   prompt.NewBuilder(rules),
		Validator: validation.NewRulesValidator(rules),
		Formatter: formatter.New(),
		Tokens:    tokens.NewCounter(cfg.TokenEncoding, logger),
		Format:    format,
		Logger:    logger,
	}

	if !opts.WithSinks {
		return deps, nil
	}

	deps.Sinks = append(deps.Sinks, output.NewFileSink(cfg.Output.Dir, cfg.Output.DefaultFile, deps.Formatter, logger))

	if cfg.Output.PublishStream {
		client, err := red.ConnectRedis(ctx, red.Options{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			MaxRetries: cfg.Redis.MaxRetries,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect stream sink: %w", err)
		}
		deps.redis = client
		deps.Sinks = append(deps.Sinks, output.NewStreamSink(client, cfg.Redis.Stream, logger))
	}

	return deps, nil
}

func (d *Dependencies) Close() error {
	if d.redis != nil {
		return d.redis.Close()
	}
	return nil
}
