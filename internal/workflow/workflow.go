package workflow

//go:generate mockgen -source=workflow.go -destination=mocks/mock_workflow.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
	"github.com/rs/zerolog"
)

// Console is the operator dialogue.
type Console interface {
	Banner()
	ReadProductSpec() (models.ProductSpec, error)
	ShowPrompt(prompt string, stats models.PromptStats)
	ReadResponse() (string, error)
	EmptyResponse()
	ShowResult(content string)
	ConfirmSave() (bool, error)
	ReadFileName(defaultName string) (string, error)
	Saved(sink, location string)
	SaveFailed(err error)
	Done()
}

type PromptBuilder interface {
	Build(spec models.ProductSpec) string
}

type TokenCounter interface {
	Count(s string) int
}

type Formatter interface {
	Format(text string) string
}

type Sink interface {
	Name() string
	Save(ctx context.Context, listing models.Listing) (string, error)
}

type Options struct {
	DefaultFileName string
	Format          models.OutputFormat
}

// Outcome describes what one run produced.
type Outcome struct {
	Spec      models.ProductSpec
	Prompt    string
	Listing   *models.Listing
	Saved     bool
	Locations []string
}

// Workflow is the manual listing loop: collect the product, show the prompt,
// take the pasted response back, format it and deliver it.
type Workflow struct {
	console   Console
	builder   PromptBuilder
	tokens    TokenCounter
	formatter Formatter
	sinks     []Sink
	opts      Options
	logger    *zerolog.Logger

	newID func() string
	now   func() time.Time
}

func New(console Console, builder PromptBuilder, tokens TokenCounter, formatter Formatter, sinks []Sink, opts Options, logger *zerolog.Logger) *Workflow {
	if opts.Format == "" {
		opts.Format = models.FormatText
	}
	return &Workflow{
		console:   console,
		builder:   builder,
		tokens:    tokens,
		formatter: formatter,
		sinks:     sinks,
		opts:      opts,
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Run returns models.ErrMissingProductName or models.ErrMissingFeatures when
// the operator input is incomplete. Save failures are reported to the
// operator and leave Outcome.Saved false; they are not returned.
func (w *Workflow) Run(ctx context.Context) (Outcome, error) {
	var outcome Outcome

	w.console.Banner()

	spec, err := w.console.ReadProductSpec()
	if err != nil {
		return outcome, fmt.Errorf("failed to read product: %w", err)
	}
	outcome.Spec = spec
	w.logger.Debug().Str("product", spec.Name).Int("features", len(spec.Features)).Msg("product collected")

	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	prompt := w.builder.Build(spec)
	outcome.Prompt = prompt
	stats := models.PromptStats{
		Characters: utf8.RuneCountInString(prompt),
		Tokens:     w.tokens.Count(prompt),
	}
	w.console.ShowPrompt(prompt, stats)

	response, err := w.console.ReadResponse()
	if err != nil {
		return outcome, fmt.Errorf("failed to read response: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return outcome, err
	}
	if strings.TrimSpace(response) == "" {
		w.console.EmptyResponse()
		return outcome, nil
	}

	content := w.formatter.Format(response)
	w.console.ShowResult(content)

	listing := models.Listing{
		ID:          w.newID(),
		ProductName: spec.Name,
		Content:     content,
		Format:      w.opts.Format,
		CreatedAt:   w.now().UTC(),
	}
	outcome.Listing = &listing

	save, err := w.console.ConfirmSave()
	if err != nil {
		return outcome, fmt.Errorf("failed to read save confirmation: %w", err)
	}
	if save {
		name, err := w.console.ReadFileName(w.opts.DefaultFileName)
		if err != nil {
			return outcome, fmt.Errorf("failed to read file name: %w", err)
		}
		listing.FileName = name
		outcome.Locations, outcome.Saved = w.deliver(ctx, listing)
	}

	w.console.Done()
	return outcome, nil
}

// deliver tries every sink; one failing does not stop the rest. ok is true
// only when at least one sink ran and none failed.
func (w *Workflow) deliver(ctx context.Context, listing models.Listing) ([]string, bool) {
	var locations []string
	failed := false

	for _, sink := range w.sinks {
		location, err := sink.Save(ctx, listing)
		if err != nil {
			failed = true
			w.logger.Error().Err(err).Str("sink", sink.Name()).Str("listing_id", listing.ID).Msg("save failed")
			w.console.SaveFailed(err)
			continue
		}
		locations = append(locations, location)
		w.console.Saved(sink.Name(), location)
	}

	return locations, !failed && len(locations) > 0
}
