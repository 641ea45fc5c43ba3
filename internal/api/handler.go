package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/config"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
	"github.com/rs/zerolog"
)

const version = "1.0.0"

type PromptBuilder interface {
	Build(spec models.ProductSpec) string
}

type Validator interface {
	Validate(content models.GeneratedContent) models.ValidationResult
}

type Renderer interface {
	Render(text, title string, format models.OutputFormat) (string, error)
}

type TokenCounter interface {
	Count(s string) int
}

type Handler struct {
	rules     config.Rules
	builder   PromptBuilder
	validator Validator
	renderer  Renderer
	tokens    TokenCounter
	logger    *zerolog.Logger
}

func NewHandler(rules config.Rules, builder PromptBuilder, validator Validator, renderer Renderer, tokens TokenCounter, logger *zerolog.Logger) *Handler {
	return &Handler{
		rules:     rules,
		builder:   builder,
		validator: validator,
		renderer:  renderer,
		tokens:    tokens,
		logger:    logger,
	}
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: version,
	})
}

// GET /api/v1/rules
func (h *Handler) Rules(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, h.rules.File())
}

// POST /api/v1/prompt
// Body: PromptRequest
// Returns: PromptResponse
func (h *Handler) Prompt(req *restful.Request, resp *restful.Response) {
	var body PromptRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	spec, err := models.NewProductSpec(body.ProductName, body.Features, body.Audience)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Invalid product")
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	prompt := h.builder.Build(spec)

	h.logger.Info().
		Str("product", spec.Name).
		Int("features", len(spec.Features)).
		Bool("audience", spec.HasAudience()).
		Msg("Prompt built")

	resp.WriteHeaderAndEntity(http.StatusOK, PromptResponse{
		Prompt:     prompt,
		Characters: utf8.RuneCountInString(prompt),
		Tokens:     h.tokens.Count(prompt),
	})
}

// POST /api/v1/validate
// Body: ValidateRequest
// Returns: ValidateResponse
func (h *Handler) Validate(req *restful.Request, resp *restful.Response) {
	var body ValidateRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	result := h.validator.Validate(body.content())

	h.logger.Info().
		Bool("is_valid", result.IsValid).
		Int("violations", len(result.Violations)).
		Msg("Listing validated")

	resp.WriteHeaderAndEntity(http.StatusOK, newValidateResponse(result))
}

// POST /api/v1/format
// Body: FormatRequest
// Returns: FormatResponse
func (h *Handler) Format(req *restful.Request, resp *restful.Response) {
	var body FormatRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(body.Text) == "" {
		middleware.HandleError(resp, middleware.ErrEmptyText, http.StatusBadRequest)
		return
	}

	format, err := models.ParseOutputFormat(body.Format)
	if err != nil {
		middleware.HandleError(resp, fmt.Errorf("%w: %s", middleware.ErrInvalidFormat, body.Format), http.StatusBadRequest)
		return
	}

	content, err := h.renderer.Render(body.Text, body.Title, format)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, FormatResponse{
		Content: content,
		Format:  format,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrMissingProductName), errors.Is(err, models.ErrMissingFeatures):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
