package api

import (
	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

type PromptRequest struct {
	ProductName string   `json:"product_name" description:"Product name"`
	Features    []string `json:"features" description:"Product features, rendered in order"`
	Audience    string   `json:"target_audience,omitempty" description:"Optional target audience"`
}

type PromptResponse struct {
	Prompt     string `json:"prompt" description:"Rendered prompt"`
	Characters int    `json:"characters" description:"Prompt length in characters"`
	Tokens     int    `json:"tokens" description:"Estimated prompt tokens"`
}

type ValidateRequest struct {
	Title       string   `json:"title" description:"Listing title"`
	Description string   `json:"description" description:"Listing description"`
	Bullets     []string `json:"bullets" description:"Benefit bullet points"`
}

type ValidateResponse struct {
	IsValid    bool               `json:"is_valid" description:"True when no rule failed"`
	Errors     []string           `json:"errors" description:"One message per failed rule, in rule order"`
	Violations []models.Violation `json:"violations" description:"Failed rules with codes"`
	Summary    string             `json:"summary" description:"Human readable summary"`
}

type FormatRequest struct {
	Text   string `json:"text" description:"Pasted response"`
	Format string `json:"format,omitempty" description:"txt (default) or html"`
	Title  string `json:"title,omitempty" description:"Document title for html output"`
}

type FormatResponse struct {
	Content string              `json:"content" description:"Formatted listing"`
	Format  models.OutputFormat `json:"format" description:"Output format"`
}

func (r ValidateRequest) content() models.GeneratedContent {
	return models.GeneratedContent{
		Title:       r.Title,
		Description: r.Description,
		Bullets:     r.Bullets,
	}
}

func newValidateResponse(result models.ValidationResult) ValidateResponse {
	return ValidateResponse{
		IsValid:    result.IsValid,
		Errors:     result.Errors(),
		Violations: result.Violations,
		Summary:    result.Summary(),
	}
}
