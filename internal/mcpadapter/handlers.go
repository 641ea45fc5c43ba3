package mcpadapter

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

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

// BuildPromptInput is the MCP tool input schema (matches HTTP API field names).
type BuildPromptInput struct {
	ProductName string   `json:"product_name" jsonschema:"product name"`
	Features    []string `json:"features" jsonschema:"product features, one per entry, in order"`
	Audience    string   `json:"target_audience,omitempty" jsonschema:"optional target audience"`
}

type BuildPromptOutput struct {
	Prompt     string `json:"prompt"`
	Characters int    `json:"characters"`
	Tokens     int    `json:"tokens"`
}

type ValidateInput struct {
	Title       string   `json:"title" jsonschema:"listing title"`
	Description string   `json:"description" jsonschema:"listing description"`
	Bullets     []string `json:"bullets" jsonschema:"benefit bullet points"`
}

type ValidateOutput struct {
	IsValid    bool               `json:"is_valid"`
	Errors     []string           `json:"errors"`
	Violations []models.Violation `json:"violations"`
	Summary    string             `json:"summary"`
}

type FormatInput struct {
	Text   string `json:"text" jsonschema:"pasted response to format"`
	Format string `json:"format,omitempty" jsonschema:"txt (default) or html"`
	Title  string `json:"title,omitempty" jsonschema:"document title for html output"`
}

type FormatOutput struct {
	Content string              `json:"content"`
	Format  models.OutputFormat `json:"format"`
}

// NewBuildPromptHandler returns a tool handler that renders the listing prompt.
// Pass the returned function to mcp.AddTool.
func NewBuildPromptHandler(builder PromptBuilder, tokens TokenCounter) func(context.Context, *mcp.CallToolRequest, BuildPromptInput) (*mcp.CallToolResult, BuildPromptOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input BuildPromptInput) (*mcp.CallToolResult, BuildPromptOutput, error) {
		spec, err := models.NewProductSpec(input.ProductName, input.Features, input.Audience)
		if err != nil {
			return nil, BuildPromptOutput{}, err
		}

		prompt := builder.Build(spec)
		return nil, BuildPromptOutput{
			Prompt:     prompt,
			Characters: utf8.RuneCountInString(prompt),
			Tokens:     tokens.Count(prompt),
		}, nil
	}
}

// NewValidateHandler returns a tool handler that validates a decomposed listing.
func NewValidateHandler(validator Validator) func(context.Context, *mcp.CallToolRequest, ValidateInput) (*mcp.CallToolResult, ValidateOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, ValidateOutput, error) {
		result := validator.Validate(models.GeneratedContent{
			Title:       input.Title,
			Description: input.Description,
			Bullets:     input.Bullets,
		})

		return nil, ValidateOutput{
			IsValid:    result.IsValid,
			Errors:     result.Errors(),
			Violations: result.Violations,
			Summary:    result.Summary(),
		}, nil
	}
}

// NewFormatHandler returns a tool handler that formats a pasted response.
func NewFormatHandler(renderer Renderer) func(context.Context, *mcp.CallToolRequest, FormatInput) (*mcp.CallToolResult, FormatOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FormatInput) (*mcp.CallToolResult, FormatOutput, error) {
		if strings.TrimSpace(input.Text) == "" {
			return nil, FormatOutput{}, ErrEmptyText
		}

		format, err := models.ParseOutputFormat(input.Format)
		if err != nil {
			return nil, FormatOutput{}, err
		}

		content, err := renderer.Render(input.Text, input.Title, format)
		if err != nil {
			return nil, FormatOutput{}, err
		}

		return nil, FormatOutput{Content: content, Format: format}, nil
	}
}
