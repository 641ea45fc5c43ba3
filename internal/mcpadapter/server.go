package mcpadapter

import (
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var ErrEmptyText = errors.New("text is required")

type Tools struct {
	Builder   PromptBuilder
	Validator Validator
	Renderer  Renderer
	Tokens    TokenCounter
}

// NewServer registers the listing tools on a new MCP server.
func NewServer(version string, tools Tools) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "listing-agent",
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_listing_prompt",
		Description: "Build the Polish Allegro listing prompt from a product name, features and an optional target audience",
	}, NewBuildPromptHandler(tools.Builder, tools.Tokens))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_listing",
		Description: "Check a listing title, description and bullets against length, banned-term and bullet-count rules",
	}, NewValidateHandler(tools.Validator))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_listing",
		Description: "Trim a pasted listing and return it as plain text or an HTML document",
	}, NewFormatHandler(tools.Renderer))

	return server
}
