package output

import (
	"context"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

// Sink delivers a finished listing and returns where it ended up.
type Sink interface {
	Name() string
	Save(ctx context.Context, listing models.Listing) (string, error)
}

type Renderer interface {
	Render(text, title string, format models.OutputFormat) (string, error)
}
