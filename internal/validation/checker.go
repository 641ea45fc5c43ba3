package validation

import (
	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

// Checker evaluates one rule. ok is false when the rule is violated.
type Checker interface {
	Name() string
	Check(content models.GeneratedContent) (violation models.Violation, ok bool)
}
