package validation

import (
	"github.com/povarna/generative-ai-agents/listing-agent/internal/config"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

// Validator runs every checker, in order, and collects all violations.
type Validator struct {
	Checkers []Checker
}

func NewValidator(checkers []Checker) *Validator {
	return &Validator{
		Checkers: checkers,
	}
}

// NewRulesValidator builds the standard validator: title, description,
// banned terms, bullets.
func NewRulesValidator(rules config.Rules) *Validator {
	return NewValidator([]Checker{
		NewTitleLengthChecker(rules.Title.MaxChars),
		NewDescriptionLengthChecker(rules.Description.MinWords, rules.Description.MaxWords),
		NewBannedTermsChecker(rules.BannedTerms),
		NewBulletCountChecker(rules.Bullets.MinCount),
	})
}

func (v *Validator) Validate(content models.GeneratedContent) models.ValidationResult {
	violations := []models.Violation{}

	for _, c := range v.Checkers {
		if violation, ok := c.Check(content); !ok {
			violations = append(violations, violation)
		}
	}

	return models.ValidationResult{
		IsValid:    len(violations) == 0,
		Violations: violations,
	}
}
