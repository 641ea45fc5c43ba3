package validation

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

type BannedTermsChecker struct {
	terms models.BannedTermSet
}

func NewBannedTermsChecker(terms models.BannedTermSet) *BannedTermsChecker {
	return &BannedTermsChecker{terms: terms}
}

func (c *BannedTermsChecker) Name() string {
	return "banned-terms"
}

func (c *BannedTermsChecker) Check(content models.GeneratedContent) (models.Violation, bool) {
	found := c.terms.FindIn(content.Description)
	if len(found) == 0 {
		return models.Violation{}, true
	}

	return models.Violation{
		Code:    models.ViolationBannedTermsFound,
		Message: fmt.Sprintf("Znaleziono zakazane słowa: %s", strings.Join(found, ", ")),
		Terms:   found,
	}, false
}
