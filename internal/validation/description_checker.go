package validation

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

type DescriptionLengthChecker struct {
	minWords int
	maxWords int
}

func NewDescriptionLengthChecker(minWords, maxWords int) *DescriptionLengthChecker {
	return &DescriptionLengthChecker{minWords: minWords, maxWords: maxWords}
}

func (c *DescriptionLengthChecker) Name() string {
	return "description-length"
}

func (c *DescriptionLengthChecker) Check(content models.GeneratedContent) (models.Violation, bool) {
	words := WordCount(content.Description)

	if words < c.minWords {
		return models.Violation{
			Code:    models.ViolationDescriptionTooShort,
			Message: fmt.Sprintf("Opis za krótki: %d słów (min %d)", words, c.minWords),
		}, false
	}
	if words > c.maxWords {
		return models.Violation{
			Code:    models.ViolationDescriptionTooLong,
			Message: fmt.Sprintf("Opis za długi: %d słów (max %d)", words, c.maxWords),
		}, false
	}

	return models.Violation{}, true
}

// WordCount splits on runs of whitespace.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
