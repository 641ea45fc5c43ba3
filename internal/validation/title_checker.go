package validation

import (
	"fmt"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
	"golang.org/x/text/unicode/norm"
)

type TitleLengthChecker struct {
	maxChars int
}

func NewTitleLengthChecker(maxChars int) *TitleLengthChecker {
	return &TitleLengthChecker{maxChars: maxChars}
}

func (c *TitleLengthChecker) Name() string {
	return "title-length"
}

// Check counts characters of the NFC-normalised title, so a decomposed "ą"
// counts once.
func (c *TitleLengthChecker) Check(content models.GeneratedContent) (models.Violation, bool) {
	length := TitleLength(content.Title)
	if length <= c.maxChars {
		return models.Violation{}, true
	}

	return models.Violation{
		Code:    models.ViolationTitleTooLong,
		Message: fmt.Sprintf("Tytuł za długi: %d znaków (max %d)", length, c.maxChars),
	}, false
}

func TitleLength(title string) int {
	return utf8.RuneCountInString(norm.NFC.String(title))
}
