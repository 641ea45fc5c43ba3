package validation

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

// BulletCountChecker enforces a lower bound only.
type BulletCountChecker struct {
	minCount int
}

func NewBulletCountChecker(minCount int) *BulletCountChecker {
	return &BulletCountChecker{minCount: minCount}
}

func (c *BulletCountChecker) Name() string {
	return "bullet-count"
}

func (c *BulletCountChecker) Check(content models.GeneratedContent) (models.Violation, bool) {
	count := len(content.Bullets)
	if count >= c.minCount {
		return models.Violation{}, true
	}

	return models.Violation{
		Code:    models.ViolationTooFewBullets,
		Message: fmt.Sprintf("Za mało punktów: %d (potrzeba %d)", count, c.minCount),
	}, false
}
