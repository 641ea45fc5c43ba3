package prompt

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/config"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

const keywordCount = 10

// Builder renders a ProductSpec into the Allegro listing prompt.
type Builder struct {
	rules config.Rules
}

func NewBuilder(rules config.Rules) *Builder {
	return &Builder{rules: rules}
}

// Build is pure and deterministic. An empty feature list renders an empty
// feature block; non-empty input is enforced by models.NewProductSpec.
func (b *Builder) Build(spec models.ProductSpec) string {
	r := b.rules
	var sb strings.Builder

	sb.WriteString("Jesteś ekspertem od pisania opisów produktów na Allegro.\n")
	sb.WriteString("Twoim zadaniem jest napisać opis produktu w języku polskim, który SPRZEDAJE.\n\n")

	sb.WriteString(fmt.Sprintf("PRODUKT: %s\n\n", spec.Name))

	sb.WriteString("CECHY PRODUKTU:\n")
	for _, f := range spec.Features {
		sb.WriteString(fmt.Sprintf("- %s\n", f))
	}
	sb.WriteString("\n")

	if spec.HasAudience() {
		sb.WriteString(fmt.Sprintf("GRUPA DOCELOWA: %s\n\n", strings.TrimSpace(spec.Audience)))
	}

	sb.WriteString("WYMAGANIA DOTYCZĄCE OPISU:\n\n")

	sb.WriteString(fmt.Sprintf("1. TYTUŁ (maksymalnie %d znaków):\n", r.Title.MaxChars))
	sb.WriteString("   - Zwięzły i konkretny\n")
	sb.WriteString("   - Zawiera najważniejsze słowa kluczowe\n")
	sb.WriteString("   - Format: [Nazwa produktu] [kluczowa cecha] [rozmiar/kolor jeśli dotyczy]\n\n")

	sb.WriteString(fmt.Sprintf("2. OPIS (%d-%d słów):\n", r.Description.TargetMinWords, r.Description.TargetMaxWords))
	sb.WriteString("   - Zacznij od emocjonalnego hooka (pytanie lub stwierdzenie)\n")
	sb.WriteString("   - Użyj 2-3 emoji (Polacy lubią emoji na Allegro! 🔥 ✅ 📦)\n")
	sb.WriteString("   - Pisz konwersacyjnie, jak do znajomego (ale profesjonalnie)\n")
	sb.WriteString("   - Skup się na KORZYŚCIACH, nie tylko cechach\n")
	sb.WriteString("   - Dodaj konkretny przykład użycia\n")
	sb.WriteString("   - Zakończ wezwaniem do działania\n\n")

	sb.WriteString(fmt.Sprintf("3. PUNKTY (%d %s):\n", r.Bullets.MinCount, bulletNoun(r.Bullets.MinCount)))
	sb.WriteString("   - Każdy zaczyna się od ✅ lub ✓\n")
	sb.WriteString("   - Konkretne, mierzalne korzyści\n")
	sb.WriteString("   - Krótkie (maksymalnie 1 linia)\n\n")

	sb.WriteString("ZAKAZANE SŁOWA (NIE UŻYWAJ):\n")
	sb.WriteString(r.BannedTerms.String())
	sb.WriteString("\n\n")

	sb.WriteString("WAŻNE:\n")
	sb.WriteString("- Pisz w drugiej osobie (Ty/Twój)\n")
	sb.WriteString("- Używaj języka korzyści (nie \"ma\", ale \"zapewnia Ci\", \"zyskujesz\")\n")
	sb.WriteString("- Bądź konkretny (nie \"długo trzyma\", ale \"24 godziny\")\n")
	sb.WriteString("- Optymalizuj pod mobile (krótkie zdania, akapity)\n")
	sb.WriteString("- Ton: przyjazny ale profesjonalny\n\n")

	sb.WriteString("PRZYKŁADOWA STRUKTURA ODPOWIEDZI:\n\n")
	sb.WriteString("TYTUŁ:\n")
	sb.WriteString(fmt.Sprintf("[twój tytuł - max %d znaków]\n\n", r.Title.MaxChars))
	sb.WriteString("OPIS:\n")
	sb.WriteString(fmt.Sprintf("[twój opis %d-%d słów]\n\n", r.Description.TargetMinWords, r.Description.TargetMaxWords))
	sb.WriteString("PUNKTY:\n")
	for i := 1; i <= r.Bullets.MinCount; i++ {
		sb.WriteString(fmt.Sprintf("✅ [punkt %d]\n", i))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("SŁOWA KLUCZOWE (%d słów):\n", keywordCount))
	sb.WriteString("[słowo1], [słowo2], [słowo3]...\n\n")
	sb.WriteString("---\n\n")
	sb.WriteString("Napisz opis zgodnie z powyższymi wytycznymi.\n")

	return sb.String()
}

// bulletNoun picks the Polish plural of "punkt" for n.
func bulletNoun(n int) string {
	if n == 1 {
		return "punkt"
	}
	last, lastTwo := n%10, n%100
	if last >= 2 && last <= 4 && (lastTwo < 12 || lastTwo > 14) {
		return "punkty"
	}
	return "punktów"
}
