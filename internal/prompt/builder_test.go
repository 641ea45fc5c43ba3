package prompt

import (
	"reflect"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/config"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

func lines(s string) []string {
	return strings.Split(s, "\n")
}

func countLine(s, line string) int {
	n := 0
	for _, l := range lines(s) {
		if l == line {
			n++
		}
	}
	return n
}

func TestBuilder_Build(t *testing.T) {
	builder := NewBuilder(config.DefaultRules())

	tests := []struct {
		name     string
		spec     models.ProductSpec
		audience bool
	}{
		{
			name: "with audience",
			spec: models.ProductSpec{
				Name:     "Bidon stalowy 750ml",
				Features: []string{"Izolacja termiczna 24h", "BPA Free", "Szczelny", "Szeroka nakrętka"},
				Audience: "Osoby aktywne, siłownia, outdoor",
			},
			audience: true,
		},
		{
			name: "without audience",
			spec: models.ProductSpec{
				Name:     "Kubek ceramiczny",
				Features: []string{"Pojemność 350 ml"},
			},
		},
		{
			name: "blank audience is absent",
			spec: models.ProductSpec{
				Name:     "Lampka biurkowa",
				Features: []string{"LED", "Regulacja jasności"},
				Audience: "   ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := builder.Build(tt.spec)

			if n := strings.Count(got, tt.spec.Name); n != 1 {
				t.Errorf("product name appears %d times, want 1", n)
			}
			if countLine(got, "PRODUKT: "+tt.spec.Name) != 1 {
				t.Error("missing PRODUKT line")
			}

			// Features are rendered once each, on their own lines, in order
			var featureLines []string
			for _, l := range lines(got) {
				for _, f := range tt.spec.Features {
					if l == "- "+f {
						featureLines = append(featureLines, f)
					}
				}
			}
			if !reflect.DeepEqual(featureLines, tt.spec.Features) {
				t.Errorf("feature lines: %v, want: %v", featureLines, tt.spec.Features)
			}

			audienceLines := 0
			for _, l := range lines(got) {
				if strings.HasPrefix(l, "GRUPA DOCELOWA:") {
					audienceLines++
				}
			}
			if tt.audience {
				if audienceLines != 1 {
					t.Errorf("audience lines: %d, want 1", audienceLines)
				}
				if countLine(got, "GRUPA DOCELOWA: "+tt.spec.Audience) != 1 {
					t.Error("audience line does not contain the audience")
				}
			} else if audienceLines != 0 {
				t.Errorf("audience section should be omitted, found %d lines", audienceLines)
			}
		})
	}
}

func TestBuilder_SectionOrder(t *testing.T) {
	got := NewBuilder(config.DefaultRules()).Build(models.ProductSpec{
		Name:     "Bidon stalowy 750ml",
		Features: []string{"BPA Free"},
		Audience: "Rowerzyści",
	})

	order := []string{
		"Jesteś ekspertem",
		"PRODUKT: Bidon stalowy 750ml",
		"CECHY PRODUKTU:",
		"- BPA Free",
		"GRUPA DOCELOWA: Rowerzyści",
		"1. TYTUŁ (maksymalnie 50 znaków):",
		"2. OPIS (100-150 słów):",
		"3. PUNKTY (5 punktów):",
		"ZAKAZANE SŁOWA (NIE UŻYWAJ):",
		"rewolucyjny, innowacyjny, wyjątkowy, niezrównany, najlepszy na rynku, przełomowy, absolutnie, premium, ekskluzywny",
		"WAŻNE:",
		"PRZYKŁADOWA STRUKTURA ODPOWIEDZI:",
		"✅ [punkt 5]",
		"SŁOWA KLUCZOWE (10 słów):",
		"Napisz opis zgodnie z powyższymi wytycznymi.",
	}

	pos := 0
	for _, want := range order {
		i := strings.Index(got[pos:], want)
		if i < 0 {
			t.Fatalf("%q missing or out of order", want)
		}
		pos += i + len(want)
	}
}

func TestBuilder_Deterministic(t *testing.T) {
	builder := NewBuilder(config.DefaultRules())
	spec := models.ProductSpec{Name: "Kubek", Features: []string{"Ceramika", "350 ml"}, Audience: "Biuro"}

	first := builder.Build(spec)
	for i := 0; i < 5; i++ {
		if builder.Build(spec) != first {
			t.Fatal("Build returned different output for identical input")
		}
	}
}

func TestBuilder_DoesNotMutateInput(t *testing.T) {
	features := []string{"  spacja  ", "BPA Free"}
	spec := models.ProductSpec{Name: "Kubek", Features: features}

	NewBuilder(config.DefaultRules()).Build(spec)

	if !reflect.DeepEqual(features, []string{"  spacja  ", "BPA Free"}) {
		t.Errorf("features were mutated: %v", features)
	}
}

func TestBuilder_EmptyFeatures(t *testing.T) {
	got := NewBuilder(config.DefaultRules()).Build(models.ProductSpec{Name: "Kubek"})

	if !strings.Contains(got, "CECHY PRODUKTU:\n\nWYMAGANIA DOTYCZĄCE OPISU:") {
		t.Errorf("expected an empty feature block, got:\n%s", got)
	}
}

func TestBuilder_UsesRules(t *testing.T) {
	rules := config.DefaultRules()
	rules.Title.MaxChars = 60
	rules.Description.TargetMinWords = 120
	rules.Description.TargetMaxWords = 180
	rules.Bullets.MinCount = 3
	rules.BannedTerms = models.NewBannedTermSet("tani", "super okazja")

	got := NewBuilder(rules).Build(models.ProductSpec{Name: "Kubek", Features: []string{"Ceramika"}})

	for _, want := range []string{
		"1. TYTUŁ (maksymalnie 60 znaków):",
		"2. OPIS (120-180 słów):",
		"3. PUNKTY (3 punkty):",
		"tani, super okazja",
		"[twój tytuł - max 60 znaków]",
		"✅ [punkt 3]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in prompt", want)
		}
	}
	if strings.Contains(got, "✅ [punkt 4]") {
		t.Error("example should list only the configured number of bullets")
	}
}

func TestBulletNoun(t *testing.T) {
	tests := map[int]string{
		1:  "punkt",
		2:  "punkty",
		4:  "punkty",
		5:  "punktów",
		12: "punktów",
		22: "punkty",
		25: "punktów",
	}
	for n, want := range tests {
		if got := bulletNoun(n); got != want {
			t.Errorf("bulletNoun(%d): %s, want: %s", n, got, want)
		}
	}
}
