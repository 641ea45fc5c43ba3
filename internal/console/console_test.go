package console

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestConsole_ReadProductSpec(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       models.ProductSpec
		wantErr    error
		wantOutput string
	}{
		{
			name:  "full input",
			input: "Bidon stalowy 750ml\nIzolacja termiczna 24h\n BPA Free \n\nOsoby aktywne\n",
			want: models.ProductSpec{
				Name:     "Bidon stalowy 750ml",
				Features: []string{"Izolacja termiczna 24h", "BPA Free"},
				Audience: "Osoby aktywne",
			},
		},
		{
			name:  "audience skipped",
			input: "Kubek\nCeramika\n\n\n",
			want: models.ProductSpec{
				Name:     "Kubek",
				Features: []string{"Ceramika"},
			},
		},
		{
			name:  "windows line endings",
			input: "Kubek\r\nCeramika\r\n\r\n\r\n",
			want: models.ProductSpec{
				Name:     "Kubek",
				Features: []string{"Ceramika"},
			},
		},
		{
			name:  "input ends after features",
			input: "Kubek\nCeramika",
			want: models.ProductSpec{
				Name:     "Kubek",
				Features: []string{"Ceramika"},
			},
		},
		{
			name:       "missing name",
			input:      "   \n",
			wantErr:    models.ErrMissingProductName,
			wantOutput: "❌ Nazwa produktu jest wymagana!",
		},
		{
			name:       "empty input",
			input:      "",
			wantErr:    models.ErrMissingProductName,
			wantOutput: "❌ Nazwa produktu jest wymagana!",
		},
		{
			name:       "missing features",
			input:      "Kubek\n\n",
			wantErr:    models.ErrMissingFeatures,
			wantOutput: "❌ Musisz podać przynajmniej jedną cechę!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole(tt.input)

			got, err := c.ReadProductSpec()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err: %v, want: %v", err, tt.wantErr)
			}
			if tt.wantOutput != "" && !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output should contain %q, got:\n%s", tt.wantOutput, out.String())
			}
			if tt.wantErr != nil {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConsole_ReadProductSpec_NumbersFeatures(t *testing.T) {
	c, out := newTestConsole("Kubek\nA\nB\n\n\n")

	if _, err := c.ReadProductSpec(); err != nil {
		t.Fatalf("ReadProductSpec failed: %v", err)
	}
	for _, want := range []string{"  1. ", "  2. ", "  3. "} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected feature prompt %q", want)
		}
	}
}

func TestConsole_ReadResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "stops at marker",
			input: "TYTUŁ:\nKubek\n\nOPIS:\nTekst\nKONIEC\nignored\n",
			want:  "TYTUŁ:\nKubek\n\nOPIS:\nTekst",
		},
		{
			name:  "marker is case insensitive and trimmed",
			input: "Linia\n  koniec  \n",
			want:  "Linia",
		},
		{
			name:  "end of input",
			input: "Linia 1\nLinia 2",
			want:  "Linia 1\nLinia 2",
		},
		{
			name:  "marker inside a line does not stop",
			input: "To nie KONIEC historii\nKONIEC\n",
			want:  "To nie KONIEC historii",
		},
		{
			name:  "nothing pasted",
			input: "KONIEC\n",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestConsole(tt.input)
			got, err := c.ReadResponse()
			if err != nil {
				t.Fatalf("ReadResponse failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConsole_ConfirmSave(t *testing.T) {
	tests := map[string]bool{
		"t\n":   true,
		" T \n": true,
		"n\n":   false,
		"tak\n": false,
		"":      false,
	}

	for input, want := range tests {
		c, _ := newTestConsole(input)
		got, err := c.ConfirmSave()
		if err != nil {
			t.Fatalf("ConfirmSave(%q) failed: %v", input, err)
		}
		if got != want {
			t.Errorf("ConfirmSave(%q): %v, want: %v", input, got, want)
		}
	}
}

func TestConsole_ReadFileName(t *testing.T) {
	c, out := newTestConsole("\n")
	got, err := c.ReadFileName("opis_produktu.txt")
	if err != nil {
		t.Fatalf("ReadFileName failed: %v", err)
	}
	if got != "opis_produktu.txt" {
		t.Errorf("expected default name, got %q", got)
	}
	if !strings.Contains(out.String(), "Nazwa pliku (Enter = opis_produktu.txt): ") {
		t.Errorf("unexpected prompt: %q", out.String())
	}

	c, _ = newTestConsole("  bidon  \n")
	got, _ = c.ReadFileName("opis_produktu.txt")
	if got != "bidon" {
		t.Errorf("expected trimmed name, got %q", got)
	}
}

func TestConsole_Messages(t *testing.T) {
	c, out := newTestConsole("")

	c.ShowPrompt("PROMPT BODY", models.PromptStats{Characters: 1200, Tokens: 400})
	c.ShowResult("\nWYNIK\n")
	c.Saved("file", "out/opis.txt")
	c.Saved("redis-stream", "listings/1-0")
	c.SaveFailed(errors.New("disk full"))
	c.EmptyResponse()
	c.Done()
	c.Interrupted()

	for _, want := range []string{
		"PROMPT BODY",
		"1200 znaków, ~400 tokenów",
		"WYNIK",
		"💾 Zapisano do pliku: out/opis.txt",
		"📤 Wysłano do redis-stream: listings/1-0",
		"❌ Błąd zapisu: disk full",
		"❌ Nie wklejono żadnej odpowiedzi!",
		"✅ Gotowe! Możesz teraz skopiować opis i wkleić na Allegro.",
		"❌ Przerwano przez użytkownika.",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output", want)
		}
	}
}
