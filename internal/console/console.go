package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

const (
	separatorWidth = 60
	endMarker      = "KONIEC"
)

// Console drives the interactive dialogue with the operator.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	header  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func New(in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)

	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		muted:   r.NewStyle().Faint(true),
	}
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) separator() {
	c.println(strings.Repeat("=", separatorWidth))
}

func (c *Console) step(title string) {
	c.println()
	c.separator()
	c.println(c.header.Render(title))
	c.separator()
}

// readLine returns one line without the trailing newline. io.EOF is only
// returned when nothing was read.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) Banner() {
	rockets := strings.Repeat("🚀", 30)
	c.println()
	c.println(rockets)
	c.println(c.header.Render("   PRODUCT DESCRIPTION AGENT"))
	c.println("   Opisy produktów dla Allegro - Polski")
	c.println(rockets)
}

// ReadProductSpec collects name, features and audience. Missing input is
// reported to the operator and returned as models.ErrMissingProductName or
// models.ErrMissingFeatures.
func (c *Console) ReadProductSpec() (models.ProductSpec, error) {
	c.println()
	c.println(c.header.Render("🛒 GENERATOR OPISÓW PRODUKTÓW - ALLEGRO"))
	c.separator()
	c.println()
	c.println("📝 Wprowadź informacje o produkcie:")
	c.println()

	name, err := c.ask("Nazwa produktu: ")
	if err != nil {
		return models.ProductSpec{}, err
	}
	if name == "" {
		c.println(c.failure.Render("❌ Nazwa produktu jest wymagana!"))
		return models.ProductSpec{}, models.ErrMissingProductName
	}

	c.println()
	c.println("✨ Cechy produktu (wpisz po kolei, Enter po każdej, pusta linia = koniec):")
	var features []string
	for i := 1; ; i++ {
		fmt.Fprintf(c.out, "  %d. ", i)
		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return models.ProductSpec{}, fmt.Errorf("failed to read input: %w", err)
		}
		feature := strings.TrimSpace(line)
		if feature == "" {
			break
		}
		features = append(features, feature)
	}
	if len(features) == 0 {
		c.println(c.failure.Render("❌ Musisz podać przynajmniej jedną cechę!"))
		return models.ProductSpec{}, models.ErrMissingFeatures
	}

	c.println()
	c.println("👥 Grupa docelowa (opcjonalnie, Enter aby pominąć):")
	audience, err := c.ask("  ")
	if err != nil {
		return models.ProductSpec{}, err
	}

	return models.NewProductSpec(name, features, audience)
}

func (c *Console) ShowPrompt(prompt string, stats models.PromptStats) {
	c.step("📋 KROK 1: GENEROWANIE PROMPTU")
	c.println()
	c.println(c.success.Render("✅ Prompt wygenerowany!"))
	c.println(c.muted.Render(fmt.Sprintf("   %d znaków, ~%d tokenów", stats.Characters, stats.Tokens)))
	c.println()
	c.separator()
	c.println("📋 SKOPIUJ TEN PROMPT I WKLEJ DO ASYSTENTA AI:")
	c.separator()
	c.println()
	c.println(prompt)
	c.separator()
}

// ReadResponse collects pasted lines until a line reading KONIEC (any case,
// surrounding spaces ignored) or end of input.
func (c *Console) ReadResponse() (string, error) {
	c.step("📥 KROK 2: WKLEJ ODPOWIEDŹ")
	c.println()
	c.println(c.muted.Render("(Skopiuj całą odpowiedź i wklej poniżej)"))
	c.println(c.muted.Render("(Wpisz 'KONIEC' w nowej linii i naciśnij Enter)"))
	c.println()
	c.println("Wklej odpowiedź (KONIEC aby zakończyć):")

	var lines []string
	for {
		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read response: %w", err)
		}
		if strings.EqualFold(strings.TrimSpace(line), endMarker) {
			break
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}

func (c *Console) EmptyResponse() {
	c.println()
	c.println(c.failure.Render("❌ Nie wklejono żadnej odpowiedzi!"))
}

func (c *Console) ShowResult(content string) {
	c.step("📝 KROK 3: FORMATOWANIE WYNIKU")
	c.println()
	c.println(c.success.Render("✅ GOTOWY OPIS PRODUKTU:"))
	c.separator()
	c.println(content)
	c.separator()
}

// ConfirmSave returns true only for "t".
func (c *Console) ConfirmSave() (bool, error) {
	c.println()
	answer, err := c.ask("💾 Zapisać do pliku? (t/n): ")
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "t", nil
}

// ReadFileName returns the trimmed answer, or defaultName when empty.
func (c *Console) ReadFileName(defaultName string) (string, error) {
	name, err := c.ask(fmt.Sprintf("Nazwa pliku (Enter = %s): ", defaultName))
	if err != nil {
		return "", err
	}
	if name == "" {
		return defaultName, nil
	}
	return name, nil
}

func (c *Console) Saved(sink, location string) {
	c.println()
	if sink == "file" {
		c.println(c.success.Render("💾 Zapisano do pliku: " + location))
		return
	}
	c.println(c.success.Render(fmt.Sprintf("📤 Wysłano do %s: %s", sink, location)))
}

func (c *Console) SaveFailed(err error) {
	c.println()
	c.println(c.failure.Render(fmt.Sprintf("❌ Błąd zapisu: %v", err)))
}

func (c *Console) Done() {
	c.println()
	c.println(c.success.Render("✅ Gotowe! Możesz teraz skopiować opis i wkleić na Allegro."))
	c.println()
	c.println("💡 TIP: Ten opis możesz edytować przed wklejeniem na Allegro.")
	c.println()
}

func (c *Console) Interrupted() {
	c.println()
	c.println()
	c.println(c.failure.Render("❌ Przerwano przez użytkownika."))
}

func (c *Console) Failed(err error) {
	c.println()
	c.println()
	c.println(c.failure.Render(fmt.Sprintf("❌ Wystąpił błąd: %v", err)))
}
