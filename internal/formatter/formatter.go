package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

const htmlTemplate = `<!DOCTYPE html>
<html lang="pl">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

type Formatter struct {
	md goldmark.Markdown
}

func New() *Formatter {
	return &Formatter{
		md: goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps())),
	}
}

// Format trims the pasted response and surrounds it with single newlines.
func (f *Formatter) Format(text string) string {
	return "\n" + strings.TrimSpace(text) + "\n"
}

// Render returns the file content for the given format. Text is returned
// formatted; HTML is the formatted text converted as Markdown and wrapped in
// a standalone document.
func (f *Formatter) Render(text, title string, format models.OutputFormat) (string, error) {
	formatted := f.Format(text)
	if format != models.FormatHTML {
		return formatted, nil
	}

	body, err := f.toHTML(formatted)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(htmlTemplate, escapeTitle(title), body), nil
}

func (f *Formatter) toHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return buf.String(), nil
}

var titleEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeTitle(s string) string {
	return titleEscaper.Replace(strings.TrimSpace(s))
}
