package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
	"github.com/rs/zerolog"
)

const DefaultFileName = "opis_produktu.txt"

type FileSink struct {
	dir         string
	defaultName string
	renderer    Renderer
	logger      *zerolog.Logger
}

func NewFileSink(dir, defaultName string, renderer Renderer, logger *zerolog.Logger) *FileSink {
	if strings.TrimSpace(defaultName) == "" {
		defaultName = DefaultFileName
	}
	return &FileSink{
		dir:         dir,
		defaultName: defaultName,
		renderer:    renderer,
		logger:      logger,
	}
}

func (s *FileSink) Name() string {
	return "file"
}

// Save renders the listing in its format and writes it under the sink
// directory. It returns the path written.
func (s *FileSink) Save(ctx context.Context, listing models.Listing) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := NormalizeFileName(listing.FileName, s.defaultName, listing.Format.Extension())
	path := name
	if s.dir != "" && !filepath.IsAbs(name) {
		path = filepath.Join(s.dir, name)
	}

	content, err := s.renderer.Render(listing.Content, listing.ProductName, listing.Format)
	if err != nil {
		return "", fmt.Errorf("failed to render listing: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.logger.Info().
		Str("listing_id", listing.ID).
		Str("path", path).
		Int("bytes", len(content)).
		Msg("listing saved")

	return path, nil
}

// NormalizeFileName trims name, falls back to defaultName when empty and
// appends ext unless the name already ends with it. The default name gets its
// extension swapped so "opis_produktu.txt" becomes "opis_produktu.html".
func NormalizeFileName(name, defaultName, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == defaultName {
		name = strings.TrimSuffix(defaultName, filepath.Ext(defaultName))
	}
	if !strings.HasSuffix(name, ext) {
		name += ext
	}
	return name
}
