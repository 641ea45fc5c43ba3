package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultBannedTerms are clichés that make Polish listings sound generated.
var DefaultBannedTerms = []string{
	"rewolucyjny",
	"innowacyjny",
	"wyjątkowy",
	"niezrównany",
	"najlepszy na rynku",
	"przełomowy",
	"absolutnie",
	"premium",
	"ekskluzywny",
}

// RulesFile is the on-disk shape of the rules configuration.
type RulesFile struct {
	Title       TitleRules       `yaml:"title" json:"title"`
	Description DescriptionRules `yaml:"description" json:"description"`
	Bullets     BulletRules      `yaml:"bullets" json:"bullets"`
	BannedTerms []string         `yaml:"banned_terms" json:"banned_terms" jsonschema:"description=Words and phrases the description must not contain"`
}

type TitleRules struct {
	MaxChars int `yaml:"max_chars" json:"max_chars" jsonschema:"minimum=1,default=50"`
}

type DescriptionRules struct {
	MinWords       int `yaml:"min_words" json:"min_words" jsonschema:"minimum=0,default=80"`
	MaxWords       int `yaml:"max_words" json:"max_words" jsonschema:"minimum=1,default=200"`
	TargetMinWords int `yaml:"target_min_words" json:"target_min_words" jsonschema:"minimum=1,default=100,description=Lower word target requested in the prompt"`
	TargetMaxWords int `yaml:"target_max_words" json:"target_max_words" jsonschema:"minimum=1,default=150,description=Upper word target requested in the prompt"`
}

type BulletRules struct {
	MinCount int `yaml:"min_count" json:"min_count" jsonschema:"minimum=1,default=5"`
}

// Rules is the immutable rule set shared by the prompt builder and the
// validator. Build it with DefaultRules or LoadRules.
type Rules struct {
	Title       TitleRules
	Description DescriptionRules
	Bullets     BulletRules
	BannedTerms models.BannedTermSet
}

func defaultRulesFile() RulesFile {
	terms := make([]string, len(DefaultBannedTerms))
	copy(terms, DefaultBannedTerms)

	return RulesFile{
		Title: TitleRules{MaxChars: 50},
		Description: DescriptionRules{
			MinWords:       80,
			MaxWords:       200,
			TargetMinWords: 100,
			TargetMaxWords: 150,
		},
		Bullets:     BulletRules{MinCount: 5},
		BannedTerms: terms,
	}
}

func DefaultRules() Rules {
	return defaultRulesFile().toRules()
}

// LoadRules reads a YAML rules file on top of the defaults. An empty path
// returns the defaults.
func LoadRules(path string) (Rules, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	file, err := ParseRules(data)
	if err != nil {
		return Rules{}, fmt.Errorf("%s: %w", path, err)
	}

	return file.toRules(), nil
}

// ParseRules decodes YAML into a copy of the defaults and validates it.
func ParseRules(data []byte) (RulesFile, error) {
	file := defaultRulesFile()
	if err := yaml.Unmarshal(data, &file); err != nil {
		return RulesFile{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := file.Validate(); err != nil {
		return RulesFile{}, err
	}

	return file, nil
}

func (f RulesFile) Validate() error {
	var errs []error

	if f.Title.MaxChars <= 0 {
		errs = append(errs, fmt.Errorf("title.max_chars must be positive, got %d", f.Title.MaxChars))
	}
	if f.Description.MinWords < 0 {
		errs = append(errs, fmt.Errorf("description.min_words must not be negative, got %d", f.Description.MinWords))
	}
	if f.Description.MaxWords < f.Description.MinWords {
		errs = append(errs, fmt.Errorf("description.max_words (%d) is lower than min_words (%d)", f.Description.MaxWords, f.Description.MinWords))
	}
	if f.Description.TargetMinWords <= 0 || f.Description.TargetMaxWords < f.Description.TargetMinWords {
		errs = append(errs, fmt.Errorf("description target range %d-%d is invalid", f.Description.TargetMinWords, f.Description.TargetMaxWords))
	}
	if f.Bullets.MinCount <= 0 {
		errs = append(errs, fmt.Errorf("bullets.min_count must be positive, got %d", f.Bullets.MinCount))
	}
	for i, term := range f.BannedTerms {
		if strings.TrimSpace(term) == "" {
			errs = append(errs, fmt.Errorf("banned_terms[%d] is empty", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid rules: %w", errors.Join(errs...))
	}
	return nil
}

func (f RulesFile) toRules() Rules {
	return Rules{
		Title:       f.Title,
		Description: f.Description,
		Bullets:     f.Bullets,
		BannedTerms: models.NewBannedTermSet(f.BannedTerms...),
	}
}

// File converts the rules back to their serialisable form.
func (r Rules) File() RulesFile {
	return RulesFile{
		Title:       r.Title,
		Description: r.Description,
		Bullets:     r.Bullets,
		BannedTerms: r.BannedTerms.Terms(),
	}
}
