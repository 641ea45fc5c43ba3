package models

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingProductName = errors.New("product name is required")
	ErrMissingFeatures    = errors.New("at least one product feature is required")
)

// ProductSpec is the operator's description of the product to be listed.
type ProductSpec struct {
	Name     string   `json:"product_name" yaml:"product_name"`
	Features []string `json:"features" yaml:"features"`
	Audience string   `json:"target_audience,omitempty" yaml:"target_audience,omitempty"`
}

// NewProductSpec trims the operator input and enforces a non-empty name and
// at least one feature. Blank features are dropped and the slice is copied.
func NewProductSpec(name string, features []string, audience string) (ProductSpec, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ProductSpec{}, ErrMissingProductName
	}

	cleaned := make([]string, 0, len(features))
	for _, f := range features {
		f = strings.TrimSpace(f)
		if f != "" {
			cleaned = append(cleaned, f)
		}
	}
	if len(cleaned) == 0 {
		return ProductSpec{}, ErrMissingFeatures
	}

	return ProductSpec{
		Name:     name,
		Features: cleaned,
		Audience: strings.TrimSpace(audience),
	}, nil
}

// HasAudience reports whether an audience was given.
func (p ProductSpec) HasAudience() bool {
	return strings.TrimSpace(p.Audience) != ""
}

// GeneratedContent is a listing already split into its three sections.
type GeneratedContent struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Bullets     []string `json:"bullets" yaml:"bullets"`
}

type ViolationCode string

const (
	ViolationTitleTooLong        ViolationCode = "TitleTooLong"
	ViolationDescriptionTooShort ViolationCode = "DescriptionTooShort"
	ViolationDescriptionTooLong  ViolationCode = "DescriptionTooLong"
	ViolationBannedTermsFound    ViolationCode = "BannedTermsFound"
	ViolationTooFewBullets       ViolationCode = "TooFewBullets"
)

// One failed rule
type Violation struct {
	Code    ViolationCode `json:"code"`
	Message string        `json:"message"`
	Terms   []string      `json:"terms,omitempty"`
}

const ValidationSuccessMessage = "✅ Walidacja przeszła pomyślnie!"

type ValidationResult struct {
	IsValid    bool        `json:"is_valid"`
	Violations []Violation `json:"violations"`
}

// Errors returns the violation messages in rule order. It is empty for a
// valid result.
func (r ValidationResult) Errors() []string {
	errs := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		errs = append(errs, v.Message)
	}
	return errs
}

// Summary is a display string: the success sentence or one message per line.
func (r ValidationResult) Summary() string {
	if r.IsValid {
		return ValidationSuccessMessage
	}
	return strings.Join(r.Errors(), "\n")
}

// Has reports whether a violation with the given code was recorded.
func (r ValidationResult) Has(code ViolationCode) bool {
	for _, v := range r.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

type OutputFormat string

const (
	FormatText OutputFormat = "txt"
	FormatHTML OutputFormat = "html"
)

// Extension returns the file extension forced on saved files.
func (f OutputFormat) Extension() string {
	if f == FormatHTML {
		return ".html"
	}
	return ".txt"
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", errors.New("unsupported output format " + s + " (expected txt or html)")
	}
}

// Listing is the delivered artifact
type Listing struct {
	ID          string       `json:"id"`
	ProductName string       `json:"product_name"`
	Content     string       `json:"content"`
	FileName    string       `json:"file_name,omitempty"`
	Format      OutputFormat `json:"format"`
	CreatedAt   time.Time    `json:"created_at"`
}

// PromptStats is shown next to the rendered prompt.
type PromptStats struct {
	Characters int `json:"characters"`
	Tokens     int `json:"tokens"`
}
