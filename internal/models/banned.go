package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BannedTermSet is an ordered, read-only set of clichéd words and phrases.
// Terms are compared with Polish case folding.
type BannedTermSet struct {
	terms  []string
	folded []string
}

// NewBannedTermSet trims the terms, drops blanks and keeps the first
// occurrence of case-insensitive duplicates.
func NewBannedTermSet(terms ...string) BannedTermSet {
	set := BannedTermSet{}
	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		f := fold(t)
		if seen[f] {
			continue
		}
		seen[f] = true
		set.terms = append(set.terms, t)
		set.folded = append(set.folded, f)
	}
	return set
}

func (s BannedTermSet) Len() int {
	return len(s.terms)
}

// Terms returns a copy of the terms in set order.
func (s BannedTermSet) Terms() []string {
	out := make([]string, len(s.terms))
	copy(out, s.terms)
	return out
}

// String joins the terms with ", ".
func (s BannedTermSet) String() string {
	return strings.Join(s.terms, ", ")
}

// FindIn returns every term that occurs in text as a case-insensitive
// substring. Each term is reported once, in set order.
func (s BannedTermSet) FindIn(text string) []string {
	if len(s.terms) == 0 || text == "" {
		return nil
	}

	haystack := fold(text)
	var found []string
	for i, term := range s.folded {
		if strings.Contains(haystack, term) {
			found = append(found, s.terms[i])
		}
	}
	return found
}

// cases.Caser is stateful, so a new one is created per call.
func fold(s string) string {
	return cases.Lower(language.Polish).String(s)
}
