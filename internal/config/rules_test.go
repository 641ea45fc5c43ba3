package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	if rules.Title.MaxChars != 50 {
		t.Errorf("Expected title max_chars=50, got %d", rules.Title.MaxChars)
	}
	if rules.Description.MinWords != 80 || rules.Description.MaxWords != 200 {
		t.Errorf("Expected description 80-200 words, got %d-%d", rules.Description.MinWords, rules.Description.MaxWords)
	}
	if rules.Description.TargetMinWords != 100 || rules.Description.TargetMaxWords != 150 {
		t.Errorf("Expected description target 100-150, got %d-%d", rules.Description.TargetMinWords, rules.Description.TargetMaxWords)
	}
	if rules.Bullets.MinCount != 5 {
		t.Errorf("Expected bullets min_count=5, got %d", rules.Bullets.MinCount)
	}
	if !reflect.DeepEqual(rules.BannedTerms.Terms(), DefaultBannedTerms) {
		t.Errorf("Expected default banned terms, got %v", rules.BannedTerms.Terms())
	}
}

func TestLoadRules_EmptyPathReturnsDefaults(t *testing.T) {
	rules, err := LoadRules("  ")
	if err != nil {
		t.Fatalf("LoadRules() failed: %v", err)
	}
	if !reflect.DeepEqual(rules.File(), DefaultRules().File()) {
		t.Errorf("Expected defaults, got %+v", rules.File())
	}
}

func TestLoadRules_Success(t *testing.T) {
	// Create a temporary rules file
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rules.yaml")

	content := `title:
  max_chars: 60

bullets:
  min_count: 4

banned_terms:
  - tani
  - "super okazja"
  - Tani
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() failed: %v", err)
	}

	if rules.Title.MaxChars != 60 {
		t.Errorf("Expected title max_chars=60, got %d", rules.Title.MaxChars)
	}
	if rules.Bullets.MinCount != 4 {
		t.Errorf("Expected bullets min_count=4, got %d", rules.Bullets.MinCount)
	}

	// Description is not in the file and keeps its defaults
	if rules.Description.MinWords != 80 || rules.Description.MaxWords != 200 {
		t.Errorf("Expected default description limits, got %d-%d", rules.Description.MinWords, rules.Description.MaxWords)
	}

	// The list replaces the defaults and is deduplicated
	want := []string{"tani", "super okazja"}
	if !reflect.DeepEqual(rules.BannedTerms.Terms(), want) {
		t.Errorf("Expected banned terms %v, got %v", want, rules.BannedTerms.Terms())
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected read error, got: %v", err)
	}
}

func TestParseRules_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid yaml",
			content: "title: [unclosed",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "zero title length",
			content: "title:\n  max_chars: 0\n",
			wantErr: "title.max_chars must be positive",
		},
		{
			name:    "max below min",
			content: "description:\n  min_words: 100\n  max_words: 50\n",
			wantErr: "is lower than min_words",
		},
		{
			name:    "bad target range",
			content: "description:\n  target_min_words: 150\n  target_max_words: 100\n",
			wantErr: "target range",
		},
		{
			name:    "zero bullets",
			content: "bullets:\n  min_count: 0\n",
			wantErr: "bullets.min_count must be positive",
		},
		{
			name:    "blank term",
			content: "banned_terms:\n  - premium\n  - \"  \"\n",
			wantErr: "banned_terms[1] is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules([]byte(tt.content))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestRulesSchema(t *testing.T) {
	data, err := RulesSchema()
	if err != nil {
		t.Fatalf("RulesSchema() failed: %v", err)
	}

	var schema map[string]any
	if err := json.Unmarshal(data, &schema); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties: %s", data)
	}
	for _, key := range []string{"title", "description", "bullets", "banned_terms"} {
		if _, ok := props[key]; !ok {
			t.Errorf("Expected property %q in schema", key)
		}
	}
}

func TestLoadRules_ShippedFileMatchesDefaults(t *testing.T) {
	rules, err := LoadRules(filepath.Join("..", "..", "configs", "rules.yaml"))
	if err != nil {
		t.Fatalf("LoadRules() failed: %v", err)
	}
	if !reflect.DeepEqual(rules.File(), DefaultRules().File()) {
		t.Errorf("configs/rules.yaml drifted from the defaults: %+v", rules.File())
	}
}
