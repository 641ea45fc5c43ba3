package validation

import (
	"reflect"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
)

func TestDecodeDocuments(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []models.GeneratedContent
		wantErr bool
	}{
		{
			name: "single yaml document",
			input: `title: Bidon stalowy
description: Trzyma temperaturę
bullets:
  - a
  - b
`,
			want: []models.GeneratedContent{
				{Title: "Bidon stalowy", Description: "Trzyma temperaturę", Bullets: []string{"a", "b"}},
			},
		},
		{
			name: "multiple yaml documents",
			input: `title: Pierwszy
---
title: Drugi
bullets: [x]
`,
			want: []models.GeneratedContent{
				{Title: "Pierwszy"},
				{Title: "Drugi", Bullets: []string{"x"}},
			},
		},
		{
			name:  "json object",
			input: `{"title": "Kubek", "description": "Opis", "bullets": ["a"]}`,
			want: []models.GeneratedContent{
				{Title: "Kubek", Description: "Opis", Bullets: []string{"a"}},
			},
		},
		{
			name:  "json array",
			input: `[{"title": "A"}, {"title": "B"}]`,
			want: []models.GeneratedContent{
				{Title: "A"},
				{Title: "B"},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:    "malformed",
			input:   "title: [unclosed",
			wantErr: true,
		},
		{
			name:    "wrong shape",
			input:   "title:\n  nested: true\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDocuments(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: %v, wantErr: %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
