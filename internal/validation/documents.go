package validation

import (
	"errors"
	"fmt"
	"io"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
	"gopkg.in/yaml.v3"
)

// DecodeDocuments reads listings from a YAML or JSON stream. A document may
// hold one listing or a list of them; multiple YAML documents are read in
// order.
func DecodeDocuments(r io.Reader) ([]models.GeneratedContent, error) {
	dec := yaml.NewDecoder(r)

	var listings []models.GeneratedContent
	for i := 1; ; i++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document %d: %w", i, err)
		}
		if len(node.Content) == 0 || node.Content[0].ShortTag() == "!!null" {
			continue
		}

		if node.Content[0].Kind == yaml.SequenceNode {
			var batch []models.GeneratedContent
			if err := node.Decode(&batch); err != nil {
				return nil, fmt.Errorf("failed to decode document %d: %w", i, err)
			}
			listings = append(listings, batch...)
			continue
		}

		var one models.GeneratedContent
		if err := node.Decode(&one); err != nil {
			return nil, fmt.Errorf("failed to decode document %d: %w", i, err)
		}
		listings = append(listings, one)
	}

	return listings, nil
}
