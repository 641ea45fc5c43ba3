package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/setup"
	"github.com/spf13/cobra"
)

func newPromptCmd(a *app) *cobra.Command {
	var (
		name     string
		features []string
		audience string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Render the listing prompt without the interactive dialogue",
		Example: `  listing-agent prompt --name "Bidon stalowy 750ml" \
    --feature "Izolacja termiczna 24h" --feature "BPA Free" \
    --audience "Osoby aktywne"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := models.NewProductSpec(name, features, audience)
			if err != nil {
				return err
			}

			deps, err := setup.Wire(cmd.Context(), a.cfg, setup.WireOptions{}, a.logger)
			if err != nil {
				return err
			}

			prompt := deps.Builder.Build(spec)

			a.logger.Info().
				Str("product", spec.Name).
				Int("characters", utf8.RuneCountInString(prompt)).
				Int("tokens", deps.Tokens.Count(prompt)).
				Msg("Prompt built")

			if out == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), prompt)
				return err
			}
			if err := os.WriteFile(out, []byte(prompt), 0o644); err != nil {
				return fmt.Errorf("failed to write prompt: %w", err)
			}
			a.logger.Info().Str("path", out).Msg("Prompt written")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name (required)")
	cmd.Flags().StringArrayVar(&features, "feature", nil, "product feature, repeat for each one (at least one)")
	cmd.Flags().StringVar(&audience, "audience", "", "optional target audience")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the prompt to a file instead of stdout")

	return cmd
}
