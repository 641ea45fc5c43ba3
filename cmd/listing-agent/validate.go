package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/validation"
	"github.com/spf13/cobra"
)

var errValidationFailed = errors.New("one or more listings failed validation")

func newValidateCmd(a *app) *cobra.Command {
	var (
		file   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check finished listings against the rules",
		Long: `Reads listings (title, description, bullets) from a YAML or JSON file and
reports every failed rule. Use "-" to read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", file, err)
				}
				defer f.Close()
				r = f
			}

			listings, err := validation.DecodeDocuments(r)
			if err != nil {
				return err
			}
			if len(listings) == 0 {
				return fmt.Errorf("no listings found in %s", file)
			}

			deps, err := setup.Wire(cmd.Context(), a.cfg, setup.WireOptions{}, a.logger)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			invalid := 0
			for i, listing := range listings {
				result := deps.Validator.Validate(listing)
				if !result.IsValid {
					invalid++
				}

				fmt.Fprintf(w, "#%d %s\n", i+1, listing.Title)
				fmt.Fprintln(w, result.Summary())
				fmt.Fprintln(w)
			}

			a.logger.Info().Int("listings", len(listings)).Int("invalid", invalid).Msg("Validation complete")

			if strict && invalid > 0 {
				return errValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file with one or more listings (required)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with status 1 when any listing is invalid")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
