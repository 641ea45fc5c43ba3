package main

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/config"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the rules file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.RulesSchema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
