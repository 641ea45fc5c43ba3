package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// errInterrupted ends the process with status 0.
	errInterrupted = errors.New("interrupted by operator")
	// errReported has already been shown to the operator; exit 1 quietly.
	errReported = errors.New("reported")
)

// quietLevelAnnotation lets interactive commands default to a quieter log
// level so logs do not interleave with the dialogue.
const quietLevelAnnotation = "default-log-level"

type app struct {
	cfg    *setup.Config
	logger *zerolog.Logger

	rulesPath string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	runCmd := newRunCmd(a)

	cmd := &cobra.Command{
		Use:           "listing-agent",
		Short:         "Allegro product description helper",
		Long:          "Builds Polish Allegro listing prompts, formats the pasted answer and validates finished listings.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Annotations:   runCmd.Annotations,
		RunE:          runCmd.RunE,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.rulesPath, "rules", "", "rules YAML file (overrides RULES_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")

	cmd.AddCommand(runCmd)
	cmd.AddCommand(newPromptCmd(a))
	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newSchemaCmd())

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	cfg, err := setup.LoadConfig()
	if err != nil {
		return err
	}
	if a.rulesPath != "" {
		cfg.RulesPath = a.rulesPath
	}

	level := cfg.LogLevel
	switch {
	case a.logLevel != "":
		level = a.logLevel
	case os.Getenv("LOG_LEVEL") == "" && cmd.Annotations[quietLevelAnnotation] != "":
		level = cmd.Annotations[quietLevelAnnotation]
	}

	l := logger.NewConsole(level)
	a.cfg = cfg
	a.logger = &l
	return nil
}
