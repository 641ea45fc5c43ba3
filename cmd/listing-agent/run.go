package main

import (
	"context"
	"errors"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/console"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/workflow"
	"github.com/spf13/cobra"
)

type runResult struct {
	outcome workflow.Outcome
	err     error
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "run",
		Short:       "Interactive listing workflow (default)",
		Long:        "Collects the product, prints the prompt to paste into an AI assistant, reads the answer back until KONIEC and saves it.",
		Annotations: map[string]string{quietLevelAnnotation: "warn"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
	}
}

func (a *app) run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout())

	deps, err := setup.Wire(ctx, a.cfg, setup.WireOptions{WithSinks: true}, a.logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	sinks := make([]workflow.Sink, 0, len(deps.Sinks))
	for _, s := range deps.Sinks {
		sinks = append(sinks, s)
	}

	wf := workflow.New(con, deps.Builder, deps.Tokens, deps.Formatter, sinks, workflow.Options{
		DefaultFileName: a.cfg.Output.DefaultFile,
		Format:          deps.Format,
	}, a.logger)

	// Console reads block on stdin, so the workflow runs on its own goroutine
	// and an interrupt ends the command without waiting for it.
	done := make(chan runResult, 1)
	go func() {
		outcome, err := wf.Run(ctx)
		done <- runResult{outcome: outcome, err: err}
	}()

	var res runResult
	select {
	case <-ctx.Done():
		con.Interrupted()
		return errInterrupted
	case res = <-done:
	}

	switch {
	case res.err == nil:
		a.logger.Debug().
			Bool("saved", res.outcome.Saved).
			Strs("locations", res.outcome.Locations).
			Msg("workflow finished")
		return nil
	case errors.Is(res.err, context.Canceled):
		con.Interrupted()
		return errInterrupted
	case errors.Is(res.err, models.ErrMissingProductName), errors.Is(res.err, models.ErrMissingFeatures):
		return errReported
	default:
		con.Failed(res.err)
		return res.err
	}
}
