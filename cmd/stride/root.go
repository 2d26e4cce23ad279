package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quayside-dev/stride/internal/config"
	"github.com/quayside-dev/stride/internal/messages"
	"github.com/quayside-dev/stride/internal/prompt"
	"github.com/quayside-dev/stride/internal/run"
	"github.com/quayside-dev/stride/internal/state"
	"github.com/quayside-dev/stride/internal/workflow"
)

func newRootCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:          messages.RootUse,
		Short:        messages.RootShort,
		Long:         messages.RootLong,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkflow(cmd, args[0], dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.RootFlagDryRun)
	cmd.AddCommand(newListCmd())
	return cmd
}

// runWorkflow loads stride.toml from the working directory and executes the
// named workflow.
func runWorkflow(cmd *cobra.Command, name string, dryRun bool) error {
	cfg, err := config.Load(messages.ConfigFileName)
	if err != nil {
		return err
	}
	wf, ok := cfg.Workflow(name)
	if !ok {
		return fmt.Errorf(messages.RootUnknownWorkflowFmt, name, messages.ConfigFileName)
	}
	steps, err := workflow.Build(wf)
	if err != nil {
		return err
	}

	rt := run.Type{
		State:  state.New(cfg.Jira, cfg.GitHub, config.EnvCredentials()),
		DryRun: dryRun,
		Out:    cmd.OutOrStdout(),
		Dir:    ".",
	}
	runner := workflow.Runner{UI: prompt.NewHuhUI()}
	if _, err := runner.Run(cmd.Context(), rt, steps); err != nil {
		return err
	}
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(messages.ConfigFileName)
			if err != nil {
				return err
			}
			for _, wf := range cfg.Workflows {
				fmt.Fprintln(cmd.OutOrStdout(), wf.Name)
			}
			return nil
		},
	}
}
