package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cpick/qemu-plugin-bindgen/internal/report"
)

// RunsOptions holds flags for the runs commands.
type RunsOptions struct {
	*RootOptions
	Scratch string
}

// NewRunsCommand creates the runs command group.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect recorded generation runs",
	}

	cmd.PersistentFlags().StringVar(&opts.Scratch, "scratch", "", "scratch directory override")

	cmd.AddCommand(newRunsListCommand(opts))
	cmd.AddCommand(newRunsShowCommand(opts))

	return cmd
}

func newRunsListCommand(opts *RunsOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List recorded runs, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunsList(opts, cmd)
		},
	}
}

func newRunsShowCommand(opts *RunsOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <run-id>",
		Short:         "Show per-revision outcomes of a run",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunsShow(opts, cmd, args[0])
		},
	}
}

func runRunsList(opts *RunsOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	store, err := openRunsLedger(opts.Scratch)
	if err != nil {
		_ = formatter.Error(MapErrorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "runs list", err)
	}
	defer store.Close()

	runs, err := store.ReadRuns(cmd.Context())
	if err != nil {
		_ = formatter.Error(MapErrorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "runs list", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(formatter.Writer, "No runs recorded")
		return nil
	}
	for _, run := range runs {
		finished := "-"
		if run.FinishedAt != nil {
			finished = run.FinishedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(formatter.Writer, "%s  %-9s  started %s  finished %s\n",
			run.ID, run.Status, run.StartedAt.Format(time.RFC3339), finished)
	}
	return nil
}

func runRunsShow(opts *RunsOptions, cmd *cobra.Command, runID string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	store, err := openRunsLedger(opts.Scratch)
	if err != nil {
		_ = formatter.Error(MapErrorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "runs show", err)
	}
	defer store.Close()

	outcomes, err := store.ReadOutcomes(cmd.Context(), runID)
	if err != nil {
		_ = formatter.Error(MapErrorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "runs show", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(outcomes)
	}

	if len(outcomes) == 0 {
		fmt.Fprintf(formatter.Writer, "No outcomes recorded for run %s\n", runID)
		return nil
	}
	for _, o := range outcomes {
		mark := "✓"
		if o.Status != report.StatusSucceeded {
			mark = "✗"
		}
		fmt.Fprintf(formatter.Writer, "%s v%d %.12s  %s", mark, o.Ordinal, o.Commit, o.Status)
		if o.Detail != "" {
			fmt.Fprintf(formatter.Writer, "  (%s)", o.Detail)
		}
		fmt.Fprintln(formatter.Writer)
	}
	return nil
}

// openRunsLedger opens the ledger read path. Unlike generation, a
// missing ledger here is an error worth surfacing.
func openRunsLedger(scratchOverride string) (*report.Store, error) {
	scratch, err := resolveScratch(scratchOverride)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(scratch, ledgerFile)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no run ledger at %s: %w", path, err)
	}
	return report.Open(path)
}
