package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/upc-hep/upc2lhe/internal/convert"
	"github.com/upc-hep/upc2lhe/internal/manifest"
)

// NewBatchCommand creates the batch command: run every conversion job
// listed in a YAML manifest, in order, stopping at the first failure.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Run every conversion job in a YAML manifest",
		Long: `Run a batch of conversions described by a YAML manifest.

Each job names an input listing and its beam energies, with optional
output and cross-section file overrides:

  jobs:
    - input: run1/events.hepmc
      beam_e1: 2510.0
      beam_e2: 2510.0
      output: run1.lhe
      xsec: run1/xsec.out

Jobs run sequentially; the first failing job aborts the batch.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *RootOptions, path string, cmd *cobra.Command) error {
	setupLogging(opts.Verbose)

	m, err := manifest.Load(path)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load manifest", err)
	}
	slog.Info("manifest loaded", "path", path, "jobs", len(m.Jobs))

	ctx := commandContext(cmd)
	for i, job := range m.Jobs {
		sum, err := convert.Run(convert.Options{
			Input:    job.Input,
			Output:   job.Output,
			XsecPath: job.Xsec,
			BeamE1:   job.BeamE1,
			BeamE2:   job.BeamE2,
		})
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("job %d (%s) failed", i+1, job.Input), err)
		}
		if err := recordRun(ctx, opts.Runlog, sum); err != nil {
			return WrapExitError(ExitCommandError, "failed to update run log", err)
		}
		printSummary(cmd.OutOrStdout(), sum)
	}
	return nil
}
