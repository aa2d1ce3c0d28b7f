package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/upc-hep/upc2lhe/internal/convert"
	"github.com/upc-hep/upc2lhe/internal/runlog"
)

// RootOptions holds flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Runlog  string
}

// NewRootCommand creates the upc2lhe root command. The root command is
// itself the converter: it takes the input listing and the two beam
// energies as positional arguments.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	var (
		output string
		xsec   string
	)

	cmd := &cobra.Command{
		Use:   "upc2lhe <input-file> <beam-1-energy> <beam-2-energy>",
		Short: "Convert UPCGen HEPMC output to the Les Houches Event format",
		Long: `Convert a UPCGen HEPMC ASCII event listing into an LHE 3.0 document.

The two incoming photons the source format omits are synthesized per
event from the total 4-momentum of the final-state particles, so the
output conserves energy-momentum exactly. Cross sections are read from
an optional xsec.out file next to the input (fiducial then total, in
pb) and default to 1.0 and 3.0 when it is absent.

The conversion is all-or-nothing: the first malformed line aborts the
run, leaving whatever output was already flushed in place.

Example:
  upc2lhe events.hepmc 2510 2510
  upc2lhe events.hepmc 2510 2510 -o run1.lhe --runlog runs.db`,
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The argument count is valid past this point; later
			// failures are not usage errors.
			cmd.SilenceUsage = true
			return runConvert(opts, args, output, xsec, cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Runlog, "runlog", "", "path to a SQLite run log (optional)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path to the output LHE file (default: <input-stem>.lhe)")
	cmd.Flags().StringVar(&xsec, "xsec", "", "path to the cross-section side file (default: xsec.out next to the input)")

	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

func runConvert(opts *RootOptions, args []string, output, xsec string, cmd *cobra.Command) error {
	setupLogging(opts.Verbose)

	beamE1, err := parseBeamEnergy(args[1], "beam-1")
	if err != nil {
		return err
	}
	beamE2, err := parseBeamEnergy(args[2], "beam-2")
	if err != nil {
		return err
	}

	sum, err := convert.Run(convert.Options{
		Input:    args[0],
		Output:   output,
		XsecPath: xsec,
		BeamE1:   beamE1,
		BeamE2:   beamE2,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "conversion failed", err)
	}

	if err := recordRun(commandContext(cmd), opts.Runlog, sum); err != nil {
		return WrapExitError(ExitCommandError, "failed to update run log", err)
	}

	printSummary(cmd.OutOrStdout(), sum)
	return nil
}

// parseBeamEnergy validates one positional beam-energy argument.
func parseBeamEnergy(arg, name string) (float64, error) {
	e, err := strconv.ParseFloat(arg, 64)
	if err != nil || e <= 0 {
		return 0, NewExitError(ExitFailure, fmt.Sprintf("invalid %s energy %q: want a positive number in GeV", name, arg))
	}
	return e, nil
}

// recordRun appends the summary to the run log when one was requested.
func recordRun(ctx context.Context, path string, sum *convert.Summary) error {
	if path == "" {
		return nil
	}
	st, err := runlog.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing run log", "error", closeErr)
		}
	}()
	return st.Record(ctx, sum)
}

// commandContext returns the command's context, falling back to
// Background for programmatic callers that never set one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// setupLogging configures the default slog handler on stderr.
func setupLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
