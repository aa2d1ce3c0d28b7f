package convert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/upc-hep/upc2lhe/internal/hepmc"
	"github.com/upc-hep/upc2lhe/internal/lhe"
)

// Options configures one conversion run.
type Options struct {
	// Input is the path of the UPCGen HepMC ASCII listing.
	Input string

	// Output is the LHE file path. Empty derives it from Input (see
	// OutputPath).
	Output string

	// XsecPath overrides the cross-section side file lookup. Empty uses
	// xsec.out next to the input, falling back to the defaults when the
	// file is absent.
	XsecPath string

	// BeamE1 and BeamE2 are the beam energies [GeV].
	BeamE1 float64
	BeamE2 float64
}

// Summary describes a completed run.
type Summary struct {
	RunID      string
	Input      string
	Output     string
	Events     int
	Particles  int
	BeamE1     float64
	BeamE2     float64
	FidXsec    float64
	TotXsec    float64
	StartedAt  time.Time
	FinishedAt time.Time
}

// Run converts one listing into one LHE document.
//
// Any failure aborts the whole run: the first malformed line, an
// unreadable input, an unwritable output. On the abort path the output
// is flushed and closed as-is (truncated, no closing tag) and never
// rolled back.
func Run(opts Options) (*Summary, error) {
	started := time.Now().UTC()
	run := RunContext{
		RunID:  newRunID(),
		BeamE1: opts.BeamE1,
		BeamE2: opts.BeamE2,
	}

	var err error
	run.FidXsec, run.TotXsec, err = loadCrossSections(opts.Input, opts.XsecPath)
	if err != nil {
		return nil, err
	}

	outPath := opts.Output
	if outPath == "" {
		outPath = OutputPath(opts.Input)
	}

	in, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	slog.Info("converting UPCGen HEPMC output to LHE format",
		"run_id", run.RunID, "input", opts.Input, "output", outPath,
		"fid_xsec_pb", run.FidXsec, "tot_xsec_pb", run.TotXsec)

	w := lhe.NewWriter(out)
	events, particles, convErr := writeAll(w, in, run)
	if convErr != nil {
		// Leave the partial document flushed and closed, without the
		// closing tag.
		_ = w.Flush()
		_ = out.Close()
		return nil, convErr
	}
	if err := w.Close(); err != nil {
		_ = out.Close()
		return nil, fmt.Errorf("failed to finalize output file: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output file: %w", err)
	}

	slog.Info("conversion complete", "run_id", run.RunID, "events", events, "particles", particles)
	return &Summary{
		RunID:      run.RunID,
		Input:      opts.Input,
		Output:     outPath,
		Events:     events,
		Particles:  particles,
		BeamE1:     run.BeamE1,
		BeamE2:     run.BeamE2,
		FidXsec:    run.FidXsec,
		TotXsec:    run.TotXsec,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}, nil
}

// writeAll streams events from in to w: init block once, then per event
// synthesize the incoming photons and emit the block. Returns the event
// and particle counts written so far alongside the first error.
func writeAll(w *lhe.Writer, in io.Reader, run RunContext) (events, particles int, err error) {
	init := lhe.InitBlock{
		BeamE1:  run.BeamE1,
		BeamE2:  run.BeamE2,
		FidXsec: run.FidXsec,
		TotXsec: run.TotXsec,
	}
	if err := w.WriteInit(init); err != nil {
		return 0, 0, err
	}

	sc := hepmc.NewScanner(in)
	for sc.Next() {
		evt := sc.Event()
		synthesizeBeams(evt)
		if err := w.WriteEvent(evt); err != nil {
			return events, particles, err
		}
		events++
		particles += len(evt.Particles)
		slog.Debug("event written", "index", evt.Index, "particles", len(evt.Particles))
	}
	if err := sc.Err(); err != nil {
		return events, particles, err
	}
	return events, particles, nil
}
