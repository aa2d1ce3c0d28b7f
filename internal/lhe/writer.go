package lhe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/upc-hep/upc2lhe/internal/hepmc"
)

const (
	// Version is the LHE format version stamped on the opening tag.
	Version = "3.0"

	// beamPDGID is the proton code emitted for both beam slots.
	beamPDGID = 2212

	// subprocessID tags every event with the single fixed subprocess.
	subprocessID = 81

	// weightStrategy is the fixed weighting-strategy sentinel of the
	// init block.
	weightStrategy = 3
)

// InitBlock carries the run-level numbers of the init block. Cross
// sections are in picobarns.
type InitBlock struct {
	BeamE1  float64
	BeamE2  float64
	FidXsec float64
	TotXsec float64
}

// Writer emits one LHE document: envelope and init block once, then one
// block per event, then the closing tag on Close.
//
// Output is buffered. Flush is safe to call on every exit path, so an
// aborted run still leaves whatever was written flushed to the
// underlying writer, without the closing tag.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteInit emits the document envelope and the init block. It must be
// called exactly once, before any WriteEvent.
func (w *Writer) WriteInit(init InitBlock) error {
	fmt.Fprintf(w.w, "<LesHouchesEvents version=%q>\n", Version)
	fmt.Fprintln(w.w, "<!-- ")
	fmt.Fprintln(w.w, " #Converted from UPCGEN generator HEPMC output ")
	fmt.Fprintln(w.w, "-->")
	fmt.Fprintln(w.w, "<header>")
	fmt.Fprintln(w.w, "</header>")
	fmt.Fprintln(w.w, "<init>")
	// beam pdg ids, beam energies [GeV], PDF author groups, PDF set ids,
	// weight strategy, number of subprocesses
	fmt.Fprintf(w.w, "%d %d %.8e %.8e 0 0 0 0 %d 1\n",
		beamPDGID, beamPDGID, init.BeamE1, init.BeamE2, weightStrategy)
	// cross section [pb], stat. uncertainty [pb], maximum weight, subprocess id
	fmt.Fprintf(w.w, "%.8e %.8e %.8e %d\n",
		init.FidXsec, 0.0, init.TotXsec, subprocessID)
	fmt.Fprintln(w.w, "</init>")
	return w.w.Flush()
}

// WriteEvent emits one event block. The particle list must already
// carry the two synthesized incoming photons at the front; every line is
// written in list order with the invariant mass rederived from the
// 4-momentum.
func (w *Writer) WriteEvent(evt *hepmc.Event) error {
	fmt.Fprintln(w.w, "<event>")
	// particle count, subprocess id, weight, scale, alpha_em, alpha_s
	fmt.Fprintf(w.w, "%d %d 1.0 -1.0 -1.0 -1.0\n", len(evt.Particles), subprocessID)
	for i := range evt.Particles {
		p := &evt.Particles[i]
		p1, p2 := ParentSlots(*p)
		fmt.Fprintf(w.w, "%d %d %d %d 0 0 %.10e %.10e %.10e %.10e %.10e 0.0000e+00 9.0000e+00\n",
			p.PDGID, p.Status, p1, p2,
			p.P.Px(), p.P.Py(), p.P.Pz(), p.P.E(), p.P.M())
	}
	fmt.Fprintln(w.w, "</event>")
	return w.w.Flush()
}

// Close emits the closing tag and flushes. It must not be called on the
// abort path; use Flush there so the document stays truncated but whole
// on disk.
func (w *Writer) Close() error {
	fmt.Fprintln(w.w, "</LesHouchesEvents>")
	return w.w.Flush()
}

// Flush forces buffered output through to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }
