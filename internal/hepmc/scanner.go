package hepmc

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go-hep.org/x/hep/fmom"
)

// EndMarker terminates the event listing. Anything after it is ignored.
const EndMarker = "END_EVENT_LISTING"

// Scanner streams events out of a UPCGen HepMC ASCII listing.
//
// Usage follows the bufio.Scanner shape:
//
//	sc := hepmc.NewScanner(r)
//	for sc.Next() {
//	    evt := sc.Event()
//	    ...
//	}
//	if err := sc.Err(); err != nil { ... }
//
// Lines that do not start an event are skipped while looking for the
// next `E` header (UPCGen listings open with HepMC version banners and a
// START_EVENT_LISTING marker). Once a header is seen the grammar is
// strict: the first violation stops the scan and surfaces via Err.
type Scanner struct {
	sc   *bufio.Scanner
	evt  *Event
	err  error
	done bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return &Scanner{sc: sc}
}

// Next advances to the next event. It returns false at the end marker,
// at end of stream, or on the first malformed line; Err distinguishes
// the failure case.
func (s *Scanner) Next() bool {
	if s.done || s.err != nil {
		return false
	}
	for s.sc.Scan() {
		line := s.sc.Text()
		if strings.Contains(line, EndMarker) {
			s.done = true
			return false
		}
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "E" {
			continue
		}
		evt, err := s.readEvent(line, fields)
		if err != nil {
			s.err = err
			return false
		}
		s.evt = evt
		return true
	}
	s.done = true
	s.err = s.sc.Err()
	return false
}

// Event returns the event read by the last successful call to Next. The
// returned event is owned by the caller; the Scanner keeps no reference.
func (s *Scanner) Event() *Event { return s.evt }

// Err returns the first error encountered, nil on a clean end of
// listing.
func (s *Scanner) Err() error { return s.err }

// readEvent parses one full event: the already-read `E` header, the `U`
// unit line, and the declared number of `P` track lines.
func (s *Scanner) readEvent(header string, fields []string) (*Event, error) {
	if len(fields) != 4 {
		return nil, parseErrf(ErrCodeEventLine, header, "want 4 fields, got %d", len(fields))
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, parseErrf(ErrCodeEventLine, header, "bad event index %q", fields[1])
	}
	if _, err := strconv.Atoi(fields[2]); err != nil {
		return nil, parseErrf(ErrCodeEventLine, header, "bad vertex count %q", fields[2])
	}
	npar, err := strconv.Atoi(fields[3])
	if err != nil || npar < 0 {
		return nil, parseErrf(ErrCodeEventLine, header, "bad particle count %q", fields[3])
	}

	if !s.sc.Scan() {
		return nil, parseErrf(ErrCodeUnitLine, header, "listing ended before unit line")
	}
	uline := s.sc.Text()
	ufields := strings.Fields(uline)
	if len(ufields) != 3 || ufields[0] != "U" {
		return nil, &ParseError{Code: ErrCodeUnitLine, Line: uline}
	}

	evt := &Event{
		Index:        idx,
		MomentumUnit: ufields[1],
		LengthUnit:   ufields[2],
	}
	b := NewBuilder(npar)
	for i := 1; i <= npar; i++ {
		if !s.sc.Scan() {
			return nil, parseErrf(ErrCodeTrackLine, "", "listing ended after %d of %d tracks", i-1, npar)
		}
		line := s.sc.Text()
		if err := s.readTrack(b, line, i); err != nil {
			return nil, err
		}
	}
	evt.Particles = b.Particles()
	return evt, nil
}

// readTrack parses one `P` line and appends it to the builder. want is
// the 1-based position the line must declare.
func (s *Scanner) readTrack(b *Builder, line string, want int) error {
	f := strings.Fields(line)
	if len(f) != 10 || f[0] != "P" {
		return &ParseError{Code: ErrCodeTrackLine, Line: line}
	}
	pos, err := strconv.Atoi(f[1])
	if err != nil {
		return parseErrf(ErrCodeTrackLine, line, "bad position %q", f[1])
	}
	if pos != want {
		return parseErrf(ErrCodeTrackLine, line, "position %d out of order, want %d", pos, want)
	}
	mother, err := strconv.Atoi(f[2])
	if err != nil {
		return parseErrf(ErrCodeTrackLine, line, "bad mother index %q", f[2])
	}
	if mother < 0 || mother >= pos {
		return parseErrf(ErrCodeTrackLine, line, "mother index %d does not reference an earlier track", mother)
	}
	pdgID, err := strconv.Atoi(f[3])
	if err != nil {
		return parseErrf(ErrCodeTrackLine, line, "bad pdg id %q", f[3])
	}
	var p [4]float64
	for i, name := range [...]string{"px", "py", "pz", "energy"} {
		v, err := strconv.ParseFloat(f[4+i], 64)
		if err != nil {
			return parseErrf(ErrCodeTrackLine, line, "bad %s %q", name, f[4+i])
		}
		p[i] = v
	}
	// The mass and status columns must tokenize but are otherwise
	// discarded: mass is always rederived from the 4-momentum and the
	// working status always starts FINAL.
	if _, err := strconv.ParseFloat(f[8], 64); err != nil {
		return parseErrf(ErrCodeTrackLine, line, "bad mass %q", f[8])
	}
	if _, err := strconv.Atoi(f[9]); err != nil {
		return parseErrf(ErrCodeTrackLine, line, "bad status %q", f[9])
	}

	b.Append(pdgID, mother, fmom.NewPxPyPzE(p[0], p[1], p[2], p[3]))
	return nil
}
