package hepmc

import (
	"go-hep.org/x/hep/fmom"
)

// Status classifies a particle within its event.
type Status int

const (
	// StatusFinal marks a stable outgoing particle (no recorded daughters).
	StatusFinal Status = 1

	// StatusHasDaughter marks an intermediate particle: at least one later
	// particle in the same event names it as mother.
	StatusHasDaughter Status = 2

	// StatusIncoming marks a beam-level particle with no mother. The input
	// listing never carries these; they are synthesized downstream.
	StatusIncoming Status = -1
)

// String returns the conventional name of the status code.
func (s Status) String() string {
	switch s {
	case StatusFinal:
		return "final"
	case StatusHasDaughter:
		return "has-daughter"
	case StatusIncoming:
		return "incoming"
	}
	return "unknown"
}

// Particle is one record of an event's particle listing.
//
// Mother is purely positional: 0 means no mother, otherwise it is the
// 1-based index of an earlier particle in the same event. The relation is
// discarded with the event; it is never a pointer.
//
// The invariant mass of a particle is always derived from P; the mass
// column of the input listing is not trusted and not stored.
type Particle struct {
	PDGID  int
	Status Status
	Mother int
	P      fmom.PxPyPzE
}

// Event is one collision record: an ordered particle list plus the
// metadata of its header lines. Index is input-supplied and carried
// through unchanged; it is not required to be contiguous.
type Event struct {
	Index        int
	MomentumUnit string
	LengthUnit   string
	Particles    []Particle
}
