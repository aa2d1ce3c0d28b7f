package hepmc

import (
	"go-hep.org/x/hep/fmom"
)

// Builder assembles one event's particle list in input order.
//
// Status is a derived property: every particle starts FINAL and is
// promoted to HAS_DAUGHTER in place the moment a later particle names it
// as mother. The mother index always references a strictly earlier
// position (the Scanner enforces this before calling Append), so the
// promotion is a plain indexed write with no graph bookkeeping.
type Builder struct {
	particles []Particle
}

// NewBuilder returns a Builder sized for n particles.
func NewBuilder(n int) *Builder {
	return &Builder{particles: make([]Particle, 0, n)}
}

// Append adds a particle with working status FINAL and, when mother > 0,
// promotes the particle at that 1-based position to HAS_DAUGHTER.
func (b *Builder) Append(pdgID, mother int, p fmom.PxPyPzE) {
	b.particles = append(b.particles, Particle{
		PDGID:  pdgID,
		Status: StatusFinal,
		Mother: mother,
		P:      p,
	})
	if mother > 0 {
		b.particles[mother-1].Status = StatusHasDaughter
	}
}

// Len reports the number of particles appended so far.
func (b *Builder) Len() int { return len(b.particles) }

// Particles returns the assembled list. After all of an event's track
// lines have been appended, every particle's status reflects whether any
// sibling named it as mother, and the list must be treated as immutable.
func (b *Builder) Particles() []Particle { return b.particles }
