package lhe

import (
	"github.com/upc-hep/upc2lhe/internal/hepmc"
)

// ParentSlots translates a particle's single mother index into the LHE
// two-slot parent encoding, for a list that already carries the two
// synthesized incoming photons at positions 1 and 2:
//
//   - incoming particles have no parents: (0, 0)
//   - a mother index of 0 means the particle came straight out of the
//     collision, so both incoming photons are its parents: (1, 2)
//   - a real mother shifts by the two inserted photons, second slot
//     unused: (mother+2, 0)
func ParentSlots(p hepmc.Particle) (int, int) {
	if p.Status <= 0 {
		return 0, 0
	}
	if p.Mother == 0 {
		return 1, 2
	}
	return p.Mother + 2, 0
}
