package convert

import (
	"go-hep.org/x/hep/fmom"

	"github.com/upc-hep/upc2lhe/internal/hepmc"
)

// photonPDGID is the PDG code of the synthesized incoming photons.
const photonPDGID = 22

// synthesizeBeams prepends the two incoming photons the source format
// omits, computed from the total 4-momentum T of the particles still
// FINAL (promoted mothers are intermediate and must not be counted
// twice):
//
//	A = (0, 0, (T.pz+T.E)/2,  (T.pz+T.E)/2)   lightlike along +z
//	B = (0, 0, (T.pz-T.E)/2, -(T.pz-T.E)/2)   lightlike along -z
//
// A + B equals T component-wise by construction, so the output event
// conserves 4-momentum exactly. Every original particle's effective
// position shifts by +2.
func synthesizeBeams(evt *hepmc.Event) {
	var px, py, pz, e float64
	for i := range evt.Particles {
		p := &evt.Particles[i]
		if p.Status != hepmc.StatusFinal {
			continue
		}
		px += p.P.Px()
		py += p.P.Py()
		pz += p.P.Pz()
		e += p.P.E()
	}

	a := hepmc.Particle{
		PDGID:  photonPDGID,
		Status: hepmc.StatusIncoming,
		P:      fmom.NewPxPyPzE(0, 0, (pz+e)/2, (pz+e)/2),
	}
	b := hepmc.Particle{
		PDGID:  photonPDGID,
		Status: hepmc.StatusIncoming,
		P:      fmom.NewPxPyPzE(0, 0, (pz-e)/2, -(pz-e)/2),
	}
	evt.Particles = append([]hepmc.Particle{a, b}, evt.Particles...)
}
