package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hep.org/x/hep/fmom"

	"github.com/upc-hep/upc2lhe/internal/hepmc"
)

func TestSynthesizeBeamsConservation(t *testing.T) {
	evt := &hepmc.Event{
		Particles: []hepmc.Particle{
			{PDGID: 443, Status: hepmc.StatusHasDaughter, P: fmom.NewPxPyPzE(0.1, -0.2, 4.0, 5.1)},
			{PDGID: 13, Status: hepmc.StatusFinal, Mother: 1, P: fmom.NewPxPyPzE(0.3, 0.7, 1.2, 1.9)},
			{PDGID: -13, Status: hepmc.StatusFinal, Mother: 1, P: fmom.NewPxPyPzE(-0.2, -0.9, 2.8, 3.2)},
		},
	}

	// The promoted mother is intermediate: only the final-state tracks
	// feed the total.
	wantPz := 1.2 + 2.8
	wantE := 1.9 + 3.2

	synthesizeBeams(evt)
	require.Len(t, evt.Particles, 5, "two photons prepended")

	a, b := evt.Particles[0], evt.Particles[1]
	for _, photon := range []hepmc.Particle{a, b} {
		assert.Equal(t, 22, photon.PDGID)
		assert.Equal(t, hepmc.StatusIncoming, photon.Status)
		assert.Equal(t, 0, photon.Mother)
		assert.Zero(t, photon.P.Px())
		assert.Zero(t, photon.P.Py())
	}

	// A along +z, B along -z, both lightlike.
	assert.Equal(t, a.P.Pz(), a.P.E())
	assert.Equal(t, -b.P.Pz(), b.P.E())

	// A + B equals the final-state total component-wise.
	assert.InDelta(t, wantPz, a.P.Pz()+b.P.Pz(), 1e-12)
	assert.InDelta(t, wantE, a.P.E()+b.P.E(), 1e-12)

	// The original list follows in its original order, shifted by two.
	assert.Equal(t, 443, evt.Particles[2].PDGID)
	assert.Equal(t, 13, evt.Particles[3].PDGID)
	assert.Equal(t, -13, evt.Particles[4].PDGID)
}

func TestSynthesizeBeamsWorkedExample(t *testing.T) {
	// A single final electron along +z: T = (0, 0, 10, 10.511).
	evt := &hepmc.Event{
		Particles: []hepmc.Particle{
			{PDGID: 11, Status: hepmc.StatusFinal, P: fmom.NewPxPyPzE(0, 0, 10, 10.511)},
		},
	}
	synthesizeBeams(evt)
	require.Len(t, evt.Particles, 3)

	a, b := evt.Particles[0], evt.Particles[1]
	assert.InDelta(t, 10.2555, a.P.Pz(), 1e-12)
	assert.InDelta(t, 10.2555, a.P.E(), 1e-12)
	assert.InDelta(t, -0.2555, b.P.Pz(), 1e-12)
	assert.InDelta(t, 0.2555, b.P.E(), 1e-12)

	// The electron itself is untouched.
	assert.Equal(t, 10.0, evt.Particles[2].P.Pz())
	assert.Equal(t, 10.511, evt.Particles[2].P.E())
}

func TestSynthesizeBeamsEmptyEvent(t *testing.T) {
	evt := &hepmc.Event{}
	synthesizeBeams(evt)
	require.Len(t, evt.Particles, 2)
	assert.Zero(t, evt.Particles[0].P.E())
	assert.Zero(t, evt.Particles[1].P.E())
}
