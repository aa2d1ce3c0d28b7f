// Package convert wires the conversion pipeline together: it streams
// events out of a UPCGen HepMC ASCII listing, synthesizes the two
// incoming photons each event is missing, and writes the LHE document.
//
// A run is strictly sequential and all-or-nothing: one event is fully
// processed and written before the next is read, and the first error of
// any kind aborts the run, leaving the partial output flushed and
// closed.
package convert
