// Package hepmc reads the line-oriented HepMC ASCII event listing
// produced by the UPCGen generator.
//
// The format is a sequence of events, each introduced by an `E` header
// line, followed by a `U` unit-declaration line and one `P` line per
// particle. The listing ends at an END_EVENT_LISTING marker or at the
// end of the stream. The Scanner streams one fully built event at a
// time; nothing is buffered across events.
//
// Parsing is strict and fail-fast: the first line that violates the
// grammar, arity, or index-consistency rules terminates the scan with a
// *ParseError. There is no per-event recovery.
package hepmc
