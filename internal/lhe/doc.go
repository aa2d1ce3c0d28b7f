// Package lhe serializes events into a Les Houches Event (LHE 3.0)
// document.
//
// The emitted grammar is the legacy text layout downstream tools expect:
// an envelope with a single init block, then one event block per event.
// Several columns are fixed sentinels (PDF ids, weight strategy,
// color-flow tags, proper lifetime, spin) and are written as literal
// constants, never computed. Floating columns use fixed-width scientific
// notation, 8 digits in the init block and 10 in event blocks.
package lhe
