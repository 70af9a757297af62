// Package sigil lays out the glycine mode table as a polar scatter glyph
// and animates it.
//
// Each mode becomes a marker whose radius encodes its wavenumber and whose
// size encodes its intensity. Radii are fixed at layout time; animation
// only rotates the pattern and modulates marker opacity. Frames are pure
// functions of the frame index, so renders are reproducible and can be
// produced in any order.
//
// Two variants mirror the audio models: the evaporation sigil groups the
// modes into functional-group quadrants with group-specific opacity
// envelopes, while the pharmacokinetic sigil spreads all modes around the
// circle and drives a single global opacity envelope.
package sigil
