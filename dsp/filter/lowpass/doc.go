// Package lowpass provides the two low-pass IIR stages used by the
// sub-octave engine: a first-order OnePole and a resonant second-order
// TwoPole.
//
// Both filters are stereo, allocation-free value types with explicit
// Configure/ProcessStereo/Reset operations. Each carries a Tracking value
// that remembers the control setting its coefficients were derived from,
// so a parameter synchronizer can skip the trigonometric recomputation
// when nothing changed.
//
// Requested cutoffs at or above Nyquist are clamped to sampleRate/2 - 1e-4
// instead of being rejected.
package lowpass
