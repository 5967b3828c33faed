// Package subdominant implements a stereo octave-fuzz and sub-octave
// generator.
//
// Each frame passes through a fixed graph:
//
//	input ─┬─ input gain (line ×20 / instrument ×200, clipped) ─┬─ two-pole LPF ─ ÷2 ─ ÷2
//	       │                                                    │
//	       └─ full-wave rectifier ──────────────────────────────┴─ mixer ─ one-pole tone ─ blend ─ master ─ mute ramp
//
// The divider chain produces square waves one and two octaves below the
// dominant pitch of the low-passed signal. The divider-feed low-pass is
// swept by the SUB GLITCH control, and a low cutoff suppresses upper
// harmonics that would otherwise trigger spurious zero crossings.
//
// Parameters are written from a control goroutine and picked up by the
// audio goroutine once per block. Engine methods are split accordingly:
// ProcessBlock and ProcessBlock64 belong to the audio context, everything
// else to the control context. Prepare must not run concurrently with
// processing.
package subdominant
