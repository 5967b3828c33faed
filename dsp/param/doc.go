// Package param holds the user-facing parameter set of an effect.
//
// Values live in lock-free atomic slots so a control context can write
// them while another reads. The audio context is not expected to read a
// Registry directly; it consumes immutable snapshots built from Values.
package param
