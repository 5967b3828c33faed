// Package divider implements the zero-crossing frequency divider used to
// synthesize sub-octave square waves, modeled on a CD4024-style ripple
// counter: the output polarity flips once every two input zero crossings.
//
// A Cascade of two dividers yields signals one and two octaves below the
// input. Dividers are never reset by parameter changes, only by a stream
// restart.
package divider
