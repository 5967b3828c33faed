// Package level measures signal levels of sample blocks.
package level

import (
	"math"

	"github.com/cwbudde/algo-subdominant/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// RMS returns the root-mean-square level of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	sq := make([]float64, len(x))
	vecmath.MulBlock(sq, x, x)

	sum := 0.0
	for _, v := range sq {
		sum += v
	}

	return math.Sqrt(sum / float64(len(x)))
}

// RMSdB returns RMS(x) in dBFS. Silence yields -Inf.
func RMSdB(x []float64) float64 {
	return core.LinearToDB(RMS(x))
}

// Peak returns the largest absolute sample value.
func Peak(x []float64) float64 {
	peak := 0.0
	for _, v := range x {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	return peak
}

// PeakdB returns Peak(x) in dBFS.
func PeakdB(x []float64) float64 {
	return core.LinearToDB(Peak(x))
}

// Float32To64 converts src into dst, growing dst as needed, and returns it.
func Float32To64(dst []float64, src []float32) []float64 {
	dst = core.EnsureLen(dst, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}

	return dst
}
