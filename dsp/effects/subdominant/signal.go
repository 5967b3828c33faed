package subdominant

import (
	"math"

	"github.com/cwbudde/algo-subdominant/dsp/core"
)

const (
	lineGain       = 20.0
	instrumentGain = 200.0

	rectifierDrive   = 20.0
	rectifierCeiling = 2.0

	mixGainWeight  = 0.3
	mixRectWeight  = 0.3
	mixOct1Weight  = 0.2
	mixOct2Weight  = 0.2
	mixMakeupScale = 10.0
)

// StereoSignal is one stage's output for the current frame together with
// the volume that scales it into the mixer.
type StereoSignal struct {
	Left   float64
	Right  float64
	Volume float64
}

// InputMode selects the input gain applied ahead of the divider chain.
type InputMode int

const (
	// Line expects line-level sources and applies ×20.
	Line InputMode = iota
	// Instrument expects pickup-level sources and applies ×200.
	Instrument
)

func (m InputMode) String() string {
	if m == Instrument {
		return "instrument"
	}

	return "line"
}

// InputGain amplifies a frame for the selected input mode and hard-clips
// it to [-1, 1].
func InputGain(left, right float64, mode InputMode) (float64, float64) {
	g := lineGain
	if mode == Instrument {
		g = instrumentGain
	}

	return core.HardClip(left * g), core.HardClip(right * g)
}

// FullWaveRect rectifies a frame with a drive of 20, saturates anything
// above 1 to 2, recenters the result by -1 and scales it by volume.
func FullWaveRect(left, right, volume float64) (float64, float64) {
	return (rectify(left) - 1) * volume, (rectify(right) - 1) * volume
}

func rectify(x float64) float64 {
	a := math.Abs(x * rectifierDrive)
	if a > 1 {
		return rectifierCeiling
	}

	return a
}

// Mix sums the four branches with fixed weights, applies make-up gain and
// the mix volume, and hard-clips the result. The gain branch carries its
// own volume; the other branches arrive already scaled.
func Mix(gain, rect, oct1, oct2 StereoSignal, volume float64) (float64, float64) {
	mix := func(g, r, o1, o2 float64) float64 {
		sum := g*gain.Volume*mixGainWeight + r*mixRectWeight + o1*mixOct1Weight + o2*mixOct2Weight
		return core.HardClip(sum * mixMakeupScale * volume)
	}

	return mix(gain.Left, rect.Left, oct1.Left, oct2.Left),
		mix(gain.Right, rect.Right, oct1.Right, oct2.Right)
}

// Blend crossfades the processed and the dry signal. amount 0 yields the
// dry signal, amount 1 the processed one.
func Blend(wet, dry, amount float64) float64 {
	return wet*amount + dry*math.Abs(amount-1)
}
