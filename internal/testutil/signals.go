package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicSquare generates a bipolar square wave starting on the
// positive half cycle.
func DeterministicSquare(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	period := sampleRate / freqHz
	for i := range out {
		if math.Mod(float64(i), period) < period/2 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out
}

// AlternatingSigns returns +1 for halfPeriod samples, then -1 for
// halfPeriod samples, repeated. The period is 2*halfPeriod samples.
func AlternatingSigns(halfPeriod, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if (i/halfPeriod)%2 == 0 {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// ToFloat32 converts a float64 signal to a host-style float32 buffer.
func ToFloat32(in []float64) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}
	return out
}
