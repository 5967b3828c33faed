package subdominant

import "math"

const (
	// muteThreshold is the absolute level at or below which a frame counts
	// as silent.
	muteThreshold = 0.01
	// muteRampStart is the silent-frame count after which output decays as
	// muteRampStart/counter.
	muteRampStart = 128
)

// MuteDetector counts consecutive silent input frames.
type MuteDetector struct {
	counter int
}

// Observe updates the counter for one input frame and returns it. A frame
// is silent when both channels are within the threshold.
func (m *MuteDetector) Observe(left, right float64) int {
	if math.Abs(left) <= muteThreshold && math.Abs(right) <= muteThreshold {
		m.counter++
	} else {
		m.counter = 0
	}

	return m.counter
}

// Count returns the number of consecutive silent frames seen so far.
func (m *MuteDetector) Count() int { return m.counter }

// Reset clears the counter.
func (m *MuteDetector) Reset() { m.counter = 0 }

// RampVolume attenuates sample after a long run of silent input. Below
// the ramp start it passes through unchanged.
func RampVolume(sample float64, counter int) float64 {
	if counter < muteRampStart {
		return sample
	}

	return sample * muteRampStart / float64(counter)
}
