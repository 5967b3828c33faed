package level

import (
	"math"

	"github.com/cwbudde/algo-subdominant/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Meter accumulates RMS and peak over a stream of blocks. Observe reuses
// internal buffers and does not allocate once they have grown to the
// block size.
type Meter struct {
	scratch []float64
	squares []float64
	sumSq   float64
	peak    float64
	count   int
}

// Observe adds a block to the running measurement.
func (m *Meter) Observe(block []float32) {
	m.scratch = Float32To64(m.scratch, block)
	m.squares = core.EnsureLen(m.squares, len(m.scratch))
	vecmath.MulBlock(m.squares, m.scratch, m.scratch)

	for _, v := range m.squares {
		m.sumSq += v
	}

	m.count += len(block)
	m.peak = math.Max(m.peak, Peak(m.scratch))
}

// RMS returns the level across everything observed since the last reset.
func (m *Meter) RMS() float64 {
	if m.count == 0 {
		return 0
	}

	return math.Sqrt(m.sumSq / float64(m.count))
}

// Peak returns the largest absolute sample observed.
func (m *Meter) Peak() float64 { return m.peak }

// Reset clears the accumulated measurement.
func (m *Meter) Reset() {
	m.sumSq = 0
	m.peak = 0
	m.count = 0
}
