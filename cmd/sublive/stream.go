package main

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-subdominant/dsp/core"
	"github.com/cwbudde/algo-subdominant/dsp/effects/subdominant"
	"github.com/cwbudde/algo-subdominant/dsp/signal"
	"github.com/cwbudde/algo-subdominant/measure/level"
)

const (
	channels    = 2
	bytesPerVal = 4
	frameBytes  = channels * bytesPerVal
)

// stream is the io.Reader handed to the audio player. Read runs on the
// player's goroutine and is the engine's audio context.
type stream struct {
	engine    *subdominant.Engine
	osc       *signal.Oscillator
	blockSize int

	// Control-side requests, applied at the next Read.
	freq atomic.Uint64

	// Channel buffers and the per-block views handed to the engine.
	in, out         [][]float32
	inView, outView [][]float32
	meter           level.Meter

	peak atomic.Uint64
}

func newStream(e *subdominant.Engine, osc *signal.Oscillator, blockSize int) *stream {
	s := &stream{
		engine:    e,
		osc:       osc,
		blockSize: blockSize,
		in:        make([][]float32, channels),
		out:       make([][]float32, channels),
		inView:    make([][]float32, channels),
		outView:   make([][]float32, channels),
	}

	for c := range channels {
		s.in[c] = core.EnsureLen32(nil, blockSize)
		s.out[c] = core.EnsureLen32(nil, blockSize)
	}

	s.freq.Store(math.Float64bits(osc.Frequency()))

	return s
}

// SetFrequency schedules a source pitch change.
func (s *stream) SetFrequency(hz float64) {
	s.freq.Store(math.Float64bits(hz))
}

// Frequency returns the most recently requested source pitch.
func (s *stream) Frequency() float64 {
	return math.Float64frombits(s.freq.Load())
}

// Peak returns the output peak of the last Read.
func (s *stream) Peak() float64 {
	return math.Float64frombits(s.peak.Load())
}

func (s *stream) Read(p []byte) (int, error) {
	if hz := s.Frequency(); hz != s.osc.Frequency() {
		_ = s.osc.SetFrequency(hz)
	}

	frames := len(p) / frameBytes
	s.meter.Reset()

	for done := 0; done < frames; {
		n := min(s.blockSize, frames-done)
		for c := range channels {
			s.inView[c] = core.EnsureLen32(s.in[c], n)
			s.outView[c] = core.EnsureLen32(s.out[c], n)
		}

		in, out := s.inView, s.outView

		s.osc.Fill(in[0])
		copy(in[1], in[0])
		s.engine.ProcessBlock(in, out, n)
		s.meter.Observe(out[0])

		for i := range n {
			off := (done + i) * frameBytes
			binary.LittleEndian.PutUint32(p[off:], math.Float32bits(out[0][i]))
			binary.LittleEndian.PutUint32(p[off+bytesPerVal:], math.Float32bits(out[1][i]))
		}

		done += n
	}

	clear(p[frames*frameBytes:])
	s.peak.Store(math.Float64bits(s.meter.Peak()))

	return len(p), nil
}
