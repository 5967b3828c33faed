package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-subdominant/dsp/core"
)

// Waveform selects an Oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
)

// ParseWaveform maps "sine" or "square" to a Waveform.
func ParseWaveform(name string) (Waveform, error) {
	switch name {
	case "sine":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	default:
		return 0, fmt.Errorf("signal: unknown waveform %q", name)
	}
}

// Oscillator is a streaming tone source. Phase carries across calls so
// consecutive blocks join without discontinuities.
type Oscillator struct {
	wave       Waveform
	sampleRate float64
	freqHz     float64
	amplitude  float64
	phase      float64
}

// NewOscillator creates an oscillator at sampleRate.
func NewOscillator(wave Waveform, sampleRate, freqHz, amplitude float64) (*Oscillator, error) {
	if !core.ValidSampleRate(sampleRate) {
		return nil, fmt.Errorf("signal: oscillator sample rate must be > 0: %f", sampleRate)
	}
	o := &Oscillator{wave: wave, sampleRate: sampleRate, amplitude: amplitude}
	if err := o.SetFrequency(freqHz); err != nil {
		return nil, err
	}
	return o, nil
}

// SetFrequency changes the pitch without resetting phase.
func (o *Oscillator) SetFrequency(freqHz float64) error {
	if freqHz <= 0 || freqHz >= o.sampleRate/2 || math.IsNaN(freqHz) {
		return fmt.Errorf("signal: oscillator frequency must be in (0, %f): %f", o.sampleRate/2, freqHz)
	}
	o.freqHz = freqHz
	return nil
}

// Frequency returns the current pitch in Hz.
func (o *Oscillator) Frequency() float64 { return o.freqHz }

// SetAmplitude sets the peak level.
func (o *Oscillator) SetAmplitude(amplitude float64) { o.amplitude = amplitude }

// Next returns one sample.
func (o *Oscillator) Next() float64 {
	var v float64
	switch o.wave {
	case WaveSquare:
		if o.phase < 0.5 {
			v = o.amplitude
		} else {
			v = -o.amplitude
		}
	default:
		v = o.amplitude * math.Sin(2*math.Pi*o.phase)
	}

	o.phase += o.freqHz / o.sampleRate
	if o.phase >= 1 {
		o.phase -= math.Floor(o.phase)
	}
	return v
}

// Fill writes len(dst) consecutive samples.
func (o *Oscillator) Fill(dst []float32) {
	for i := range dst {
		dst[i] = float32(o.Next())
	}
}

// Reset rewinds the phase.
func (o *Oscillator) Reset() { o.phase = 0 }
