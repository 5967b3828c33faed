package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-subdominant/dsp/core"
	"github.com/cwbudde/algo-subdominant/dsp/effects/subdominant"
	"github.com/cwbudde/algo-subdominant/dsp/signal"
	"github.com/cwbudde/algo-subdominant/internal/wavio"
	"github.com/cwbudde/algo-subdominant/measure/level"
	"github.com/cwbudde/algo-subdominant/measure/pitch"
)

type sourceConfig struct {
	path       string
	wave       string
	freq       float64
	amp        float64
	duration   float64
	sampleRate int
	channels   int
}

type source struct {
	sampleRate int
	channels   [][]float32
}

func loadSource(cfg sourceConfig) (*source, error) {
	if cfg.path != "" {
		f, err := os.Open(cfg.path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return decodeSource(f)
	}

	if cfg.channels != 1 && cfg.channels != 2 {
		return nil, fmt.Errorf("channels must be 1 or 2: %d", cfg.channels)
	}

	if cfg.duration <= 0 || math.IsNaN(cfg.duration) {
		return nil, fmt.Errorf("duration must be > 0: %f", cfg.duration)
	}

	g := signal.NewGenerator(core.WithSampleRate(float64(cfg.sampleRate)))
	frames := int(cfg.duration * float64(cfg.sampleRate))

	var (
		x   []float64
		err error
	)

	switch cfg.wave {
	case "square":
		x, err = g.Square(cfg.freq, cfg.amp, frames)
	case "sine":
		x, err = g.Sine(cfg.freq, cfg.amp, frames)
	default:
		err = fmt.Errorf("unknown waveform %q", cfg.wave)
	}

	if err != nil {
		return nil, err
	}

	mono := make([]float32, len(x))
	for i, v := range x {
		mono[i] = float32(v)
	}

	chans := [][]float32{mono}
	if cfg.channels == 2 {
		chans = append(chans, append([]float32(nil), mono...))
	}

	return &source{sampleRate: cfg.sampleRate, channels: chans}, nil
}

func decodeSource(r io.ReadSeeker) (*source, error) {
	f, err := wavio.Read(r)
	if err != nil {
		return nil, err
	}

	if f.Channels > 2 {
		return nil, errors.New("only mono and stereo files are supported")
	}

	chans := make([][]float32, f.Channels)
	for c := range chans {
		chans[c] = make([]float32, f.Frames())
	}

	core.Deinterleave(chans, f.Samples)

	return &source{sampleRate: f.SampleRate, channels: chans}, nil
}

// render processes in through e block by block into freshly allocated
// output channels.
func render(e *subdominant.Engine, in [][]float32, blockSize int) [][]float32 {
	out := make([][]float32, len(in))
	for c := range out {
		out[c] = make([]float32, len(in[c]))
	}

	if len(in) == 0 {
		return out
	}

	frames := len(in[0])
	inBlock := make([][]float32, len(in))
	outBlock := make([][]float32, len(out))

	for start := 0; start < frames; start += blockSize {
		end := min(start+blockSize, frames)
		for c := range in {
			inBlock[c] = in[c][start:end]
			outBlock[c] = out[c][start:end]
		}

		e.ProcessBlock(inBlock, outBlock, end-start)
	}

	return out
}

func writeWAV(path string, sampleRate int, chans [][]float32) error {
	interleaved := make([]float32, len(chans)*len(chans[0]))
	core.Interleave(interleaved, chans)

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := wavio.Write(f, sampleRate, len(chans), interleaved); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

type report struct {
	rmsDB  float64
	peakDB float64
	pitch  float64
}

func analyze(x []float32, sampleRate float64) report {
	y := level.Float32To64(nil, x)
	r := report{rmsDB: level.RMSdB(y), peakDB: level.PeakdB(y)}

	if res, err := pitch.Estimate(y, sampleRate, pitch.WithMinFrequency(20)); err == nil {
		r.pitch = res.Frequency
	}

	return r
}

func printReport(w io.Writer, name string, r report) {
	fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.1f\n", name, r.rmsDB, r.peakDB, r.pitch)
}
