// Package wavio reads and writes PCM WAV files as float32 frames.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-subdominant/dsp/core"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// BitDepth is the PCM resolution Write encodes with.
	BitDepth = 24

	formatPCM   = 1
	maxChannels = 64

	// Samples decoded per call, bounding allocations to data actually read.
	readChunk = 4096
)

// ErrFormat is returned for streams that are not readable PCM WAV data.
var ErrFormat = errors.New("wavio: unsupported format")

// File holds decoded audio.
type File struct {
	SampleRate int
	Channels   int
	// Samples are interleaved frames scaled to [-1, 1).
	Samples []float32
}

// Frames returns the number of sample frames.
func (f *File) Frames() int {
	if f.Channels == 0 {
		return 0
	}

	return len(f.Samples) / f.Channels
}

// Write encodes interleaved samples as BitDepth-bit PCM. Samples outside
// [-1, 1] are clipped. The encoder seeks back to patch chunk sizes, so w
// must support seeking.
func Write(w io.WriteSeeker, sampleRate, channels int, interleaved []float32) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wavio: sample rate must be > 0: %d", sampleRate)
	}

	if channels <= 0 || channels > maxChannels {
		return fmt.Errorf("wavio: channel count out of range: %d", channels)
	}

	if len(interleaved)%channels != 0 {
		return fmt.Errorf("wavio: %d samples is not a whole number of %d-channel frames", len(interleaved), channels)
	}

	scale := float64(int(1)<<(BitDepth-1) - 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, len(interleaved)),
		SourceBitDepth: BitDepth,
	}

	for i, v := range interleaved {
		x := float64(v)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("wavio: non-finite sample at %d", i)
		}

		buf.Data[i] = int(math.Round(core.HardClip(x) * scale))
	}

	enc := wav.NewEncoder(w, sampleRate, BitDepth, channels, formatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: write data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finish: %w", err)
	}

	return nil
}

// Read decodes a 16, 24 or 32-bit PCM WAV stream. A data chunk shorter
// than its header declares is an error.
func Read(r io.ReadSeeker) (*File, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%w: not a RIFF/WAVE stream", ErrFormat)
	}

	if err := d.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	if d.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrFormat, d.WavAudioFormat)
	}

	depth := int(d.BitDepth)
	if depth != 16 && depth != 24 && depth != 32 {
		return nil, fmt.Errorf("%w: %d bits per sample", ErrFormat, depth)
	}

	channels := int(d.NumChans)
	if channels == 0 || channels > maxChannels || d.SampleRate == 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrFormat, channels, d.SampleRate)
	}

	bytesPerSample := int64(depth / 8)
	if d.PCMLen()%(bytesPerSample*int64(channels)) != 0 {
		return nil, fmt.Errorf("%w: partial frame in data chunk", ErrFormat)
	}

	declared := d.PCMLen() / bytesPerSample
	scale := 1 / math.Pow(2, float64(depth-1))
	chunk := &audio.IntBuffer{Data: make([]int, readChunk)}

	var samples []float32

	for int64(len(samples)) < declared {
		n, err := d.PCMBuffer(chunk)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: data chunk: %w", ErrFormat, err)
		}

		// A misaligned trailing sample can leave n at -1.
		n = max(n, 0)
		for _, v := range chunk.Data[:n] {
			samples = append(samples, float32(float64(v)*scale))
		}

		if n == 0 || err != nil {
			break
		}
	}

	if int64(len(samples)) < declared {
		return nil, fmt.Errorf("%w: data chunk truncated at %d of %d samples", ErrFormat, len(samples), declared)
	}

	return &File{
		SampleRate: int(d.SampleRate),
		Channels:   channels,
		Samples:    samples[:declared],
	}, nil
}
