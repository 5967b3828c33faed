package subdominant

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-subdominant/dsp/core"
	"github.com/cwbudde/algo-subdominant/dsp/divider"
	"github.com/cwbudde/algo-subdominant/dsp/filter/lowpass"
	"github.com/cwbudde/algo-subdominant/dsp/param"
	"github.com/cwbudde/algo-subdominant/state"
)

const (
	subFeedMinHz = 159.0
	subFeedQ     = 0.660225
	toneMinHz    = 1446.8
	sweepMaxHz   = 20000.0

	rectifierSmoothingHz = 1591.0
)

// SyncStats counts parameter synchronization work done by the audio
// context.
type SyncStats struct {
	// Syncs is the number of blocks that consumed a parameter change.
	Syncs uint64
	// Recomputes is the number of swept filter coefficient derivations.
	Recomputes uint64
}

// Engine is the stereo sub-octave processor.
type Engine struct {
	sampleRate float64
	cfg        config

	// Control context.
	mu       sync.Mutex
	registry *param.Registry
	states   *state.Manager

	// Handoff between contexts.
	pending atomic.Pointer[Snapshot]
	dirty   atomic.Bool
	restore atomic.Bool

	syncs      atomic.Uint64
	recomputes atomic.Uint64

	// Audio context.
	mode    InputMode
	gain    StereoSignal
	rect    StereoSignal
	oct1    StereoSignal
	oct2    StereoSignal
	blend   float64
	mixVol  float64
	master  float64

	subFeed    lowpass.TwoPole
	tone       lowpass.OnePole
	rectSmooth lowpass.OnePole
	dividers   divider.Stereo
	mute       MuteDetector
}

// New creates an engine at sampleRate with default parameters.
func New(sampleRate float64, opts ...Option) (*Engine, error) {
	if !core.ValidSampleRate(sampleRate) {
		return nil, fmt.Errorf("subdominant: sample rate must be positive and finite: %f", sampleRate)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	reg, err := newRegistry()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		sampleRate: sampleRate,
		cfg:        cfg,
		registry:   reg,
		states:     state.NewManager(reg),
	}

	if cfg.defaults != nil {
		for id := ParamID(0); id < NumParams; id++ {
			reg.Get(uint32(id)).Set(cfg.defaults[id])
		}
	}

	if err := e.rectSmooth.Configure(sampleRate, rectifierSmoothingHz); err != nil {
		return nil, err
	}

	e.publish(false)

	return e, nil
}

// SampleRate returns the sample rate in Hz.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// Prepare readies the engine for a stream at sampleRate. Swept filter
// coefficients go stale and recompute at the next block. Dividers, filter
// histories and the mute counter restart. On error the engine keeps its previous configuration
// and remains usable.
func (e *Engine) Prepare(sampleRate float64) error {
	if !core.ValidSampleRate(sampleRate) {
		return fmt.Errorf("subdominant: sample rate must be positive and finite: %f", sampleRate)
	}

	if err := e.rectSmooth.Configure(sampleRate, rectifierSmoothingHz); err != nil {
		return err
	}

	e.sampleRate = sampleRate
	e.rectSmooth.Reset()
	e.subFeed.Reset()
	e.tone.Reset()
	e.dividers.Reset()
	e.mute.Reset()
	e.dirty.Store(true)

	return nil
}

// LatencySamples reports the processing latency. The engine adds none.
func (e *Engine) LatencySamples() int { return 0 }

// TailSeconds reports how long output continues after input stops.
func (e *Engine) TailSeconds() float64 { return 0 }

// SupportsLayout reports whether the engine can run with the given
// channel counts. Mono and stereo are supported with matching input and
// output counts.
func (e *Engine) SupportsLayout(inputs, outputs int) bool {
	return (outputs == 1 || outputs == 2) && inputs == outputs
}

// Stats returns the synchronization counters.
func (e *Engine) Stats() SyncStats {
	return SyncStats{Syncs: e.syncs.Load(), Recomputes: e.recomputes.Load()}
}

// ProcessBlock processes frames frames from in to out. in and out may
// alias. Output channels beyond the input count are cleared, and a mono
// input writes the averaged processed pair to out[0]. Blocks with no
// input channels produce silence.
func (e *Engine) ProcessBlock(in, out [][]float32, frames int) {
	processBlock(e, in, out, frames)
}

// ProcessBlock64 is ProcessBlock for float64 buffers.
func (e *Engine) ProcessBlock64(in, out [][]float64, frames int) {
	processBlock(e, in, out, frames)
}

func processBlock[T float32 | float64](e *Engine, in, out [][]T, frames int) {
	e.sync()

	if frames <= 0 {
		return
	}

	for ch := len(in); ch < len(out); ch++ {
		clear(out[ch][:min(frames, len(out[ch]))])
	}

	if len(in) == 0 || len(out) == 0 {
		return
	}

	inL, inR := in[0], in[0]
	if len(in) > 1 {
		inR = in[1]
	}

	stereo := len(in) > 1 && len(out) > 1
	n := min(frames, len(inL), len(inR), len(out[0]))

	if stereo {
		n = min(n, len(out[1]))
	}

	for i := range n {
		l := float64(inL[i])
		r := float64(inR[i])
		counter := e.mute.Observe(l, r)
		wl, wr := e.processFrame(l, r)

		if stereo {
			out[0][i] = T(RampVolume(wl*e.master, counter))
			out[1][i] = T(RampVolume(wr*e.master, counter))
		} else {
			out[0][i] = T(RampVolume((wl+wr)*0.5*e.master, counter))
		}
	}
}

// processFrame runs one frame through the signal graph up to the blend
// stage.
func (e *Engine) processFrame(left, right float64) (float64, float64) {
	e.gain.Left, e.gain.Right = InputGain(left, right, e.mode)

	rl, rr := FullWaveRect(left, right, e.rect.Volume)
	if e.cfg.rectifierSmoothing {
		rl, rr = e.rectSmooth.ProcessStereo(rl, rr)
	}

	e.rect.Left, e.rect.Right = rl, rr

	fl, fr := e.subFeed.ProcessStereo(e.gain.Left, e.gain.Right)
	o1l, o1r, o2l, o2r := e.dividers.Observe(fl, fr)
	e.oct1.Left, e.oct1.Right = o1l*e.oct1.Volume, o1r*e.oct1.Volume
	e.oct2.Left, e.oct2.Right = o2l*e.oct2.Volume, o2r*e.oct2.Volume

	ml, mr := Mix(e.gain, e.rect, e.oct1, e.oct2, e.mixVol)
	tl, tr := e.tone.ProcessStereo(ml, mr)

	return Blend(tl, left, e.blend), Blend(tr, right, e.blend)
}

// sync applies the latest published snapshot. It runs in the audio
// context at block boundaries and does nothing when no change is pending.
func (e *Engine) sync() {
	if !e.dirty.Swap(false) {
		return
	}

	if e.restore.Swap(false) {
		e.subFeed.Reset()
		e.subFeed.Tracking.Clear()
		e.tone.Reset()
		e.tone.Tracking.Clear()
	}

	snap := e.pending.Load()
	if snap == nil {
		return
	}

	e.syncs.Add(1)

	glitch := snap[ParamSubGlitch]
	if e.subFeed.Tracking.NeedsUpdate(glitch) {
		e.subFeed.Reset()

		cutoff := lowpass.LogSweep(subFeedMinHz, sweepMaxHz, glitch)
		if err := e.subFeed.Configure(e.sampleRate, cutoff, subFeedQ); err == nil {
			e.subFeed.Tracking.Mark(glitch)
		}

		e.recomputes.Add(1)
	}

	filter := snap[ParamFilterAmount]
	if e.tone.Tracking.NeedsUpdate(filter) {
		e.tone.Reset()

		cutoff := lowpass.LogSweep(toneMinHz, sweepMaxHz, filter)
		if err := e.tone.Configure(e.sampleRate, cutoff); err == nil {
			e.tone.Tracking.Mark(filter)
		}

		e.recomputes.Add(1)
	}

	e.mode = snap.InputMode()
	e.gain.Volume = snap[ParamNormVolume]
	e.rect.Volume = snap[ParamDomVolume]
	e.oct1.Volume = snap[ParamSub1Volume]
	e.oct2.Volume = snap[ParamSub2Volume]
	e.mixVol = snap[ParamGainAmount]
	e.blend = snap[ParamBlendAmount]
	e.master = snap[ParamMasterVolume]
}
