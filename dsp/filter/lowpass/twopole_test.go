package lowpass

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-subdominant/dsp/core"
	"github.com/cwbudde/algo-subdominant/internal/testutil"
)

func TestTwoPoleUnityDCGain(t *testing.T) {
	f, err := NewTwoPole(48000, 159, 0.660225)
	if err != nil {
		t.Fatalf("NewTwoPole() error = %v", err)
	}

	var l, r float64
	for range 48000 {
		l, r = f.ProcessStereo(0.5, -0.25)
	}

	if !core.NearlyEqual(l, 0.5, 1e-6) || !core.NearlyEqual(r, -0.25, 1e-6) {
		t.Fatalf("settled output = (%v, %v), want (0.5, -0.25)", l, r)
	}
}

func TestTwoPoleVeryLowCutoffDamps(t *testing.T) {
	f, err := NewTwoPole(48000, 1, 0.660225)
	if err != nil {
		t.Fatalf("NewTwoPole() error = %v", err)
	}

	in := testutil.DeterministicSine(1000, 48000, 1, 96000)

	peak := 0.0
	for i, x := range in {
		l, _ := f.ProcessStereo(x, x)
		if i >= 48000 {
			peak = math.Max(peak, math.Abs(l))
		}
	}

	if peak > 1e-3 {
		t.Fatalf("settled peak = %v, want < 1e-3", peak)
	}
}

func TestTwoPoleHighQNearNyquistStaysFinite(t *testing.T) {
	f, err := NewTwoPole(48000, 1e6, 1e6)
	if err != nil {
		t.Fatalf("NewTwoPole() error = %v", err)
	}

	a1, a2, b1, b2 := f.Coefficients()
	testutil.RequireFinite(t, []float64{a1, a2, b1, b2})

	in := testutil.DeterministicNoise(7, 1, 4096)
	out := make([]float64, len(in))
	for i, x := range in {
		out[i], _ = f.ProcessStereo(x, x)
	}

	testutil.RequireFinite(t, out)

	for i, v := range out {
		if math.Abs(v) > 1e3 {
			t.Fatalf("out[%d] = %v, want bounded output", i, v)
		}
	}
}

func TestTwoPoleCoefficientDerivation(t *testing.T) {
	const (
		fs = 44100.0
		fc = 2000.0
		q  = 0.7
	)

	f, err := NewTwoPole(fs, fc, q)
	if err != nil {
		t.Fatalf("NewTwoPole() error = %v", err)
	}

	a := 1 / math.Tan(math.Pi*fc/fs)
	b := 1 / q
	wantA1 := 1 / (1 + b*a + a*a)

	a1, a2, b1, b2 := f.Coefficients()
	testutil.RequireSliceNearlyEqual(t,
		[]float64{a1, a2, b1, b2},
		[]float64{wantA1, 2 * wantA1, 2 * (1 - a*a) * wantA1, (1 - b*a + a*a) * wantA1},
		1e-15)
}

func TestTwoPoleRejectsInvalidQ(t *testing.T) {
	var f TwoPole
	for _, q := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := f.Configure(48000, 1000, q); err == nil {
			t.Fatalf("Configure(q=%v) error = nil, want error", q)
		}
	}
}

func TestTwoPoleReset(t *testing.T) {
	f, err := NewTwoPole(48000, 500, 0.7)
	if err != nil {
		t.Fatalf("NewTwoPole() error = %v", err)
	}
	f.Tracking.Mark(0.3)

	for range 32 {
		f.ProcessStereo(1, -1)
	}

	f.Reset()

	if f.tapsL != [4]float64{} || f.tapsR != [4]float64{} {
		t.Fatalf("taps not cleared: %v %v", f.tapsL, f.tapsR)
	}
	if f.Tracking.State() != Stale {
		t.Fatalf("tracking state = %v, want stale", f.Tracking.State())
	}
}

func TestStereoProcessorVariants(t *testing.T) {
	one, err := NewOnePole(48000, 1000)
	if err != nil {
		t.Fatalf("NewOnePole() error = %v", err)
	}

	two, err := NewTwoPole(48000, 1000, 0.7)
	if err != nil {
		t.Fatalf("NewTwoPole() error = %v", err)
	}

	for _, p := range []StereoProcessor{one, two} {
		for range 16 {
			p.ProcessStereo(1, 1)
		}
		p.Reset()

		l, r := p.ProcessStereo(0, 0)
		if l != 0 || r != 0 {
			t.Fatalf("%T: output after Reset = (%v, %v), want zeros", p, l, r)
		}
	}
}
