package subdominant

import (
	"math"
	"testing"
)

func TestInputGain(t *testing.T) {
	tests := []struct {
		name         string
		left, right  float64
		mode         InputMode
		wantL, wantR float64
	}{
		{name: "line", left: 0.01, right: -0.02, mode: Line, wantL: 0.2, wantR: -0.4},
		{name: "line clips", left: 0.2, right: -0.2, mode: Line, wantL: 1, wantR: -1},
		{name: "instrument", left: 0.001, right: -0.004, mode: Instrument, wantL: 0.2, wantR: -0.8},
		{name: "instrument clips", left: 0.01, right: -0.5, mode: Instrument, wantL: 1, wantR: -1},
		{name: "silence", mode: Instrument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := InputGain(tt.left, tt.right, tt.mode)
			if math.Abs(l-tt.wantL) > 1e-12 || math.Abs(r-tt.wantR) > 1e-12 {
				t.Fatalf("InputGain() = (%v, %v), want (%v, %v)", l, r, tt.wantL, tt.wantR)
			}
		})
	}
}

func TestFullWaveRect(t *testing.T) {
	tests := []struct {
		name   string
		in     float64
		volume float64
		want   float64
	}{
		{name: "silence sits at -volume", in: 0, volume: 0.5, want: -0.5},
		{name: "linear region", in: 0.01, volume: 1, want: -0.8},
		{name: "negative input folds", in: -0.01, volume: 1, want: -0.8},
		{name: "unity is not saturated", in: 0.05, volume: 1, want: 0},
		{name: "above unity saturates", in: 0.06, volume: 1, want: 1},
		{name: "full scale", in: -1, volume: 0.5, want: 0.5},
		{name: "zero volume", in: 0.3, volume: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := FullWaveRect(tt.in, -tt.in, tt.volume)
			if math.Abs(l-tt.want) > 1e-12 || math.Abs(r-tt.want) > 1e-12 {
				t.Fatalf("FullWaveRect(%v) = (%v, %v), want %v", tt.in, l, r, tt.want)
			}
		})
	}
}

func TestMixWeightsAndClip(t *testing.T) {
	gain := StereoSignal{Left: 0.1, Right: -0.1, Volume: 1}
	zero := StereoSignal{}

	l, r := Mix(gain, zero, zero, zero, 0.5)
	// 0.1 * 0.3 * 10 * 0.5
	if math.Abs(l-0.15) > 1e-12 || math.Abs(r+0.15) > 1e-12 {
		t.Fatalf("Mix() gain branch = (%v, %v), want (0.15, -0.15)", l, r)
	}

	oct := StereoSignal{Left: 0.5, Right: -0.5}

	l, r = Mix(zero, zero, oct, zero, 0.2)
	if math.Abs(l-0.2) > 1e-12 || math.Abs(r+0.2) > 1e-12 {
		t.Fatalf("Mix() oct1 branch = (%v, %v), want (0.2, -0.2)", l, r)
	}

	full := StereoSignal{Left: 1, Right: -1, Volume: 1}

	l, r = Mix(full, full, full, full, 1)
	if l != 1 || r != -1 {
		t.Fatalf("Mix() = (%v, %v), want clipped (1, -1)", l, r)
	}
}

func TestMixVolumeZeroSilences(t *testing.T) {
	full := StereoSignal{Left: 1, Right: 1, Volume: 1}

	l, r := Mix(full, full, full, full, 0)
	if l != 0 || r != 0 {
		t.Fatalf("Mix() = (%v, %v), want 0", l, r)
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name     string
		wet, dry float64
		amount   float64
		want     float64
	}{
		{name: "dry only", wet: 0.7, dry: -0.3, amount: 0, want: -0.3},
		{name: "wet only", wet: 0.7, dry: -0.3, amount: 1, want: 0.7},
		{name: "half", wet: 0.8, dry: 0.2, amount: 0.5, want: 0.5},
		{name: "quarter", wet: 1, dry: 0, amount: 0.25, want: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.wet, tt.dry, tt.amount); math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("Blend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputModeString(t *testing.T) {
	if Line.String() != "line" || Instrument.String() != "instrument" {
		t.Fatalf("unexpected mode names %q %q", Line, Instrument)
	}
}
