package divider

import (
	"testing"

	"github.com/cwbudde/algo-subdominant/internal/testutil"
)

func transitions(x []float64) int {
	n := 0
	for i := 1; i < len(x); i++ {
		if x[i] != x[i-1] {
			n++
		}
	}
	return n
}

func TestDividerHalvesFrequency(t *testing.T) {
	for _, half := range []int{1, 3, 4, 25} {
		period := 2 * half
		in := testutil.AlternatingSigns(half, period*32)

		var d Divider
		out := make([]float64, len(in))
		for i, x := range in {
			d.Observe(x)
			out[i] = d.Output()
		}

		for i := 0; i+2*period < len(out); i++ {
			if out[i] != out[i+2*period] {
				t.Fatalf("half=%d: out[%d]=%v != out[%d]=%v, want period %d", half, i, out[i], i+2*period, out[i+2*period], 2*period)
			}
			if out[i] == out[i+period] {
				t.Fatalf("half=%d: out[%d] == out[%d], output period must not be %d", half, i, i+period, period)
			}
		}

		// The first crossing flips the polarity, so odd counts round up.
		if got, want := transitions(out), (transitions(in)+1)/2; got != want {
			t.Fatalf("half=%d: output transitions = %d, want %d", half, got, want)
		}
	}
}

func TestDividerStartsPositiveAndFlipsOnFirstCrossing(t *testing.T) {
	var d Divider

	d.Observe(0.3)
	if got := d.Output(); got != 1 {
		t.Fatalf("initial output = %v, want 1", got)
	}

	d.Observe(-0.3)
	if got := d.Output(); got != -1 {
		t.Fatalf("after first crossing output = %v, want -1", got)
	}

	d.Observe(0.3)
	if got := d.Output(); got != -1 {
		t.Fatalf("after second crossing output = %v, want -1", got)
	}

	d.Observe(-0.3)
	if got := d.Output(); got != 1 {
		t.Fatalf("after third crossing output = %v, want 1", got)
	}
}

func TestDividerSilenceOutputsZero(t *testing.T) {
	var d Divider

	for _, x := range testutil.AlternatingSigns(2, 11) {
		d.Observe(x)
	}

	for i := range 64 {
		d.Observe(0)
		if got := d.Output(); got != 0 {
			t.Fatalf("zero sample %d: output = %v, want 0", i, got)
		}
	}
}

func TestDividerZeroToZeroIsNotACrossing(t *testing.T) {
	var d Divider

	d.Observe(0)
	d.Observe(0)
	d.Observe(0.5)
	if got := d.Output(); got != 1 {
		t.Fatalf("output = %v, want 1 (no crossing through zeros)", got)
	}
}

func TestDividerReset(t *testing.T) {
	var d Divider
	d.Observe(1)
	d.Observe(-1)
	d.Reset()

	if d != (Divider{}) {
		t.Fatalf("Reset() left state %+v", d)
	}
}

func TestCascadeTwoOctavesDown(t *testing.T) {
	const half = 5

	in := testutil.AlternatingSigns(half, 2*half*64)

	var c Cascade
	oct1 := make([]float64, len(in))
	oct2 := make([]float64, len(in))
	for i, x := range in {
		oct1[i], oct2[i] = c.Observe(x)
	}

	k1 := (transitions(in) + 1) / 2
	if got := transitions(oct1); got != k1 {
		t.Fatalf("octave 1 transitions = %d, want %d", got, k1)
	}
	if got, want := transitions(oct2), (k1+1)/2; got != want {
		t.Fatalf("octave 2 transitions = %d, want %d", got, want)
	}
}

func TestStereoChannelsIndependent(t *testing.T) {
	var s Stereo

	in := testutil.AlternatingSigns(2, 32)
	for _, x := range in {
		l1, r1, l2, r2 := s.Observe(x, 0)
		if r1 != 0 || r2 != 0 {
			t.Fatalf("silent right channel produced (%v, %v)", r1, r2)
		}
		if l1 == 0 || l2 == 0 {
			t.Fatalf("active left channel produced zero output")
		}
	}

	s.Reset()
	if s != (Stereo{}) {
		t.Fatal("Reset() did not restore initial state")
	}
}
