package lowpass

import "testing"

func TestTrackingLifecycle(t *testing.T) {
	var tr Tracking

	if tr.State() != Uninitialized {
		t.Fatalf("zero value state = %v, want uninitialized", tr.State())
	}
	if !tr.NeedsUpdate(0) {
		t.Fatal("uninitialized tracking must need an update, even for 0")
	}

	tr.Mark(0.25)
	if tr.NeedsUpdate(0.25) {
		t.Fatal("current tracking with same value must not need an update")
	}
	if !tr.NeedsUpdate(0.5) {
		t.Fatal("changed value must need an update")
	}

	tr.Invalidate()
	if tr.State() != Stale {
		t.Fatalf("state = %v, want stale", tr.State())
	}
	if !tr.NeedsUpdate(0.25) {
		t.Fatal("stale tracking must need an update for the same value")
	}
	if tr.Value() != 0.25 {
		t.Fatalf("Value() = %v, want 0.25", tr.Value())
	}

	tr.Clear()
	tr.Invalidate()
	if tr.State() != Uninitialized {
		t.Fatalf("Invalidate on cleared tracking: state = %v, want uninitialized", tr.State())
	}
}

func TestLogSweepEndpoints(t *testing.T) {
	tests := []struct {
		min, max, control, want float64
	}{
		{159, 20000, 0, 159},
		{159, 20000, 1, 20000},
		{1446.8, 20000, 0, 1446.8},
		{1446.8, 20000, 1, 20000},
		{100, 400, 0.5, 200},
	}

	for _, tt := range tests {
		got := LogSweep(tt.min, tt.max, tt.control)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("LogSweep(%v, %v, %v) = %v, want %v", tt.min, tt.max, tt.control, got, tt.want)
		}
	}
}

func TestClampCutoff(t *testing.T) {
	if got := ClampCutoff(48000, 1000); got != 1000 {
		t.Fatalf("ClampCutoff below Nyquist = %v, want 1000", got)
	}
	if got := ClampCutoff(48000, 24000); got != 24000-nyquistMargin {
		t.Fatalf("ClampCutoff at Nyquist = %v, want %v", got, 24000-nyquistMargin)
	}
}
