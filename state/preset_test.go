package state

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestPresetCaptureApply(t *testing.T) {
	src := newTestRegistry(t)
	src.Get(0).Set(0.42)

	p := Capture(src, "crunch")
	if p.Name != "crunch" || p.Params["LEVEL"] != 0.42 || p.Params["MODE"] != 1 {
		t.Fatalf("Capture() = %+v", p)
	}

	dst := newTestRegistry(t)
	if err := Apply(dst, p); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := dst.Get(0).Value(); got != 0.42 {
		t.Fatalf("LEVEL = %v, want 0.42", got)
	}
}

func TestPresetApplyUnknown(t *testing.T) {
	reg := newTestRegistry(t)

	err := Apply(reg, Preset{Name: "x", Params: map[string]float64{"LEVEL": 0.2, "NOPE": 1}})
	if err == nil || !strings.Contains(err.Error(), "NOPE") {
		t.Fatalf("Apply() error = %v, want unknown parameter error", err)
	}
	if got := reg.Get(0).Value(); got != 0.2 {
		t.Fatalf("known value not applied: %v", got)
	}
}

func TestPresetJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")

	want := Preset{Name: "fat", Params: map[string]float64{"LEVEL": 0.8}}
	if err := SaveJSON(path, want); err != nil {
		t.Fatalf("SaveJSON() error = %v", err)
	}

	got, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if got.Name != want.Name || got.Params["LEVEL"] != 0.8 {
		t.Fatalf("LoadJSON() = %+v, want %+v", got, want)
	}
}

func TestDecodeJSONErrors(t *testing.T) {
	for _, in := range []string{"{", `{"name":"a","extra":1}`, `{"params":{"LEVEL":"high"}}`} {
		_, err := DecodeJSON(strings.NewReader(in))
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("DecodeJSON(%q) error = %v, want ErrInvalidState", in, err)
		}
	}

	p, err := DecodeJSON(bytes.NewBufferString(`{"name":"empty"}`))
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if p.Params == nil {
		t.Fatal("Params must be non-nil")
	}
}
