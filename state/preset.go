package state

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cwbudde/algo-subdominant/dsp/param"
)

// Preset is a named set of parameter values keyed by parameter name.
type Preset struct {
	Name   string             `json:"name"`
	Params map[string]float64 `json:"params"`
}

// Capture records the current registry values as a preset.
func Capture(registry *param.Registry, name string) Preset {
	p := Preset{Name: name, Params: make(map[string]float64)}
	for _, prm := range registry.All() {
		p.Params[prm.Name] = prm.Value()
	}

	return p
}

// Apply writes the preset's values into registry. Parameters missing from
// the preset keep their current value. Unknown names are reported after
// all known values have been applied.
func Apply(registry *param.Registry, p Preset) error {
	var unknown []string

	for name, v := range p.Params {
		prm := registry.Lookup(name)
		if prm == nil {
			unknown = append(unknown, name)
			continue
		}

		prm.Set(v)
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("state: preset %q has unknown parameters %v", p.Name, unknown)
	}

	return nil
}

// DecodeJSON reads a preset from r.
func DecodeJSON(r io.Reader) (Preset, error) {
	var p Preset

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("%w: decode preset: %w", ErrInvalidState, err)
	}

	if p.Params == nil {
		p.Params = map[string]float64{}
	}

	return p, nil
}

// EncodeJSON writes p to w as indented JSON.
func EncodeJSON(w io.Writer, p Preset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(p)
}

// LoadJSON reads a preset file.
func LoadJSON(path string) (Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Preset{}, err
	}
	defer f.Close()

	p, err := DecodeJSON(f)
	if err != nil {
		return Preset{}, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// SaveJSON writes a preset file.
func SaveJSON(path string, p Preset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := EncodeJSON(f, p); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
