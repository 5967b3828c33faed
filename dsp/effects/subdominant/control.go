package subdominant

import (
	"fmt"

	"github.com/cwbudde/algo-subdominant/state"
)

// publish snapshots the registry for the audio context. A restore request
// is raised before the dirty flag so the audio side never sees the dirty
// flag of a restore without the restore itself.
func (e *Engine) publish(restore bool) {
	snap := new(Snapshot)
	e.registry.Values(snap[:])
	e.pending.Store(snap)

	if restore {
		e.restore.Store(true)
	}

	e.dirty.Store(true)
}

// SetParameter sets a parameter and schedules it for the next block. The
// value is constrained to the parameter's range and interval.
func (e *Engine) SetParameter(id ParamID, value float64) error {
	if !id.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownParameter, uint32(id))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.registry.Get(uint32(id)).Set(value)
	e.publish(false)

	return nil
}

// SetParameterByName is SetParameter keyed by the parameter's name.
func (e *Engine) SetParameterByName(name string, value float64) error {
	p := e.registry.Lookup(name)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	return e.SetParameter(ParamID(p.ID), value)
}

// Parameter returns the control-side value of id, or 0 for unknown IDs.
func (e *Engine) Parameter(id ParamID) float64 {
	if !id.valid() {
		return 0
	}

	return e.registry.Get(uint32(id)).Value()
}

// SetLineInstrument selects the input gain mode.
func (e *Engine) SetLineInstrument(mode InputMode) error {
	return e.SetParameter(ParamLineInstrument, float64(mode))
}

// LineInstrument returns the selected input gain mode.
func (e *Engine) LineInstrument() InputMode {
	if e.Parameter(ParamLineInstrument) >= 0.5 {
		return Instrument
	}

	return Line
}

// Snapshot returns the most recently published parameter values.
func (e *Engine) Snapshot() Snapshot {
	return *e.pending.Load()
}

// Parameters describes every parameter in ID order.
func (e *Engine) Parameters() []ParameterInfo {
	all := e.registry.All()
	infos := make([]ParameterInfo, 0, len(all))

	for _, p := range all {
		v := p.Value()
		infos = append(infos, ParameterInfo{
			ID:      ParamID(p.ID),
			Name:    p.Name,
			Min:     p.Min,
			Max:     p.Max,
			Default: p.Default,
			Value:   v,
			Display: p.Format(v),
		})
	}

	return infos
}

// ResetParameters restores every default.
func (e *Engine) ResetParameters() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.registry.ResetAll()
	e.publish(false)
}

// SerializeState encodes all parameter values into an opaque blob.
func (e *Engine) SerializeState() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.states.Marshal()
}

// DeserializeState restores parameter values from a blob produced by
// SerializeState. Both swept filters are cleared and recomputed at the
// next block. A malformed blob leaves every value unchanged.
func (e *Engine) DeserializeState(data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.states.Unmarshal(data); err != nil {
		return err
	}

	e.publish(true)

	return nil
}

// LoadPreset applies a named preset. Known values are applied even when
// the preset also names unknown parameters; the error reports those.
func (e *Engine) LoadPreset(p state.Preset) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := state.Apply(e.registry, p)
	e.publish(false)

	return err
}

// Preset captures the current values as a preset called name.
func (e *Engine) Preset(name string) state.Preset {
	e.mu.Lock()
	defer e.mu.Unlock()

	return state.Capture(e.registry, name)
}
