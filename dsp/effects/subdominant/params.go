package subdominant

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-subdominant/dsp/param"
)

// ParamID identifies an engine parameter.
type ParamID uint32

const (
	ParamNormVolume ParamID = iota
	ParamDomVolume
	ParamSub1Volume
	ParamSub2Volume
	ParamFilterAmount
	ParamSubGlitch
	ParamLineInstrument
	ParamGainAmount
	ParamBlendAmount
	ParamMasterVolume

	// NumParams is the number of engine parameters.
	NumParams
)

const paramInterval = 0.01

// ErrUnknownParameter is returned for IDs or names the engine does not know.
var ErrUnknownParameter = errors.New("subdominant: unknown parameter")

var paramNames = [NumParams]string{
	ParamNormVolume:     "NORM VOLUME",
	ParamDomVolume:      "DOM VOLUME",
	ParamSub1Volume:     "SUB1 VOLUME",
	ParamSub2Volume:     "SUB2 VOLUME",
	ParamFilterAmount:   "FILTER AMOUNT",
	ParamSubGlitch:      "SUB GLITCH AMOUNT",
	ParamLineInstrument: "LINE/INST",
	ParamGainAmount:     "GAIN AMOUNT",
	ParamBlendAmount:    "BLEND AMOUNT",
	ParamMasterVolume:   "MASTER VOLUME",
}

var paramDefaults = [NumParams]float64{
	ParamNormVolume:     0.5,
	ParamDomVolume:      0.5,
	ParamSub1Volume:     0.5,
	ParamSub2Volume:     0.5,
	ParamFilterAmount:   1.0,
	ParamSubGlitch:      0.01,
	ParamLineInstrument: float64(Instrument),
	ParamGainAmount:     0.5,
	ParamBlendAmount:    0.0,
	ParamMasterVolume:   0.5,
}

func (id ParamID) String() string {
	if id < NumParams {
		return paramNames[id]
	}

	return fmt.Sprintf("ParamID(%d)", uint32(id))
}

func (id ParamID) valid() bool { return id < NumParams }

func newRegistry() (*param.Registry, error) {
	reg := param.NewRegistry()

	for id := ParamID(0); id < NumParams; id++ {
		b := param.New(uint32(id), paramNames[id]).Default(paramDefaults[id])
		if id == ParamLineInstrument {
			b = b.Discrete(0, 1).Formatter(func(v float64) string {
				return InputMode(v).String()
			})
		} else {
			b = b.Range(0, 1).Interval(paramInterval)
		}

		if err := reg.Add(b.Build()); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// Snapshot is an immutable set of parameter values indexed by ParamID.
type Snapshot [NumParams]float64

// DefaultSnapshot returns the parameter defaults.
func DefaultSnapshot() Snapshot { return Snapshot(paramDefaults) }

// Get returns the value of id, or 0 for unknown IDs.
func (s Snapshot) Get(id ParamID) float64 {
	if !id.valid() {
		return 0
	}

	return s[id]
}

// InputMode returns the LINE/INST selection.
func (s Snapshot) InputMode() InputMode {
	if s[ParamLineInstrument] >= 0.5 {
		return Instrument
	}

	return Line
}

// ParameterInfo describes a parameter for display.
type ParameterInfo struct {
	ID      ParamID
	Name    string
	Min     float64
	Max     float64
	Default float64
	Value   float64
	Display string
}
