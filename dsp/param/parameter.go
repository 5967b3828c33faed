package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// Parameter is a single named control with a plain-unit value range.
type Parameter struct {
	ID        uint32
	Name      string
	ShortName string
	Unit      string
	Min       float64
	Max       float64
	Default   float64
	// Interval snaps values to Min + k*Interval. Zero disables snapping.
	Interval float64
	// Discrete parameters hold integers only.
	Discrete bool

	value atomic.Uint64

	formatFunc func(float64) string
}

// Value returns the current value.
func (p *Parameter) Value() float64 {
	return math.Float64frombits(p.value.Load())
}

// Set stores value after clamping it to [Min, Max] and snapping it to the
// parameter's interval. NaN is ignored. It returns the stored value.
func (p *Parameter) Set(value float64) float64 {
	if math.IsNaN(value) {
		return p.Value()
	}

	value = p.Constrain(value)
	p.value.Store(math.Float64bits(value))

	return value
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.Set(p.Default)
}

// Constrain clamps and snaps value without storing it.
func (p *Parameter) Constrain(value float64) float64 {
	if value < p.Min {
		value = p.Min
	} else if value > p.Max {
		value = p.Max
	}

	switch {
	case p.Discrete:
		value = math.Round(value)
	case p.Interval > 0:
		// Dividing by an integral step count yields the same doubles as
		// decimal literals such as 0.42.
		if steps := math.Round(1 / p.Interval); math.Abs(1/p.Interval-steps) < 1e-9 {
			value = p.Min + math.Round((value-p.Min)*steps)/steps
		} else {
			value = p.Min + math.Round((value-p.Min)/p.Interval)*p.Interval
		}
		if value > p.Max {
			value = p.Max
		}
	}

	return value
}

// Normalized returns the current value mapped to [0, 1].
func (p *Parameter) Normalized() float64 {
	if p.Max <= p.Min {
		return 0
	}

	return (p.Value() - p.Min) / (p.Max - p.Min)
}

// Format renders value for display.
func (p *Parameter) Format(value float64) string {
	if p.formatFunc != nil {
		return p.formatFunc(value)
	}

	if p.Discrete {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}

	s := fmt.Sprintf("%.2f", value)
	if p.Unit != "" {
		s += " " + p.Unit
	}

	return s
}

// String renders the current value with the parameter name.
func (p *Parameter) String() string {
	return p.Name + ": " + p.Format(p.Value())
}
