package main

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-subdominant/dsp/core"
	"github.com/cwbudde/algo-subdominant/dsp/effects/subdominant"
)

const (
	stepSize     = 0.05
	semitone     = 1.0594630943592953
	minSourceHz  = 20.0
	maxSourceHz  = 2000.0
	keyInterrupt = 0x03
)

// controller maps key presses to parameter changes. It runs in the
// engine's control context.
type controller struct {
	engine   *subdominant.Engine
	stream   *stream
	selected subdominant.ParamID
}

// handle applies one key and reports whether the program should exit.
func (c *controller) handle(key byte) (quit bool, err error) {
	switch {
	case key == 'q' || key == keyInterrupt:
		return true, nil
	case key >= '0' && key <= '9':
		c.selected = subdominant.ParamID(key - '0')
	case key == '+' || key == '=':
		err = c.nudge(stepSize)
	case key == '-' || key == '_':
		err = c.nudge(-stepSize)
	case key == 'l':
		mode := subdominant.Line
		if c.engine.LineInstrument() == subdominant.Line {
			mode = subdominant.Instrument
		}

		err = c.engine.SetLineInstrument(mode)
	case key == 'r':
		c.engine.ResetParameters()
	case key == ']':
		c.retune(semitone)
	case key == '[':
		c.retune(1 / semitone)
	}

	return false, err
}

func (c *controller) nudge(delta float64) error {
	return c.engine.SetParameter(c.selected, c.engine.Parameter(c.selected)+delta)
}

func (c *controller) retune(ratio float64) {
	hz := core.Clamp(c.stream.Frequency()*ratio, minSourceHz, maxSourceHz)
	c.stream.SetFrequency(hz)
}

// status renders a one-line summary of the selected parameter.
func (c *controller) status() string {
	var b strings.Builder

	for _, p := range c.engine.Parameters() {
		if p.ID == c.selected {
			fmt.Fprintf(&b, "[%d] %s = %s", p.ID, p.Name, p.Display)
		}
	}

	fmt.Fprintf(&b, " | source %.1f Hz | out peak %.2f", c.stream.Frequency(), c.stream.Peak())

	return b.String()
}

const help = `keys: 0-9 select parameter, +/- adjust, l line/instrument,
      [ ] source pitch, r reset, q quit`
