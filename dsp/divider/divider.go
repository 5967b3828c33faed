package divider

// Divider halves the zero-crossing rate of its input.
//
// The zero value is ready to use and starts with positive output polarity.
type Divider struct {
	edge     bool // toggles on every crossing
	negative bool // output polarity; false means +1
	last     float64
}

// Observe feeds one sample. A crossing is a change of sign between the
// previous and the current sample, where zero counts as positive; two
// consecutive exact zeros never count.
func (d *Divider) Observe(sample float64) {
	prev := d.last
	d.last = sample

	if (sample >= 0) == (prev >= 0) || (prev == 0 && sample == 0) {
		return
	}

	d.edge = !d.edge
	if d.edge {
		d.negative = !d.negative
	}
}

// Output returns 0 if the last observed sample was exactly zero, otherwise
// +1 or -1 according to the current polarity.
func (d *Divider) Output() float64 {
	if d.last == 0 {
		return 0
	}

	if d.negative {
		return -1
	}

	return 1
}

// Reset returns the divider to its initial state.
func (d *Divider) Reset() {
	*d = Divider{}
}

// Cascade chains two dividers: the second is fed the unscaled output of
// the first.
type Cascade struct {
	first, second Divider
}

// Observe feeds one sample and returns the one- and two-octave-down outputs.
func (c *Cascade) Observe(sample float64) (octave1, octave2 float64) {
	c.first.Observe(sample)
	octave1 = c.first.Output()

	c.second.Observe(octave1)
	octave2 = c.second.Output()

	return octave1, octave2
}

// Reset returns both stages to their initial state.
func (c *Cascade) Reset() {
	c.first.Reset()
	c.second.Reset()
}

// Stereo holds one Cascade per channel.
type Stereo struct {
	left, right Cascade
}

// Observe feeds one stereo frame and returns the octave outputs per channel.
func (s *Stereo) Observe(left, right float64) (oct1L, oct1R, oct2L, oct2R float64) {
	oct1L, oct2L = s.left.Observe(left)
	oct1R, oct2R = s.right.Observe(right)

	return oct1L, oct1R, oct2L, oct2R
}

// Reset returns both channels to their initial state.
func (s *Stereo) Reset() {
	s.left.Reset()
	s.right.Reset()
}
