package param

// Builder provides a fluent API for creating parameters.
type Builder struct {
	param *Parameter
}

// New creates a parameter builder with a [0, 1] range.
func New(id uint32, name string) *Builder {
	return &Builder{
		param: &Parameter{
			ID:        id,
			Name:      name,
			ShortName: name,
			Min:       0,
			Max:       1,
		},
	}
}

// ShortName sets the short display name.
func (b *Builder) ShortName(name string) *Builder {
	b.param.ShortName = name
	return b
}

// Range sets the min and max values.
func (b *Builder) Range(min, max float64) *Builder {
	b.param.Min = min
	b.param.Max = max
	return b
}

// Default sets the default value in plain units.
func (b *Builder) Default(value float64) *Builder {
	b.param.Default = value
	return b
}

// Interval sets the snapping interval.
func (b *Builder) Interval(step float64) *Builder {
	b.param.Interval = step
	return b
}

// Unit sets the unit string.
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Discrete restricts the parameter to integers in [min, max].
func (b *Builder) Discrete(min, max int) *Builder {
	b.param.Min = float64(min)
	b.param.Max = float64(max)
	b.param.Discrete = true
	return b
}

// Formatter sets a custom display formatter.
func (b *Builder) Formatter(format func(float64) string) *Builder {
	b.param.formatFunc = format
	return b
}

// Build finalizes the parameter and sets it to its default value.
func (b *Builder) Build() *Parameter {
	b.param.Default = b.param.Constrain(b.param.Default)
	b.param.Reset()
	return b.param
}
