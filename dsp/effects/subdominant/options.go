package subdominant

// Option configures an Engine at construction time.
type Option func(*config) error

type config struct {
	rectifierSmoothing bool
	defaults           *Snapshot
}

func defaultConfig() config {
	return config{}
}

// WithRectifierSmoothing routes the rectified branch through a fixed
// 1591 Hz one-pole low-pass before it reaches the mixer. Off by default.
func WithRectifierSmoothing(enabled bool) Option {
	return func(cfg *config) error {
		cfg.rectifierSmoothing = enabled
		return nil
	}
}

// WithInitialValues sets parameter values before the first block. Values
// are constrained to each parameter's range.
func WithInitialValues(values Snapshot) Option {
	return func(cfg *config) error {
		v := values
		cfg.defaults = &v

		return nil
	}
}
