package leveler

// Options configures a Process run.
type Options struct {
	Meter    Meter
	Observer Observer
	// TruePeakOversample enables a true-peak estimate of the final output
	// at this oversampling factor. Zero disables it.
	TruePeakOversample int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the BS.1770 meter, no observer and no true-peak
// estimate.
func DefaultOptions() Options {
	return Options{Meter: BS1770Meter{}}
}

// WithMeter replaces the loudness meter.
func WithMeter(m Meter) Option {
	return func(o *Options) {
		if m != nil {
			o.Meter = m
		}
	}
}

// WithObserver installs a per-block progress callback.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// WithTruePeak enables a true-peak estimate at the given oversampling factor.
func WithTruePeak(oversample int) Option {
	return func(o *Options) {
		if oversample > 0 {
			o.TruePeakOversample = oversample
		}
	}
}

// ApplyOptions applies zero or more options to the defaults.
func ApplyOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
