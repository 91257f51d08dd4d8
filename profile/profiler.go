package profile

// Profiler holds the parameters of one profiling session.
// The zero value is disabled.
type Profiler struct {
	Mode  string
	Path  string
	Quiet bool
}

// Option configures a [Profiler].
type Option func(Profiler) Profiler

// New returns a [Profiler] with opts applied.
func New(opts ...Option) Profiler {
	var p Profiler

	for _, opt := range opts {
		p = opt(p)
	}

	return p
}

// WithMode sets the profiling mode. See [Modes].
func WithMode(mode string) Option {
	return func(p Profiler) Profiler { p.Mode = mode; return p }
}

// WithPath sets the output directory.
func WithPath(path string) Option {
	return func(p Profiler) Profiler { p.Path = path; return p }
}

// WithQuiet suppresses the profiler's own log messages.
func WithQuiet(quiet bool) Option {
	return func(p Profiler) Profiler { p.Quiet = quiet; return p }
}

// Start begins profiling and returns a handle for stopping it.
//
// If the build tag is unset, or p.Mode is empty or unknown, Start returns a
// no-op. Both Start and Stop are always safely callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
