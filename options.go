package mutelems

const (
	// DefaultLinearLimit is the largest index count checked by the
	// allocation-free pairwise scan.
	DefaultLinearLimit = 16

	// DefaultDenseFactor bounds the dense bitset: it is used while the
	// buffer length is at most DefaultDenseFactor times the index count.
	DefaultDenseFactor = 64
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	linearLimit      int
	denseFactor      int
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		linearLimit:      DefaultLinearLimit,
		denseFactor:      DefaultDenseFactor,
	}
}

// Option configures a Checker.
type Option func(*options)

// WithLogger sets the logger used to report rejected index sets.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified after every validation.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLinearLimit sets the largest index count checked for duplicates by
// comparing every pair. Values below 2 are clamped to 2.
func WithLinearLimit(k int) Option {
	return func(o *options) {
		o.linearLimit = max(k, 2)
	}
}

// WithDenseFactor sets the ratio of buffer length to index count up to which
// duplicates are tracked in a bitset sized to the buffer. Beyond it a
// compressed bitmap is used. Values below 1 are clamped to 1.
func WithDenseFactor(f int) Option {
	return func(o *options) {
		o.denseFactor = max(f, 1)
	}
}
