package transform

// DefaultMaxDepth is the recursion depth beyond which [Recursive] stops
// splitting and evaluates the remaining segment directly. Power-of-two
// inputs never reach it on 64-bit platforms.
const DefaultMaxDepth = 64

// Option configures the recursive and planned transforms.
type Option func(*config)

type config struct {
	observer Observer
	maxDepth int
}

func defaultConfig() config {
	return config{maxDepth: DefaultMaxDepth}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithObserver registers fn to receive a [Notice] for every fallback to
// [Direct]. A nil fn disables notifications.
func WithObserver(fn Observer) Option {
	return func(c *config) {
		c.observer = fn
	}
}

// WithMaxDepth bounds the recursion depth. Values < 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth >= 1 {
			c.maxDepth = depth
		}
	}
}

func (c *config) notify(n Notice) {
	if c.observer != nil {
		c.observer(n)
	}
}
