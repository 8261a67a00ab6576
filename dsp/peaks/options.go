package peaks

// DefaultThreshold is the minimum power a local maximum must exceed.
const DefaultThreshold = 0.5

// Option configures peak extraction.
type Option func(*config)

type config struct {
	threshold float64
	maxPeaks  int
}

func defaultConfig() config {
	return config{threshold: DefaultThreshold}
}

// WithThreshold sets the power a candidate must strictly exceed.
func WithThreshold(threshold float64) Option {
	return func(c *config) {
		c.threshold = threshold
	}
}

// WithMaxPeaks keeps only the n strongest peaks. n <= 0 keeps all.
func WithMaxPeaks(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxPeaks = n
		}
	}
}
