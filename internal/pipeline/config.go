package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/peaks"
	"github.com/cwbudde/algo-spectral/dsp/transform"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

// MonthSeconds is the approximate length of one month, the sampling interval
// of monthly averaged series.
const MonthSeconds = 2629440

var errInvalidConfig = errors.New("pipeline: invalid config")

// Config defines one spectral analysis run.
type Config struct {
	// SampleRate in Hz. Unless set, the rate is 1/SampleInterval.
	SampleRate float64
	// SampleInterval in seconds, used only when no sample rate is set.
	SampleInterval float64

	// Threshold is the power a peak must exceed.
	Threshold float64
	// MaxPeaks keeps only the strongest peaks; 0 keeps all.
	MaxPeaks int

	Window window.Type
	Engine transform.Engine

	// MaxSamples rejects inputs longer than this whose length is not a power
	// of two, bounding the O(N^2) fallback paths. 0 disables the cap.
	MaxSamples int
	MaxDepth   int

	// RemoveDC subtracts the signal mean before the transform.
	RemoveDC bool

	// rateSet marks SampleRate as given by WithSampleRate, so that an explicit
	// zero is rejected instead of selecting the interval.
	rateSet bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings for monthly series with the recursive
// engine and no taper.
func DefaultConfig() Config {
	return Config{
		SampleInterval: MonthSeconds,
		Threshold:      peaks.DefaultThreshold,
		Window:         window.TypeRectangular,
		Engine:         transform.EngineRecursive,
		MaxDepth:       transform.DefaultMaxDepth,
	}
}

// NewConfig applies zero or more options to the default config.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSampleRate sets the sample rate in Hz. Validate rejects rates that are
// not finite and > 0, including 0.
func WithSampleRate(rate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = rate
		cfg.rateSet = true
	}
}

// WithSampleInterval sets the sampling interval in seconds and clears any
// explicit sample rate.
func WithSampleInterval(seconds float64) Option {
	return func(cfg *Config) {
		cfg.SampleInterval = seconds
		cfg.SampleRate = 0
		cfg.rateSet = false
	}
}

// WithThreshold sets the peak power threshold.
func WithThreshold(threshold float64) Option {
	return func(cfg *Config) { cfg.Threshold = threshold }
}

// WithMaxPeaks limits the number of reported peaks.
func WithMaxPeaks(n int) Option {
	return func(cfg *Config) { cfg.MaxPeaks = n }
}

// WithWindow selects the taper applied before the transform.
func WithWindow(t window.Type) Option {
	return func(cfg *Config) { cfg.Window = t }
}

// WithEngine selects the transform engine.
func WithEngine(e transform.Engine) Option {
	return func(cfg *Config) { cfg.Engine = e }
}

// WithMaxSamples caps non-power-of-two input lengths.
func WithMaxSamples(n int) Option {
	return func(cfg *Config) { cfg.MaxSamples = n }
}

// WithMaxDepth bounds the recursive transform depth.
func WithMaxDepth(depth int) Option {
	return func(cfg *Config) { cfg.MaxDepth = depth }
}

// WithRemoveDC subtracts the mean before the transform.
func WithRemoveDC(remove bool) Option {
	return func(cfg *Config) { cfg.RemoveDC = remove }
}

func (c Config) hasRate() bool {
	return c.rateSet || c.SampleRate != 0
}

// EffectiveSampleRate returns SampleRate, or 1/SampleInterval when no rate is
// set. Validate reports whether the result is usable.
func (c Config) EffectiveSampleRate() float64 {
	if c.hasRate() {
		return c.SampleRate
	}
	if c.SampleInterval == 0 {
		return 0
	}
	return 1 / c.SampleInterval
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Validate fails fast on settings that would produce a misleading result.
func (c Config) Validate() error {
	if c.hasRate() {
		if !finitePositive(c.SampleRate) {
			return fmt.Errorf("%w: sample rate must be finite and > 0: %v", errInvalidConfig, c.SampleRate)
		}
	} else if !finitePositive(c.SampleInterval) {
		return fmt.Errorf("%w: sample interval must be finite and > 0: %v", errInvalidConfig, c.SampleInterval)
	}

	if math.IsNaN(c.Threshold) {
		return fmt.Errorf("%w: threshold must not be NaN", errInvalidConfig)
	}
	if c.MaxPeaks < 0 {
		return fmt.Errorf("%w: max peaks must be >= 0: %d", errInvalidConfig, c.MaxPeaks)
	}
	if c.MaxSamples < 0 {
		return fmt.Errorf("%w: max samples must be >= 0: %d", errInvalidConfig, c.MaxSamples)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth must be >= 1: %d", errInvalidConfig, c.MaxDepth)
	}
	if c.Window.String() == "unknown" {
		return fmt.Errorf("%w: unknown window %d", errInvalidConfig, int(c.Window))
	}
	switch c.Engine {
	case transform.EngineRecursive, transform.EngineDirect, transform.EnginePlanned:
	default:
		return fmt.Errorf("%w: unknown engine %d", errInvalidConfig, int(c.Engine))
	}
	return nil
}
