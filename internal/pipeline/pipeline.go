// Package pipeline runs the spectral analysis chain on a loaded signal:
// taper, transform, one-sided spectrum, frequency axis, peaks and summary.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-spectral/dsp/peaks"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/transform"
	"github.com/cwbudde/algo-spectral/dsp/window"
	frequencystats "github.com/cwbudde/algo-spectral/stats/frequency"
	timestats "github.com/cwbudde/algo-spectral/stats/time"
)

var (
	// ErrNoSamples is returned for an empty signal.
	ErrNoSamples = errors.New("pipeline: no samples")
	// ErrTooLarge is returned when a non-power-of-two input exceeds MaxSamples.
	ErrTooLarge = errors.New("pipeline: input exceeds sample cap")
)

// Report is the result of one analysis run.
type Report struct {
	Samples    int     `json:"samples"`
	SampleRate float64 `json:"sample_rate_hz"`
	Resolution float64 `json:"resolution_hz"`
	Engine     string  `json:"engine"`
	Window     string  `json:"window"`
	WindowGain float64 `json:"window_gain"`

	Signal timestats.Stats `json:"signal"`

	Spectrum  []complex128 `json:"-"`
	Power     []float64    `json:"power"`
	Magnitude []float64    `json:"magnitude"`
	Phase     []float64    `json:"phase_rad"`
	Freqs     []float64    `json:"frequencies_hz"`

	Peaks    []peaks.Peak           `json:"peaks"`
	Dominant peaks.Peak             `json:"dominant"`
	Summary  frequencystats.Summary `json:"summary"`
	Notices  []transform.Notice     `json:"fallbacks,omitempty"`
}

// PeakFrequencies returns the frequencies of the detected peaks.
func (r Report) PeakFrequencies() []float64 {
	out := make([]float64, len(r.Peaks))
	for i, p := range r.Peaks {
		out[i] = p.Frequency
	}
	return out
}

// Run analyzes samples with cfg. Fallback notices from the transform are
// logged at debug level and returned in the report. A nil logger discards
// output.
func Run(samples []float64, cfg Config, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	n := len(samples)
	if n == 0 {
		return Report{}, ErrNoSamples
	}
	if cfg.MaxSamples > 0 && n > cfg.MaxSamples && !transform.IsPowerOfTwo(n) {
		return Report{}, fmt.Errorf("%w: %d samples, cap %d for non-power-of-two lengths", ErrTooLarge, n, cfg.MaxSamples)
	}

	rate := cfg.EffectiveSampleRate()
	rep := Report{
		Samples:    n,
		SampleRate: rate,
		Engine:     cfg.Engine.String(),
		Window:     cfg.Window.String(),
		Signal:     timestats.Calculate(samples),
	}

	x := samples
	if cfg.RemoveDC {
		x = timestats.RemoveDC(x)
	}
	x = window.Apply(cfg.Window, x)
	rep.WindowGain = window.CoherentGain(window.Generate(cfg.Window, n))

	var rec transform.Recorder
	observe := func(nt transform.Notice) {
		rec.Observe(nt)
		logger.Debug("falling back to direct transform",
			"length", nt.Length, "depth", nt.Depth, "reason", nt.Reason.String())
	}

	spec, err := cfg.Engine.Transform(transform.FromReal(x),
		transform.WithObserver(observe),
		transform.WithMaxDepth(cfg.MaxDepth),
	)
	if err != nil {
		return Report{}, err
	}
	rep.Spectrum = spec
	rep.Notices = rec.Notices()

	rep.Power, rep.Magnitude = spectrum.OneSided(spec)
	rep.Phase = spectrum.OneSidedPhase(spec)

	if rep.Resolution, err = peaks.Resolution(rate, n); err != nil {
		return Report{}, err
	}
	if rep.Freqs, err = peaks.OneSidedAxis(rate, n); err != nil {
		return Report{}, err
	}

	rep.Peaks, err = peaks.Find(rep.Freqs, rep.Power,
		peaks.WithThreshold(cfg.Threshold),
		peaks.WithMaxPeaks(cfg.MaxPeaks),
	)
	if err != nil {
		return Report{}, err
	}
	if rep.Dominant, err = peaks.Dominant(rep.Freqs, rep.Power); err != nil {
		return Report{}, err
	}
	if rep.Summary, err = frequencystats.Summarize(rep.Freqs, rep.Power); err != nil {
		return Report{}, err
	}

	logger.Info("spectrum analyzed",
		"samples", n,
		"engine", rep.Engine,
		"fallbacks", rec.Len(),
		"peaks", len(rep.Peaks),
		"dominant_hz", rep.Dominant.Frequency,
	)

	return rep, nil
}
