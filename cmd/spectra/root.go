package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mdobak/go-xerrors"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectral/dsp/peaks"
	"github.com/cwbudde/algo-spectral/dsp/transform"
	"github.com/cwbudde/algo-spectral/dsp/window"
	"github.com/cwbudde/algo-spectral/internal/pipeline"
	"github.com/cwbudde/algo-spectral/internal/source"
)

type options struct {
	column         string
	sampleRate     float64
	sampleInterval float64
	threshold      float64
	maxPeaks       int
	window         string
	engine         string
	maxSamples     int
	maxDepth       int
	removeDC       bool
	format         string
	logLevel       string
	envFile        string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "spectra [flags] <file>",
		Short: "Find dominant frequencies in a sampled series",
		Long: `spectra loads a sampled series, computes its one-sided power spectrum and
reports the local maxima above a power threshold.

Supported inputs:
  .csv .tsv .txt   header row, value column selected by --column
  .xlsx            first sheet, header row, value column selected by --column
  .wav             channel 0, sample rate taken from the file

Every flag can also be set through a SPECTRA_<FLAG> variable, for example
SPECTRA_SAMPLE_RATE=48000, either in the environment or in the env file.
Command line flags take precedence.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.column, "column", source.DefaultColumn, "value column for table inputs")
	f.Float64Var(&opts.sampleRate, "sample-rate", 0, "sample rate in Hz (overrides --sample-interval and the WAV header)")
	f.Float64Var(&opts.sampleInterval, "sample-interval", pipeline.MonthSeconds, "sampling interval in seconds")
	f.Float64Var(&opts.threshold, "threshold", peaks.DefaultThreshold, "minimum peak power (exclusive)")
	f.IntVar(&opts.maxPeaks, "max-peaks", 0, "report only the strongest N peaks (0 = all)")
	f.StringVar(&opts.window, "window", window.TypeRectangular.String(), "taper: rectangular, hann, hamming, blackman")
	f.StringVar(&opts.engine, "engine", transform.EngineRecursive.String(), "transform engine: recursive, direct, planned")
	f.IntVar(&opts.maxSamples, "max-samples", 0, "reject non-power-of-two inputs longer than N (0 = no cap)")
	f.IntVar(&opts.maxDepth, "max-depth", transform.DefaultMaxDepth, "recursion depth before falling back to the direct transform")
	f.BoolVar(&opts.removeDC, "remove-dc", false, "subtract the mean before the transform")
	f.StringVarP(&opts.format, "format", "f", "text", "output format: text, json")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	f.StringVar(&opts.envFile, "env-file", defaultEnvFile, "file with SPECTRA_* defaults for flags not given on the command line")

	return cmd
}

func run(cmd *cobra.Command, opts *options, path string) error {
	if err := applyEnv(cmd.Flags(), opts.envFile); err != nil {
		return err
	}

	logger, err := newLogger(cmd, opts.logLevel)
	if err != nil {
		return err
	}

	format := strings.ToLower(strings.TrimSpace(opts.format))
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown output format %q", opts.format)
	}

	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		return err
	}

	sig, err := source.Load(path, opts.column)
	if err != nil {
		logger.Debug("failed to load signal", slog.String("path", path), slog.Any("error", xerrors.New(err)))
		return err
	}
	logger.Debug("signal loaded", "path", path, "samples", len(sig.Samples), "sample_rate_hz", sig.SampleRate)

	if sig.SampleRate > 0 && !cmd.Flags().Changed("sample-rate") {
		pipeline.WithSampleRate(sig.SampleRate)(&cfg)
	}

	rep, err := pipeline.Run(sig.Samples, cfg, logger)
	if err != nil {
		logger.Debug("analysis failed", slog.Int("samples", len(sig.Samples)), slog.Any("error", xerrors.New(err)))
		return err
	}

	if format == "json" {
		return writeJSON(cmd.OutOrStdout(), rep)
	}
	return writeText(cmd.OutOrStdout(), path, rep)
}

func buildConfig(cmd *cobra.Command, opts *options) (pipeline.Config, error) {
	win, err := window.ParseType(opts.window)
	if err != nil {
		return pipeline.Config{}, err
	}
	engine, err := transform.ParseEngine(opts.engine)
	if err != nil {
		return pipeline.Config{}, err
	}

	popts := []pipeline.Option{
		pipeline.WithSampleInterval(opts.sampleInterval),
		pipeline.WithThreshold(opts.threshold),
		pipeline.WithMaxPeaks(opts.maxPeaks),
		pipeline.WithWindow(win),
		pipeline.WithEngine(engine),
		pipeline.WithMaxSamples(opts.maxSamples),
		pipeline.WithMaxDepth(opts.maxDepth),
		pipeline.WithRemoveDC(opts.removeDC),
	}
	if cmd.Flags().Changed("sample-rate") {
		popts = append(popts, pipeline.WithSampleRate(opts.sampleRate))
	}

	cfg := pipeline.NewConfig(popts...)
	if err := cfg.Validate(); err != nil {
		return pipeline.Config{}, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})), nil
}
