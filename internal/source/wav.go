package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/youpy/go-wav"
)

func loadWAV(path string) (Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return Signal{}, fmt.Errorf("source: open %s: %w", path, err)
	}
	defer f.Close()

	r := wav.NewReader(f)
	format, err := r.Format()
	if err != nil {
		return Signal{}, fmt.Errorf("%w: wav: %w", ErrMalformedHeader, err)
	}

	var samples []float64
	for {
		block, err := r.ReadSamples()
		for _, s := range block {
			samples = append(samples, r.FloatValue(s, 0))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Signal{}, fmt.Errorf("source: read wav samples: %w", err)
		}
	}

	return Signal{Samples: samples, SampleRate: float64(format.SampleRate)}, nil
}
