package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/internal/pipeline"
)

// dbFloor clamps the relative-dB column.
const dbFloor = -300

func writeJSON(w io.Writer, rep pipeline.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func writeText(w io.Writer, path string, rep pipeline.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "File\t%s\n", filepath.Base(path))
	fmt.Fprintf(tw, "Samples\t%d\n", rep.Samples)
	fmt.Fprintf(tw, "Sample rate [Hz]\t%.6g\n", rep.SampleRate)
	fmt.Fprintf(tw, "Resolution [Hz]\t%.6g\n", rep.Resolution)
	fmt.Fprintf(tw, "Engine\t%s\n", rep.Engine)
	fmt.Fprintf(tw, "Window\t%s (gain %.4f)\n", rep.Window, rep.WindowGain)
	fmt.Fprintf(tw, "Fallbacks\t%d\n", len(rep.Notices))
	fmt.Fprintf(tw, "Dominant [Hz]\t%.6g (bin %d)\n", rep.Dominant.Frequency, rep.Dominant.Bin)
	fmt.Fprintf(tw, "Centroid [Hz]\t%.6g\n", rep.Summary.Centroid)
	fmt.Fprintf(tw, "Flatness\t%.4f\n", rep.Summary.Flatness)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	fmt.Fprintln(w)
	if len(rep.Peaks) == 0 {
		_, err := fmt.Fprintln(w, "no peaks above threshold")
		return err
	}

	fmt.Fprintf(tw, "Peak\tBin\tFrequency [Hz]\tPeriod [samples]\tPower\tRelative [dB]\n")
	fmt.Fprintf(tw, "----\t---\t--------------\t----------------\t-----\t-------------\n")
	db := spectrum.PowerDB(rep.Power, rep.Dominant.Power, dbFloor)
	for i, p := range rep.Peaks {
		fmt.Fprintf(tw, "%d\t%d\t%.6g\t%.4f\t%.6g\t%.2f\n",
			i+1, p.Bin, p.Frequency, float64(rep.Samples)/float64(p.Bin), p.Power, db[p.Bin])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write peaks: %w", err)
	}
	return nil
}
