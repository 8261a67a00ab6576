// Command spectra prints the power spectrum peaks of a sampled series.
//
// Usage:
//
//	spectra [flags] <file>
//
// The file is a delimited text table (.csv, .tsv, .txt), a spreadsheet
// (.xlsx) or a WAV recording (.wav). Table inputs read the column named by
// --column; WAV inputs read channel 0 at the recorded sample rate unless
// --sample-rate overrides it.
//
// Examples:
//
//	spectra co2_mm_mlo.csv --column average
//	spectra --sample-rate 48000 --window hann --max-peaks 5 tone.wav
//	spectra --format json --log-level debug series.xlsx
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
