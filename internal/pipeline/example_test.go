package pipeline_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/internal/pipeline"
	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func ExampleRun() {
	x := testutil.DeterministicSine(5, 40, 1, 40)

	rep, err := pipeline.Run(x, pipeline.NewConfig(pipeline.WithSampleRate(40)), nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf("peaks at %v Hz, %d fallbacks\n", rep.PeakFrequencies(), len(rep.Notices))
	// Output:
	// peaks at [5] Hz, 8 fallbacks
}
