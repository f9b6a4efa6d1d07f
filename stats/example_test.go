package stats_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelab/stats"
)

func ExampleCalculate() {
	s := stats.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f zc=%d\n", s.RMS, s.ZeroCrossings)

	// Output:
	// rms=1.0 zc=3
}
