package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-wavelab/internal/testutil"
)

func BenchmarkMagnitude(b *testing.B) {
	sizes := []int{1024, 4096, 16384}
	for _, n := range sizes {
		samples := testutil.DeterministicSine(1000, 48000, 1, n)
		a := NewAnalyzer(WithSampleRate(48000), WithFFTSize(n))

		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				if _, _, err := a.Magnitude(samples); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	buf := [20]byte{}
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
