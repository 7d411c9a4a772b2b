package resample_test

import (
	"fmt"

	"github.com/cwbudde/algo-resample/dsp/resample"
	"github.com/cwbudde/algo-resample/dsp/signal"
)

func ExampleResample() {
	in := []float64{0, 1, 0, -1, 0, 1, 0, -1}
	out, _ := resample.Resample(in, 16)
	fmt.Printf("in=%d out=%d\n", len(in), len(out))
	// Output:
	// in=8 out=16
}

func ExampleToRate() {
	s, _ := signal.Sine(5, 1, 100, 1)
	out, _ := resample.ToRate(s, 50)
	fmt.Printf("samples=%d rate=%.0f duration=%.1fs\n", out.Len(), out.Rate, out.Duration())
	// Output:
	// samples=50 rate=50 duration=1.0s
}

func ExampleNewLength() {
	m, _ := resample.NewLength(441, 44100, 48000)
	fmt.Println(m)
	// Output:
	// 480
}
