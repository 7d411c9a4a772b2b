package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// PeriodicTones sums unit-amplitude cosines at the given integer DFT bins of
// a length-n sequence, each with a distinct phase. The result is periodic in
// n and band-limited to the highest bin.
func PeriodicTones(n int, bins ...int) []float64 {
	out := make([]float64, n)
	for k, bin := range bins {
		phase := 0.7 * float64(k+1)
		step := 2 * math.Pi * float64(bin) / float64(n)
		for i := range out {
			out[i] += math.Cos(step*float64(i) + phase)
		}
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
