package time

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds time-domain statistics of a sample block.
//
//nolint:revive
type Stats struct {
	Length      int
	DC          float64 // mean
	DC_dB       float64
	RMS         float64
	RMS_dB      float64
	Peak        float64 // max |x|
	Peak_dB     float64
	CrestFactor float64 // peak / RMS (linear), 0 for a silent block
	Energy      float64 // sum of squares
	Power       float64 // energy / length, the mean square
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

func emptyStats() Stats {
	return Stats{
		DC_dB:   math.Inf(-1),
		RMS_dB:  math.Inf(-1),
		Peak_dB: math.Inf(-1),
	}
}

// Calculate computes the statistics of x. An empty block yields zero values
// and -Inf for every dB field.
//
// Energy and Power are plain sums of squares: magnitudes below about 1e-154
// square to zero and magnitudes above about 1e154 overflow to +Inf.
func Calculate(x []float64) Stats {
	n := len(x)
	if n == 0 {
		return emptyStats()
	}

	energy := vecmath.DotProduct(x, x)
	power := energy / float64(n)
	rms := math.Sqrt(power)
	peak := vecmath.MaxAbs(x)
	dc := DC(x)

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:      n,
		DC:          dc,
		DC_dB:       ampTodB(dc),
		RMS:         rms,
		RMS_dB:      ampTodB(rms),
		Peak:        peak,
		Peak_dB:     ampTodB(peak),
		CrestFactor: crest,
		Energy:      energy,
		Power:       power,
	}
}

// Power returns the mean square of x, 0 for an empty block.
func Power(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return vecmath.DotProduct(x, x) / float64(len(x))
}

// RMS returns the root-mean-square of x.
func RMS(x []float64) float64 {
	return math.Sqrt(Power(x))
}

// Peak returns the peak absolute amplitude of x.
func Peak(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return vecmath.MaxAbs(x)
}

// DC returns the mean (DC offset) of x.
func DC(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	// Kahan summation.
	var sum, c float64
	for _, v := range x {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(x))
}
