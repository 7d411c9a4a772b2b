// Package signal defines the uniformly sampled Signal value type and
// deterministic generators for test material.
package signal

import (
	"math"

	"github.com/cwbudde/algo-resample/dsp/core"
)

// Signal is a finite, uniformly sampled, real-valued sequence.
//
// Sample i is located at Start + i/Rate seconds. A Signal is a value object:
// functions in this module never mutate Samples of a Signal they receive.
type Signal struct {
	Samples []float64
	Rate    float64 // samples per second
	Start   float64 // time of sample 0 in seconds
}

// New returns a Signal starting at t=0.
func New(samples []float64, rate float64) Signal {
	return Signal{Samples: samples, Rate: rate}
}

// Len returns the sample count.
func (s Signal) Len() int { return len(s.Samples) }

// Spacing returns the time between adjacent samples.
func (s Signal) Spacing() float64 { return 1 / s.Rate }

// Duration returns the physical duration covered by the samples, Len()/Rate.
func (s Signal) Duration() float64 { return float64(len(s.Samples)) / s.Rate }

// Time returns the timestamp of sample i.
func (s Signal) Time(i int) float64 {
	return s.Start + float64(i)/s.Rate
}

// End returns the timestamp of the last sample.
func (s Signal) End() float64 {
	return s.Time(len(s.Samples) - 1)
}

// Times returns the full time base.
func (s Signal) Times() []float64 {
	t := make([]float64, len(s.Samples))
	for i := range t {
		t[i] = s.Time(i)
	}

	return t
}

// Clone returns a deep copy of s.
func (s Signal) Clone() Signal {
	out := s
	out.Samples = append([]float64(nil), s.Samples...)

	return out
}

// Validate checks the structural invariants: at least one sample, all
// samples finite, a finite positive rate and a finite start time.
// The returned error wraps [core.ErrInvalidArgument].
func (s Signal) Validate() error {
	if len(s.Samples) == 0 {
		return core.InvalidArgument("signal", "no samples")
	}

	if !core.IsFinite(s.Rate) || s.Rate <= 0 {
		return core.InvalidArgument("signal", "sample rate must be finite and > 0: %v", s.Rate)
	}

	if !core.IsFinite(s.Start) {
		return core.InvalidArgument("signal", "start time must be finite: %v", s.Start)
	}

	if i := core.FirstNonFinite(s.Samples); i >= 0 {
		return core.InvalidArgument("signal", "sample %d is not finite: %v", i, s.Samples[i])
	}

	return nil
}

// SampleCount returns floor(rate*duration), the number of samples a signal
// of the given duration holds. Products such as 0.29*100 that land just
// below an integer are rounded up to it.
func SampleCount(rate, duration float64) int {
	const slack = 1e-9

	return int(math.Floor(rate*duration + slack))
}
