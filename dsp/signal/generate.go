package signal

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-resample/dsp/core"
)

// Tone is one sinusoidal component of a multi-tone signal.
type Tone struct {
	FreqHz    float64
	Amplitude float64
	Phase     float64 // radians
}

func checkTiming(rate, duration float64) (int, error) {
	if !core.IsFinite(rate) || rate <= 0 {
		return 0, core.InvalidArgument("signal", "sample rate must be finite and > 0: %v", rate)
	}

	if !core.IsFinite(duration) || duration <= 0 {
		return 0, core.InvalidArgument("signal", "duration must be finite and > 0: %v", duration)
	}

	n := SampleCount(rate, duration)
	if n <= 0 {
		return 0, core.InvalidArgument("signal", "duration %v at %v Hz yields no samples", duration, rate)
	}

	return n, nil
}

// Sine generates amplitude*sin(2*pi*freqHz*t) for floor(rate*duration)
// samples starting at t=0.
func Sine(freqHz, amplitude, rate, duration float64) (Signal, error) {
	return Tones(rate, duration, Tone{FreqHz: freqHz, Amplitude: amplitude})
}

// Tones generates the sum of the given sinusoids. A signal built from tones
// whose frequencies lie below rate/2 is band-limited.
func Tones(rate, duration float64, tones ...Tone) (Signal, error) {
	n, err := checkTiming(rate, duration)
	if err != nil {
		return Signal{}, err
	}

	for _, tone := range tones {
		if !core.IsFinite(tone.FreqHz) || !core.IsFinite(tone.Amplitude) || !core.IsFinite(tone.Phase) {
			return Signal{}, core.InvalidArgument("signal", "tone parameters must be finite: %+v", tone)
		}
	}

	out := make([]float64, n)
	for _, tone := range tones {
		step := 2 * math.Pi * tone.FreqHz / rate
		for i := range out {
			out[i] += tone.Amplitude * math.Sin(step*float64(i)+tone.Phase)
		}
	}

	return New(out, rate), nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func WhiteNoise(seed int64, amplitude, rate, duration float64) (Signal, error) {
	n, err := checkTiming(rate, duration)
	if err != nil {
		return Signal{}, err
	}

	if !core.IsFinite(amplitude) || amplitude < 0 {
		return Signal{}, core.InvalidArgument("signal", "noise amplitude must be >= 0: %v", amplitude)
	}

	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return New(out, rate), nil
}
