package resample

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-resample/dsp/core"
	"github.com/cwbudde/algo-resample/dsp/signal"
)

type config struct {
	backend Backend
}

// Option configures the resampler.
type Option func(*config)

// WithBackend selects the FFT implementation. The default is BackendAuto.
func WithBackend(b Backend) Option {
	return func(cfg *config) {
		cfg.backend = b
	}
}

func defaultConfig() config {
	return config{backend: BackendAuto}
}

// Resampler converts sequences of a fixed input length to a fixed output
// length. FFT plans and scratch buffers are reused between calls, so a
// Resampler is not safe for concurrent use.
type Resampler struct {
	inLen  int
	outLen int

	fwd transform
	inv transform

	spectrum []complex128
	resized  []complex128

	maxImag float64
	lost    float64
}

// New creates a resampler mapping inLen samples to outLen samples.
func New(inLen, outLen int, opts ...Option) (*Resampler, error) {
	if inLen < 1 {
		return nil, core.InvalidArgument("resample", "input length must be >= 1: %d", inLen)
	}

	if outLen < 1 {
		return nil, core.InvalidArgument("resample", "target length must be >= 1: %d", outLen)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fwd, err := newTransform(inLen, cfg.backend)
	if err != nil {
		return nil, err
	}

	inv, err := newTransform(outLen, cfg.backend)
	if err != nil {
		return nil, err
	}

	return &Resampler{
		inLen:    inLen,
		outLen:   outLen,
		fwd:      fwd,
		inv:      inv,
		spectrum: make([]complex128, inLen),
		resized:  make([]complex128, outLen),
	}, nil
}

// Process resamples input, which must have exactly InputLen samples, and
// returns a new slice of OutputLen samples.
func (r *Resampler) Process(input []float64) ([]float64, error) {
	if len(input) != r.inLen {
		return nil, core.InvalidArgument("resample", "input has %d samples, resampler expects %d", len(input), r.inLen)
	}

	if i := core.FirstNonFinite(input); i >= 0 {
		return nil, core.InvalidArgument("resample", "sample %d is not finite: %v", i, input[i])
	}

	for i, v := range input {
		r.spectrum[i] = complex(v, 0)
	}

	err := r.fwd.forward(r.spectrum, r.spectrum)
	if err != nil {
		return nil, fmt.Errorf("resample: forward FFT failed: %w", err)
	}

	r.lost = lostEnergy(r.spectrum, r.outLen)
	resizeSpectrum(r.resized, r.spectrum)

	err = r.inv.inverse(r.resized, r.resized)
	if err != nil {
		return nil, fmt.Errorf("resample: inverse FFT failed: %w", err)
	}

	scale := float64(r.outLen) / float64(r.inLen)
	out := make([]float64, r.outLen)
	r.maxImag = 0

	for i, c := range r.resized {
		out[i] = real(c) * scale
		if im := math.Abs(imag(c) * scale); im > r.maxImag {
			r.maxImag = im
		}
	}

	return out, nil
}

// InputLen returns the expected input length.
func (r *Resampler) InputLen() int { return r.inLen }

// OutputLen returns the produced output length.
func (r *Resampler) OutputLen() int { return r.outLen }

// Backends reports the FFT implementations used for the forward (input
// length) and inverse (output length) transforms.
func (r *Resampler) Backends() (forward, inverse Backend) {
	return r.fwd.backend(), r.inv.backend()
}

// MaxImag returns the largest magnitude of the discarded imaginary part in
// the last Process call. For real input it is at rounding-noise level.
func (r *Resampler) MaxImag() float64 { return r.maxImag }

// LostEnergy returns the fraction of input spectral energy above the new
// Nyquist frequency that the last Process call discarded. It is zero for
// upsampling and for input already band-limited to the target rate.
func (r *Resampler) LostEnergy() float64 { return r.lost }

// Resample converts samples to exactly newLength samples as a one-shot helper.
func Resample(samples []float64, newLength int, opts ...Option) ([]float64, error) {
	if len(samples) == 0 {
		return nil, core.InvalidArgument("resample", "input must not be empty")
	}

	r, err := New(len(samples), newLength, opts...)
	if err != nil {
		return nil, err
	}

	return r.Process(samples)
}

// Signal resamples s to newLength samples. The result starts at s.Start and
// spans the same duration, so its rate is newLength*s.Rate/s.Len(). That
// rate can differ from a nominal target rate whenever the length was rounded.
func Signal(s signal.Signal, newLength int, opts ...Option) (signal.Signal, error) {
	if err := s.Validate(); err != nil {
		return signal.Signal{}, fmt.Errorf("resample: %w", err)
	}

	out, err := Resample(s.Samples, newLength, opts...)
	if err != nil {
		return signal.Signal{}, err
	}

	return signal.Signal{
		Samples: out,
		Rate:    float64(newLength) * s.Rate / float64(s.Len()),
		Start:   s.Start,
	}, nil
}

// ToRate resamples s to the length NewLength(s.Len(), s.Rate, rate).
func ToRate(s signal.Signal, rate float64, opts ...Option) (signal.Signal, error) {
	if err := s.Validate(); err != nil {
		return signal.Signal{}, fmt.Errorf("resample: %w", err)
	}

	m, err := NewLength(s.Len(), s.Rate, rate)
	if err != nil {
		return signal.Signal{}, err
	}

	return Signal(s, m, opts...)
}

// NewLength returns round(n*toRate/fromRate), the sample count that keeps
// the duration of n samples at fromRate when converted to toRate.
func NewLength(n int, fromRate, toRate float64) (int, error) {
	if n < 1 {
		return 0, core.InvalidArgument("resample", "input length must be >= 1: %d", n)
	}

	if !core.IsFinite(fromRate) || fromRate <= 0 {
		return 0, core.InvalidArgument("resample", "source rate must be finite and > 0: %v", fromRate)
	}

	if !core.IsFinite(toRate) || toRate <= 0 {
		return 0, core.InvalidArgument("resample", "target rate must be finite and > 0: %v", toRate)
	}

	m := math.Round(float64(n) * toRate / fromRate)
	if m < 1 {
		return 0, core.InvalidArgument("resample", "%d samples at %v Hz leave no samples at %v Hz", n, fromRate, toRate)
	}

	return int(m), nil
}
