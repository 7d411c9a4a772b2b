package resample

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
)

// Backend selects the FFT implementation.
type Backend int

const (
	// BackendAuto uses algo-fft for power-of-two sizes and go-dsp otherwise.
	// If algo-fft cannot plan a power-of-two size, the plan error is dropped
	// and go-dsp is used instead; [Resampler.Backends] reports the choice.
	BackendAuto Backend = iota
	// BackendAlgoFFT forces algo-fft plans. Plan creation may fail for
	// sizes the library does not support.
	BackendAlgoFFT
	// BackendGoDSP forces the go-dsp transform, which accepts any size.
	BackendGoDSP
)

func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendAlgoFFT:
		return "algo-fft"
	case BackendGoDSP:
		return "go-dsp"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// transform computes a length-n DFT. Inverse is normalised by 1/n.
// dst and src may alias.
type transform interface {
	forward(dst, src []complex128) error
	inverse(dst, src []complex128) error
	backend() Backend
}

type algoTransform struct {
	plan *algofft.Plan[complex128]
}

func (a algoTransform) forward(dst, src []complex128) error { return a.plan.Forward(dst, src) }
func (a algoTransform) inverse(dst, src []complex128) error { return a.plan.Inverse(dst, src) }
func (a algoTransform) backend() Backend                    { return BackendAlgoFFT }

type goDSPTransform struct{}

func (goDSPTransform) forward(dst, src []complex128) error {
	copy(dst, fft.FFT(src))
	return nil
}

func (goDSPTransform) inverse(dst, src []complex128) error {
	copy(dst, fft.IFFT(src))
	return nil
}

func (goDSPTransform) backend() Backend { return BackendGoDSP }

func newTransform(n int, b Backend) (transform, error) {
	switch b {
	case BackendGoDSP:
		return goDSPTransform{}, nil
	case BackendAlgoFFT:
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("resample: failed to create FFT plan of size %d: %w", n, err)
		}

		return algoTransform{plan: plan}, nil
	case BackendAuto:
		if !isPowerOf2(n) || n < 2 {
			return goDSPTransform{}, nil
		}

		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return goDSPTransform{}, nil
		}

		return algoTransform{plan: plan}, nil
	default:
		return nil, fmt.Errorf("resample: unknown backend %v", b)
	}
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
