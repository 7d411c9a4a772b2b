package accuracy

import (
	"fmt"

	"github.com/cwbudde/algo-resample/dsp/core"
	"github.com/cwbudde/algo-resample/dsp/resample"
	"github.com/cwbudde/algo-resample/dsp/signal"
)

// Point is the outcome of one target rate in a [Sweep].
type Point struct {
	TargetRate float64 // nominal rate requested
	Length     int     // round(N * TargetRate / Rate)
	ActualRate float64 // Length / duration; differs from TargetRate after rounding
	LostEnergy float64 // spectral energy fraction removed by the conversion
	Report     Report
}

type sweepConfig struct {
	reconstruct bool
	opts        []resample.Option
}

// SweepOption configures [Sweep].
type SweepOption func(*sweepConfig)

// WithReconstruction resamples every converted signal back to the original
// length before comparing. The comparison then measures only the spectral
// loss of the conversion, without linear-interpolation error.
func WithReconstruction(enabled bool) SweepOption {
	return func(cfg *sweepConfig) {
		cfg.reconstruct = enabled
	}
}

// WithResampleOptions forwards options to every resampling call.
func WithResampleOptions(opts ...resample.Option) SweepOption {
	return func(cfg *sweepConfig) {
		cfg.opts = append(cfg.opts, opts...)
	}
}

// Sweep resamples original to each of rates and analyzes the result.
func Sweep(original signal.Signal, rates []float64, opts ...SweepOption) ([]Point, error) {
	if err := original.Validate(); err != nil {
		return nil, fmt.Errorf("accuracy: %w", err)
	}

	var cfg sweepConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	points := make([]Point, 0, len(rates))

	for _, rate := range rates {
		p, err := sweepPoint(original, rate, cfg)
		if err != nil {
			return nil, fmt.Errorf("accuracy: rate %g: %w", rate, err)
		}

		points = append(points, p)
	}

	return points, nil
}

func sweepPoint(original signal.Signal, rate float64, cfg sweepConfig) (Point, error) {
	m, err := resample.NewLength(original.Len(), original.Rate, rate)
	if err != nil {
		return Point{}, err
	}

	r, err := resample.New(original.Len(), m, cfg.opts...)
	if err != nil {
		return Point{}, err
	}

	out, err := r.Process(original.Samples)
	if err != nil {
		return Point{}, err
	}

	converted := signal.Signal{
		Samples: out,
		Rate:    float64(m) * original.Rate / float64(original.Len()),
		Start:   original.Start,
	}

	compared := converted
	if cfg.reconstruct {
		compared, err = resample.Signal(converted, original.Len(), cfg.opts...)
		if err != nil {
			return Point{}, err
		}
		// Same length and duration as the original; snap the rate so both
		// share one time base.
		if core.NearlyEqual(compared.Rate, original.Rate, 1e-12) {
			compared.Rate = original.Rate
		}
	}

	report, err := Analyze(original, compared)
	if err != nil {
		return Point{}, err
	}

	return Point{
		TargetRate: rate,
		Length:     m,
		ActualRate: converted.Rate,
		LostEnergy: r.LostEnergy(),
		Report:     report,
	}, nil
}
