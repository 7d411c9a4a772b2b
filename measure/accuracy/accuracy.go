package accuracy

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-resample/dsp/core"
	"github.com/cwbudde/algo-resample/dsp/interp"
	"github.com/cwbudde/algo-resample/dsp/signal"
	timestats "github.com/cwbudde/algo-resample/stats/time"
)

// Report holds the aligned comparison of an original and a resampled signal.
// All slices have the length of the original signal and share its time base.
// A Report is never modified after Analyze returns it.
//
// MSE and SNR_dB are computed from plain float64 squares. Errors smaller in
// magnitude than about 1e-154 square to zero, so MSE can be 0 while Error
// holds non-zero entries; MaxAbsError still reports them. Errors larger than
// about 1e154 overflow MSE to +Inf.
//
//nolint:revive
type Report struct {
	Interpolated []float64 // resampled signal evaluated at the original timestamps
	Error        []float64 // original - Interpolated
	MSE          float64   // mean(Error^2)
	RMSE         float64
	MaxAbsError  float64
	SNR_dB       float64 // original power over MSE; +Inf for a perfect match
	Extrapolated int     // original samples outside the resampled time range
}

// Analyze compares resampled against original on the original time base.
//
// Both signals must pass [signal.Signal.Validate] and their time ranges must
// overlap. Errors wrap [core.ErrInvalidArgument].
func Analyze(original, resampled signal.Signal) (Report, error) {
	if err := original.Validate(); err != nil {
		return Report{}, fmt.Errorf("accuracy: original: %w", err)
	}

	if err := resampled.Validate(); err != nil {
		return Report{}, fmt.Errorf("accuracy: resampled: %w", err)
	}

	if resampled.End() < original.Start || resampled.Start > original.End() {
		return Report{}, core.InvalidArgument("accuracy",
			"time ranges do not overlap: original [%g, %g], resampled [%g, %g]",
			original.Start, original.End(), resampled.Start, resampled.End())
	}

	tq := original.Times()
	tp := resampled.Times()

	interpolated, err := interp.Linear(tq, tp, resampled.Samples)
	if err != nil {
		return Report{}, fmt.Errorf("accuracy: %w", err)
	}

	errs := floats.SubTo(make([]float64, original.Len()), original.Samples, interpolated)
	es := timestats.Calculate(errs)

	return Report{
		Interpolated: interpolated,
		Error:        errs,
		MSE:          es.Power,
		RMSE:         es.RMS,
		MaxAbsError:  es.Peak,
		SNR_dB:       core.PowerRatioDB(timestats.Power(original.Samples), es.Power),
		Extrapolated: interp.Outside(tq, tp[0], tp[len(tp)-1]),
	}, nil
}
