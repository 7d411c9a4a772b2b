package interp

import (
	"fmt"

	gointerp "gonum.org/v1/gonum/interp"

	"github.com/cwbudde/algo-resample/dsp/core"
)

// Linear evaluates the piecewise-linear function through (xp[i], fp[i]) at
// every point of xq. Queries left of xp[0] return fp[0]; queries right of the
// last sample point return the last value. A query that hits a sample point
// exactly returns that sample unchanged.
//
// xp must be strictly increasing. A single sample point yields a constant.
func Linear(xq, xp, fp []float64) ([]float64, error) {
	if len(xp) == 0 {
		return nil, core.InvalidArgument("interp", "no sample points")
	}

	if len(xp) != len(fp) {
		return nil, core.InvalidArgument("interp", "len(xp)=%d != len(fp)=%d", len(xp), len(fp))
	}

	if i := core.FirstNonFinite(xp); i >= 0 {
		return nil, core.InvalidArgument("interp", "sample point %d is not finite", i)
	}

	for i := 1; i < len(xp); i++ {
		if xp[i] <= xp[i-1] {
			return nil, core.InvalidArgument("interp", "sample points must be strictly increasing at %d", i)
		}
	}

	if i := core.FirstNonFinite(xq); i >= 0 {
		return nil, core.InvalidArgument("interp", "query point %d is not finite", i)
	}

	p, err := fit(xp, fp)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xq))
	for i, x := range xq {
		out[i] = p.Predict(x)
	}

	return out, nil
}

// fit returns a gonum predictor for the nodes. gonum reports malformed
// nodes by panicking; those panics come back as ErrInvalidArgument.
func fit(xp, fp []float64) (p gointerp.Predictor, err error) {
	if len(xp) == 1 {
		return gointerp.Constant(fp[0]), nil
	}

	defer func() {
		if r := recover(); r != nil {
			p, err = nil, core.InvalidArgument("interp", "%v", r)
		}
	}()

	var pl gointerp.PiecewiseLinear
	if err := pl.Fit(xp, fp); err != nil {
		return nil, fmt.Errorf("interp: %w", err)
	}

	return pl, nil
}

// Outside returns how many query points lie strictly outside [lo, hi] and
// are therefore served by flat extrapolation.
func Outside(xq []float64, lo, hi float64) int {
	n := 0
	for _, x := range xq {
		if x < lo || x > hi {
			n++
		}
	}

	return n
}
