// Package accuracy quantifies how closely a resampled signal follows the
// original it was derived from.
//
// [Analyze] maps the resampled signal onto the original time base with
// piecewise-linear interpolation, subtracts it from the original and reports
// the per-sample error and its mean square. Original timestamps outside the
// resampled time range take the nearest resampled value (flat
// extrapolation); [Report.Extrapolated] counts them because those samples
// usually dominate the error of a downsampled signal.
//
// [Sweep] repeats resample-then-analyze for a list of target rates, which
// shows how accuracy degrades once the target Nyquist frequency falls below
// the signal's bandwidth.
package accuracy
