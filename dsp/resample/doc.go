// Package resample converts a uniformly sampled signal to a new length (and
// therefore a new sample rate) by frequency-domain reconstruction.
//
// The input spectrum is truncated (downsampling) or zero-padded
// (upsampling) symmetrically around the Nyquist frequency, then transformed
// back and scaled by M/N. For even lengths the Nyquist bin is split or
// joined explicitly so the output stays real-valued and keeps its amplitude:
//
//	downsampling: Y[n/2] = X[n/2] + X[N-n/2]
//	upsampling:   Y[n/2] = Y[M-n/2] = X[n/2] / 2
//
// where n = min(M, N). Upsampling is ideal band-limited interpolation;
// downsampling is an ideal low-pass followed by decimation, so content
// between the new and the old Nyquist frequency is discarded, not aliased.
//
// The transform assumes the input is one period of a periodic signal, so
// discontinuities between the last and the first sample ring near the edges.
//
// Common workflows:
//   - Resample(samples, newLength) for raw sample slices
//   - Signal(sig, newLength) / ToRate(sig, rate) for [signal.Signal] values
//   - New(inLen, outLen) for repeated conversions with cached FFT plans
//
// Lengths of both input and output must be at least 1. A one-sample input
// resamples to a constant sequence.
package resample
