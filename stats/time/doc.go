// Package time computes time-domain statistics of sample blocks: mean,
// energy, power, RMS and peak level. The accuracy analyzer uses it to reduce
// an error vector to scalar metrics.
package time
