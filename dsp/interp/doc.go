// Package interp provides piecewise-linear interpolation of sampled data
// onto arbitrary query points.
//
// [Linear] mirrors the classic "interp" contract on top of gonum's
// piecewise-linear predictor: the sample points xp must be strictly
// increasing, and queries outside [xp[0], xp[len-1]] take the nearest
// boundary value (flat extrapolation). Flat extrapolation silently degrades
// accuracy at the edges; [Outside] counts how many queries are affected.
package interp
