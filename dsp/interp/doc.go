// Package interp fits interpolating splines through uniformly sampled
// series and evaluates them on a new time grid.
//
// [QuadraticFitter] solves for the coefficients of a quadratic B-spline
// whose value at every input sample equals the sample, with linearly
// extrapolated end coefficients. Linear series are reproduced exactly.
package interp
