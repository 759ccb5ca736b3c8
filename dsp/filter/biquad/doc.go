// Package biquad provides the second-order IIR runtime used by trace
// filtering.
//
// A [Section] runs one Direct Form II Transposed biquad defined by
// [Coefficients]. Higher orders cascade sections through a [Chain].
// [Forward] and [ZeroPhase] run a whole cascade over a sample series, the
// latter as a forward-backward pass that cancels the phase response.
//
// Coefficient design lives in dsp/filter/design.
package biquad
