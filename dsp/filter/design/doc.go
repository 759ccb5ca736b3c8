// Package design turns a filter request into biquad sections.
//
// A request names a [Kind] (lowpass, highpass or bandpass), one or two corner
// frequencies, a pole count and a [Prototype]. [Designer] synthesizes the
// cascade with the Butterworth designers of design/pass and runs it over a
// sample series either causally or forward-backward.
//
// Only the Butterworth prototype is synthesized. Requests for Bessel and
// Chebyshev prototypes fail with [ErrUnimplementedPrototype].
package design
