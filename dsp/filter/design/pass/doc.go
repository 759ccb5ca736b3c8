// Package pass designs lowpass and highpass cascades as biquad sections.
//
// Even orders use order/2 RBJ sections with Butterworth Q values. Odd orders
// append a first-order bilinear section (B2 = A2 = 0).
package pass
