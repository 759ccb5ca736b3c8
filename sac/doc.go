// Package sac models, reads, and writes SAC (Seismic Analysis Code) trace
// records.
//
// A [Trace] couples a fixed-schema [Header] with an evenly sampled amplitude
// sequence. The header is grouped into the four field kinds of the on-disk
// layout (float, int, bool, text) and addressed through typed keys:
//
//	tr, err := sac.New(0.01, 1000)
//	_ = tr.SetText(sac.Kstnm, "ANMO")
//	_ = tr.SetFloat(sac.Stla, 34.95) // recomputes az/baz/gcarc when all coordinates are set
//
// Derived header fields (e, depmin, depmax, depmen, npts) are owned by the
// trace and kept in sync with the samples by [Trace.Refresh]. They cannot be
// assigned directly.
//
// # Codec
//
// [Decode] detects the byte order from the version tag (nvhdr == 6) and swaps
// as needed. [Encode] writes big-endian unless told otherwise:
//
//	tr, err := sac.ReadFile("ANMO.BHZ.sac")
//	buf := sac.Encode(tr, sac.WithByteOrder(binary.LittleEndian))
//
// # Errors
//
// All failures wrap one of [ErrFormat], [ErrEndianMismatch],
// [ErrInvalidRange], or [ErrValidation] and can be matched with errors.Is.
// Storage errors are passed through unchanged.
package sac
