// Package process implements in-place transforms of SAC traces.
//
// Every mutator ends by refreshing the derived header fields of the trace
// (e, depmin, depmax, depmen, npts), so header and samples stay consistent
// after each call. Transforms that need numerical collaborators reach them
// through narrow interfaces:
//
//   - [FilterDesigner]: filter coefficient design and application
//     (default: the Butterworth designer in dsp/filter/design)
//   - [SplineFitter]: degree-2 spline fitting for [Processor.Interpolate]
//     (default: the quadratic B-spline in dsp/interp)
//
// # Usage
//
// Package-level functions use a default [Processor] that logs through
// slog.Default():
//
//	err := process.Cut(tr, 10, 60)
//	err = process.Taper(tr, process.DefaultTaperWidth, window.TypeHann)
//	err = process.Filter(tr, process.Bandpass(0.5, 2).WithPasses(2))
//
// A configured Processor threads its own logger and collaborators:
//
//	p := process.New(process.WithLogger(logger))
//	err := p.TimeShift(tr, 1.5, false)
//
// # Collections and copies
//
// Each Processor mutator X has a collection form XAll, which applies X to
// every trace in index order, a copying form XCopy, which returns a modified
// deep copy and leaves its input untouched, and XAllCopy, which does both.
// Package-level functions cover the single-trace form only; [Each], [Copy]
// and [CopyAll] lift any [Op], including those, the same way.
//
// A failure inside a collection form stops processing. Traces before the
// failing index stay modified; there is no rollback.
package process
