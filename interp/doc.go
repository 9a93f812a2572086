// Package interp turns a discrete sequence of samples into a continuous
// function of a real parameter, by interpolating between the samples.
//
// What:
//
//   - New / NewVector build a callable Func (or VectorFunc) from a slice of
//     scalar samples (or fixed-width sample tuples).
//   - NewInterpolant is the dynamic entry point: it inspects the element type
//     of the input and dispatches to the scalar or vector path.
//   - Three interpolation methods: Nearest, Linear and Cubic (a Catmull-Rom
//     style Hermite spline with tunable tension).
//   - Four clip modes define behavior outside the sample range: Clamp, Zero,
//     Periodic and Mirror. Every produced function is total — any finite t is
//     a valid argument, no call ever fails.
//   - Optional domain rescaling (ScaleTo / Period) maps the input domain onto
//     [0, ScaleTo) instead of raw sample indices.
//   - Resample re-renders a signal at m evenly spaced positions; EvalAll
//     evaluates a produced function over a whole slice of positions.
//
// Why:
//
//   - Animation keyframes: query a sparse track at arbitrary frame times.
//   - Sensor data and lookup tables: read between measured points.
//   - Audio / signal work: fractional-index access with periodic or mirrored
//     boundary behavior.
//
// Complexity:
//
//   - Construction: O(n) defensive copy (O(n·W) for width-W tuples).
//   - Every call: O(1) — nearest/linear touch at most 2 samples, cubic
//     touches 4, independent of sequence length.
//
// Options:
//
//   - Options.Method:       Cubic (default), Nearest or Linear.
//   - Options.CubicTension: tangent damping in [0,1]; 0 = full Catmull-Rom.
//   - Options.Clip:         Clamp (default), Zero, Periodic or Mirror.
//   - Options.ScaleTo:      rescale the input domain to [0, ScaleTo); 0 = off.
//   - Options.Period:       accepted alias for ScaleTo; ScaleTo wins when both
//     are set.
//
// Errors (sentinel):
//
//   - ErrInvalidConfiguration   — unrecognized method or clip mode, or a
//     negative ScaleTo/Period.
//   - ErrInsufficientSamples    — fewer than 2 samples provided.
//   - ErrUnsupportedElementType — NewInterpolant received samples whose
//     element type it cannot interpolate.
//
// All errors are construction-time; produced functions never fail and are
// safe for concurrent use (all captured state is immutable after build).
package interp
