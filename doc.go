// Package lvlerp turns sampled signals — animation keyframes, sensor logs,
// lookup tables — into smooth continuous functions you can query at any
// real-valued position.
//
// 🚀 What is lvlerp?
//
//	A small, thread-safe library for 1-D interpolation of scalar and
//	vector-valued sample sequences:
//		• Methods: nearest-neighbor, linear, cubic Hermite (Catmull-Rom with tension)
//		• Clip modes: clamp, zero-pad, periodic wrap, mirror reflection
//		• Domain rescaling: map the input domain onto any period [0, S)
//		• Vector samples: fixed-width tuples interpolated per component
//		• Batch helpers: EvalAll over position slices, Resample to a new grid
//
// ✨ Why choose lvlerp?
//
//   - Beginner-friendly – one constructor, clear option names, typed enums
//   - Rock-solid guarantees – produced functions are total: no finite input
//     ever fails, all errors surface at construction
//   - Pure Go – no cgo, no hidden deps
//   - Concurrency-safe – everything is immutable after construction
//
// Everything lives in one subpackage:
//
//	interp/ — clip policies, the three interpolators, and the factory
//
// Quick ASCII example:
//
//	    10 ┤     ·
//	       │   ╱   ╲
//	     0 ┼─·───────·──
//	       0    1    2
//
//	samples [0, 10, 0] under the default cubic method produce a smooth
//	bump passing exactly through all three points.
//
// Dive into README.md for full examples and the feature matrix.
//
//	go get github.com/katalvlaran/lvlerp/interp
package lvlerp
