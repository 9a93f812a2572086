package interp_test

import (
	"testing"

	"github.com/katalvlaran/lvlerp/interp"
)

// benchmarkFunc builds an interpolant over n predictable samples and sweeps
// it across the domain. It resets the timer before entering the loop and
// fails on unexpected construction errors.
func benchmarkFunc(b *testing.B, n int, opts ...interp.Option) {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i % 17) // repeating sawtooth, cheap to generate
	}

	f, err := interp.New(samples, opts...)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	span := float64(n - 1)
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_ = f(float64(i%1000) / 1000 * span)
	}
}

// BenchmarkNearest measures nearest-neighbor lookup on a 1k-sample signal.
func BenchmarkNearest(b *testing.B) {
	benchmarkFunc(b, 1000, interp.WithMethod(interp.Nearest))
}

// BenchmarkLinear measures linear blending on a 1k-sample signal.
func BenchmarkLinear(b *testing.B) {
	benchmarkFunc(b, 1000, interp.WithMethod(interp.Linear))
}

// BenchmarkCubic measures the Hermite spline on a 1k-sample signal.
func BenchmarkCubic(b *testing.B) {
	benchmarkFunc(b, 1000, interp.WithMethod(interp.Cubic))
}

// BenchmarkCubic_Mirror measures the spline with the most expensive clip
// mode, where every out-of-range read folds through the reflection.
func BenchmarkCubic_Mirror(b *testing.B) {
	benchmarkFunc(b, 1000, interp.WithClip(interp.Mirror))
}

// BenchmarkCubic_Scaled measures the extra indirection of a domain-scaling
// wrapper around the spline, sweeping t across the rescaled domain [0,1).
func BenchmarkCubic_Scaled(b *testing.B) {
	samples := make([]float64, 1000)
	for i := range samples {
		samples[i] = float64(i % 17)
	}
	f, err := interp.New(samples, interp.WithScaleTo(1))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f(float64(i%1000) / 1000)
	}
}

// BenchmarkVector_Width3 measures a width-3 tuple signal: three scalar
// interpolators plus one result allocation per call.
func BenchmarkVector_Width3(b *testing.B) {
	samples := make([][]float64, 1000)
	for i := range samples {
		samples[i] = []float64{float64(i), float64(i % 17), float64(i % 5)}
	}
	f, err := interp.NewVector(samples)
	if err != nil {
		b.Fatalf("NewVector failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f(float64(i % 999))
	}
}

// BenchmarkEvalAll measures batch evaluation of 1k positions into a reused
// output buffer.
func BenchmarkEvalAll(b *testing.B) {
	samples := make([]float64, 1000)
	for i := range samples {
		samples[i] = float64(i % 17)
	}
	f, err := interp.New(samples, interp.WithMethod(interp.Linear))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	xs := make([]float64, 1000)
	for i := range xs {
		xs[i] = float64(i) * 0.999
	}
	out := make([]float64, len(xs))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.EvalAll(xs, out)
	}
}
