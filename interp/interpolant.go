package interp

import (
	"fmt"
)

// Func is a produced scalar interpolant: a pure, total function from a real
// position t to the interpolated value. Safe for concurrent use.
type Func func(t float64) float64

// VectorFunc is a produced vector interpolant: it returns a fresh slice of
// exactly Width components at every call, preserving component order.
type VectorFunc func(t float64) []float64

// EvalAll evaluates f at every position in xs. When no output buffer is
// supplied one is allocated; otherwise out[0] is filled and returned.
func (f Func) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = f(x)
	}

	return out[0]
}

// EvalAll evaluates f at every position in xs, returning one component slice
// per position. When no output buffer is supplied one is allocated.
func (f VectorFunc) EvalAll(xs []float64, out ...[][]float64) [][]float64 {
	if len(out) == 0 {
		out = [][][]float64{make([][]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = f(x)
	}

	return out[0]
}

// New builds a scalar interpolant over samples.
//
// Construction validates everything up front (ErrInsufficientSamples,
// ErrInvalidConfiguration); the returned Func never fails, for any finite t.
//
// Example:
//
//	f, err := interp.New([]float64{0, 10, 0}, interp.WithClip(interp.Mirror))
//	if err != nil {
//	    // handle configuration error
//	}
//	v := f(0.5) // somewhere between 0 and 10
func New(samples []float64, opts ...Option) (Func, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	return newScalar(samples, o)
}

// NewVector builds a vector interpolant over fixed-width sample tuples.
// Each component is interpolated independently, exactly as the scalar path
// would interpolate that column in isolation.
func NewVector(samples [][]float64, opts ...Option) (VectorFunc, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	return newVector(samples, o)
}

// newScalar is the options-resolved scalar path shared by New,
// NewInterpolant and Resample.
func newScalar(samples []float64, o Options) (Func, error) {
	if len(samples) < minSamples {
		return nil, ErrInsufficientSamples
	}

	ip := newInterpolator(samples, o)
	f := Func(ip.at)

	if scale, ok := domainScale(ip.n, o); ok {
		inner := f
		f = func(t float64) float64 { return inner(t * scale) }
	}

	return f, nil
}

// newVector is the options-resolved vector path shared by NewVector and
// NewInterpolant. Tuple widths are validated strictly: a ragged sequence or
// a zero-width first tuple fails ErrUnsupportedElementType.
func newVector(samples [][]float64, o Options) (VectorFunc, error) {
	if len(samples) < minSamples {
		return nil, ErrInsufficientSamples
	}

	width := len(samples[0])
	if width == 0 {
		return nil, fmt.Errorf("interp: empty sample tuple: %w", ErrUnsupportedElementType)
	}
	for i, s := range samples {
		if len(s) != width {
			return nil, fmt.Errorf("interp: sample %d has width %d, want %d: %w",
				i, len(s), width, ErrUnsupportedElementType)
		}
	}

	// One scalar interpolator per component, each over its own column copy.
	cols := make([]*interpolator, width)
	for c := range cols {
		cols[c] = newInterpolator(column(samples, c), o)
	}

	f := VectorFunc(func(t float64) []float64 {
		out := make([]float64, width)
		for c, ip := range cols {
			out[c] = ip.at(t)
		}

		return out
	})

	if scale, ok := domainScale(len(samples), o); ok {
		inner := f
		f = func(t float64) []float64 { return inner(t * scale) }
	}

	return f, nil
}

// column projects component c across all sample tuples into its own scalar
// sequence, so each component can be interpolated independently.
func column(samples [][]float64, c int) []float64 {
	col := make([]float64, len(samples))
	for i, s := range samples {
		col[i] = s[c]
	}

	return col
}

// domainScale computes the input-domain multiplier for ScaleTo rescaling.
// The natural domain spans n under Periodic clipping (the signal wraps back
// to index 0, so the full array length is one period) and n-1 otherwise
// (the support ends at the last sample). Returns ok=false when no wrapper is
// needed — ScaleTo disabled, or the identity case ScaleTo==1 with base 1.
func domainScale(n int, o Options) (float64, bool) {
	if o.ScaleTo == 0 {
		return 1, false
	}

	base := float64(n - 1)
	if o.Clip == Periodic {
		base = float64(n)
	}
	if o.ScaleTo == 1 && base == 1 {
		return 1, false
	}

	return base / o.ScaleTo, true
}

// Interpolant is the result of the dynamic NewInterpolant entry point:
// either a scalar or a vector interpolant, decided by the element type of
// the input sequence.
type Interpolant struct {
	width  int        // components per sample; 1 for the scalar path
	scalar Func       // set iff the input was scalar
	vector VectorFunc // set iff the input was vector
}

// Width returns the number of components per produced value: 1 for scalar
// input, the tuple width for vector input.
func (ip *Interpolant) Width() int { return ip.width }

// IsScalar reports whether the interpolant was built over scalar samples.
func (ip *Interpolant) IsScalar() bool { return ip.scalar != nil }

// AsScalar returns the underlying scalar Func, ok=false for vector input.
func (ip *Interpolant) AsScalar() (Func, bool) { return ip.scalar, ip.scalar != nil }

// AsVector returns the underlying VectorFunc, ok=false for scalar input.
func (ip *Interpolant) AsVector() (VectorFunc, bool) { return ip.vector, ip.vector != nil }

// Eval evaluates the interpolant at t, returning a fresh Width-length slice
// regardless of the underlying shape (scalar results are wrapped).
func (ip *Interpolant) Eval(t float64) []float64 {
	if ip.scalar != nil {
		return []float64{ip.scalar(t)}
	}

	return ip.vector(t)
}

// NewInterpolant builds an interpolant from a dynamically typed sample
// sequence. The element type of the first sample decides the path: numeric
// elements take the scalar path, numeric tuples the vector path. Accepted
// static types are []float64, []float32, []int and their slice-of-slice
// forms, plus []any holding numbers or numeric tuples (the shape JSON
// decoding produces). Anything else fails ErrUnsupportedElementType.
func NewInterpolant(samples any, opts ...Option) (*Interpolant, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	switch s := samples.(type) {
	case []float64:
		return scalarInterpolant(s, o)
	case []float32:
		return scalarInterpolant(floats32(s), o)
	case []int:
		return scalarInterpolant(floatsInt(s), o)
	case [][]float64:
		return vectorInterpolant(s, o)
	case [][]float32:
		rows := make([][]float64, len(s))
		for i, row := range s {
			rows[i] = floats32(row)
		}

		return vectorInterpolant(rows, o)
	case [][]int:
		rows := make([][]float64, len(s))
		for i, row := range s {
			rows[i] = floatsInt(row)
		}

		return vectorInterpolant(rows, o)
	case []any:
		return anyInterpolant(s, o)
	case nil:
		return nil, ErrInsufficientSamples
	default:
		return nil, fmt.Errorf("interp: samples of type %T: %w", samples, ErrUnsupportedElementType)
	}
}

// scalarInterpolant wraps the scalar path in an Interpolant.
func scalarInterpolant(samples []float64, o Options) (*Interpolant, error) {
	f, err := newScalar(samples, o)
	if err != nil {
		return nil, err
	}

	return &Interpolant{width: 1, scalar: f}, nil
}

// vectorInterpolant wraps the vector path in an Interpolant.
func vectorInterpolant(samples [][]float64, o Options) (*Interpolant, error) {
	f, err := newVector(samples, o)
	if err != nil {
		return nil, err
	}

	return &Interpolant{width: len(samples[0]), vector: f}, nil
}

// anyInterpolant handles []any input: the first element decides between the
// scalar and vector paths, mirroring the dynamic dispatch contract.
func anyInterpolant(samples []any, o Options) (*Interpolant, error) {
	if len(samples) < minSamples {
		return nil, ErrInsufficientSamples
	}

	if _, ok := toNumber(samples[0]); ok {
		scalars := make([]float64, len(samples))
		for i, el := range samples {
			v, ok := toNumber(el)
			if !ok {
				return nil, fmt.Errorf("interp: sample %d of type %T: %w", i, el, ErrUnsupportedElementType)
			}
			scalars[i] = v
		}

		return scalarInterpolant(scalars, o)
	}

	rows := make([][]float64, len(samples))
	for i, el := range samples {
		row, ok := toTuple(el)
		if !ok {
			return nil, fmt.Errorf("interp: sample %d of type %T: %w", i, el, ErrUnsupportedElementType)
		}
		rows[i] = row
	}

	return vectorInterpolant(rows, o)
}

// toNumber coerces a dynamically typed scalar sample to float64.
func toNumber(el any) (float64, bool) {
	switch v := el.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// toTuple coerces a dynamically typed tuple sample to []float64.
func toTuple(el any) ([]float64, bool) {
	switch v := el.(type) {
	case []float64:
		out := make([]float64, len(v))
		copy(out, v)

		return out, true
	case []float32:
		return floats32(v), true
	case []int:
		return floatsInt(v), true
	case []any:
		out := make([]float64, len(v))
		for i, e := range v {
			n, ok := toNumber(e)
			if !ok {
				return nil, false
			}
			out[i] = n
		}

		return out, true
	default:
		return nil, false
	}
}

// floats32 widens a []float32 to []float64.
func floats32(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}

	return out
}

// floatsInt converts a []int to []float64.
func floatsInt(s []int) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}

	return out
}

// Resample re-renders samples at m evenly spaced positions across the
// signal's domain. Under Periodic clipping the m positions cover one full
// period [0, span) without duplicating the wrap point; otherwise they span
// the support inclusively, so the first and last outputs equal the first
// and last samples for any method. m must be at least 2.
func Resample(samples []float64, m int, opts ...Option) ([]float64, error) {
	if m < minSamples {
		return nil, fmt.Errorf("interp: resample count %d: %w", m, ErrInvalidConfiguration)
	}

	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}
	f, err := newScalar(samples, o)
	if err != nil {
		return nil, err
	}

	span := float64(len(samples) - 1)
	if o.Clip == Periodic {
		span = float64(len(samples))
	}
	if o.ScaleTo > 0 {
		span = o.ScaleTo
	}

	out := make([]float64, m)
	if o.Clip == Periodic {
		step := span / float64(m)
		for i := range out {
			out[i] = f(float64(i) * step)
		}
	} else {
		step := span / float64(m-1)
		for i := range out {
			out[i] = f(float64(i) * step)
		}
	}

	return out, nil
}
