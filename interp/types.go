// Package interp defines core types, configuration options, and sentinel
// errors for the interp subpackage of github.com/katalvlaran/lvlerp.
package interp

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the interp constructors.
var (
	// ErrInvalidConfiguration indicates an unrecognized interpolation method
	// or clip mode, or a negative ScaleTo/Period value.
	ErrInvalidConfiguration = errors.New("interp: invalid configuration")

	// ErrInsufficientSamples indicates fewer than two samples were provided;
	// interpolation needs at least two points to be meaningful.
	ErrInsufficientSamples = errors.New("interp: at least 2 samples required")

	// ErrUnsupportedElementType indicates that NewInterpolant received a
	// sample sequence whose element type is neither a number nor a
	// fixed-width numeric tuple.
	ErrUnsupportedElementType = errors.New("interp: unsupported sample element type")
)

// minSamples is the smallest sequence length that can be interpolated.
// Mirror clipping reflects over a period of 2*(n-1), which degenerates at
// n == 1, so the bound is enforced for every mode.
const minSamples = 2

// Method selects the interpolation algorithm.
//
// The zero value is Cubic, the default method.
type Method int

const (
	// Cubic evaluates a Catmull-Rom style cubic Hermite spline whose
	// tangents can be damped via Options.CubicTension. Default.
	Cubic Method = iota

	// Nearest snaps t to the closest sample index (half away from zero).
	Nearest

	// Linear blends the two samples surrounding t proportionally.
	Linear
)

// methodNames maps each Method to its symbolic name. Built once, never
// mutated.
var methodNames = map[Method]string{
	Cubic:   "cubic",
	Nearest: "nearest",
	Linear:  "linear",
}

// String returns the symbolic name of the method ("cubic", "nearest",
// "linear"), or a %d-style placeholder for out-of-range values.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// valid reports whether m is one of the recognized methods.
func (m Method) valid() bool {
	_, ok := methodNames[m]

	return ok
}

// ParseMethod resolves a symbolic method name ("cubic", "nearest", "linear")
// to its Method value. Unknown names return ErrInvalidConfiguration.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("interp: unknown method %q: %w", name, ErrInvalidConfiguration)
}

// ClipMode selects out-of-range index behavior.
//
// The zero value is Clamp, the default mode.
type ClipMode int

const (
	// Clamp pins out-of-range indices to the nearest endpoint.
	Clamp ClipMode = iota

	// Zero pads the signal with zeros outside its support: any index
	// outside [0, n-1] reads as the literal value 0.
	Zero

	// Periodic wraps indices modulo the sequence length (true mathematical
	// modulo, so negative indices wrap backwards correctly).
	Periodic

	// Mirror reflects indices at both ends of the sequence, producing the
	// classic bounce pattern n-2, n-3, ... past the last sample.
	Mirror
)

// clipNames maps each ClipMode to its symbolic name. Built once, never
// mutated.
var clipNames = map[ClipMode]string{
	Clamp:    "clamp",
	Zero:     "zero",
	Periodic: "periodic",
	Mirror:   "mirror",
}

// String returns the symbolic name of the clip mode ("clamp", "zero",
// "periodic", "mirror"), or a %d-style placeholder for out-of-range values.
func (c ClipMode) String() string {
	if name, ok := clipNames[c]; ok {
		return name
	}

	return fmt.Sprintf("ClipMode(%d)", int(c))
}

// valid reports whether c is one of the recognized clip modes.
func (c ClipMode) valid() bool {
	_, ok := clipNames[c]

	return ok
}

// ParseClipMode resolves a symbolic clip-mode name ("clamp", "zero",
// "periodic", "mirror") to its ClipMode value. Unknown names return
// ErrInvalidConfiguration.
func ParseClipMode(name string) (ClipMode, error) {
	for c, n := range clipNames {
		if n == name {
			return c, nil
		}
	}

	return 0, fmt.Errorf("interp: unknown clip mode %q: %w", name, ErrInvalidConfiguration)
}

// Options configures interpolant construction.
//
// Method       – interpolation algorithm (default Cubic).
// CubicTension – cubic tangent damping; clamped into [0,1] at construction.
// Clip         – out-of-range index policy (default Clamp).
// ScaleTo      – rescale the input domain to [0, ScaleTo); 0 disables (default).
// Period       – alias for ScaleTo, resolved before defaults; if both are
// set, ScaleTo takes precedence.
//
// The zero value of Options is ready to use and selects every default.
type Options struct {
	Method       Method   // interpolation algorithm
	CubicTension float64  // cubic tangent damping, effective range [0,1]
	Clip         ClipMode // out-of-range index policy
	ScaleTo      float64  // rescaled domain length; 0 = no rescaling
	Period       float64  // alias for ScaleTo
}

// Option represents a functional option for interpolant construction.
type Option func(*Options)

// WithMethod selects the interpolation algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithCubicTension sets the cubic tangent damping factor. Values are clamped
// into [0,1] at construction: 0 keeps full Catmull-Rom tangents, 1 flattens
// them to zero. Only meaningful with Method == Cubic.
func WithCubicTension(tension float64) Option {
	return func(o *Options) {
		o.CubicTension = tension
	}
}

// WithClip selects the out-of-range index policy.
func WithClip(c ClipMode) Option {
	return func(o *Options) {
		o.Clip = c
	}
}

// WithScaleTo rescales the produced function's input domain to [0, scaleTo).
// A value of 0 disables rescaling. Negative values cause
// ErrInvalidConfiguration at construction.
func WithScaleTo(scaleTo float64) Option {
	return func(o *Options) {
		o.ScaleTo = scaleTo
	}
}

// WithPeriod sets the Period alias for ScaleTo. It only takes effect when
// ScaleTo itself is unset; when both are present, ScaleTo wins.
func WithPeriod(period float64) Option {
	return func(o *Options) {
		o.Period = period
	}
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use it as a starting point for field-level overrides, or pass
// functional Option setters to the constructors instead.
//
// Defaults:
//   - Method:       Cubic
//   - CubicTension: 0 (full Catmull-Rom tangents)
//   - Clip:         Clamp
//   - ScaleTo:      0 (no rescaling)
//   - Period:       0 (alias unset)
func DefaultOptions() Options {
	return Options{
		Method:       Cubic,
		CubicTension: 0,
		Clip:         Clamp,
		ScaleTo:      0,
		Period:       0,
	}
}

// NewOptions resolves option setters against the documented defaults and
// normalizes the result. Normalization is two-phase: first the Period alias
// fills ScaleTo (only when ScaleTo is unset), then CubicTension is clamped
// into [0,1]. Validation of enum fields happens here as well, so every
// constructor reports configuration mistakes the same way.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return normalizeOptions(o)
}

// normalizeOptions applies alias resolution, validation and clamping to an
// already-populated Options value. It is the single funnel both the
// struct-style and the functional-option entry points pass through.
func normalizeOptions(o Options) (Options, error) {
	// Phase 1: alias resolution. Period fills ScaleTo only when ScaleTo is
	// absent, so an explicit ScaleTo always takes precedence.
	if o.ScaleTo == 0 && o.Period != 0 {
		o.ScaleTo = o.Period
	}

	// Phase 2: validation against the recognized enum values and ranges.
	if !o.Method.valid() {
		return o, fmt.Errorf("interp: unknown method %v: %w", o.Method, ErrInvalidConfiguration)
	}
	if !o.Clip.valid() {
		return o, fmt.Errorf("interp: unknown clip mode %v: %w", o.Clip, ErrInvalidConfiguration)
	}
	if o.ScaleTo < 0 || o.Period < 0 {
		return o, fmt.Errorf("interp: ScaleTo/Period must be non-negative: %w", ErrInvalidConfiguration)
	}

	// CubicTension is clamped, not rejected: the effective range is [0,1].
	if o.CubicTension < 0 {
		o.CubicTension = 0
	} else if o.CubicTension > 1 {
		o.CubicTension = 1
	}

	return o, nil
}
