package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlerp/interp"
)

// TestDefaultOptions verifies the documented defaults: cubic method, zero
// tension, clamp clipping, rescaling disabled.
func TestDefaultOptions(t *testing.T) {
	o := interp.DefaultOptions()
	assert.Equal(t, interp.Cubic, o.Method, "default method must be cubic")
	assert.Equal(t, interp.Clamp, o.Clip, "default clip must be clamp")
	assert.Zero(t, o.CubicTension, "default tension must be 0")
	assert.Zero(t, o.ScaleTo, "rescaling must be disabled by default")
	assert.Zero(t, o.Period, "alias must be unset by default")
}

// TestNewOptions_PeriodAlias verifies the two-phase normalization: Period
// fills ScaleTo only when ScaleTo is absent, and an explicit ScaleTo wins
// when both are present.
func TestNewOptions_PeriodAlias(t *testing.T) {
	o, err := interp.NewOptions(interp.WithPeriod(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, o.ScaleTo, "Period must fill an unset ScaleTo")

	o, err = interp.NewOptions(interp.WithScaleTo(5), interp.WithPeriod(2))
	require.NoError(t, err)
	assert.Equal(t, 5.0, o.ScaleTo, "explicit ScaleTo must take precedence over Period")
}

// TestNewOptions_TensionClamped verifies CubicTension is clamped into [0,1]
// rather than rejected.
func TestNewOptions_TensionClamped(t *testing.T) {
	o, err := interp.NewOptions(interp.WithCubicTension(5))
	require.NoError(t, err)
	assert.Equal(t, 1.0, o.CubicTension, "tension above 1 must clamp to 1")

	o, err = interp.NewOptions(interp.WithCubicTension(-3))
	require.NoError(t, err)
	assert.Equal(t, 0.0, o.CubicTension, "tension below 0 must clamp to 0")
}

// TestNewOptions_Invalid verifies that unknown enum values and negative
// scale fields surface as ErrInvalidConfiguration.
func TestNewOptions_Invalid(t *testing.T) {
	_, err := interp.NewOptions(interp.WithMethod(interp.Method(99)))
	assert.ErrorIs(t, err, interp.ErrInvalidConfiguration, "unknown method must error")

	_, err = interp.NewOptions(interp.WithClip(interp.ClipMode(99)))
	assert.ErrorIs(t, err, interp.ErrInvalidConfiguration, "unknown clip mode must error")

	_, err = interp.NewOptions(interp.WithScaleTo(-1))
	assert.ErrorIs(t, err, interp.ErrInvalidConfiguration, "negative ScaleTo must error")

	_, err = interp.NewOptions(interp.WithPeriod(-0.5))
	assert.ErrorIs(t, err, interp.ErrInvalidConfiguration, "negative Period must error")
}

// TestParseMethod covers the three symbolic method names and the failure
// path for unknown names.
func TestParseMethod(t *testing.T) {
	for name, want := range map[string]interp.Method{
		"nearest": interp.Nearest,
		"linear":  interp.Linear,
		"cubic":   interp.Cubic,
	} {
		got, err := interp.ParseMethod(name)
		require.NoError(t, err, "name %q must parse", name)
		assert.Equal(t, want, got, "name %q", name)
		assert.Equal(t, name, got.String(), "String must round-trip the name")
	}

	_, err := interp.ParseMethod("quadratic")
	assert.ErrorIs(t, err, interp.ErrInvalidConfiguration, "unknown name must error")
}

// TestParseClipMode covers the four symbolic clip-mode names and the
// failure path for unknown names.
func TestParseClipMode(t *testing.T) {
	for name, want := range map[string]interp.ClipMode{
		"clamp":    interp.Clamp,
		"zero":     interp.Zero,
		"periodic": interp.Periodic,
		"mirror":   interp.Mirror,
	} {
		got, err := interp.ParseClipMode(name)
		require.NoError(t, err, "name %q must parse", name)
		assert.Equal(t, want, got, "name %q", name)
		assert.Equal(t, name, got.String(), "String must round-trip the name")
	}

	_, err := interp.ParseClipMode("wrap")
	assert.ErrorIs(t, err, interp.ErrInvalidConfiguration, "unknown name must error")
}

// TestOptionsZeroValue verifies the zero value of Options selects every
// default, so DefaultOptions and Options{} build identical interpolants.
func TestOptionsZeroValue(t *testing.T) {
	def := interp.DefaultOptions()
	assert.Equal(t, interp.Options{}, def, "zero value must equal the documented defaults")
}
