package interp

import (
	"math"
)

// interpolator evaluates one scalar sample sequence at fractional positions.
// It owns a private copy of the samples, the resolved clip function, and the
// precomputed cubic tangent factor; nothing is mutated after construction,
// so a single interpolator may be shared across concurrent callers.
type interpolator struct {
	data          []float64 // defensive copy of the caller's samples
	n             int       // cached len(data)
	clip          clipFunc  // resolved once from the clippers table
	mode          ClipMode  // retained for far-position folding
	method        Method
	tangentFactor float64 // 1 - CubicTension, cubic only
}

// newInterpolator copies samples and resolves the clip mode. The caller has
// already checked the method, length and scale fields; the clip lookup is
// kept here so every interpolator owns exactly one resolved clip function.
func newInterpolator(samples []float64, o Options) *interpolator {
	data := make([]float64, len(samples))
	copy(data, samples)

	return &interpolator{
		data:          data,
		n:             len(data),
		clip:          clippers[o.Clip],
		mode:          o.Clip,
		method:        o.Method,
		tangentFactor: 1 - o.CubicTension,
	}
}

// sample reads index i under the resolved clip policy: raw element when in
// range, remapped element when the clipper folds i back in, literal 0 when
// the Zero clip reports the index outside the signal's support.
func (ip *interpolator) sample(i int) float64 {
	if i >= 0 && i < ip.n {
		return ip.data[i]
	}
	j, ok := ip.clip(i, ip.n)
	if !ok {
		return 0
	}

	return ip.data[j]
}

// tangent computes the damped Catmull-Rom tangent at integer index k:
// tangentFactor * (sample(k+1) - sample(k-1)) / 2. Both neighbor reads route
// through the clipper, so e.g. Mirror clipping yields smooth reflected
// derivatives at the edges.
func (ip *interpolator) tangent(k int) float64 {
	return ip.tangentFactor * (ip.sample(k+1) - ip.sample(k-1)) / 2
}

// maxSafeIndex bounds the positions converted from float64 to int inside
// at. Converting a float beyond the int range is implementation-defined,
// so positions past this bound are first folded to an equivalent in-range
// position while still in float64. The headroom below 2^31 covers rounding
// up plus the two extra neighbor reads of the cubic window, keeping every
// derived index inside a 32-bit int as well.
const maxSafeIndex = 1<<31 - 8

// fold maps a far-out position to one inside the conversion-safe window
// with the identical value under the resolved clip mode. Periodic and
// Mirror signals repeat with period n and 2*(n-1); Clamp and Zero are
// constant beyond the widest window any method's sample reads can span,
// so an integer representative of the constant region is enough.
func (ip *interpolator) fold(t float64) float64 {
	n := float64(ip.n)
	switch ip.mode {
	case Periodic:
		t = math.Mod(t, n)
		if t < 0 {
			t += n
		}

		return t
	case Mirror:
		period := 2 * (n - 1)
		t = math.Mod(t, period)
		if t < 0 {
			t += period
		}

		return t
	case Zero:
		if t < 0 {
			return -(n + 2)
		}

		return 2*n + 2
	default: // Clamp
		if t < 0 {
			return -2
		}

		return n + 1
	}
}

// at evaluates the sequence at position t. Total for any finite t: every
// index the three methods can produce is folded by the clip policy, so no
// bounds failure exists at call time.
func (ip *interpolator) at(t float64) float64 {
	if t <= -maxSafeIndex || t >= maxSafeIndex {
		t = ip.fold(t)
	}

	switch ip.method {
	case Nearest:
		// math.Round rounds half away from zero.
		return ip.sample(int(math.Round(t)))

	case Linear:
		k := math.Floor(t)
		frac := t - k
		i := int(k)
		if frac == 0 {
			return ip.sample(i)
		}

		return (1-frac)*ip.sample(i) + frac*ip.sample(i+1)

	default: // Cubic
		k := math.Floor(t)
		frac := t - k
		i := int(k)

		p0 := ip.sample(i)
		p1 := ip.sample(i + 1)
		m0 := ip.tangent(i)
		m1 := ip.tangent(i + 1)

		frac2 := frac * frac
		frac3 := frac * frac2

		// Hermite basis: h00*p0 + h10*m0 + h01*p1 + h11*m1.
		return (2*frac3-3*frac2+1)*p0 +
			(frac3-2*frac2+frac)*m0 +
			(-2*frac3+3*frac2)*p1 +
			(frac3-frac2)*m1
	}
}
