package interp

// clipFunc maps an arbitrary integer index onto a sequence of length n
// (n ≥ 2). It returns the resolved in-bounds index and ok=true, or ok=false
// when the index falls outside the signal's support and the caller must
// substitute the literal value 0 (Zero clip only).
type clipFunc func(i, n int) (int, bool)

// clippers is the immutable clip-mode dispatch table, built once at package
// initialization. The mode is resolved through it exactly once per
// interpolator, at construction.
var clippers = map[ClipMode]clipFunc{
	Clamp:    clipClamp,
	Zero:     clipZero,
	Periodic: clipPeriodic,
	Mirror:   clipMirror,
}

// clipClamp pins i to the nearest endpoint: max(0, min(i, n-1)).
func clipClamp(i, n int) (int, bool) {
	if i < 0 {
		return 0, true
	}
	if i > n-1 {
		return n - 1, true
	}

	return i, true
}

// clipZero keeps in-range indices and reports ok=false for everything else,
// in effect padding the signal with zeros outside its support.
func clipZero(i, n int) (int, bool) {
	if i < 0 || i > n-1 {
		return 0, false
	}

	return i, true
}

// clipPeriodic wraps i modulo n into [0, n-1]. Go's % is a truncating
// remainder, so negative results are corrected by adding n — true
// mathematical modulo.
func clipPeriodic(i, n int) (int, bool) {
	i %= n
	if i < 0 {
		i += n
	}

	return i, true
}

// clipMirror reflects i at both ends of the sequence. The signal is treated
// as periodic with period 2*(n-1); any folded index beyond n-1 bounces back
// through period-i, so indices n, n+1, ... read as n-2, n-3, ...
func clipMirror(i, n int) (int, bool) {
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i > n-1 {
		i = period - i
	}

	return i, true
}
