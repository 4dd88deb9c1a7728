package utils

import (
	"math"
)

// Fl is the floating point type used for matrix coefficients
// and decomposed parameters.
type Fl = float64

// Tolerance is the default absolute tolerance used
// when comparing transformations.
const Tolerance Fl = 1e-9

// RoundPrec rounds f with n digits precision
func RoundPrec(f Fl, n int) Fl {
	n10 := math.Pow10(n)
	v := f * n10
	if math.IsInf(v, 0) { // f is too large to have a fractional part
		return f
	}
	return math.Round(v) / n10
}

// Round rounds f with 9 digits precision
func Round(f Fl) Fl {
	return RoundPrec(f, 9)
}

// IsClose returns true if |a - b| <= tol.
// Two NaN are never close.
func IsClose(a, b, tol Fl) bool {
	if a == b { // handle infinities
		return true
	}
	return math.Abs(a-b) <= tol
}

// AllClose applies IsClose on each pair (a[i], b[i]).
// It panics if the slices have different lengths.
func AllClose(a, b []Fl, tol Fl) bool {
	if len(a) != len(b) {
		panic("utils.AllClose: length mismatch")
	}
	for i := range a {
		if !IsClose(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// IsFinite returns false for NaN and infinities.
func IsFinite(f Fl) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Hypot returns SQRT(a^2 + b^2)
func Hypot(a, b Fl) Fl {
	return math.Hypot(a, b)
}
