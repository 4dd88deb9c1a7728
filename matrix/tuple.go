package matrix

import (
	"fmt"

	"github.com/benoitkugler/affinetransform/utils"
	"golang.org/x/image/math/f64"
)

// Array returns the coefficients as the tuple (a, b, c, d, e, f).
func (T Transform) Array() [6]fl {
	return [6]fl{T.A, T.B, T.C, T.D, T.E, T.F}
}

// FromArray is the inverse of Array.
func FromArray(coeffs [6]fl) Transform {
	return Transform{coeffs[0], coeffs[1], coeffs[2], coeffs[3], coeffs[4], coeffs[5]}
}

// Aff3 returns the matrix using the row major layout
// of golang.org/x/image/math/f64, that is [a c e b d f].
func (T Transform) Aff3() f64.Aff3 {
	return f64.Aff3{T.A, T.C, T.E, T.B, T.D, T.F}
}

// FromAff3 is the inverse of Aff3.
func FromAff3(m f64.Aff3) Transform {
	return Transform{A: m[0], C: m[1], E: m[2], B: m[3], D: m[4], F: m[5]}
}

// String returns the tuple (a, b, c, d, e, f), rounded
// with 9 digits.
func (T Transform) String() string {
	return utils.FormatTuple(T.A, T.B, T.C, T.D, T.E, T.F)
}

// Parse parses the tuple (a, b, c, d, e, f).
// The parentheses are optional, and the numbers may be
// separated by commas or spaces.
func Parse(s string) (Transform, error) {
	values, err := utils.ParseTuple(s, 6)
	if err != nil {
		return Transform{}, fmt.Errorf("invalid matrix: %w", err)
	}
	var arr [6]fl
	copy(arr[:], values)
	return FromArray(arr), nil
}
