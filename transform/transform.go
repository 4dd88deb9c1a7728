// Package transform converts between affine matrices and their
// decomposed form : translation, rotation, scale, skew and
// transformation center.
//
// Angles are expressed in radians. See [Degrees] for an adapter using
// the degree based convention of font editors.
//
// Many decomposed values produce the same matrix, so that [Decompose]
// is only a right inverse of [Compose] : it always returns a zero
// transformation center and a zero Y skew.
package transform

import (
	"math"

	"github.com/benoitkugler/affinetransform/matrix"
	"github.com/benoitkugler/affinetransform/utils"
)

type fl = utils.Fl

// Decomposed is a human editable form of an affine transformation.
type Decomposed struct {
	X, Y          fl // translation
	RotationAngle fl // in radians, from the positive X axis toward the positive Y axis
	ScaleX        fl
	ScaleY        fl
	SkewAngleX    fl // in radians
	SkewAngleY    fl // in radians

	// TransformationCenterX and TransformationCenterY is the pivot
	// for rotation, scale and skew, in the original coordinates.
	TransformationCenterX fl
	TransformationCenterY fl
}

// Identity returns the decomposed form of the identity matrix.
func Identity() Decomposed {
	return Decomposed{ScaleX: 1, ScaleY: 1}
}

// Compose builds the matrix of `d`, that is, starting from
// the identity :
//   - translate by the transformation center
//   - translate by (X, Y)
//   - rotate
//   - scale
//   - skew, so that the linear part is (1, tan(SkewAngleY), tan(SkewAngleX), 1)
//   - translate back by the opposite of the transformation center
//
// Each step is right multiplied, so that it applies to the coordinates
// before the previous ones.
func Compose(d Decomposed) matrix.Transform {
	t := matrix.Identity()
	t.Translate(d.TransformationCenterX, d.TransformationCenterY)
	t.Translate(d.X, d.Y)
	t.Rotate(d.RotationAngle)
	t.Scale(d.ScaleX, d.ScaleY)
	t.Skew(d.SkewAngleX, d.SkewAngleY)
	t.Translate(-d.TransformationCenterX, -d.TransformationCenterY)
	return t
}

// Matrix is a shortcut for Compose(d).
func (d Decomposed) Matrix() matrix.Transform { return Compose(d) }

// Decompose returns the canonical decomposition of `m`, so that
// Compose(Decompose(m)) == m, up to rounding errors.
//
// The linear part is factored as rotation * scale * skew (a QR like decomposition),
// preferring a zero Y skew. When the first column of the matrix is zero,
// the X skew is zero instead.
// The transformation center is always (0, 0), and the translation
// is (m.E, m.F).
//
// Degenerate matrices are accepted : large or non finite values
// are returned as is.
func Decompose(m matrix.Transform) Decomposed {
	a, b, c, d := m.A, m.B, m.C, m.D
	delta := m.Determinant()

	out := Decomposed{X: m.E, Y: m.F}

	// the branches must compare exactly against zero
	if a != 0 || b != 0 {
		r := math.Sqrt(a*a + b*b)
		if b > 0 {
			out.RotationAngle = math.Acos(a / r)
		} else {
			out.RotationAngle = -math.Acos(a / r)
		}
		out.ScaleX, out.ScaleY = r, delta/r
		out.SkewAngleX = math.Atan((a*c + b*d) / (r * r))
	} else if c != 0 || d != 0 {
		s := math.Sqrt(c*c + d*d)
		if d > 0 {
			out.RotationAngle = math.Pi/2 - math.Acos(-c/s)
		} else {
			out.RotationAngle = math.Pi/2 + math.Acos(-c/s)
		}
		out.ScaleX, out.ScaleY = delta/s, s
		out.SkewAngleY = math.Atan((a*c + b*d) / (s * s))
	}
	// else a = b = c = d = 0 : only the translation is kept

	return out
}

// IsClose returns true if each field of `d` and `other`
// differ by at most `tol`.
func (d Decomposed) IsClose(other Decomposed, tol fl) bool {
	a, b := d.Array(), other.Array()
	return utils.AllClose(a[:], b[:], tol)
}

// IsFinite returns false if one of the field is NaN or infinite,
// which happens when decomposing nearly singular matrices.
func (d Decomposed) IsFinite() bool {
	for _, v := range d.Array() {
		if !utils.IsFinite(v) {
			return false
		}
	}
	return true
}
