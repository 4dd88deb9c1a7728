package transform

import (
	"math"

	"github.com/benoitkugler/affinetransform/matrix"
)

// Degrees is the decomposed form used by font editors, where angles are
// in degrees and the X skew is counted clockwise : a positive
// SkewAngleX moves the top of a glyph to the left.
//
// It is only a boundary adapter : use [Degrees.Radians] to
// convert to the canonical form.
type Degrees struct {
	X, Y                  fl
	RotationAngle         fl
	ScaleX, ScaleY        fl
	SkewAngleX            fl
	SkewAngleY            fl
	TransformationCenterX fl
	TransformationCenterY fl
}

func toRadians(deg fl) fl { return deg * math.Pi / 180 }

func toDegrees(rad fl) fl { return rad * 180 / math.Pi }

// Radians returns the canonical form of `d`.
func (d Degrees) Radians() Decomposed {
	return Decomposed{
		X:                     d.X,
		Y:                     d.Y,
		RotationAngle:         toRadians(d.RotationAngle),
		ScaleX:                d.ScaleX,
		ScaleY:                d.ScaleY,
		SkewAngleX:            -toRadians(d.SkewAngleX),
		SkewAngleY:            toRadians(d.SkewAngleY),
		TransformationCenterX: d.TransformationCenterX,
		TransformationCenterY: d.TransformationCenterY,
	}
}

// Degrees is the inverse of [Degrees.Radians].
func (d Decomposed) Degrees() Degrees {
	return Degrees{
		X:                     d.X,
		Y:                     d.Y,
		RotationAngle:         toDegrees(d.RotationAngle),
		ScaleX:                d.ScaleX,
		ScaleY:                d.ScaleY,
		SkewAngleX:            -toDegrees(d.SkewAngleX),
		SkewAngleY:            toDegrees(d.SkewAngleY),
		TransformationCenterX: d.TransformationCenterX,
		TransformationCenterY: d.TransformationCenterY,
	}
}

// ComposeDegrees returns Compose(d.Radians()).
func ComposeDegrees(d Degrees) matrix.Transform { return Compose(d.Radians()) }

// DecomposeDegrees returns Decompose(m).Degrees().
func DecomposeDegrees(m matrix.Transform) Degrees { return Decompose(m).Degrees() }

// IsClose returns true if each field of `d` and `other`
// differ by at most `tol`.
func (d Degrees) IsClose(other Degrees, tol fl) bool {
	return Decomposed(d).IsClose(Decomposed(other), tol)
}

func (d Degrees) String() string { return Decomposed(d).String() }
