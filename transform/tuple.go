package transform

import (
	"fmt"

	"github.com/benoitkugler/affinetransform/utils"
)

// Array returns the fields in declaration order :
// (x, y, rotation, scaleX, scaleY, skewX, skewY, centerX, centerY)
func (d Decomposed) Array() [9]fl {
	return [9]fl{
		d.X, d.Y, d.RotationAngle, d.ScaleX, d.ScaleY,
		d.SkewAngleX, d.SkewAngleY, d.TransformationCenterX, d.TransformationCenterY,
	}
}

// FromArray is the inverse of Array.
func FromArray(v [9]fl) Decomposed {
	return Decomposed{
		X: v[0], Y: v[1], RotationAngle: v[2], ScaleX: v[3], ScaleY: v[4],
		SkewAngleX: v[5], SkewAngleY: v[6], TransformationCenterX: v[7], TransformationCenterY: v[8],
	}
}

func (d Decomposed) String() string {
	arr := d.Array()
	return utils.FormatTuple(arr[:]...)
}

// Parse parses the nine fields tuple returned by Array,
// with the same syntax as matrix.Parse.
func Parse(s string) (Decomposed, error) {
	values, err := utils.ParseTuple(s, 9)
	if err != nil {
		return Decomposed{}, fmt.Errorf("invalid decomposed transform: %w", err)
	}
	var arr [9]fl
	copy(arr[:], values)
	return FromArray(arr), nil
}
