package transform

import (
	"math"
	"math/rand"
	"testing"

	"github.com/benoitkugler/affinetransform/matrix"
	"github.com/benoitkugler/affinetransform/utils"
)

const tol = utils.Tolerance

var testData = []struct {
	decomposed Decomposed
	composed   matrix.Transform
}{
	{
		Decomposed{0, 0, 0, 1, 1, 0, 0, 0, 0},
		matrix.New(1, 0, 0, 1, 0, 0),
	},
	{
		Decomposed{0, 0, -math.Pi, 1, 1, 0, 0, 0, 0},
		matrix.New(-1, 0, 0, -1, 0, 0),
	},
	{
		Decomposed{0, 0, math.Pi / 2, 1, 1, 0, 0, 0, 0},
		matrix.New(0, 1, -1, 0, 0, 0),
	},
	{
		Decomposed{0, 0, 0, 2, 1, 0, 0, 1, 0},
		matrix.New(2, 0, 0, 1, -1, 0),
	},
	{
		Decomposed{0, 0, 0, 2, 1, 0, 0, 0, 1},
		matrix.New(2, 0, 0, 1, 0, 0),
	},
	{
		Decomposed{0, 0, 0, 1, 2, 0, 0, 0, 1},
		matrix.New(1, 0, 0, 2, 0, -1),
	},
	{
		Decomposed{0, 0, 0, 1, 1, math.Pi / 4, 0, 0, 0},
		matrix.New(1, 0, 1, 1, 0, 0),
	},
	{
		Decomposed{0, 0, 0, 1, 1, 0, math.Pi / 4, 0, 0},
		matrix.New(1, 1, 0, 1, 0, 0),
	},
	{
		Decomposed{0, 0, math.Pi / 4, 1, 1, 0, 0, 0, 0},
		matrix.New(0.7071067811865476, 0.7071067811865475, -0.7071067811865475, 0.7071067811865476, 0, 0),
	},
	{
		Decomposed{0, 0, math.Pi / 4, 2, 1, 0, 0, 0, 0},
		matrix.New(1.4142135623730951, 1.414213562373095, -0.7071067811865475, 0.7071067811865476, 0, 0),
	},
	{
		Decomposed{100, 150, 0.1, 4, 3, 0.5, 0, 0, 0},
		matrix.New(3.980016661112103, 0.3993336665873126, 1.874792761644827, 3.203169472169176, 100, 150),
	},
}

// the decomposition is not unique : it prefers a zero Y skew
// and loses the transformation center
func isAmbiguous(d Decomposed) bool {
	return d.SkewAngleY != 0 || d.TransformationCenterX != 0 || d.TransformationCenterY != 0
}

func TestCompose(t *testing.T) {
	for _, tt := range testData {
		if got := Compose(tt.decomposed); !got.IsClose(tt.composed, tol) {
			t.Errorf("Compose(%v) = %v, want %v", tt.decomposed, got, tt.composed)
		}
		if got := tt.decomposed.Matrix(); !got.IsClose(tt.composed, tol) {
			t.Errorf("Matrix() = %v, want %v", got, tt.composed)
		}
	}
}

func TestDecompose(t *testing.T) {
	for _, tt := range testData {
		dec := Decompose(tt.composed)
		if isAmbiguous(tt.decomposed) {
			if dec.IsClose(tt.decomposed, tol) {
				t.Errorf("Decompose(%v) = %v, expected a different canonical form", tt.composed, dec)
			}
			if dec.SkewAngleY != 0 || dec.TransformationCenterX != 0 || dec.TransformationCenterY != 0 {
				t.Errorf("Decompose(%v) = %v, expected zero Y skew and center", tt.composed, dec)
			}
		} else if !dec.IsClose(tt.decomposed, tol) {
			t.Errorf("Decompose(%v) = %v, want %v", tt.composed, dec, tt.decomposed)
		}
	}
}

func TestComposeDecompose(t *testing.T) {
	for _, tt := range testData {
		t1 := Compose(tt.decomposed)
		dec := Decompose(t1)
		t2 := Compose(dec)
		if !t1.IsClose(t2, tol) {
			t.Errorf("round trip of %v: %v != %v", tt.decomposed, t1, t2)
		}
		if !t2.IsClose(tt.composed, tol) {
			t.Errorf("round trip of %v: %v != %v", tt.decomposed, t2, tt.composed)
		}
	}
}

func TestIdentity(t *testing.T) {
	if m := Compose(Identity()); m != matrix.Identity() {
		t.Fatalf("unexpected identity %v", m)
	}
	if d := Decompose(matrix.Identity()); d != Identity() {
		t.Fatalf("unexpected identity %v", d)
	}
}

func TestHalfTurn(t *testing.T) {
	m := Compose(Decomposed{RotationAngle: math.Pi, ScaleX: 1, ScaleY: 1})
	if !m.IsClose(matrix.New(-1, 0, 0, -1, 0, 0), tol) {
		t.Fatalf("unexpected half turn %v", m)
	}
	// the exact matrix has b == 0, and is decomposed with a negative angle
	d := Decompose(matrix.New(-1, 0, 0, -1, 0, 0))
	if d.RotationAngle != -math.Pi || d.ScaleX != 1 || d.ScaleY != 1 {
		t.Fatalf("unexpected half turn %v", d)
	}
}

func TestDecomposeDegenerate(t *testing.T) {
	d := Decompose(matrix.New(0, 0, 0, 0, 12, -5))
	if exp := (Decomposed{X: 12, Y: -5}); d != exp {
		t.Fatalf("expected %v, got %v", exp, d)
	}
	if m := Compose(d); m != matrix.New(0, 0, 0, 0, 12, -5) {
		t.Fatalf("unexpected matrix %v", m)
	}
}

func TestDecomposeZeroFirstColumn(t *testing.T) {
	for _, m := range []matrix.Transform{
		matrix.New(0, 0, 1, 1, 3, 4),
		matrix.New(0, 0, 1, -1, 3, 4),
		matrix.New(0, 0, -1, -1, 0, 0),
		matrix.New(0, 0, -2, 0, 0, 0),
		matrix.New(0, 0, 2, 0, 0, 0),
		matrix.New(0, 0, 0, -3, 0, 0),
		matrix.New(0, 0, 0, 0.5, 0, 0),
	} {
		d := Decompose(m)
		if d.ScaleX != 0 || d.SkewAngleX != 0 || d.SkewAngleY != 0 {
			t.Errorf("Decompose(%v) = %v, expected zero X scale and skew", m, d)
		}
		if got := Compose(d); !got.IsClose(m, tol) {
			t.Errorf("round trip of %v: got %v", m, got)
		}
	}

	// exact values
	d := Decompose(matrix.New(0, 0, 0, -3, 0, 0))
	if d.RotationAngle != math.Pi || d.ScaleY != 3 {
		t.Fatalf("unexpected decomposition %v", d)
	}
	d = Decompose(matrix.New(0, 0, 1, 1, 0, 0))
	if !d.IsClose(Decomposed{RotationAngle: -math.Pi / 4, ScaleY: math.Sqrt2}, tol) {
		t.Fatalf("unexpected decomposition %v", d)
	}
}

func TestDecomposeNonFinite(t *testing.T) {
	// a*a underflows to zero
	d := Decompose(matrix.New(1e-200, 0, 0, 1, 0, 0))
	if d.IsFinite() {
		t.Fatalf("expected non finite values, got %v", d)
	}
	if !Identity().IsFinite() {
		t.Fatal("expected finite identity")
	}

	d = Decompose(matrix.New(math.NaN(), 0, 0, 1, 0, 0))
	if !math.IsNaN(d.RotationAngle) || !math.IsNaN(d.ScaleX) {
		t.Fatalf("expected NaN to propagate, got %v", d)
	}
}

func TestRoundTripMatrix(t *testing.T) {
	rd := rand.New(rand.NewSource(1))
	for range [200]int{} {
		// keep the first column away from zero
		angle := (rd.Float64()*2 - 1) * math.Pi
		r := 0.5 + rd.Float64()*1.5
		m := matrix.New(
			r*math.Cos(angle), r*math.Sin(angle),
			rd.Float64()*4-2, rd.Float64()*4-2,
			rd.Float64()*200-100, rd.Float64()*200-100,
		)
		dec := Decompose(m)
		if dec.SkewAngleY != 0 || dec.TransformationCenterX != 0 || dec.TransformationCenterY != 0 {
			t.Fatalf("unexpected canonical form %v", dec)
		}
		if got := Compose(dec); !got.IsClose(m, tol) {
			t.Fatalf("round trip of %v: got %v", m, got)
		}
	}
}

func TestRoundTripDecomposed(t *testing.T) {
	rd := rand.New(rand.NewSource(2))
	for range [200]int{} {
		d := Decomposed{
			X:             rd.Float64()*200 - 100,
			Y:             rd.Float64()*200 - 100,
			RotationAngle: (rd.Float64()*1.9 - 0.95) * math.Pi,
			ScaleX:        0.1 + rd.Float64()*5,
			ScaleY:        rd.Float64()*10 - 5,
			SkewAngleX:    (rd.Float64()*0.9 - 0.45) * math.Pi,
		}
		if got := Decompose(Compose(d)); !got.IsClose(d, 1e-8) {
			t.Fatalf("round trip of %v: got %v", d, got)
		}
	}
}

func TestAmbiguousRoundTrip(t *testing.T) {
	d := Decomposed{
		X: 10, Y: 20, RotationAngle: 0.3, ScaleX: 2, ScaleY: 0.5,
		SkewAngleX: 0.2, SkewAngleY: -0.4, TransformationCenterX: 50, TransformationCenterY: -7,
	}
	m := Compose(d)
	dec := Decompose(m)
	if dec.IsClose(d, tol) {
		t.Fatalf("expected a different decomposition, got %v", dec)
	}
	if got := Compose(dec); !got.IsClose(m, tol) {
		t.Fatalf("round trip of %v: got %v", m, got)
	}
}

func TestComposeCenter(t *testing.T) {
	// the center is a fixed point of rotation and scale
	d := Decomposed{RotationAngle: 1.2, ScaleX: 3, ScaleY: 0.7, TransformationCenterX: 5, TransformationCenterY: 8}
	x, y := Compose(d).Apply(5, 8)
	if !utils.IsClose(x, 5, tol) || !utils.IsClose(y, 8, tol) {
		t.Fatalf("center moved to %f %f", x, y)
	}

	// and is then translated
	d.X, d.Y = -1, 2
	x, y = Compose(d).Apply(5, 8)
	if !utils.IsClose(x, 4, tol) || !utils.IsClose(y, 10, tol) {
		t.Fatalf("center moved to %f %f", x, y)
	}
}
