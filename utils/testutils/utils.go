package testutils

import (
	"reflect"
	"testing"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// AssertClose fails if got and exp differ by more than tol
// on any component.
func AssertClose(t *testing.T, got, exp []float64, tol float64) {
	t.Helper()
	if len(got) != len(exp) {
		t.Fatalf("expected %d values, got %d", len(exp), len(got))
	}
	for i := range got {
		if got[i] == exp[i] {
			continue
		}
		if d := got[i] - exp[i]; d > tol || d < -tol || d != d {
			t.Fatalf("expected\n%v\n got \n%v\n(index %d)", exp, got, i)
		}
	}
}
