package physics

import (
	"math"
	"testing"
)

func TestNormalizeZeroVector(t *testing.T) {
	got := Vector2{}.Normalize()
	if !got.IsZero() {
		t.Fatalf("normalize(0,0) = %v, want zero vector", got)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	cases := []Vector2{{3, 4}, {-1, 1}, {0, -7}, {1e-9, 0}}
	for _, v := range cases {
		n := v.Normalize()
		if math.Abs(n.Length()-1) > 1e-9 {
			t.Errorf("normalize(%v) length = %f, want 1", v, n.Length())
		}
	}
}
