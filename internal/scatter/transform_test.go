package scatter

import (
	"testing"

	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

func TestTransformForwardAxisIdentity(t *testing.T) {
	for _, wi := range unitDirections() {
		got := Transform(wi, vmath.Vec2{X: 0, Y: 1})
		if !got.ApproxEqual(wi, 1e-6) {
			t.Errorf("Transform(%v, (0,1)) = %v, want %v", wi, got, wi)
		}
	}
}

func TestTransformLinear(t *testing.T) {
	a := vmath.Vec2{X: 0.3, Y: -0.7}
	b := vmath.Vec2{X: -0.2, Y: 0.5}
	for _, wi := range unitDirections() {
		sum := Transform(wi, a.Add(b))
		parts := Transform(wi, a).Add(Transform(wi, b))
		if !sum.ApproxEqual(parts, 1e-6) {
			t.Errorf("Transform(%v, a+b) = %v, want %v", wi, sum, parts)
		}
	}
}

func TestTransformPreservesLength(t *testing.T) {
	local := vmath.Vec2{X: 0.6, Y: 0.8}
	for _, wi := range unitDirections() {
		l := Transform(wi, local).Length()
		if l < 0.9999 || l > 1.0001 {
			t.Errorf("|Transform(%v, %v)| = %v, want 1", wi, local, l)
		}
	}
}

func TestTransformPerpendicularAxis(t *testing.T) {
	// The local X axis maps to wi rotated by -90 degrees.
	wi := vmath.Vec2{X: 0, Y: 1}
	got := Transform(wi, vmath.Vec2{X: 1, Y: 0})
	want := vmath.Vec2{X: 1, Y: 0}
	if got != want {
		t.Errorf("Transform(%v, (1,0)) = %v, want %v", wi, got, want)
	}
}
