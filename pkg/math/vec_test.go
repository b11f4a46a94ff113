package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec2{}).Normalize(); !z.IsZero() {
		t.Errorf("zero Vec2.Normalize() = %v, want zero", z)
	}
}

func TestVec2Perp(t *testing.T) {
	v := Vec2{1, 0}
	got := v.Perp()
	want := Vec2{0, 1}
	if got != want {
		t.Errorf("Vec2.Perp() = %v, want %v", got, want)
	}
	if d := v.Dot(got); d != 0 {
		t.Errorf("Perp not orthogonal: dot = %v", d)
	}
}

func TestVec2IsFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name string
		v    Vec2
		want bool
	}{
		{"finite", Vec2{1, -2}, true},
		{"zero", Vec2{}, true},
		{"nan x", Vec2{nan, 0}, false},
		{"nan y", Vec2{0, nan}, false},
		{"inf", Vec2{inf, 0}, false},
		{"-inf", Vec2{0, -inf}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.want {
				t.Errorf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVec2ApproxEqual(t *testing.T) {
	a := Vec2{1, 1}
	if !a.ApproxEqual(Vec2{1.00001, 0.99999}, 1e-4) {
		t.Error("expected vectors to be approximately equal")
	}
	if a.ApproxEqual(Vec2{1.1, 1}, 1e-4) {
		t.Error("expected vectors to differ")
	}
}
