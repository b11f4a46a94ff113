package scatter

import (
	"errors"
	"testing"

	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"hg", KindHG},
		{"HG", KindHG},
		{"hg-inverse", KindHGInverse},
		{" rayleigh ", KindRayleigh},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if err != nil {
			t.Errorf("ParseKind(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseKind("mie"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseKind(mie) error = %v, want ErrInvalidArgument", err)
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
		if k.Label() == "" {
			t.Errorf("%v has no label", k)
		}
	}
	if Kind(42).Valid() {
		t.Error("Kind(42) reported valid")
	}
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q", s)
	}
}

func TestKindProperties(t *testing.T) {
	if KindHG.Exact() {
		t.Error("direct HG sampler must not report exact")
	}
	if !KindHGInverse.Exact() || !KindRayleigh.Exact() {
		t.Error("inverse-CDF samplers must report exact")
	}
	if KindRayleigh.UsesG() {
		t.Error("Rayleigh does not depend on g")
	}
	if KindRayleigh.Phase(0.5, 0.9) != RayleighPhase(0.5) {
		t.Error("Rayleigh phase must ignore g")
	}
	if KindHGInverse.Phase(0.5, 0.9) != HGPhase(0.5, 0.9) {
		t.Error("HG phase mismatch")
	}
	if KindHG.MeanCosine(-0.3) != -0.3 || KindRayleigh.MeanCosine(0.8) != 0 {
		t.Error("unexpected analytic mean cosine")
	}
}

func TestKindSampleInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid kind")
		}
	}()
	Kind(7).Sample(newTestRand(), vmath.Vec2{X: 0, Y: 1}, 0)
}
