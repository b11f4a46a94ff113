package viz

import (
	"testing"

	"github.com/Faultbox/scatterviz/internal/config"
	"github.com/Faultbox/scatterviz/internal/scatter"
	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

func TestNewWiresSession(t *testing.T) {
	cfg := config.Default()
	cfg.Sampler.Kind = "hg-inverse"
	cfg.Sampler.Seed = 42
	cfg.Session.SampleExponent = 9
	cfg.Capture.Dir = t.TempDir()

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p := a.Session().Params()
	if p.Kind != scatter.KindHGInverse || p.Exponent != 9 {
		t.Errorf("session params = %+v", p)
	}

	center := vmath.Vec2{X: 400, Y: 400}
	segs := a.frame(vmath.Vec2{X: 100, Y: 400}, center)

	// Every sample is an arrow with two barbs, plus the incident arrow.
	if want := (1<<9)*3 + 3; len(segs) != want {
		t.Errorf("len(frame) = %d, want %d", len(segs), want)
	}
	if a.Session().LastErr() != nil {
		t.Errorf("LastErr() = %v", a.Session().LastErr())
	}
}

func TestNewRejectsBadSampler(t *testing.T) {
	cfg := config.Default()
	cfg.Sampler.Kind = "mie"
	if _, err := New(cfg); err == nil {
		t.Error("expected error for unknown sampler")
	}

	cfg = config.Default()
	cfg.Sampler.Workers = 3
	if _, err := New(cfg); err == nil {
		t.Error("expected error for a worker count that is not a power of two")
	}
}

func TestFrameReusesBuffer(t *testing.T) {
	cfg := config.Default()
	cfg.Sampler.Seed = 7
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	center := vmath.Vec2{X: 200, Y: 200}
	first := a.frame(vmath.Vec2{X: 0, Y: 0}, center)
	n := len(first)
	second := a.frame(vmath.Vec2{X: 400, Y: 400}, center)

	if len(second) != n {
		t.Errorf("frame sizes differ: %d then %d", n, len(second))
	}
	if &first[0] != &second[0] {
		t.Error("segment buffer reallocated between identical frames")
	}
}
