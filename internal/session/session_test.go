package session

import (
	"errors"
	"math"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/scatterviz/internal/config"
	"github.com/Faultbox/scatterviz/internal/scatter"
	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

type call struct {
	wi       vmath.Vec2
	g        float32
	exponent int
	kind     scatter.Kind
}

type fakeSampler struct {
	mu    sync.Mutex
	calls []call
	err   error
}

func (f *fakeSampler) Sample(wi vmath.Vec2, g float32, exponent int, kind scatter.Kind) ([]vmath.Vec2, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{wi, g, exponent, kind})
	if f.err != nil {
		return nil, f.err
	}
	out := make([]vmath.Vec2, 1<<exponent)
	for i := range out {
		out[i] = wi
	}
	return out, nil
}

func TestIncidentFromCursor(t *testing.T) {
	center := vmath.Vec2{X: 400, Y: 400}

	tests := []struct {
		name   string
		cursor vmath.Vec2
		want   vmath.Vec2
	}{
		{"right of center points left", vmath.Vec2{X: 500, Y: 400}, vmath.Vec2{X: -1, Y: 0}},
		{"above center points down", vmath.Vec2{X: 400, Y: 100}, vmath.Vec2{X: 0, Y: -1}},
		{"below center points up", vmath.Vec2{X: 400, Y: 790}, vmath.Vec2{X: 0, Y: 1}},
		{"at center is zero", center, vmath.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IncidentFromCursor(tt.cursor, center)
			if !got.ApproxEqual(tt.want, 1e-6) {
				t.Errorf("IncidentFromCursor(%v) = %v, want %v", tt.cursor, got, tt.want)
			}
		})
	}

	diag := IncidentFromCursor(vmath.Vec2{X: 0, Y: 0}, center)
	if l := diag.Length(); math.Abs(float64(l)-1) > 1e-6 {
		t.Errorf("diagonal incident length = %v, want 1", l)
	}
}

func TestParamsClamped(t *testing.T) {
	p := Params{Exponent: 20, G: -3, Length: 10, Alpha: 2, Kind: scatter.Kind(9)}.Clamped()
	want := Params{
		Exponent: config.MaxSampleExponent,
		G:        -1,
		Length:   config.MinLength,
		Alpha:    config.MaxAlpha,
		Kind:     scatter.KindHG,
	}
	if p != want {
		t.Errorf("Clamped() = %+v, want %+v", p, want)
	}

	nan := Params{Exponent: 2, G: float32(math.NaN()), Length: 200, Alpha: 0.5, Kind: scatter.KindRayleigh}.Clamped()
	if nan.G != -1 || nan.Exponent != config.MinSampleExponent {
		t.Errorf("Clamped() with NaN g = %+v", nan)
	}

	if DefaultParams().Clamped() != DefaultParams() {
		t.Error("default params are outside their ranges")
	}
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Session.G = -0.25
	cfg.Sampler.Kind = "rayleigh"

	p, err := ParamsFromConfig(cfg)
	if err != nil {
		t.Fatalf("ParamsFromConfig: %v", err)
	}
	if p.G != -0.25 || p.Kind != scatter.KindRayleigh || p.Exponent != 11 {
		t.Errorf("unexpected params %+v", p)
	}

	cfg.Sampler.Kind = "mie"
	if _, err := ParamsFromConfig(cfg); err == nil {
		t.Error("expected error for unknown sampler")
	}
}

func TestUpdateSnapshotsParams(t *testing.T) {
	f := &fakeSampler{}
	s := New(f, Params{Exponent: 8, G: 0.7, Length: 200, Alpha: 0.2, Kind: scatter.KindHGInverse}, nil)

	center := vmath.Vec2{X: 100, Y: 100}
	if err := s.Update(vmath.Vec2{X: 100, Y: 0}, center); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(f.calls) != 1 {
		t.Fatalf("sampler called %d times, want 1", len(f.calls))
	}
	c := f.calls[0]
	if c.g != 0.7 || c.exponent != 8 || c.kind != scatter.KindHGInverse {
		t.Errorf("sampler called with %+v", c)
	}
	if want := (vmath.Vec2{X: 0, Y: -1}); c.wi != want {
		t.Errorf("incident = %v, want %v", c.wi, want)
	}
	if s.Incident() != c.wi {
		t.Errorf("Incident() = %v, want %v", s.Incident(), c.wi)
	}
	if len(s.Samples()) != 256 {
		t.Errorf("len(Samples()) = %d, want 256", len(s.Samples()))
	}
	if s.MeanCosine() != 1 {
		t.Errorf("MeanCosine() = %v, want 1", s.MeanCosine())
	}
	if h := s.CosineHistogram(4); h[3] != 256 {
		t.Errorf("CosineHistogram(4) = %v, want every sample in the top bin", h)
	}
	if s.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", s.Frames())
	}

	s.SetParams(Params{Exponent: 10, G: -0.2, Length: 200, Alpha: 0.2, Kind: scatter.KindHG})
	if err := s.Update(vmath.Vec2{X: 100, Y: 0}, center); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if c := f.calls[1]; c.g != -0.2 || c.exponent != 10 || c.kind != scatter.KindHG {
		t.Errorf("second call used %+v", c)
	}
	if len(s.Samples()) != 1024 {
		t.Errorf("batch not replaced in full: len = %d", len(s.Samples()))
	}
}

func TestStatsUseSamplerAxis(t *testing.T) {
	f := &fakeSampler{}
	p := DefaultParams()
	p.Kind = scatter.KindRayleigh
	p.Exponent = 8
	s := New(f, p, nil)

	// Every fake sample equals wi, which is perpendicular to the axis the
	// Rayleigh sampler measures angles from.
	if err := s.Update(vmath.Vec2{X: 100, Y: 0}, vmath.Vec2{X: 100, Y: 100}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if m := s.MeanCosine(); m != 0 {
		t.Errorf("MeanCosine() = %v, want 0", m)
	}
	if h := s.CosineHistogram(4); h[2] != 256 {
		t.Errorf("CosineHistogram(4) = %v, want every sample in the cos=0 bin", h)
	}
}

func TestUpdateFailureClearsSamples(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	f := &fakeSampler{}
	s := New(f, DefaultParams(), zap.New(core))

	center := vmath.Vec2{X: 50, Y: 50}
	if err := s.Update(vmath.Vec2{X: 0, Y: 50}, center); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(s.Samples()) == 0 {
		t.Fatal("expected samples after successful update")
	}

	f.err = scatter.ErrWorkerFailed
	err := s.Update(vmath.Vec2{X: 0, Y: 50}, center)
	if !errors.Is(err, scatter.ErrWorkerFailed) {
		t.Fatalf("Update() error = %v, want ErrWorkerFailed", err)
	}
	if !errors.Is(s.LastErr(), scatter.ErrWorkerFailed) {
		t.Errorf("LastErr() = %v", s.LastErr())
	}
	if s.Samples() != nil {
		t.Errorf("failed frame kept %d samples", len(s.Samples()))
	}
	if logs.FilterMessage("frame sampling failed").Len() != 1 {
		t.Error("failure was not logged")
	}

	f.err = nil
	if err := s.Update(vmath.Vec2{X: 0, Y: 50}, center); err != nil {
		t.Fatalf("recovery Update: %v", err)
	}
	if s.LastErr() != nil {
		t.Errorf("LastErr() not cleared: %v", s.LastErr())
	}
}

func TestUpdateWithBatcher(t *testing.T) {
	b, err := scatter.NewBatcher(scatter.WithSeed(3))
	if err != nil {
		t.Fatalf("NewBatcher: %v", err)
	}
	p := DefaultParams()
	p.Kind = scatter.KindHGInverse
	p.G = 0.8
	p.Exponent = 14
	s := New(b, p, nil)

	if err := s.Update(vmath.Vec2{X: 700, Y: 400}, vmath.Vec2{X: 400, Y: 400}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n := len(s.Samples()); n != 1<<14 {
		t.Fatalf("len(Samples()) = %d, want %d", n, 1<<14)
	}
	if m := s.MeanCosine(); math.Abs(float64(m)-0.8) > 0.03 {
		t.Errorf("MeanCosine() = %v, want ~0.8", m)
	}
}

func TestUpdateCursorAtCenter(t *testing.T) {
	b, err := scatter.NewBatcher(scatter.WithSeed(11))
	if err != nil {
		t.Fatalf("NewBatcher: %v", err)
	}
	s := New(b, DefaultParams(), nil)

	center := vmath.Vec2{X: 320, Y: 240}
	if err := s.Update(center, center); err != nil {
		t.Fatalf("Update at center: %v", err)
	}
	for _, v := range s.Samples() {
		if !v.IsZero() {
			t.Fatalf("sample %v with zero incident direction, want zero", v)
		}
	}
}
