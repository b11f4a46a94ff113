// Package session holds the live state of a viewer session: the parameters
// adjusted from the GUI and the sample batch drawn for the current frame.
package session

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/scatterviz/internal/config"
	"github.com/Faultbox/scatterviz/internal/scatter"
	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

// Params are the parameters exposed on the GUI panel.
type Params struct {
	Exponent int     // batch size is 2^Exponent
	G        float32 // anisotropy coefficient
	Length   float32 // arrow length in pixels
	Alpha    float32 // arrow opacity
	Kind     scatter.Kind
}

// DefaultParams returns the parameters the viewer starts with.
func DefaultParams() Params {
	return Params{
		Exponent: 11,
		G:        0.5,
		Length:   255,
		Alpha:    0.1,
		Kind:     scatter.KindHG,
	}
}

// ParamsFromConfig builds the initial parameters from the session config.
func ParamsFromConfig(cfg *config.Config) (Params, error) {
	kind, err := cfg.SamplerKind()
	if err != nil {
		return Params{}, err
	}
	p := Params{
		Exponent: cfg.Session.SampleExponent,
		G:        cfg.Session.G,
		Length:   cfg.Session.Length,
		Alpha:    cfg.Session.Alpha,
		Kind:     kind,
	}
	return p.Clamped(), nil
}

// Clamped returns p with every field forced into its slider range.
func (p Params) Clamped() Params {
	p.Exponent = clampInt(p.Exponent, config.MinSampleExponent, config.MaxSampleExponent)
	p.G = clampFloat(p.G, -1, 1)
	p.Length = clampFloat(p.Length, config.MinLength, config.MaxLength)
	p.Alpha = clampFloat(p.Alpha, config.MinAlpha, config.MaxAlpha)
	if !p.Kind.Valid() {
		p.Kind = scatter.KindHG
	}
	return p
}

// SampleCount returns the batch size for the parameters.
func (p Params) SampleCount() int {
	return 1 << p.Exponent
}

// Sampler is the part of scatter.Batcher a session needs.
type Sampler interface {
	Sample(wi vmath.Vec2, g float32, exponent int, kind scatter.Kind) ([]vmath.Vec2, error)
}

// Session owns the parameters, the incident direction and the latest batch.
// Methods are safe to call from the render loop and from other goroutines.
type Session struct {
	sampler Sampler
	log     *zap.Logger

	mu       sync.RWMutex
	params   Params
	incident vmath.Vec2
	axis     vmath.Vec2 // reference axis of the latest batch
	samples  []vmath.Vec2
	lastErr  error
	frames   uint64
}

// New creates a session.
func New(sampler Sampler, params Params, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		sampler: sampler,
		log:     log,
		params:  params.Clamped(),
	}
}

// Params returns the current parameters.
func (s *Session) Params() Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// SetParams replaces the parameters, clamped to their ranges. The new values
// apply from the next Update.
func (s *Session) SetParams(p Params) {
	p = p.Clamped()

	s.mu.Lock()
	old := s.params
	s.params = p
	s.mu.Unlock()

	if old.Kind != p.Kind || old.Exponent != p.Exponent {
		s.log.Debug("sampler changed",
			zap.Stringer("sampler", p.Kind),
			zap.Int("samples", p.SampleCount()),
		)
	}
}

// Incident returns the incident direction used for the latest batch.
func (s *Session) Incident() vmath.Vec2 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.incident
}

// Samples returns the latest batch. The slice is replaced, never mutated,
// so callers may keep it for the duration of a frame.
func (s *Session) Samples() []vmath.Vec2 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.samples
}

// LastErr returns the error of the latest Update, if any.
func (s *Session) LastErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Frames returns how many updates have run.
func (s *Session) Frames() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frames
}

// MeanCosine returns the mean cosine of the latest batch against the axis
// its sampler measures angles from (see scatter.Kind.Axis).
func (s *Session) MeanCosine() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scatter.MeanCosine(s.samples, s.axis)
}

// CosineHistogram bins the cosines of the latest batch against the axis its
// sampler measures angles from.
func (s *Session) CosineHistogram(bins int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scatter.CosineHistogram(s.samples, s.axis, bins)
}

// IncidentFromCursor maps a cursor position in screen coordinates (Y down)
// to the incident direction: the unit vector from the cursor towards the
// center, in math coordinates (Y up). A cursor on the center gives zero.
func IncidentFromCursor(cursor, center vmath.Vec2) vmath.Vec2 {
	rel := vmath.Vec2{X: cursor.X - center.X, Y: center.Y - cursor.Y}
	return rel.Neg().Normalize()
}

// Update recomputes the incident direction from the cursor and replaces the
// batch. On failure the batch is cleared and the error is kept for display.
func (s *Session) Update(cursor, center vmath.Vec2) error {
	wi := IncidentFromCursor(cursor, center)

	s.mu.Lock()
	p := s.params
	s.incident = wi
	s.frames++
	s.mu.Unlock()

	samples, err := s.sampler.Sample(wi, p.G, p.Exponent, p.Kind)
	if err != nil {
		err = fmt.Errorf("sampling %d %s directions: %w", p.SampleCount(), p.Kind, err)
		s.log.Error("frame sampling failed", zap.Error(err))
	}

	s.mu.Lock()
	s.axis = p.Kind.Axis(wi)
	s.samples = samples
	s.lastErr = err
	s.mu.Unlock()

	return err
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// clampFloat maps NaN to lo.
func clampFloat(v, lo, hi float32) float32 {
	if v != v || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
