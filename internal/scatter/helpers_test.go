package scatter

import (
	"math"
	"math/rand"
	"sync"

	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

// seqSource replays a fixed sequence of draws, cycling when exhausted.
type seqSource struct {
	vals []float32
	i    int
}

func (s *seqSource) Float32() float32 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

type recordingDiagnostics struct {
	mu        sync.Mutex
	invalid   []InvalidSampleEvent
	fallbacks []InvalidSampleEvent
}

func (d *recordingDiagnostics) InvalidSample(ev InvalidSampleEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.invalid = append(d.invalid, ev)
}

func (d *recordingDiagnostics) Fallback(ev InvalidSampleEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fallbacks = append(d.fallbacks, ev)
}

func unitDirections() []vmath.Vec2 {
	dirs := []vmath.Vec2{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}
	for _, a := range []float64{0.3, 1.1, 2.5, 4.0, 5.9} {
		dirs = append(dirs, vmath.Vec2{X: float32(math.Cos(a)), Y: float32(math.Sin(a))})
	}
	return dirs
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}
