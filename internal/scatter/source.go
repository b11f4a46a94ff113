package scatter

import (
	"math/rand"
)

// Source supplies uniform random numbers in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float32() float32
}

var _ Source = (*rand.Rand)(nil)

// newRandSource is the default per-worker source factory.
func newRandSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// uniformSigned maps one draw onto [-1, 1). The open upper end comes from
// Float32 and has no measurable effect on the samplers.
func uniformSigned(src Source) float64 {
	return 2*float64(src.Float32()) - 1
}

// randomSign draws +1 or -1 with equal probability.
func randomSign(src Source) float64 {
	if src.Float32() < 0.5 {
		return 1
	}
	return -1
}
