package scatter

import (
	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

// MeanCosine returns the mean cosine between the samples and wi. For the
// Henyey-Greenstein samplers it estimates g.
func MeanCosine(samples []vmath.Vec2, wi vmath.Vec2) float32 {
	n := wi.Normalize()
	if len(samples) == 0 || n.IsZero() {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += float64(s.Dot(n))
	}
	return float32(sum / float64(len(samples)))
}

// CosineHistogram counts the cosines between the samples and wi into bins
// equal-width buckets over [-1, 1].
func CosineHistogram(samples []vmath.Vec2, wi vmath.Vec2, bins int) []int {
	if bins < 1 {
		return nil
	}
	hist := make([]int, bins)
	n := wi.Normalize()
	if n.IsZero() {
		return hist
	}
	for _, s := range samples {
		c := s.Dot(n)
		idx := int((c + 1) / 2 * float32(bins))
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1
		}
		hist[idx]++
	}
	return hist
}
