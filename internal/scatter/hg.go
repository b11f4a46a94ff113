package scatter

import (
	"math"

	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

const (
	// hgDenomOffset keeps (1 + g) away from zero at g = -1.
	hgDenomOffset = 1.000001

	// hgMinAbsG replaces |g| below it in the inverse-CDF sampler, whose
	// closed form has a removable singularity at g = 0.
	hgMinAbsG = 1e-4
)

// SampleHG draws a direction by pushing a uniform angle through
// cos θ = cos(2·atan((1-g)/(1+g)·tan(u·π/2))).
//
// This is the planar (wrapped Cauchy) form of Henyey-Greenstein. It is not
// distribution-exact for the 3D phase function; use SampleHGInverse for that.
func SampleHG(src Source, wi vmath.Vec2, g float32) vmath.Vec2 {
	u := uniformSigned(src)
	gg := float64(g)

	tanVal := math.Tan(u * math.Pi / 2)
	inner := (1 - gg) * tanVal / (hgDenomOffset + gg)
	cosT := math.Min(math.Cos(2*math.Atan(inner)), 1)
	sinT := randomSign(src) * math.Sqrt(math.Max(0, 1-cosT*cosT))

	return Transform(wi, vmath.Vec2{X: float32(sinT), Y: float32(cosT)})
}

// SampleHGInverse draws a direction from the inverse CDF of the 3D
// Henyey-Greenstein phase function. The mean cosine of its samples is g.
func SampleHGInverse(src Source, wi vmath.Vec2, g float32) vmath.Vec2 {
	u := uniformSigned(src)
	gg := clampAwayFromZero(float64(g))
	g2 := gg * gg

	t := (1 - g2) / (1 - gg + 2*gg*(1-math.Abs(u)))
	cosT := clamp((1+g2-t*t)/(2*gg), -1, 1)
	sinT := randomSign(src) * math.Sqrt(math.Max(0, 1-cosT*cosT))

	return Transform(wi, vmath.Vec2{X: float32(sinT), Y: float32(cosT)})
}

// HGPhase evaluates the Henyey-Greenstein phase function for a scattering
// angle cosine.
func HGPhase(cosT, g float32) float32 {
	c, gg := float64(cosT), float64(g)
	denom := 1 + gg*gg - 2*gg*c
	if denom <= 0 {
		return float32(math.Inf(1))
	}
	return float32((1 - gg*gg) / (4 * math.Pi * denom * math.Sqrt(denom)))
}

func clampAwayFromZero(g float64) float64 {
	if math.Abs(g) >= hgMinAbsG {
		return g
	}
	if g < 0 {
		return -hgMinAbsG
	}
	return hgMinAbsG
}

// clamp passes NaN through unchanged.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
