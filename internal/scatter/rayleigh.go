package scatter

import (
	"math"

	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

// SampleRayleigh draws a direction from the simplified closed-form inverse
// CDF of unpolarized Rayleigh scattering (Frisvad, JOSA A 28(12), 2011).
//
// Unlike the HG samplers the local pair is passed as (cos θ, sin θ), so θ
// is measured from the axis perpendicular to wi and u = 0 maps onto ±wi.
// Swapping the pair rotates the drawn lobe by 90 degrees.
func SampleRayleigh(src Source, wi vmath.Vec2) vmath.Vec2 {
	u := uniformSigned(src)

	inner := 2*u + math.Sqrt(4*u*u+1)
	v := -math.Cbrt(inner)
	cosT := clamp(v-1/v, -1, 1)
	sinT := randomSign(src) * math.Sqrt(math.Max(0, 1-cosT*cosT))

	return Transform(wi, vmath.Vec2{X: float32(cosT), Y: float32(sinT)})
}

// RayleighPhase evaluates the unpolarized Rayleigh phase function.
func RayleighPhase(cosT float32) float32 {
	c := float64(cosT)
	return float32(3 / (16 * math.Pi) * (1 + c*c))
}
