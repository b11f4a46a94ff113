package scatter

import (
	"fmt"
	"strings"

	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

// Kind selects a phase-function sampler.
type Kind uint8

const (
	// KindHG is the planar Henyey-Greenstein approximation (SampleHG).
	KindHG Kind = iota
	// KindHGInverse is the exact inverse-CDF Henyey-Greenstein sampler.
	KindHGInverse
	// KindRayleigh is the unpolarized Rayleigh sampler. It ignores g.
	KindRayleigh

	kindCount
)

var kindNames = [kindCount]string{
	KindHG:        "hg",
	KindHGInverse: "hg-inverse",
	KindRayleigh:  "rayleigh",
}

var kindLabels = [kindCount]string{
	KindHG:        "Henyey-Greenstein (direct)",
	KindHGInverse: "Henyey-Greenstein (inverse CDF)",
	KindRayleigh:  "Rayleigh",
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindHG, KindHGInverse, KindRayleigh}
}

// ParseKind converts a config name ("hg", "hg-inverse", "rayleigh") to a Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown sampler %q", ErrInvalidArgument, name)
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k < kindCount
}

// String returns the config name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Label returns a human readable name for UI display.
func (k Kind) Label() string {
	if !k.Valid() {
		return k.String()
	}
	return kindLabels[k]
}

// UsesG reports whether the anisotropy coefficient affects the sampler.
func (k Kind) UsesG() bool {
	return k == KindHG || k == KindHGInverse
}

// Exact reports whether the sampler reproduces its phase function exactly.
func (k Kind) Exact() bool {
	return k == KindHGInverse || k == KindRayleigh
}

// Sample draws one direction for the incident direction wi.
func (k Kind) Sample(src Source, wi vmath.Vec2, g float32) vmath.Vec2 {
	switch k {
	case KindHG:
		return SampleHG(src, wi, g)
	case KindHGInverse:
		return SampleHGInverse(src, wi, g)
	case KindRayleigh:
		return SampleRayleigh(src, wi)
	default:
		panic(fmt.Sprintf("scatter: sample with invalid kind %d", uint8(k)))
	}
}

// Phase evaluates the analytic phase function the kind samples from.
func (k Kind) Phase(cosT, g float32) float32 {
	if k == KindRayleigh {
		return RayleighPhase(cosT)
	}
	return HGPhase(cosT, g)
}

// Axis returns the direction the kind's scattering angle is measured from.
// HG lobes are centered on wi. The Rayleigh sampler measures θ from the axis
// perpendicular to wi (see SampleRayleigh).
func (k Kind) Axis(wi vmath.Vec2) vmath.Vec2 {
	if k == KindRayleigh {
		return wi.Perp().Neg()
	}
	return wi
}

// MeanCosine returns the mean cosine of the kind's phase function, the value
// a large batch's MeanCosine converges to.
func (k Kind) MeanCosine(g float32) float32 {
	if k == KindRayleigh {
		return 0
	}
	return g
}
