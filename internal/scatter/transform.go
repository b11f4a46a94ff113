// Package scatter samples scattering directions from phase functions.
//
// Every sampler works in a local frame whose forward axis (0, 1) is the
// incident direction and rotates the result back into the ambient frame with
// Transform. Randomness comes from an injected Source so that a fixed seed
// reproduces a batch exactly.
package scatter

import (
	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

// Transform rotates local, expressed in the frame whose forward axis is wi,
// into the ambient frame. wi must be normalized; the result scales with |wi|.
func Transform(wi, local vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: wi.Y*local.X + wi.X*local.Y,
		Y: -wi.X*local.X + wi.Y*local.Y,
	}
}
