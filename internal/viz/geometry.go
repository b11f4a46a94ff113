package viz

import (
	"math"

	"github.com/Faultbox/scatterviz/internal/engine/renderer"
	"github.com/Faultbox/scatterviz/internal/scatter"
	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

const (
	incidentWidth = 4
	sampleWidth   = 1
	curveWidth    = 2

	// Arrowhead barbs are swept back this far from the shaft.
	headAngle = 25 * math.Pi / 180

	curveSegments = 180
)

// Frame is everything needed to draw one frame, in math coordinates (Y up)
// except Center, which is in screen pixels.
type Frame struct {
	Center     vmath.Vec2
	Length     float32
	Alpha      float32
	Incident   vmath.Vec2
	Samples    []vmath.Vec2
	Kind       scatter.Kind
	G          float32
	PhaseCurve bool
}

// toScreen maps a math-space offset scaled by length to screen pixels.
func (f *Frame) toScreen(v vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: f.Center.X + v.X*f.Length,
		Y: f.Center.Y - v.Y*f.Length,
	}
}

// Segments appends the frame's geometry to dst and returns it. Draw order is
// the analytic curve, then samples, then the incident arrow on top.
func (f *Frame) Segments(dst []renderer.Segment) []renderer.Segment {
	if f.PhaseCurve {
		dst = f.appendPhaseCurve(dst)
	}

	sampleColor := renderer.ColorRed.WithAlpha(f.Alpha)
	for _, s := range f.Samples {
		dst = appendArrow(dst, f.Center, f.toScreen(s), sampleColor, sampleWidth)
	}

	if !f.Incident.IsZero() {
		dst = appendArrow(dst, f.toScreen(f.Incident.Neg()), f.Center, renderer.ColorSpringGreen, incidentWidth)
	}
	return dst
}

// appendArrow adds a shaft from tail to tip and a two-barb head at tip.
// Zero-length arrows add nothing.
func appendArrow(dst []renderer.Segment, tail, tip vmath.Vec2, c renderer.Color, width float32) []renderer.Segment {
	shaft := tip.Sub(tail)
	if shaft.IsZero() {
		return dst
	}
	dst = append(dst, renderer.Segment{A: tail, B: tip, Color: c, Width: width})

	headLen := min(max(6, 3*width), shaft.Length()/3)
	back := shaft.Normalize().Neg().Scale(headLen)
	for _, a := range [2]float64{headAngle, -headAngle} {
		dst = append(dst, renderer.Segment{A: tip, B: tip.Add(rotate(back, a)), Color: c, Width: width})
	}
	return dst
}

// appendPhaseCurve adds the analytic phase function as a closed polar curve
// around the sampler's reference axis, scaled so its peak reaches Length.
func (f *Frame) appendPhaseCurve(dst []renderer.Segment) []renderer.Segment {
	if f.Incident.IsZero() {
		return dst
	}
	axis := f.Kind.Axis(f.Incident)
	perp := axis.Perp()

	var values [curveSegments]float64
	peak := 0.0
	for i := range values {
		theta := 2 * math.Pi * float64(i) / curveSegments
		v := float64(f.Kind.Phase(float32(math.Cos(theta)), f.G))
		values[i] = v
		if !math.IsInf(v, 0) && !math.IsNaN(v) && v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		return dst
	}

	var pts [curveSegments]vmath.Vec2
	for i, v := range values {
		r := min(v/peak, 1)
		if math.IsNaN(r) {
			r = 0
		}
		theta := 2 * math.Pi * float64(i) / curveSegments
		dir := axis.Scale(float32(math.Cos(theta))).Add(perp.Scale(float32(math.Sin(theta))))
		pts[i] = f.toScreen(dir.Scale(float32(r)))
	}
	for i := range pts {
		dst = append(dst, renderer.Segment{
			A:     pts[i],
			B:     pts[(i+1)%curveSegments],
			Color: renderer.ColorPhaseCurve,
			Width: curveWidth,
		})
	}
	return dst
}

func rotate(v vmath.Vec2, angle float64) vmath.Vec2 {
	s, c := math.Sincos(angle)
	return vmath.Vec2{
		X: v.X*float32(c) - v.Y*float32(s),
		Y: v.X*float32(s) + v.Y*float32(c),
	}
}
