package renderer

import (
	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

// floatsPerVertex is x, y, r, g, b, a.
const floatsPerVertex = 6

// Segment is a straight line in screen pixels (origin top-left, Y down).
type Segment struct {
	A, B  vmath.Vec2
	Color Color
	Width float32
}

// Batch accumulates segments as triangles. Core profile contexts only
// guarantee 1px lines, so every segment is expanded into a quad.
type Batch struct {
	vertices []float32
}

// NewBatch creates a batch with room for n segments.
func NewBatch(n int) *Batch {
	return &Batch{vertices: make([]float32, 0, n*6*floatsPerVertex)}
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.vertices = b.vertices[:0]
}

// Add appends one segment. Degenerate segments are skipped.
func (b *Batch) Add(s Segment) {
	dir := s.B.Sub(s.A).Normalize()
	if dir.IsZero() || s.Color.A <= 0 {
		return
	}
	w := s.Width
	if w <= 0 {
		w = 1
	}
	off := dir.Perp().Scale(w / 2)

	p0 := s.A.Add(off)
	p1 := s.A.Sub(off)
	p2 := s.B.Sub(off)
	p3 := s.B.Add(off)

	b.vertex(p0, s.Color)
	b.vertex(p1, s.Color)
	b.vertex(p2, s.Color)
	b.vertex(p0, s.Color)
	b.vertex(p2, s.Color)
	b.vertex(p3, s.Color)
}

// AddAll appends every segment in order.
func (b *Batch) AddAll(segs []Segment) {
	for _, s := range segs {
		b.Add(s)
	}
}

// VertexCount returns the number of vertices queued.
func (b *Batch) VertexCount() int {
	return len(b.vertices) / floatsPerVertex
}

// Vertices returns the interleaved vertex data.
func (b *Batch) Vertices() []float32 {
	return b.vertices
}

func (b *Batch) vertex(p vmath.Vec2, c Color) {
	b.vertices = append(b.vertices, p.X, p.Y, c.R, c.G, c.B, c.A)
}
