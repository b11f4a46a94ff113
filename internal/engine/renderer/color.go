package renderer

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Colors used by the viewer.
var (
	ColorBackground   = Color{0.1, 0.1, 0.12, 1}
	ColorSpringGreen  = Color{0, 1, 0.5, 1}
	ColorRed          = Color{1, 0, 0, 1}
	ColorPhaseCurve   = Color{1, 0.85, 0.2, 0.9}
	ColorAxis         = Color{0.35, 0.35, 0.4, 1}
	ColorTransparent  = Color{0, 0, 0, 0}
	ColorErrorMessage = Color{1, 0.35, 0.35, 1}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Packed returns the color as 0xAABBGGRR, the layout ImGui draw lists use.
func (c Color) Packed() uint32 {
	return uint32(channel(c.A))<<24 | uint32(channel(c.B))<<16 | uint32(channel(c.G))<<8 | uint32(channel(c.R))
}

func channel(f float32) uint8 {
	switch {
	case f <= 0 || f != f:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
