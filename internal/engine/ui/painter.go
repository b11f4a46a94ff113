package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/scatterviz/internal/engine/renderer"
)

const backgroundFlags = imgui.WindowFlagsNoTitleBar |
	imgui.WindowFlagsNoResize |
	imgui.WindowFlagsNoMove |
	imgui.WindowFlagsNoScrollbar |
	imgui.WindowFlagsNoInputs |
	imgui.WindowFlagsNoSavedSettings |
	imgui.WindowFlagsNoBringToFrontOnFocus

// DrawSegments paints segments on a transparent window that covers the
// viewport and stays behind every other window. Positions are viewport
// relative.
func DrawSegments(segs []renderer.Segment) {
	x, y, w, h := Viewport()
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))
	imgui.SetNextWindowBgAlpha(0)

	if imgui.BeginV("##SceneBackground", nil, backgroundFlags) {
		drawList := imgui.WindowDrawList()
		for _, s := range segs {
			drawList.AddLineV(
				imgui.NewVec2(x+s.A.X, y+s.A.Y),
				imgui.NewVec2(x+s.B.X, y+s.B.Y),
				s.Color.Packed(),
				s.Width,
			)
		}
	}
	imgui.End()
}
