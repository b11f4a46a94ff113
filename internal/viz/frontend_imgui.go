package viz

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/scatterviz/internal/engine/ui"
	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

// imguiFrontend draws the arrows on a background draw list with the
// Configuration panel on top.
type imguiFrontend struct {
	app     *App
	backend *ui.Backend
	panel   *ui.Panel

	cursor              vmath.Vec2
	hasCursor           bool
	screenshotRequested bool
	title               string
}

func (a *App) runImGui() error {
	b, err := ui.NewBackend(title, a.cfg.Graphics.Width, a.cfg.Graphics.Height)
	if err != nil {
		return fmt.Errorf("failed to create imgui backend: %w", err)
	}

	f := &imguiFrontend{
		app:     a,
		backend: b,
		panel:   ui.NewPanel(a.showPhaseCurve),
	}

	a.log.Info("starting imgui frontend")
	b.Run(f.render)
	a.log.Info("imgui frontend closed")
	return nil
}

func (f *imguiFrontend) render() {
	// The backend swaps before calling us, so the previous frame is in the
	// front buffer.
	if f.screenshotRequested {
		f.screenshotRequested = false
		w, h := ui.FramebufferSize()
		f.panel.SetStatus(f.app.screenshot(w, h, true))
	}

	if ui.IsKeyPressed(imgui.KeyF12) {
		f.screenshotRequested = true
	}
	if ui.IsKeyPressed(imgui.KeyEscape) {
		f.backend.Close()
	}

	x, y, w, h := ui.Viewport()
	center := vmath.Vec2{X: w / 2, Y: h / 2}

	// Dragging a slider must not swing the incident direction.
	if !imgui.CurrentIO().WantCaptureMouse() {
		if pos := imgui.MousePos(); validMousePos(pos) {
			f.cursor = vmath.Vec2{X: pos.X - x, Y: pos.Y - y}
			f.hasCursor = true
		}
	}
	cursor := f.cursor
	if !f.hasCursor {
		cursor = center
	}

	f.app.showPhaseCurve = f.panel.ShowPhaseCurve
	ui.DrawSegments(f.app.frame(cursor, center))
	f.panel.Draw(f.app.session)
	f.updateTitle()
}

func (f *imguiFrontend) updateTitle() {
	s := f.app.session
	if t := windowTitle(s.Params(), s.MeanCosine(), s.LastErr()); t != f.title {
		f.title = t
		f.backend.SetWindowTitle(t)
	}
}

// validMousePos filters the -FLT_MAX sentinel ImGui reports when the cursor
// is outside every window.
func validMousePos(p imgui.Vec2) bool {
	const invalid = -256000
	return p.X > invalid && p.Y > invalid
}
