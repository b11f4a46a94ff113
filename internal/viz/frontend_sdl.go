package viz

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/scatterviz/internal/engine/input"
	"github.com/Faultbox/scatterviz/internal/engine/renderer"
	"github.com/Faultbox/scatterviz/internal/engine/window"
	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

// sdlFrontend renders with a plain SDL window and the GL line renderer.
// Parameters are changed from the keyboard and shown in the title.
type sdlFrontend struct {
	app      *App
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	batch    *renderer.Batch

	fbWidth, fbHeight int
	title             string
}

func (a *App) runSDL() error {
	g := a.cfg.Graphics
	win, err := window.New(window.Config{
		Title:      title,
		Width:      g.Width,
		Height:     g.Height,
		Fullscreen: g.Fullscreen,
		VSync:      g.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	fbw, fbh := win.DrawableSize()
	r, err := renderer.New(renderer.Config{Width: fbw, Height: fbh})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Close()

	f := &sdlFrontend{
		app:      a,
		window:   win,
		renderer: r,
		input:    input.New(),
		batch:    renderer.NewBatch(1 << 12),
		fbWidth:  fbw,
		fbHeight: fbh,
	}

	a.log.Info("starting sdl frontend")
	f.loop()
	a.log.Info("sdl frontend closed")
	return nil
}

func (f *sdlFrontend) loop() {
	frameCount := 0
	fpsTimer := time.Now()

	for {
		if f.input.Update() {
			return
		}

		screenshot := false
		for _, action := range f.input.Actions() {
			switch action {
			case input.ActionQuit:
				return
			case input.ActionScreenshot:
				screenshot = true
			case input.ActionTogglePhaseCurve:
				f.app.showPhaseCurve = !f.app.showPhaseCurve
			default:
				if p, ok := applyAction(f.app.session.Params(), action); ok {
					f.app.session.SetParams(p)
				}
			}
		}

		f.render()

		if screenshot {
			// Read the back buffer before it is swapped away.
			f.app.log.Debug("capturing frame", zap.Int("width", f.fbWidth), zap.Int("height", f.fbHeight))
			f.app.screenshot(f.fbWidth, f.fbHeight, false)
		}
		f.window.SwapBuffers()
		f.updateTitle()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			f.app.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

func (f *sdlFrontend) render() {
	if w, h := f.window.DrawableSize(); w != f.fbWidth || h != f.fbHeight {
		f.fbWidth, f.fbHeight = w, h
		f.renderer.Resize(w, h)
	}

	// Geometry is built in window coordinates, the same space as the mouse.
	w, h := f.window.Size()
	center := vmath.Vec2{X: float32(w) / 2, Y: float32(h) / 2}
	cursor := center
	if mx, my, ok := f.input.MousePos(); ok {
		cursor = vmath.Vec2{X: float32(mx), Y: float32(my)}
	}

	f.batch.Reset()
	f.batch.AddAll(f.app.frame(cursor, center))

	f.renderer.Begin()
	f.renderer.Draw(f.batch, w, h)
	f.renderer.End()
}

func (f *sdlFrontend) updateTitle() {
	s := f.app.session
	t := windowTitle(s.Params(), s.MeanCosine(), s.LastErr())
	if t != f.title {
		f.title = t
		f.window.SetTitle(t)
	}
}
