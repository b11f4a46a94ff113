// Package viz is the viewer application: it owns the session, builds the
// arrow geometry every frame and drives one of the two frontends.
package viz

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scatterviz/internal/config"
	"github.com/Faultbox/scatterviz/internal/engine/debug"
	"github.com/Faultbox/scatterviz/internal/engine/renderer"
	"github.com/Faultbox/scatterviz/internal/logger"
	"github.com/Faultbox/scatterviz/internal/scatter"
	"github.com/Faultbox/scatterviz/internal/session"
	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

const title = "scatterviz"

// App is a viewer instance.
type App struct {
	cfg     *config.Config
	session *session.Session
	capture *debug.ScreenshotCapture
	log     *zap.Logger

	showPhaseCurve bool
	segments       []renderer.Segment
}

// New creates the app and its sampling pipeline. No window is opened until Run.
func New(cfg *config.Config) (*App, error) {
	sess, err := newSession(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:            cfg,
		session:        sess,
		capture:        debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix),
		log:            logger.Named("viz"),
		showPhaseCurve: cfg.Session.ShowPhaseCurve,
	}

	p := sess.Params()
	a.log.Info("viewer initialized",
		zap.String("frontend", cfg.Graphics.Frontend),
		zap.Stringer("sampler", p.Kind),
		zap.Int("samples", p.SampleCount()),
		zap.Int("workers", cfg.Sampler.Workers),
	)
	return a, nil
}

// newSession wires the batch sampler, its diagnostics and the session.
func newSession(cfg *config.Config) (*session.Session, error) {
	params, err := session.ParamsFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("initial parameters: %w", err)
	}

	samplerLog := logger.Named("sampler")
	diag := scatter.NewLogDiagnostics(logger.Sampled(samplerLog, cfg.Sampler.DiagnosticsPerSecond, 0))

	batcher, err := scatter.NewBatcher(
		scatter.WithWorkers(cfg.Sampler.Workers),
		scatter.WithSeed(cfg.Sampler.Seed),
		scatter.WithDiagnostics(diag),
		scatter.WithLogger(samplerLog),
	)
	if err != nil {
		return nil, fmt.Errorf("create sampler: %w", err)
	}

	return session.New(batcher, params, logger.Named("session")), nil
}

// Run opens the configured frontend and blocks until the window closes.
func (a *App) Run() error {
	switch a.cfg.Graphics.Frontend {
	case config.FrontendSDL:
		return a.runSDL()
	default:
		return a.runImGui()
	}
}

// Session returns the app's session.
func (a *App) Session() *session.Session {
	return a.session
}

// frame samples for the cursor and returns the geometry to draw. Sampling
// errors are kept by the session and shown by the frontend.
func (a *App) frame(cursor, center vmath.Vec2) []renderer.Segment {
	_ = a.session.Update(cursor, center)

	p := a.session.Params()
	f := Frame{
		Center:     center,
		Length:     p.Length,
		Alpha:      p.Alpha,
		Incident:   a.session.Incident(),
		Samples:    a.session.Samples(),
		Kind:       p.Kind,
		G:          p.G,
		PhaseCurve: a.showPhaseCurve,
	}
	a.segments = f.Segments(a.segments[:0])
	return a.segments
}

// screenshot saves the current frame and returns a status line.
func (a *App) screenshot(width, height int, front bool) string {
	path, err := a.capture.Capture(width, height, front)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return fmt.Sprintf("screenshot failed: %v", err)
	}
	a.log.Info("screenshot saved", zap.String("path", path))
	return "saved " + path
}
