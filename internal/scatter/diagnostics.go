package scatter

import (
	"go.uber.org/zap"

	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

// MaxRedraws bounds how many times an invalid sample is drawn again before
// the incident direction is substituted.
const MaxRedraws = 8

// InvalidSampleEvent describes a sample that came out NaN or infinite.
type InvalidSampleEvent struct {
	Kind     Kind
	Incident vmath.Vec2
	G        float32
	Value    vmath.Vec2
	Attempt  int // 0 for the first draw
	Worker   int
}

// Diagnostics receives reports about invalid samples.
// Implementations must be safe for concurrent use by batch workers.
type Diagnostics interface {
	// InvalidSample is called for every non-finite draw.
	InvalidSample(ev InvalidSampleEvent)
	// Fallback is called when MaxRedraws is exhausted and the incident
	// direction is used instead.
	Fallback(ev InvalidSampleEvent)
}

// NopDiagnostics discards all reports.
type NopDiagnostics struct{}

func (NopDiagnostics) InvalidSample(InvalidSampleEvent) {}
func (NopDiagnostics) Fallback(InvalidSampleEvent)      {}

// LogDiagnostics reports invalid samples through zap. Pass a sampled logger
// (see logger.Sampled) to keep a bad parameter set from flooding the log.
type LogDiagnostics struct {
	log *zap.Logger
}

// NewLogDiagnostics creates a zap-backed diagnostics sink.
func NewLogDiagnostics(log *zap.Logger) *LogDiagnostics {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogDiagnostics{log: log}
}

// InvalidSample logs a warning for the discarded draw.
func (d *LogDiagnostics) InvalidSample(ev InvalidSampleEvent) {
	d.log.Warn("invalid sample discarded", ev.fields()...)
}

// Fallback logs an error for the substituted sample.
func (d *LogDiagnostics) Fallback(ev InvalidSampleEvent) {
	d.log.Error("sample redraws exhausted, using incident direction", ev.fields()...)
}

func (ev InvalidSampleEvent) fields() []zap.Field {
	return []zap.Field{
		zap.Stringer("sampler", ev.Kind),
		zap.Float32("wi_x", ev.Incident.X),
		zap.Float32("wi_y", ev.Incident.Y),
		zap.Float32("g", ev.G),
		zap.Float32("x", ev.Value.X),
		zap.Float32("y", ev.Value.Y),
		zap.Int("attempt", ev.Attempt),
		zap.Int("worker", ev.Worker),
	}
}

// drawValid samples until it gets a finite direction. After MaxRedraws
// failed redraws it returns wi and reports the fallback.
func drawValid(src Source, kind Kind, wi vmath.Vec2, g float32, diag Diagnostics, worker int) vmath.Vec2 {
	var ev InvalidSampleEvent
	for attempt := 0; attempt <= MaxRedraws; attempt++ {
		s := kind.Sample(src, wi, g)
		if s.IsFinite() {
			return s
		}
		ev = InvalidSampleEvent{
			Kind:     kind,
			Incident: wi,
			G:        g,
			Value:    s,
			Attempt:  attempt,
			Worker:   worker,
		}
		diag.InvalidSample(ev)
	}
	diag.Fallback(ev)
	return wi
}
