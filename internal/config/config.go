// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"math"

	"github.com/Faultbox/scatterviz/internal/scatter"
)

// Frontends supported by the viewer.
const (
	FrontendImGui = "imgui"
	FrontendSDL   = "sdl"
)

// Limits of the live parameters. The GUI sliders use the same ranges.
const (
	MinSampleExponent = 8
	MaxSampleExponent = 14
	MinLength         = 150
	MaxLength         = 350
	MinAlpha          = 0.001
	MaxAlpha          = 0.9
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Session  SessionConfig  `yaml:"session"`
	Sampler  SamplerConfig  `yaml:"sampler"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Frontend   string `yaml:"frontend"` // "imgui" or "sdl"
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SessionConfig holds the initial values of the live parameters.
type SessionConfig struct {
	SampleExponent int     `yaml:"sample_exponent"` // batch size is 2^n
	G              float32 `yaml:"g"`
	Length         float32 `yaml:"length"`
	Alpha          float32 `yaml:"alpha"`
	ShowPhaseCurve bool    `yaml:"show_phase_curve"`
}

// SamplerConfig holds batch sampler settings.
type SamplerConfig struct {
	Kind                 string `yaml:"kind"` // hg, hg-inverse, rayleigh
	Workers              int    `yaml:"workers"`
	Seed                 int64  `yaml:"seed"` // 0 seeds from the clock
	DiagnosticsPerSecond int    `yaml:"diagnostics_per_second"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Frontend:   FrontendImGui,
			Width:      800,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Session: SessionConfig{
			SampleExponent: 11,
			G:              0.5,
			Length:         255,
			Alpha:          0.1,
			ShowPhaseCurve: false,
		},
		Sampler: SamplerConfig{
			Kind:                 scatter.KindHG.String(),
			Workers:              scatter.DefaultWorkers,
			Seed:                 0,
			DiagnosticsPerSecond: 10,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "scatterviz",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// SamplerKind returns the configured sampler kind.
func (c *Config) SamplerKind() (scatter.Kind, error) {
	return scatter.ParseKind(c.Sampler.Kind)
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	switch c.Graphics.Frontend {
	case FrontendImGui, FrontendSDL:
	default:
		return fmt.Errorf("graphics.frontend: unknown frontend %q", c.Graphics.Frontend)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}

	s := c.Session
	if s.SampleExponent < MinSampleExponent || s.SampleExponent > MaxSampleExponent {
		return fmt.Errorf("session.sample_exponent: %d outside [%d, %d]",
			s.SampleExponent, MinSampleExponent, MaxSampleExponent)
	}
	if math.IsNaN(float64(s.G)) || s.G < -1 || s.G > 1 {
		return fmt.Errorf("session.g: %v outside [-1, 1]", s.G)
	}
	if s.Length < MinLength || s.Length > MaxLength {
		return fmt.Errorf("session.length: %v outside [%d, %d]", s.Length, MinLength, MaxLength)
	}
	if s.Alpha < MinAlpha || s.Alpha > MaxAlpha {
		return fmt.Errorf("session.alpha: %v outside [%v, %v]", s.Alpha, MinAlpha, MaxAlpha)
	}

	if _, err := c.SamplerKind(); err != nil {
		return fmt.Errorf("sampler.kind: %w", err)
	}
	if w := c.Sampler.Workers; w <= 0 || w&(w-1) != 0 {
		return fmt.Errorf("sampler.workers: must be a positive power of two, got %d", w)
	}
	if c.Sampler.DiagnosticsPerSecond < 0 {
		return fmt.Errorf("sampler.diagnostics_per_second: must not be negative")
	}
	return nil
}
