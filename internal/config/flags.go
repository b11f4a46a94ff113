package config

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagFrontend = flag.String("frontend", "", "Frontend: imgui or sdl")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
	flagSampler  = flag.String("sampler", "", "Sampler: hg, hg-inverse or rayleigh")
	flagG        = flag.String("g", "", "Initial anisotropy coefficient in [-1, 1]")
	flagSamples  = flag.Int("samples", 0, "Initial sample count exponent (2^n samples)")
	flagSeed     = flag.Int64("seed", 0, "Random seed (0 = from clock)")
	flagWorkers  = flag.Int("workers", 0, "Sampler workers per batch (power of two)")
	flagLogFile  = flag.String("log-file", "", "Write logs to this file as well")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFrontend != "" {
		cfg.Graphics.Frontend = *flagFrontend
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSampler != "" {
		cfg.Sampler.Kind = *flagSampler
	}
	if *flagG != "" {
		g, err := strconv.ParseFloat(*flagG, 32)
		if err != nil {
			return fmt.Errorf("-g: %w", err)
		}
		cfg.Session.G = float32(g)
	}
	if *flagSamples > 0 {
		cfg.Session.SampleExponent = *flagSamples
	}
	if *flagSeed != 0 {
		cfg.Sampler.Seed = *flagSeed
	}
	if *flagWorkers > 0 {
		cfg.Sampler.Workers = *flagWorkers
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	return nil
}
