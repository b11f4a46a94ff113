package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/scatterviz/internal/config"
	"github.com/Faultbox/scatterviz/internal/engine/renderer"
	"github.com/Faultbox/scatterviz/internal/logger"
	"github.com/Faultbox/scatterviz/internal/scatter"
	"github.com/Faultbox/scatterviz/internal/session"
)

const (
	panelWidth      = 300
	histogramBins   = 40
	histogramHeight = 60
)

// Panel is the "Configuration" window. Edits are written back to the
// session and take effect on its next update.
type Panel struct {
	ShowPhaseCurve bool
	verbose        bool
	status         string
}

// NewPanel creates a panel. verbose mirrors the starting log level.
func NewPanel(showPhaseCurve bool) *Panel {
	return &Panel{
		ShowPhaseCurve: showPhaseCurve,
		verbose:        logger.Level() == "debug",
	}
}

// SetStatus sets a one-line message shown at the bottom of the panel.
func (p *Panel) SetStatus(msg string) {
	p.status = msg
}

// Draw renders the panel for s.
func (p *Panel) Draw(s *session.Session) {
	x, y, _, _ := Viewport()
	imgui.SetNextWindowPos(imgui.NewVec2(x+10, y+10))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, 0))
	imgui.SetNextWindowBgAlpha(0.85)

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove | imgui.WindowFlagsAlwaysAutoResize
	if !imgui.BeginV("Configuration", nil, flags) {
		imgui.End()
		return
	}

	params := s.Params()
	if p.drawParams(&params) {
		s.SetParams(params)
	}

	imgui.Separator()
	p.drawStats(s, params)
	drawHistogram(s.CosineHistogram(histogramBins))

	imgui.Separator()
	imgui.Checkbox("Analytic curve", &p.ShowPhaseCurve)
	if imgui.Checkbox("Verbose logging", &p.verbose) {
		if p.verbose {
			logger.SetLevel("debug")
		} else {
			logger.SetLevel("info")
		}
	}

	if err := s.LastErr(); err != nil {
		c := renderer.ColorErrorMessage
		imgui.Spacing()
		imgui.TextColored(imgui.NewVec4(c.R, c.G, c.B, c.A), err.Error())
	}
	if p.status != "" {
		imgui.TextDisabled(p.status)
	}

	imgui.End()
}

// drawParams shows the sliders and the sampler selector. It reports whether
// anything changed.
func (p *Panel) drawParams(params *session.Params) bool {
	changed := false

	n := int32(params.Exponent)
	if imgui.SliderIntV("sample n (power 2)", &n, config.MinSampleExponent, config.MaxSampleExponent, "%d", imgui.SliderFlagsNone) {
		params.Exponent = int(n)
		changed = true
	}

	imgui.BeginDisabledV(!params.Kind.UsesG())
	if imgui.SliderFloatV("HG coefficient", &params.G, -1, 1, "%.3f", imgui.SliderFlagsNone) {
		changed = true
	}
	imgui.EndDisabled()

	if imgui.SliderFloatV("Length", &params.Length, config.MinLength, config.MaxLength, "%.0f", imgui.SliderFlagsNone) {
		changed = true
	}
	if imgui.SliderFloatV("Alpha", &params.Alpha, config.MinAlpha, config.MaxAlpha, "%.3f", imgui.SliderFlagsNone) {
		changed = true
	}

	imgui.Spacing()
	imgui.Text("Sampler:")
	for _, k := range scatter.Kinds() {
		if imgui.SelectableBoolV(k.Label(), k == params.Kind, 0, imgui.NewVec2(0, 0)) && k != params.Kind {
			params.Kind = k
			changed = true
		}
	}

	return changed
}

func (p *Panel) drawStats(s *session.Session, params session.Params) {
	imgui.Text(fmt.Sprintf("samples: %d", params.SampleCount()))
	imgui.Text(fmt.Sprintf("mean cos: %.4f", s.MeanCosine()))
	imgui.SameLine()
	imgui.TextDisabled(fmt.Sprintf("(analytic %.4f)", params.Kind.MeanCosine(params.G)))
	if !params.Kind.Exact() {
		imgui.TextColored(imgui.NewVec4(1, 0.75, 0.3, 1), "approximate: 2D HG construction")
	}
}

// drawHistogram plots the distribution of scattering cosines from -1 (left)
// to 1 (right), scaled to the fullest bin.
func drawHistogram(hist []int) {
	peak := 0
	for _, n := range hist {
		peak = max(peak, n)
	}

	width := imgui.ContentRegionAvail().X
	origin := imgui.CursorScreenPos()
	drawList := imgui.WindowDrawList()

	bg := imgui.ColorU32Vec4(imgui.NewVec4(0.05, 0.05, 0.08, 1))
	drawList.AddRectFilledV(origin, imgui.NewVec2(origin.X+width, origin.Y+histogramHeight), bg, 0, 0)

	if peak > 0 {
		bar := renderer.ColorRed.WithAlpha(0.8).Packed()
		barWidth := width / float32(len(hist))
		for i, n := range hist {
			h := histogramHeight * float32(n) / float32(peak)
			x0 := origin.X + float32(i)*barWidth
			drawList.AddRectFilledV(
				imgui.NewVec2(x0, origin.Y+histogramHeight-h),
				imgui.NewVec2(x0+barWidth-1, origin.Y+histogramHeight),
				bar, 0, 0,
			)
		}
	}

	imgui.Dummy(imgui.NewVec2(width, histogramHeight))
	imgui.TextDisabled("cos -1 .. 1")
}
