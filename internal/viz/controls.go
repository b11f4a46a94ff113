package viz

import (
	"fmt"

	"github.com/Faultbox/scatterviz/internal/engine/input"
	"github.com/Faultbox/scatterviz/internal/scatter"
	"github.com/Faultbox/scatterviz/internal/session"
)

const (
	gStep       = 0.05
	lengthStep  = 10
	alphaFactor = 1.25
)

// applyAction returns p changed by a keyboard action, clamped to the
// parameter ranges. ok is false for actions that do not touch parameters.
func applyAction(p session.Params, a input.Action) (session.Params, bool) {
	switch a {
	case input.ActionGUp:
		p.G += gStep
	case input.ActionGDown:
		p.G -= gStep
	case input.ActionMoreSamples:
		p.Exponent++
	case input.ActionFewerSamples:
		p.Exponent--
	case input.ActionSelectHG:
		p.Kind = scatter.KindHG
	case input.ActionSelectHGInverse:
		p.Kind = scatter.KindHGInverse
	case input.ActionSelectRayleigh:
		p.Kind = scatter.KindRayleigh
	case input.ActionAlphaUp:
		p.Alpha *= alphaFactor
	case input.ActionAlphaDown:
		p.Alpha /= alphaFactor
	case input.ActionLengthUp:
		p.Length += lengthStep
	case input.ActionLengthDown:
		p.Length -= lengthStep
	default:
		return p, false
	}
	return p.Clamped(), true
}

// windowTitle summarizes the session in one line for the window title.
func windowTitle(p session.Params, meanCos float32, err error) string {
	t := fmt.Sprintf("%s | %s", title, p.Kind.Label())
	if p.Kind.UsesG() {
		t += fmt.Sprintf(" g=%.2f", p.G)
	}
	t += fmt.Sprintf(" | n=2^%d | length %.0f | alpha %.3f | mean cos %.3f",
		p.Exponent, p.Length, p.Alpha, meanCos)
	if err != nil {
		t += " | " + err.Error()
	}
	return t
}
