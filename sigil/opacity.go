package sigil

import (
	"math"

	"github.com/cwbudde/algo-sonify/spectrum"
)

// Group opacity envelopes over normalized time u in [0, 1].

// stretchEnvelope: NH3+/CH2 group, strong at the start, gone by u=0.4.
func stretchEnvelope(u float64) float64 {
	return clip01(1.0 - u/0.4)
}

// backboneEnvelope: COO-/backbone group, Gaussian bump around u=0.5.
func backboneEnvelope(u float64) float64 {
	d := u - 0.5
	return math.Exp(-d * d / (2 * 0.15 * 0.15))
}

// skeletalEnvelope: skeletal group, rises after u=0.2 and fades at the end.
func skeletalEnvelope(u float64) float64 {
	rise := clip01((u - 0.2) / 0.4)
	fall := clip01((1.0 - u) / 0.4)
	return math.Min(rise, fall)
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// EvaporationOpacity drives each marker with its functional-group envelope
// scaled to alphaMax.
func EvaporationOpacity(alphaMax float64) OpacityFunc {
	return func(u float64, m Marker) float64 {
		env := 0.0
		switch m.Group {
		case spectrum.GroupStretch:
			env = stretchEnvelope(u)
		case spectrum.GroupBackbone:
			env = backboneEnvelope(u)
		default:
			env = skeletalEnvelope(u)
		}
		return alphaMax * env
	}
}

// PKOpacityParams configures the global pharmacokinetic opacity envelope.
type PKOpacityParams struct {
	EliminationHalfLife float64 // physiological seconds
	AbsorptionRatio     float64 // k_a / k_e
	PhysiologicalWindow float64 // physiological span mapped onto the animation
	AlphaMin            float64 // opacity floor
	AlphaMax            float64 // opacity at peak concentration
}

// DefaultPKOpacityParams matches the reference animation: elimination
// half-life 40 min, absorption 1.5x faster, 4 h window compressed onto the
// render, opacity between 0.10 and 1.00.
func DefaultPKOpacityParams() PKOpacityParams {
	return PKOpacityParams{
		EliminationHalfLife: 40 * 60,
		AbsorptionRatio:     1.5,
		PhysiologicalWindow: 4 * 3600,
		AlphaMin:            0.10,
		AlphaMax:            1.00,
	}
}

// PKOpacity drives all markers with a single absorption/elimination
// envelope, weighted per marker by (0.5 + 0.5*intensity) so stronger modes
// stay brighter. The envelope is normalized by its analytic maximum at
// t_max = ln(k_a/k_e)/(k_a - k_e).
func PKOpacity(p PKOpacityParams) OpacityFunc {
	ke := math.Ln2 / p.EliminationHalfLife
	ka := p.AbsorptionRatio * ke

	tMax := math.Log(ka/ke) / (ka - ke)
	cMax := math.Exp(-ke*tMax) - math.Exp(-ka*tMax)

	return func(u float64, m Marker) float64 {
		tPhys := u * p.PhysiologicalWindow
		c := math.Exp(-ke*tPhys) - math.Exp(-ka*tPhys)
		if c < 0 {
			c = 0
		}
		env := c / cMax

		alpha := p.AlphaMin + (p.AlphaMax-p.AlphaMin)*env
		return clip01(alpha * (0.5 + 0.5*m.Intensity))
	}
}
