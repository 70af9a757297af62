package envelope

import "math"

// PK generates a one-compartment oral pharmacokinetic envelope,
//
//	C(t) = exp(-k_e*t) - exp(-k_a*t)
//
// evaluated in physiological time and compressed onto the output duration.
// The elimination rate k_e derives from a published elimination half-life;
// the absorption rate is a fixed multiple k_a = AbsorptionRatio * k_e.
// The result is clipped at zero and normalized to a peak of exactly 1.
type PK struct {
	EliminationHalfLife float64 // physiological elimination half-life, seconds
	AbsorptionRatio     float64 // k_a / k_e, must be > 1
	PhysiologicalWindow float64 // physiological span mapped onto the output, seconds
	Duration            float64 // output duration, seconds
	SampleRate          float64 // output samples per second (or frames per second)
}

// Validate checks the pharmacokinetic parameters.
func (p *PK) Validate() error {
	if p.EliminationHalfLife <= 0 {
		return ErrInvalidHalfLife
	}
	if p.AbsorptionRatio <= 1 {
		return ErrInvalidRatio
	}
	if p.PhysiologicalWindow <= 0 {
		return ErrInvalidWindow
	}
	if p.Duration <= 0 {
		return ErrInvalidDuration
	}
	if p.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	return nil
}

// Rates returns the elimination and absorption rate constants in 1/s
// (physiological time).
func (p *PK) Rates() (ke, ka float64) {
	ke = math.Ln2 / p.EliminationHalfLife
	ka = p.AbsorptionRatio * ke
	return ke, ka
}

// PeakTime returns the analytic time of maximum concentration in
// physiological seconds, t_max = ln(k_a/k_e) / (k_a - k_e).
func (p *PK) PeakTime() float64 {
	ke, ka := p.Rates()
	return math.Log(ka/ke) / (ka - ke)
}

// Samples returns the number of output samples for the configured
// duration and rate.
func (p *PK) Samples() int {
	return int(math.Round(p.Duration * p.SampleRate))
}

// Generate evaluates the envelope over the full output duration.
func (p *PK) Generate() ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Samples()
	if n <= 0 {
		return nil, ErrInvalidSamples
	}

	ke, ka := p.Rates()
	compression := p.PhysiologicalWindow / p.Duration

	out := make([]float64, n)
	for i := range out {
		tPhys := float64(i) / p.SampleRate * compression
		c := math.Exp(-ke*tPhys) - math.Exp(-ka*tPhys)
		if c < 0 {
			c = 0
		}
		out[i] = c
	}

	normalizePeak(out)
	return out, nil
}

// normalizePeak scales buf in place so its maximum absolute value is 1.
// Buffers with a vanishing peak are left untouched.
func normalizePeak(buf []float64) {
	peak := 0.0
	for _, v := range buf {
		av := math.Abs(v)
		if av > peak {
			peak = av
		}
	}
	if peak <= 1e-12 {
		return
	}
	for i := range buf {
		buf[i] /= peak
	}
}
