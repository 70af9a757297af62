package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sonify/envelope"
	"github.com/cwbudde/algo-sonify/mapping"
	"github.com/cwbudde/algo-sonify/spectrum"
)

// PKSettings selects the pharmacokinetic timecourse for RenderPK.
type PKSettings struct {
	EliminationHalfLife float64 // physiological seconds
	AbsorptionRatio     float64 // k_a / k_e
	PhysiologicalWindow float64 // physiological span mapped onto the render
}

// DefaultPKSettings returns the published glycine elimination half-life
// (~41 min IV load) with k_a = 1.2*k_e over a 4 h window.
func DefaultPKSettings() PKSettings {
	return PKSettings{
		EliminationHalfLife: 41 * 60,
		AbsorptionRatio:     1.2,
		PhysiologicalWindow: 4 * 3600,
	}
}

// Renderer synthesizes stereo audio from a vibrational mode table.
type Renderer struct {
	cfg   Config
	table spectrum.Table
	scale mapping.FrequencyScale
}

// NewRenderer creates a renderer for the given table.
func NewRenderer(table spectrum.Table, opts ...Option) (*Renderer, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if table.Len() == 0 {
		return nil, spectrum.ErrEmptyTable
	}

	return &Renderer{
		cfg:   cfg,
		table: table,
		scale: mapping.DefaultFrequencyScale(),
	}, nil
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// RenderEvaporation renders the evaporation model: per-mode half-life
// decay, shared dephasing jitter, stereo detune and the thermal bath.
func (r *Renderer) RenderEvaporation() (*StereoBuffer, error) {
	cfg := r.cfg
	n := int(cfg.SampleRate * cfg.Duration)
	if n <= 0 {
		return nil, ErrInvalidDuration
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	// Shared slow jitter field for all modes.
	jitter := make([]float64, n)
	if cfg.JitterDepth > 0 {
		sn := &envelope.SmoothNoise{Block: cfg.JitterBlock, Depth: cfg.JitterDepth, Seed: cfg.Seed}
		var err error
		jitter, err = sn.Generate(n)
		if err != nil {
			return nil, fmt.Errorf("synth: jitter: %w", err)
		}
	}

	rule := &envelope.HalfLifeRule{
		MinWavenumber: r.table.MinWavenumber(),
		MaxWavenumber: r.table.MaxWavenumber(),
		Shortest:      cfg.HalfLifeShortest,
		Longest:       cfg.HalfLifeLongest,
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	fadeIn := envelope.FadeSamples(cfg.FadeIn, cfg.SampleRate)
	fadeOut := envelope.FadeSamples(cfg.FadeOut, cfg.SampleRate)

	buf := NewStereoBuffer(n, cfg.SampleRate)
	phase := make([]float64, n)
	sig := make([]float64, n)
	scaled := make([]float64, n)

	for _, m := range r.table.Modes() {
		f := r.scale.Frequency(m.Wavenumber)
		if cfg.ModeDetuneSigma > 0 {
			// Tiny per-mode detune of the center frequency.
			f *= 1.0 + rng.NormFloat64()*cfg.ModeDetuneSigma
		}

		d := &envelope.Decay{HalfLife: rule.HalfLife(m.Wavenumber), SampleRate: cfg.SampleRate}
		env, err := d.Generate(n)
		if err != nil {
			return nil, err
		}
		envelope.ApplyFade(env, fadeIn, fadeOut)

		// Instantaneous phase from the cumulative sum of the jittered
		// instantaneous frequency.
		acc := 0.0
		for i := range phase {
			acc += f * (1.0 + jitter[i])
			phase[i] = 2 * math.Pi * acc / cfg.SampleRate
		}

		det := cfg.StereoDetune
		accumulatePartial(buf.L, sig, scaled, phase, env, 1.0-det/2, m.Intensity)
		accumulatePartial(buf.R, sig, scaled, phase, env, 1.0+det/2, m.Intensity)
	}

	if cfg.BathGain > 0 {
		r.addBath(buf, rng)
	}

	if err := buf.Normalize(cfg.TargetPeak); err != nil {
		return nil, err
	}
	return buf, nil
}

// RenderPK renders the conservative kinetic model: one shared
// pharmacokinetic envelope for all modes, no jitter, detune or bath.
func (r *Renderer) RenderPK(settings PKSettings) (*StereoBuffer, error) {
	cfg := r.cfg

	pk := &envelope.PK{
		EliminationHalfLife: settings.EliminationHalfLife,
		AbsorptionRatio:     settings.AbsorptionRatio,
		PhysiologicalWindow: settings.PhysiologicalWindow,
		Duration:            cfg.Duration,
		SampleRate:          cfg.SampleRate,
	}
	env, err := pk.Generate()
	if err != nil {
		return nil, err
	}

	// Short technical fade to avoid clicks, no kinetic meaning.
	fadeIn := envelope.FadeSamples(cfg.FadeIn, cfg.SampleRate)
	fadeOut := envelope.FadeSamples(cfg.FadeOut, cfg.SampleRate)
	envelope.ApplyFade(env, fadeIn, fadeOut)

	n := len(env)
	buf := NewStereoBuffer(n, cfg.SampleRate)
	phase := make([]float64, n)
	sig := make([]float64, n)
	scaled := make([]float64, n)

	for _, m := range r.table.Modes() {
		f := r.scale.Frequency(m.Wavenumber)

		step := 2 * math.Pi * f / cfg.SampleRate
		for i := range phase {
			phase[i] = step * float64(i)
		}

		// Both channels receive the identical partial.
		accumulatePartial(buf.L, sig, scaled, phase, env, 1.0, m.Intensity)
		accumulatePartial(buf.R, sig, scaled, phase, env, 1.0, m.Intensity)
	}

	if err := buf.Normalize(cfg.TargetPeak); err != nil {
		return nil, err
	}
	return buf, nil
}

// accumulatePartial writes sin(phase*phaseScale) into sig, applies the
// envelope, scales by the mode intensity and adds the result to dst.
// sig and scaled are caller-owned scratch buffers.
func accumulatePartial(dst, sig, scaled, phase, env []float64, phaseScale, intensity float64) {
	for i := range sig {
		sig[i] = math.Sin(phase[i] * phaseScale)
	}
	vecmath.MulBlockInPlace(sig, env)
	vecmath.ScaleBlock(scaled, sig, intensity)
	vecmath.AddBlockInPlace(dst, scaled)
}

// addBath mixes the solvent continuum into both channels: low-passed
// white noise, peak-normalized, rising linearly over the final BathRise
// seconds of the render.
func (r *Renderer) addBath(buf *StereoBuffer, rng *rand.Rand) {
	cfg := r.cfg
	n := buf.Frames()

	y := make([]float64, n)
	alpha := (2 * math.Pi * cfg.BathCutoff) / (2*math.Pi*cfg.BathCutoff + cfg.SampleRate)
	for i := 1; i < n; i++ {
		y[i] = y[i-1] + alpha*(rng.NormFloat64()-y[i-1])
	}

	peak := 0.0
	for _, v := range y {
		if av := math.Abs(v); av > peak {
			peak = av
		}
	}
	if peak > 1e-9 {
		for i := range y {
			y[i] /= peak
		}
	}

	riseStart := cfg.Duration - cfg.BathRise
	for i := range y {
		t := float64(i) / cfg.SampleRate
		rise := (t - riseStart) / cfg.BathRise
		if rise < 0 {
			rise = 0
		} else if rise > 1 {
			rise = 1
		}
		v := cfg.BathGain * rise * y[i]
		buf.L[i] += v
		buf.R[i] += v
	}
}
