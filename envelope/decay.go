package envelope

import (
	"errors"
	"math"
)

// Errors returned by envelope generators.
var (
	ErrInvalidHalfLife   = errors.New("envelope: half-life must be positive")
	ErrInvalidSampleRate = errors.New("envelope: sample rate must be positive")
	ErrInvalidDuration   = errors.New("envelope: duration must be positive")
	ErrInvalidSamples    = errors.New("envelope: sample count must be positive")
	ErrInvalidRatio      = errors.New("envelope: absorption ratio must be > 1")
	ErrInvalidWindow     = errors.New("envelope: physiological window must be positive")
	ErrHalfLifeOrder     = errors.New("envelope: shortest half-life must not exceed longest")
	ErrInvalidRange      = errors.New("envelope: wavenumber range must be non-degenerate")
	ErrInvalidBlock      = errors.New("envelope: noise block must be >= 1")
	ErrNegativeDepth     = errors.New("envelope: noise depth must be >= 0")
)

// Decay generates an exponential half-life decay envelope,
// env(t) = exp(-ln2 * t / HalfLife), which starts at exactly 1.
type Decay struct {
	HalfLife   float64 // half-life in seconds
	SampleRate float64 // samples per second (or frames per second)
}

// Validate checks the decay parameters.
func (d *Decay) Validate() error {
	if d.HalfLife <= 0 {
		return ErrInvalidHalfLife
	}
	if d.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	return nil
}

// Generate returns the decay envelope evaluated at the given number of
// sample instants.
func (d *Decay) Generate(samples int) ([]float64, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if samples <= 0 {
		return nil, ErrInvalidSamples
	}

	out := make([]float64, samples)
	rate := math.Ln2 / d.HalfLife
	for i := range out {
		t := float64(i) / d.SampleRate
		out[i] = math.Exp(-rate * t)
	}
	return out, nil
}

// HalfLifeRule interpolates a per-mode half-life from the wavenumber:
// the highest wavenumber in the range decays fastest (Shortest), the
// lowest slowest (Longest). The mapping direction is an empirically
// motivated choice, not a derived one.
type HalfLifeRule struct {
	MinWavenumber float64
	MaxWavenumber float64
	Shortest      float64 // half-life at MaxWavenumber, seconds
	Longest       float64 // half-life at MinWavenumber, seconds
}

// Validate checks the rule parameters.
func (r *HalfLifeRule) Validate() error {
	if r.MinWavenumber >= r.MaxWavenumber {
		return ErrInvalidRange
	}
	if r.Shortest <= 0 || r.Longest <= 0 {
		return ErrInvalidHalfLife
	}
	if r.Shortest > r.Longest {
		return ErrHalfLifeOrder
	}
	return nil
}

// HalfLife returns the half-life in seconds for a wavenumber.
func (r *HalfLifeRule) HalfLife(wavenumber float64) float64 {
	u := (wavenumber - r.MinWavenumber) / (r.MaxWavenumber - r.MinWavenumber + 1e-12)
	return r.Shortest + (r.Longest-r.Shortest)*(1.0-u)
}
