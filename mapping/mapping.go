// Package mapping converts spectroscopic wavenumbers into audio frequencies
// and polar plot radii.
//
// The audio mapping is a uniform linear scaling fixed by a single anchor
// pair: 1600 cm^-1 maps to 300 Hz. The radial mapping linearly interpolates
// between the lowest and highest wavenumber of a mode table.
package mapping

import (
	"errors"
	"fmt"
)

// SpeedOfLight is the speed of light in cm/s, used to express wavenumbers
// as physical frequencies before scaling into the audio band.
const SpeedOfLight = 2.99792458e10

// Default anchor: 1600 cm^-1 sounds at 300 Hz.
const (
	DefaultAnchorWavenumber = 1600.0
	DefaultAnchorFrequency  = 300.0
)

var (
	ErrInvalidAnchor = errors.New("mapping: anchor wavenumber and frequency must be positive")
	ErrInvalidRange  = errors.New("mapping: wavenumber range must be non-degenerate")
	ErrRadiusOrder   = errors.New("mapping: min radius must be less than max radius")
)

// FrequencyScale maps wavenumbers (cm^-1) to audio frequencies (Hz) via a
// constant ratio K = anchorWavenumber * c / anchorFrequency, so that
// f = c * nu / K.
type FrequencyScale struct {
	k float64
}

// NewFrequencyScale builds a scale anchored at the given pair.
func NewFrequencyScale(anchorWavenumber, anchorFrequency float64) (FrequencyScale, error) {
	if anchorWavenumber <= 0 || anchorFrequency <= 0 {
		return FrequencyScale{}, fmt.Errorf("%w: %f cm^-1 -> %f Hz", ErrInvalidAnchor, anchorWavenumber, anchorFrequency)
	}
	return FrequencyScale{k: anchorWavenumber * SpeedOfLight / anchorFrequency}, nil
}

// DefaultFrequencyScale returns the 1600 cm^-1 -> 300 Hz scale.
func DefaultFrequencyScale() FrequencyScale {
	s, err := NewFrequencyScale(DefaultAnchorWavenumber, DefaultAnchorFrequency)
	if err != nil {
		panic(err)
	}
	return s
}

// Frequency returns the audio frequency in Hz for a wavenumber in cm^-1.
func (s FrequencyScale) Frequency(wavenumber float64) float64 {
	return SpeedOfLight * wavenumber / s.k
}

// RadialScale linearly maps a wavenumber range onto a radius range.
type RadialScale struct {
	MinWavenumber float64
	MaxWavenumber float64
	MinRadius     float64
	MaxRadius     float64
}

// Validate checks that the scale parameters describe a usable mapping.
func (s *RadialScale) Validate() error {
	if s.MinWavenumber >= s.MaxWavenumber {
		return ErrInvalidRange
	}
	if s.MinRadius >= s.MaxRadius {
		return ErrRadiusOrder
	}
	return nil
}

// Radius returns the plot radius for a wavenumber. Inputs outside the
// configured wavenumber range extrapolate linearly.
func (s *RadialScale) Radius(wavenumber float64) float64 {
	u := (wavenumber - s.MinWavenumber) / (s.MaxWavenumber - s.MinWavenumber)
	return s.MinRadius + (s.MaxRadius-s.MinRadius)*u
}
