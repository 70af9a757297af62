// Package spectrum holds the vibrational mode table of the glycine
// zwitterion and helpers for querying it.
//
// The table lists IR/Raman peak positions (wavenumber, cm^-1) together with
// relative intensities. Intensities are normalized so that their sum is 1,
// which keeps the downstream synthesis gain independent of the number of
// modes.
package spectrum

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTable        = errors.New("spectrum: mode table must not be empty")
	ErrZeroIntensity     = errors.New("spectrum: intensities must not sum to zero")
	ErrNegativeIntensity = errors.New("spectrum: intensity must be >= 0")
)

// Group classifies a vibrational mode by functional group.
type Group int

const (
	// GroupStretch covers the NH3+/CH2 stretching region (>= 2900 cm^-1).
	GroupStretch Group = iota
	// GroupBackbone covers COO-/backbone modes (1200..2900 cm^-1).
	GroupBackbone
	// GroupSkeletal covers skeletal and low-frequency modes (< 1200 cm^-1).
	GroupSkeletal
)

// String returns a short human-readable group label.
func (g Group) String() string {
	switch g {
	case GroupStretch:
		return "NH3+/CH2"
	case GroupBackbone:
		return "COO-/backbone"
	case GroupSkeletal:
		return "skeletal"
	default:
		return fmt.Sprintf("Group(%d)", int(g))
	}
}

// Mode is a single vibrational mode.
type Mode struct {
	Wavenumber float64 // peak position in cm^-1
	Intensity  float64 // relative intensity, normalized over the table
}

// Group classifies the mode by its wavenumber region.
func (m Mode) Group() Group {
	switch {
	case m.Wavenumber >= 2900:
		return GroupStretch
	case m.Wavenumber >= 1200:
		return GroupBackbone
	default:
		return GroupSkeletal
	}
}

// Table is an immutable, intensity-normalized set of vibrational modes.
type Table struct {
	modes []Mode
}

// NewTable normalizes the given modes so intensities sum to 1 and returns
// the resulting table. The input slice is not modified.
func NewTable(modes []Mode) (Table, error) {
	if len(modes) == 0 {
		return Table{}, ErrEmptyTable
	}

	sum := 0.0
	for _, m := range modes {
		if m.Intensity < 0 {
			return Table{}, fmt.Errorf("%w: %f at %f cm^-1", ErrNegativeIntensity, m.Intensity, m.Wavenumber)
		}
		if m.Wavenumber <= 0 {
			return Table{}, fmt.Errorf("spectrum: wavenumber must be > 0: %f", m.Wavenumber)
		}
		sum += m.Intensity
	}

	if sum == 0 {
		return Table{}, ErrZeroIntensity
	}

	out := make([]Mode, len(modes))
	for i, m := range modes {
		out[i] = Mode{Wavenumber: m.Wavenumber, Intensity: m.Intensity / sum}
	}

	return Table{modes: out}, nil
}

// Len returns the number of modes.
func (t Table) Len() int {
	return len(t.modes)
}

// Mode returns the i-th mode.
func (t Table) Mode(i int) Mode {
	return t.modes[i]
}

// Modes returns a copy of the mode slice.
func (t Table) Modes() []Mode {
	out := make([]Mode, len(t.modes))
	copy(out, t.modes)
	return out
}

// MinWavenumber returns the lowest peak position in the table.
func (t Table) MinWavenumber() float64 {
	min := t.modes[0].Wavenumber
	for _, m := range t.modes[1:] {
		if m.Wavenumber < min {
			min = m.Wavenumber
		}
	}
	return min
}

// MaxWavenumber returns the highest peak position in the table.
func (t Table) MaxWavenumber() float64 {
	max := t.modes[0].Wavenumber
	for _, m := range t.modes[1:] {
		if m.Wavenumber > max {
			max = m.Wavenumber
		}
	}
	return max
}

// MaxIntensity returns the largest normalized intensity in the table.
func (t Table) MaxIntensity() float64 {
	max := t.modes[0].Intensity
	for _, m := range t.modes[1:] {
		if m.Intensity > max {
			max = m.Intensity
		}
	}
	return max
}

// IntensitySum returns the sum of normalized intensities (1 up to rounding).
func (t Table) IntensitySum() float64 {
	sum := 0.0
	for _, m := range t.modes {
		sum += m.Intensity
	}
	return sum
}
