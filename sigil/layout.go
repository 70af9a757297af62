package sigil

import (
	"errors"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-sonify/mapping"
	"github.com/cwbudde/algo-sonify/spectrum"
)

var (
	ErrEmptyLayout = errors.New("sigil: layout must not be empty")
)

// Color is an RGBA quadruple with components in [0, 1].
type Color [4]float64

// Group base colors for the evaporation sigil.
var (
	colorStretch  = Color{1.0, 0.6, 0.6, 1.0} // NH3+/CH2
	colorBackbone = Color{0.6, 0.9, 1.0, 1.0} // COO-/backbone
	colorSkeletal = Color{0.8, 0.8, 0.8, 1.0} // skeletal / low modes

	// Single neutral color for the PK sigil.
	colorPK = Color{0.8, 0.9, 1.0, 1.0}
)

// GroupColor returns the base color of a functional group.
func GroupColor(g spectrum.Group) Color {
	switch g {
	case spectrum.GroupStretch:
		return colorStretch
	case spectrum.GroupBackbone:
		return colorBackbone
	default:
		return colorSkeletal
	}
}

// Marker is one mode placed on the polar canvas. The radius never changes
// after layout; animation varies only angle and opacity.
type Marker struct {
	Angle     float64 // base polar angle in radians
	Radius    float64 // fixed radius in [0, 1]
	Size      float64 // marker area, scatter-style
	Color     Color   // base color; alpha is replaced per frame
	Group     spectrum.Group
	Intensity float64 // normalized mode intensity
}

// Layout is an immutable arrangement of markers.
type Layout struct {
	markers []Marker
}

// Len returns the number of markers.
func (l *Layout) Len() int {
	return len(l.markers)
}

// Marker returns the i-th marker.
func (l *Layout) Marker(i int) Marker {
	return l.markers[i]
}

// Markers returns a copy of the marker slice.
func (l *Layout) Markers() []Marker {
	out := make([]Marker, len(l.markers))
	copy(out, l.markers)
	return out
}

// Quadrant centers for the evaporation sigil, one per functional group.
var quadrantCenter = map[spectrum.Group]float64{
	spectrum.GroupStretch:  45 * math.Pi / 180,  // quadrant I
	spectrum.GroupBackbone: 135 * math.Pi / 180, // quadrant II
	spectrum.GroupSkeletal: 225 * math.Pi / 180, // quadrant III
}

// NewEvaporationLayout places each functional group on its quadrant,
// spreading the group members over a 30 degree arc. Radii span
// [0.30, 1.00], marker sizes 80..400 scaled by intensity relative to the
// strongest mode.
func NewEvaporationLayout(table spectrum.Table) (*Layout, error) {
	if table.Len() == 0 {
		return nil, spectrum.ErrEmptyTable
	}

	radial := &mapping.RadialScale{
		MinWavenumber: table.MinWavenumber(),
		MaxWavenumber: table.MaxWavenumber(),
		MinRadius:     0.30,
		MaxRadius:     1.00,
	}
	if err := radial.Validate(); err != nil {
		return nil, err
	}

	modes := table.Modes()
	maxIntensity := table.MaxIntensity()

	// Count group members to spread them evenly over the arc.
	counts := map[spectrum.Group]int{}
	for _, m := range modes {
		counts[m.Group()]++
	}

	const spread = 30 * math.Pi / 180
	const sizeMin, sizeMax = 80.0, 400.0

	seen := map[spectrum.Group]int{}
	markers := make([]Marker, len(modes))
	for i, m := range modes {
		g := m.Group()
		n := counts[g]
		k := seen[g]
		seen[g]++

		offset := 0.0
		if n > 1 {
			offset = -spread/2 + spread*float64(k)/float64(n-1)
		}

		markers[i] = Marker{
			Angle:     quadrantCenter[g] + offset,
			Radius:    radial.Radius(m.Wavenumber),
			Size:      sizeMin + (sizeMax-sizeMin)*m.Intensity/maxIntensity,
			Color:     GroupColor(g),
			Group:     g,
			Intensity: m.Intensity,
		}
	}

	return &Layout{markers: markers}, nil
}

// NewPKLayout distributes all modes approximately evenly around the circle
// with a small deterministic angular jitter to avoid perfect symmetry.
// Radii span [0.25, 0.95], marker sizes 40..200.
func NewPKLayout(table spectrum.Table, seed int64) (*Layout, error) {
	if table.Len() == 0 {
		return nil, spectrum.ErrEmptyTable
	}

	radial := &mapping.RadialScale{
		MinWavenumber: table.MinWavenumber(),
		MaxWavenumber: table.MaxWavenumber(),
		MinRadius:     0.25,
		MaxRadius:     0.95,
	}
	if err := radial.Validate(); err != nil {
		return nil, err
	}

	modes := table.Modes()
	rng := rand.New(rand.NewSource(seed))

	const sizeMin, sizeMax = 40.0, 200.0
	jitterMax := math.Pi / 24

	markers := make([]Marker, len(modes))
	for i, m := range modes {
		base := 2 * math.Pi * float64(i) / float64(len(modes))
		jitter := (rng.Float64()*2 - 1) * jitterMax

		markers[i] = Marker{
			Angle:     base + jitter,
			Radius:    radial.Radius(m.Wavenumber),
			Size:      sizeMin + (sizeMax-sizeMin)*m.Intensity,
			Color:     colorPK,
			Group:     m.Group(),
			Intensity: m.Intensity,
		}
	}

	return &Layout{markers: markers}, nil
}
