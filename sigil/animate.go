package sigil

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidFPS      = errors.New("sigil: frame rate must be positive")
	ErrInvalidDuration = errors.New("sigil: duration must be positive")
	ErrFrameRange      = errors.New("sigil: frame index out of range")
	ErrNilOpacity      = errors.New("sigil: opacity function must not be nil")
)

// AnimConfig describes the animation timebase.
type AnimConfig struct {
	Duration  float64 // total length in seconds
	FPS       int     // frames per second
	Rotations float64 // full turns over the total duration, 0 disables rotation
}

// Validate checks the animation parameters.
func (c *AnimConfig) Validate() error {
	if c.Duration <= 0 {
		return ErrInvalidDuration
	}
	if c.FPS <= 0 {
		return ErrInvalidFPS
	}
	return nil
}

// FrameMarker is a marker resolved for one frame.
type FrameMarker struct {
	Angle  float64 // rotated polar angle in radians
	Radius float64 // fixed layout radius
	Size   float64
	Color  Color // base color with the frame alpha applied
}

// Frame is a fully resolved animation frame.
type Frame struct {
	Index   int
	Time    float64 // seconds since the start
	Markers []FrameMarker
}

// OpacityFunc returns a marker's opacity in [0, 1] at normalized time
// u = t / duration.
type OpacityFunc func(u float64, m Marker) float64

// Animator resolves animation frames from a layout. Frames are pure
// functions of the frame index.
type Animator struct {
	layout  *Layout
	cfg     AnimConfig
	opacity OpacityFunc
	omega   float64 // angular velocity in rad/s
}

// NewAnimator creates an animator over the given layout.
func NewAnimator(layout *Layout, cfg AnimConfig, opacity OpacityFunc) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if layout == nil || layout.Len() == 0 {
		return nil, ErrEmptyLayout
	}
	if opacity == nil {
		return nil, ErrNilOpacity
	}

	return &Animator{
		layout:  layout,
		cfg:     cfg,
		opacity: opacity,
		omega:   2 * math.Pi * cfg.Rotations / cfg.Duration,
	}, nil
}

// FrameCount returns the total number of frames.
func (a *Animator) FrameCount() int {
	return int(a.cfg.Duration * float64(a.cfg.FPS))
}

// Frame resolves the i-th frame.
func (a *Animator) Frame(i int) (Frame, error) {
	count := a.FrameCount()
	if i < 0 || i >= count {
		return Frame{}, fmt.Errorf("%w: %d of %d", ErrFrameRange, i, count)
	}

	t := a.cfg.Duration * float64(i) / float64(count)
	u := t / a.cfg.Duration

	markers := make([]FrameMarker, a.layout.Len())
	for j := range markers {
		m := a.layout.Marker(j)

		alpha := a.opacity(u, m)
		if alpha < 0 {
			alpha = 0
		} else if alpha > 1 {
			alpha = 1
		}

		c := m.Color
		c[3] = alpha

		markers[j] = FrameMarker{
			Angle:  m.Angle + a.omega*t,
			Radius: m.Radius,
			Size:   m.Size,
			Color:  c,
		}
	}

	return Frame{Index: i, Time: t, Markers: markers}, nil
}
