package sigil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sonify/spectrum"
)

func evaporationAnimator(t *testing.T) *Animator {
	t.Helper()

	layout, err := NewEvaporationLayout(spectrum.Glycine())
	if err != nil {
		t.Fatal(err)
	}

	cfg := AnimConfig{Duration: 300, FPS: 8, Rotations: 1}
	a, err := NewAnimator(layout, cfg, EvaporationOpacity(0.95))
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestAnimConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AnimConfig
		wantErr error
	}{
		{"valid", AnimConfig{300, 8, 1}, nil},
		{"zero duration", AnimConfig{0, 8, 1}, ErrInvalidDuration},
		{"zero fps", AnimConfig{300, 0, 1}, ErrInvalidFPS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAnimatorFrameCount(t *testing.T) {
	a := evaporationAnimator(t)

	if got := a.FrameCount(); got != 2400 {
		t.Errorf("FrameCount() = %d, want 2400 (300 s at 8 fps)", got)
	}
}

func TestAnimatorFrameRange(t *testing.T) {
	a := evaporationAnimator(t)

	if _, err := a.Frame(-1); err == nil {
		t.Error("Frame(-1) accepted")
	}
	if _, err := a.Frame(a.FrameCount()); err == nil {
		t.Error("Frame(count) accepted")
	}
}

func TestAnimatorRadiiNeverChange(t *testing.T) {
	a := evaporationAnimator(t)

	first, err := a.Frame(0)
	if err != nil {
		t.Fatal(err)
	}

	for _, idx := range []int{1, 600, 1200, 2399} {
		f, err := a.Frame(idx)
		if err != nil {
			t.Fatal(err)
		}
		for j := range f.Markers {
			if f.Markers[j].Radius != first.Markers[j].Radius {
				t.Fatalf("frame %d marker %d radius changed", idx, j)
			}
			if f.Markers[j].Size != first.Markers[j].Size {
				t.Fatalf("frame %d marker %d size changed", idx, j)
			}
		}
	}
}

func TestAnimatorRotation(t *testing.T) {
	a := evaporationAnimator(t)

	f0, err := a.Frame(0)
	if err != nil {
		t.Fatal(err)
	}
	// Half the animation corresponds to half a turn.
	fHalf, err := a.Frame(1200)
	if err != nil {
		t.Fatal(err)
	}

	want := math.Pi
	got := fHalf.Markers[0].Angle - f0.Markers[0].Angle
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("rotation after half duration = %v rad, want pi", got)
	}
}

func TestAnimatorFramePurity(t *testing.T) {
	a := evaporationAnimator(t)

	f1, err := a.Frame(777)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := a.Frame(777)
	if err != nil {
		t.Fatal(err)
	}

	for j := range f1.Markers {
		if f1.Markers[j] != f2.Markers[j] {
			t.Fatalf("marker %d differs between identical frame requests", j)
		}
	}
}

func TestEvaporationOpacityTimeline(t *testing.T) {
	f := EvaporationOpacity(0.95)

	stretch := Marker{Group: spectrum.GroupStretch}
	backbone := Marker{Group: spectrum.GroupBackbone}
	skeletal := Marker{Group: spectrum.GroupSkeletal}

	// At the start only the stretch group is fully visible.
	if got := f(0, stretch); math.Abs(got-0.95) > 1e-12 {
		t.Errorf("stretch at u=0: %v, want 0.95", got)
	}
	if got := f(0, skeletal); got != 0 {
		t.Errorf("skeletal at u=0: %v, want 0", got)
	}

	// The stretch group is gone by u=0.4.
	if got := f(0.4, stretch); got != 0 {
		t.Errorf("stretch at u=0.4: %v, want 0", got)
	}

	// The backbone group peaks mid-animation.
	if got := f(0.5, backbone); math.Abs(got-0.95) > 1e-12 {
		t.Errorf("backbone at u=0.5: %v, want 0.95", got)
	}

	// The skeletal group plateaus after its rise.
	if got := f(0.6, skeletal); math.Abs(got-0.95) > 1e-12 {
		t.Errorf("skeletal at u=0.6: %v, want 0.95", got)
	}
}

func TestPKOpacityEnvelope(t *testing.T) {
	p := DefaultPKOpacityParams()
	f := PKOpacity(p)

	m := Marker{Intensity: 1}

	// At u=0 the envelope is zero, leaving the opacity floor.
	want := p.AlphaMin * (0.5 + 0.5*m.Intensity)
	if got := f(0, m); math.Abs(got-want) > 1e-12 {
		t.Errorf("opacity at u=0: %v, want %v", got, want)
	}

	// At the analytic peak the full-intensity marker reaches AlphaMax.
	ke := math.Ln2 / p.EliminationHalfLife
	ka := p.AbsorptionRatio * ke
	tMax := math.Log(ka/ke) / (ka - ke)
	uMax := tMax / p.PhysiologicalWindow

	if got := f(uMax, m); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("opacity at peak: %v, want 1", got)
	}

	// Weaker markers stay dimmer everywhere.
	weak := Marker{Intensity: 0}
	if f(uMax, weak) >= f(uMax, m) {
		t.Error("weak marker not dimmer than strong marker at peak")
	}
}
