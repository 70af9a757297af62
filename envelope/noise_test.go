package envelope

import (
	"math"
	"testing"
)

func TestSmoothNoiseValidation(t *testing.T) {
	tests := []struct {
		name    string
		noise   SmoothNoise
		wantErr error
	}{
		{"valid", SmoothNoise{Block: 500, Depth: 0.005, Seed: 42}, nil},
		{"zero block", SmoothNoise{Block: 0, Depth: 0.005}, ErrInvalidBlock},
		{"negative depth", SmoothNoise{Block: 500, Depth: -1}, ErrNegativeDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.noise.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSmoothNoiseDeterministic(t *testing.T) {
	s := &SmoothNoise{Block: 500, Depth: 0.005, Seed: 42}

	a, err := s.Generate(10000)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Generate(10000)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("jitter[%d] differs between runs with equal seed", i)
		}
	}
}

func TestSmoothNoiseSeedSensitivity(t *testing.T) {
	a, err := (&SmoothNoise{Block: 500, Depth: 0.005, Seed: 1}).Generate(5000)
	if err != nil {
		t.Fatal(err)
	}
	b, err := (&SmoothNoise{Block: 500, Depth: 0.005, Seed: 2}).Generate(5000)
	if err != nil {
		t.Fatal(err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical jitter")
	}
}

func TestSmoothNoisePeakEqualsDepth(t *testing.T) {
	s := &SmoothNoise{Block: 250, Depth: 0.005, Seed: 42}

	out, err := s.Generate(20000)
	if err != nil {
		t.Fatal(err)
	}

	peak := 0.0
	for _, v := range out {
		if av := math.Abs(v); av > peak {
			peak = av
		}
	}

	if math.Abs(peak-s.Depth) > 1e-12 {
		t.Errorf("peak = %v, want %v", peak, s.Depth)
	}
}

func TestSmoothNoiseSmoothness(t *testing.T) {
	s := &SmoothNoise{Block: 500, Depth: 1, Seed: 7}

	out, err := s.Generate(50000)
	if err != nil {
		t.Fatal(err)
	}

	// Cosine interpolation across 500-sample blocks bounds the per-sample
	// step well below the breakpoint scale.
	maxStep := 0.0
	for i := 1; i < len(out); i++ {
		step := math.Abs(out[i] - out[i-1])
		if step > maxStep {
			maxStep = step
		}
	}

	if maxStep > 0.05 {
		t.Errorf("max per-sample step = %v, want < 0.05 for block=500", maxStep)
	}
}

func TestApplyFade(t *testing.T) {
	buf := make([]float64, 100)
	for i := range buf {
		buf[i] = 1
	}

	ApplyFade(buf, 10, 10)

	if buf[0] != 0 {
		t.Errorf("first sample = %v, want 0", buf[0])
	}
	if buf[99] != 0 {
		t.Errorf("last sample = %v, want 0", buf[99])
	}
	if buf[9] != 1 {
		t.Errorf("end of fade-in = %v, want 1", buf[9])
	}
	if buf[50] != 1 {
		t.Errorf("interior sample = %v, want untouched", buf[50])
	}

	for i := 1; i < 10; i++ {
		if buf[i] <= buf[i-1] {
			t.Fatalf("fade-in not increasing at %d", i)
		}
	}
}

func TestApplyFadeClamps(t *testing.T) {
	buf := []float64{1, 1, 1}

	// Oversized fades must not panic and must still taper the edges.
	ApplyFade(buf, 10, 10)

	if buf[0] != 0 || buf[2] != 0 {
		t.Errorf("edges = %v, %v, want 0, 0", buf[0], buf[2])
	}
}

func TestFadeSamples(t *testing.T) {
	if got := FadeSamples(0.1, 22050); got != 2205 {
		t.Errorf("FadeSamples(0.1, 22050) = %d, want 2205", got)
	}
	if got := FadeSamples(-1, 22050); got != 0 {
		t.Errorf("FadeSamples(-1, 22050) = %d, want 0", got)
	}
}
