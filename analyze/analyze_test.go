package analyze_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sonify/analyze"
	"github.com/cwbudde/algo-sonify/internal/testutil"
	"github.com/cwbudde/algo-sonify/mapping"
	"github.com/cwbudde/algo-sonify/spectrum"
	"github.com/cwbudde/algo-sonify/synth"
)

func TestPeaksValidation(t *testing.T) {
	sig := testutil.DeterministicSine(300, 8000, 1, 8000)

	tests := []struct {
		name       string
		signal     []float64
		sampleRate float64
		count      int
	}{
		{"empty signal", nil, 8000, 1},
		{"zero sample rate", sig, 0, 1},
		{"zero count", sig, 8000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := analyze.Peaks(tt.signal, tt.sampleRate, tt.count); err == nil {
				t.Error("Peaks() accepted invalid input")
			}
		})
	}
}

func TestPeaksSingleTone(t *testing.T) {
	const sr = 8000
	sig := testutil.DeterministicSine(300, sr, 1, 4*sr)

	peaks, err := analyze.Peaks(sig, sr, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(peaks) != 1 {
		t.Fatalf("got %d peaks, want 1", len(peaks))
	}

	if got := peaks[0].Frequency; math.Abs(got-300) > 0.5 {
		t.Errorf("peak frequency = %v, want 300 +- 0.5", got)
	}
}

func TestPeaksTwoTonesOrdering(t *testing.T) {
	const sr = 8000
	n := 4 * sr

	sig := testutil.DeterministicSine(300, sr, 1, n)
	weak := testutil.DeterministicSine(96.1875, sr, 0.5, n)
	for i := range sig {
		sig[i] += weak[i]
	}

	peaks, err := analyze.Peaks(sig, sr, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(peaks) != 2 {
		t.Fatalf("got %d peaks, want 2", len(peaks))
	}

	if peaks[0].Magnitude < peaks[1].Magnitude {
		t.Error("peaks not ordered by descending magnitude")
	}
	if got := peaks[0].Frequency; math.Abs(got-300) > 1 {
		t.Errorf("strongest peak = %v Hz, want ~300", got)
	}
	if got := peaks[1].Frequency; math.Abs(got-96.1875) > 1 {
		t.Errorf("second peak = %v Hz, want ~96.2", got)
	}
}

// The strongest partial of a PK render must sit where the 1650 cm^-1
// COO- band maps: 1650 * 300 / 1600 = 309.375 Hz.
func TestPeaksLocateStrongestMode(t *testing.T) {
	r, err := synth.NewRenderer(spectrum.Glycine(),
		synth.WithSampleRate(8000),
		synth.WithDuration(4),
		synth.WithFade(0.05, 0.05),
	)
	if err != nil {
		t.Fatal(err)
	}

	buf, err := r.RenderPK(synth.DefaultPKSettings())
	if err != nil {
		t.Fatal(err)
	}

	peaks, err := analyze.Peaks(buf.L, buf.SampleRate, 1)
	if err != nil {
		t.Fatal(err)
	}

	want := mapping.DefaultFrequencyScale().Frequency(1650)
	if got := peaks[0].Frequency; math.Abs(got-want) > 1 {
		t.Errorf("strongest peak = %v Hz, want %v", got, want)
	}
}
