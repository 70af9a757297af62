package wavio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestWriteStereoValidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.wav")

	tests := []struct {
		name       string
		left       []float64
		right      []float64
		sampleRate int
	}{
		{"empty", nil, nil, 22050},
		{"length mismatch", []float64{0, 0}, []float64{0}, 22050},
		{"zero sample rate", []float64{0}, []float64{0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := WriteStereo(path, tt.left, tt.right, tt.sampleRate); err == nil {
				t.Error("WriteStereo() accepted invalid input")
			}
		})
	}
}

func TestWriteStereoRoundTrip(t *testing.T) {
	const sr = 8000
	n := 800

	left := make([]float64, n)
	right := make([]float64, n)
	for i := range left {
		left[i] = 0.85 * math.Sin(2*math.Pi*440*float64(i)/sr)
		right[i] = -left[i]
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := WriteStereo(path, left, right, sr); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}

	if got := int(dec.NumChans); got != 2 {
		t.Errorf("channels = %d, want 2", got)
	}
	if got := int(dec.BitDepth); got != 16 {
		t.Errorf("bit depth = %d, want 16", got)
	}
	if got := int(dec.SampleRate); got != sr {
		t.Errorf("sample rate = %d, want %d", got, sr)
	}
	if got := len(buf.Data) / 2; got != n {
		t.Fatalf("frames = %d, want %d", got, n)
	}

	// Spot-check interleaving and quantization.
	for i := 0; i < n; i += 97 {
		want := Quantize(left[i])
		if got := buf.Data[2*i]; got != want {
			t.Fatalf("frame %d left = %d, want %d", i, got, want)
		}
		want = Quantize(right[i])
		if got := buf.Data[2*i+1]; got != want {
			t.Fatalf("frame %d right = %d, want %d", i, got, want)
		}
	}
}

func TestQuantizeClips(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{2, 32767},
		{-2, -32767},
		{0.5, 16383},
	}

	for _, tt := range tests {
		if got := Quantize(tt.in); got != tt.want {
			t.Errorf("Quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
