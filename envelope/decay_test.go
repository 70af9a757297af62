package envelope

import (
	"math"
	"testing"
)

func TestDecayValidation(t *testing.T) {
	tests := []struct {
		name    string
		decay   Decay
		wantErr error
	}{
		{"valid", Decay{HalfLife: 40, SampleRate: 22050}, nil},
		{"zero half-life", Decay{HalfLife: 0, SampleRate: 22050}, ErrInvalidHalfLife},
		{"negative sample rate", Decay{HalfLife: 40, SampleRate: -1}, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decay.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecayGenerate(t *testing.T) {
	d := &Decay{HalfLife: 2, SampleRate: 100}

	env, err := d.Generate(500)
	if err != nil {
		t.Fatal(err)
	}

	if len(env) != 500 {
		t.Fatalf("length = %d, want 500", len(env))
	}

	if env[0] != 1.0 {
		t.Errorf("env[0] = %v, want exactly 1", env[0])
	}

	// After one half-life (2 s = 200 samples) the value must be 0.5.
	if got := env[200]; math.Abs(got-0.5) > 1e-12 {
		t.Errorf("env at one half-life = %v, want 0.5", got)
	}

	for i, v := range env {
		if v < 0 {
			t.Fatalf("env[%d] = %v, negative", i, v)
		}
		if i > 0 && v >= env[i-1] {
			t.Fatalf("env[%d] = %v, not strictly decreasing", i, v)
		}
	}
}

func TestDecayGenerateInvalidSamples(t *testing.T) {
	d := &Decay{HalfLife: 40, SampleRate: 22050}

	if _, err := d.Generate(0); err != ErrInvalidSamples {
		t.Errorf("Generate(0) error = %v, want %v", err, ErrInvalidSamples)
	}
}

func TestHalfLifeRule(t *testing.T) {
	r := &HalfLifeRule{
		MinWavenumber: 513,
		MaxWavenumber: 3330,
		Shortest:      40,
		Longest:       240,
	}

	if err := r.Validate(); err != nil {
		t.Fatal(err)
	}

	// Highest wavenumber decays fastest, lowest slowest.
	if got := r.HalfLife(3330); math.Abs(got-40) > 1e-6 {
		t.Errorf("HalfLife(max) = %v, want 40", got)
	}
	if got := r.HalfLife(513); math.Abs(got-240) > 1e-6 {
		t.Errorf("HalfLife(min) = %v, want 240", got)
	}

	// Monotonic decreasing in wavenumber.
	prev := r.HalfLife(513)
	for cm := 600.0; cm <= 3300; cm += 100 {
		hl := r.HalfLife(cm)
		if hl >= prev {
			t.Fatalf("HalfLife(%v) = %v, not decreasing", cm, hl)
		}
		prev = hl
	}
}

func TestHalfLifeRuleValidation(t *testing.T) {
	tests := []struct {
		name    string
		rule    HalfLifeRule
		wantErr error
	}{
		{"valid", HalfLifeRule{513, 3330, 40, 240}, nil},
		{"degenerate range", HalfLifeRule{3330, 3330, 40, 240}, ErrInvalidRange},
		{"zero half-life", HalfLifeRule{513, 3330, 0, 240}, ErrInvalidHalfLife},
		{"inverted half-lives", HalfLifeRule{513, 3330, 240, 40}, ErrHalfLifeOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
