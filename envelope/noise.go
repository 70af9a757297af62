package envelope

import (
	"math"
	"math/rand"
)

// SmoothNoise generates slow, smooth noise for frequency jitter
// (simulated dephasing). Normally distributed breakpoints are placed every
// Block samples and joined by cosine interpolation, then the curve is
// normalized to unit peak and scaled to Depth.
type SmoothNoise struct {
	Block int     // breakpoint spacing in samples, controls the timescale
	Depth float64 // output peak magnitude
	Seed  int64   // deterministic seed
}

// Validate checks the noise parameters.
func (s *SmoothNoise) Validate() error {
	if s.Block < 1 {
		return ErrInvalidBlock
	}
	if s.Depth < 0 {
		return ErrNegativeDepth
	}
	return nil
}

// Generate returns n samples of smoothed noise. The same seed always
// produces the same sequence.
func (s *SmoothNoise) Generate(n int) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, ErrInvalidSamples
	}

	rng := rand.New(rand.NewSource(s.Seed))

	nblocks := (n+s.Block-1)/s.Block + 1
	vals := make([]float64, nblocks)
	for i := range vals {
		vals[i] = rng.NormFloat64()
	}

	out := make([]float64, n)
	idx := 0
	for b := 0; b < nblocks-1 && idx < n; b++ {
		v0, v1 := vals[b], vals[b+1]
		for k := 0; k < s.Block && idx < n; k++ {
			u := float64(k) / float64(s.Block)
			us := (1 - math.Cos(math.Pi*u)) * 0.5
			out[idx] = (1-us)*v0 + us*v1
			idx++
		}
	}

	normalizePeak(out)
	if s.Depth != 1 {
		for i := range out {
			out[i] *= s.Depth
		}
	}
	return out, nil
}
