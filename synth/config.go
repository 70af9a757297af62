package synth

import "errors"

// Errors returned by the renderer.
var (
	ErrInvalidSampleRate = errors.New("synth: sample rate must be positive")
	ErrInvalidDuration   = errors.New("synth: duration must be positive")
	ErrInvalidDetune     = errors.New("synth: stereo detune must be in [0,1)")
	ErrInvalidTargetPeak = errors.New("synth: target peak must be in (0,1]")
	ErrInvalidBath       = errors.New("synth: bath cutoff and rise must be positive when bath gain is set")
	ErrEmptyBuffer       = errors.New("synth: buffer must not be empty")
)

// Config holds all rendering parameters. Use the With* options to adjust
// individual settings from the defaults.
type Config struct {
	SampleRate float64 // output sample rate in Hz
	Duration   float64 // render length in seconds
	Seed       int64   // seed for jitter, detune and bath noise

	StereoDetune    float64 // relative L/R frequency split for width
	ModeDetuneSigma float64 // per-mode random center-frequency sigma
	JitterBlock     int     // jitter breakpoint spacing in samples
	JitterDepth     float64 // jitter depth (relative frequency deviation)

	FadeIn  float64 // boundary fade-in, seconds
	FadeOut float64 // boundary fade-out, seconds

	BathGain   float64 // thermal bath mix gain, 0 disables the bath
	BathCutoff float64 // bath lowpass cutoff in Hz
	BathRise   float64 // bath rise window before the end, seconds

	HalfLifeShortest float64 // decay half-life at the highest wavenumber
	HalfLifeLongest  float64 // decay half-life at the lowest wavenumber

	TargetPeak float64 // final peak as a fraction of full scale
}

// DefaultConfig returns the parameters of the reference 5-minute render.
func DefaultConfig() Config {
	return Config{
		SampleRate:       22050,
		Duration:         300,
		Seed:             42,
		StereoDetune:     1e-3,
		ModeDetuneSigma:  1e-3,
		JitterBlock:      500,
		JitterDepth:      0.005,
		FadeIn:           0.1,
		FadeOut:          0.1,
		BathGain:         0.04,
		BathCutoff:       200,
		BathRise:         60,
		HalfLifeShortest: 40,
		HalfLifeLongest:  240,
		TargetPeak:       0.85,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if c.Duration <= 0 {
		return ErrInvalidDuration
	}
	if c.StereoDetune < 0 || c.StereoDetune >= 1 {
		return ErrInvalidDetune
	}
	if c.TargetPeak <= 0 || c.TargetPeak > 1 {
		return ErrInvalidTargetPeak
	}
	if c.BathGain > 0 && (c.BathCutoff <= 0 || c.BathRise <= 0) {
		return ErrInvalidBath
	}
	return nil
}

// Option mutates a Config.
type Option func(*Config)

// WithSampleRate sets the output sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(c *Config) {
		if sampleRate > 0 {
			c.SampleRate = sampleRate
		}
	}
}

// WithDuration sets the render length in seconds.
func WithDuration(seconds float64) Option {
	return func(c *Config) {
		if seconds > 0 {
			c.Duration = seconds
		}
	}
}

// WithSeed sets the deterministic random seed.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithStereoDetune sets the relative frequency split between channels.
func WithStereoDetune(detune float64) Option {
	return func(c *Config) {
		if detune >= 0 {
			c.StereoDetune = detune
		}
	}
}

// WithModeDetune sets the per-mode random center-frequency sigma.
func WithModeDetune(sigma float64) Option {
	return func(c *Config) {
		if sigma >= 0 {
			c.ModeDetuneSigma = sigma
		}
	}
}

// WithJitter sets the dephasing jitter timescale and depth.
// A zero depth disables the jitter field.
func WithJitter(block int, depth float64) Option {
	return func(c *Config) {
		if block >= 1 {
			c.JitterBlock = block
		}
		if depth >= 0 {
			c.JitterDepth = depth
		}
	}
}

// WithFade sets the boundary fade lengths in seconds.
func WithFade(fadeIn, fadeOut float64) Option {
	return func(c *Config) {
		if fadeIn >= 0 {
			c.FadeIn = fadeIn
		}
		if fadeOut >= 0 {
			c.FadeOut = fadeOut
		}
	}
}

// WithBath sets the thermal bath mix gain, lowpass cutoff and rise window.
func WithBath(gain, cutoffHz, riseSeconds float64) Option {
	return func(c *Config) {
		if gain >= 0 {
			c.BathGain = gain
		}
		if cutoffHz > 0 {
			c.BathCutoff = cutoffHz
		}
		if riseSeconds > 0 {
			c.BathRise = riseSeconds
		}
	}
}

// WithoutBath disables the thermal bath continuum.
func WithoutBath() Option {
	return func(c *Config) {
		c.BathGain = 0
	}
}

// WithHalfLifeRange sets the decay half-lives at the highest and lowest
// wavenumber of the table.
func WithHalfLifeRange(shortest, longest float64) Option {
	return func(c *Config) {
		if shortest > 0 && longest >= shortest {
			c.HalfLifeShortest = shortest
			c.HalfLifeLongest = longest
		}
	}
}

// WithTargetPeak sets the final peak level as a fraction of full scale.
func WithTargetPeak(peak float64) Option {
	return func(c *Config) {
		if peak > 0 && peak <= 1 {
			c.TargetPeak = peak
		}
	}
}
