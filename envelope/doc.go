// Package envelope generates time-varying amplitude curves for the
// sonification pipelines.
//
// Three interchangeable models are provided:
//
//   - Decay: exponential half-life decay, with a rule that maps high
//     wavenumbers to short half-lives and low wavenumbers to long ones.
//   - PK: a one-compartment pharmacokinetic absorption/elimination curve
//     C(t) = exp(-k_e*t) - exp(-k_a*t), evaluated over a compressed
//     physiological time window and normalized to peak 1.
//   - SmoothNoise: slow colored noise built from cosine-interpolated
//     Gaussian breakpoints, used to perturb instantaneous frequency.
//
// All generated envelopes are non-negative. Fade helpers taper the
// boundaries to avoid discontinuities at the start and end of a render.
//
// # Usage
//
// Generate a shared pharmacokinetic envelope for a 5 minute render:
//
//	pk := &envelope.PK{
//	    EliminationHalfLife: 41 * 60,
//	    AbsorptionRatio:     1.2,
//	    PhysiologicalWindow: 4 * 3600,
//	    Duration:            300,
//	    SampleRate:          22050,
//	}
//	env, _ := pk.Generate()
//	envelope.ApplyFade(env, fadeSamples, fadeSamples)
package envelope
