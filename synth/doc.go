// Package synth renders the glycine mode table into stereo audio by
// additive synthesis.
//
// Two rendering models are provided, matching the two sonification
// pipelines:
//
//   - Evaporation: every mode carries its own exponential half-life
//     envelope, a shared slow jitter field perturbs the instantaneous
//     frequencies (simulated dephasing), a tiny fixed detune between the
//     channels adds stereo width, and a low-passed noise continuum (the
//     thermal bath) rises during the final stretch of the render.
//   - PK: all modes share a single pharmacokinetic envelope; no jitter,
//     detune or bath is applied.
//
// Both models accumulate sine partials weighted by the normalized mode
// intensities into two explicitly owned channel buffers and finish by
// rescaling the result to a target peak below full scale.
//
// # Usage
//
//	r, err := synth.NewRenderer(spectrum.Glycine(),
//	    synth.WithDuration(300),
//	    synth.WithSeed(42),
//	)
//	if err != nil {
//	    ...
//	}
//	buf, err := r.RenderEvaporation()
package synth
