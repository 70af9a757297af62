// Command glypk renders the conservative pharmacokinetic sonification of
// glycine to a stereo WAV file.
//
// All vibrational modes share a single absorption/elimination envelope:
// the chord swells as the plasma concentration rises and fades as it is
// eliminated. Both channels are identical; there is no jitter, detune or
// bath.
//
// Usage:
//
//	glypk [flags]
//
// Examples:
//
//	glypk -out glycine_pk.wav
//	glypk -half-life 30 -absorption-ratio 2 -out fast.wav
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-sonify/spectrum"
	"github.com/cwbudde/algo-sonify/synth"
	"github.com/cwbudde/algo-sonify/wavio"
)

func main() {
	out := flag.String("out", "glycine_pk.wav", "output WAV path")
	duration := flag.Float64("duration", 300, "render length in seconds")
	sampleRate := flag.Float64("sample-rate", 22050, "output sample rate in Hz")
	halfLife := flag.Float64("half-life", 41, "elimination half-life in physiological minutes")
	ratio := flag.Float64("absorption-ratio", 1.2, "absorption rate as a multiple of the elimination rate")
	windowHours := flag.Float64("window-hours", 4, "physiological window mapped onto the render, hours")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: glypk [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders the pharmacokinetic glycine sonification to a stereo WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  glypk -out glycine_pk.wav\n")
		fmt.Fprintf(os.Stderr, "  glypk -half-life 30 -absorption-ratio 2 -out fast.wav\n")
	}
	flag.Parse()

	renderer, err := synth.NewRenderer(spectrum.Glycine(),
		synth.WithDuration(*duration),
		synth.WithSampleRate(*sampleRate),
		synth.WithFade(0.05, 0.05),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	settings := synth.PKSettings{
		EliminationHalfLife: *halfLife * 60,
		AbsorptionRatio:     *ratio,
		PhysiologicalWindow: *windowHours * 3600,
	}

	buf, err := renderer.RenderPK(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: render failed: %v\n", err)
		os.Exit(1)
	}

	if err := wavio.WriteStereo(*out, buf.L, buf.R, int(*sampleRate)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s: %d frames, %.0f Hz, %.1f s (t1/2 = %.0f min, k_a/k_e = %.2g)\n",
		*out, buf.Frames(), *sampleRate, *duration, *halfLife, *ratio)
}
