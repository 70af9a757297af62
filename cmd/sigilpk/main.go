// Command sigilpk renders the pharmacokinetic glycine sigil animation to
// an MP4 file through ffmpeg.
//
// All modes sit on a rotating ring layout and breathe together with the
// absorption/elimination envelope, weighted so stronger modes stay
// brighter. The geometry never changes; only angle and opacity move.
//
// Usage:
//
//	sigilpk [flags]
//
// Examples:
//
//	sigilpk -out glycine_pk_sigil.mp4
//	sigilpk -duration 60 -size 600 -out preview.mp4
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-sonify/sigil"
	"github.com/cwbudde/algo-sonify/spectrum"
	"github.com/cwbudde/algo-sonify/video"
)

func main() {
	out := flag.String("out", "glycine_pk_sigil.mp4", "output MP4 path")
	duration := flag.Float64("duration", 300, "animation length in seconds")
	fps := flag.Int("fps", 30, "frames per second")
	size := flag.Int("size", 900, "canvas edge length in pixels")
	seed := flag.Int64("seed", 42, "seed for the angular layout jitter")
	ffmpegPath := flag.String("ffmpeg", "ffmpeg", "path to the ffmpeg binary")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sigilpk [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders the pharmacokinetic glycine sigil animation to an MP4 file.\n")
		fmt.Fprintf(os.Stderr, "Requires ffmpeg on the PATH (or via -ffmpeg).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sigilpk -out glycine_pk_sigil.mp4\n")
		fmt.Fprintf(os.Stderr, "  sigilpk -duration 60 -size 600 -out preview.mp4\n")
	}
	flag.Parse()

	layout, err := sigil.NewPKLayout(spectrum.Glycine(), *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := sigil.AnimConfig{
		Duration:  *duration,
		FPS:       *fps,
		Rotations: *duration / 300,
	}

	anim, err := sigil.NewAnimator(layout, cfg, sigil.PKOpacity(sigil.DefaultPKOpacityParams()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	raster, err := video.NewRasterizer(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	encCfg := video.DefaultEncoderConfig(*size, *fps)
	encCfg.FFmpegPath = *ffmpegPath

	enc, err := video.StartEncoder(context.Background(), *out, encCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < anim.FrameCount(); i++ {
		frame, err := anim.Frame(i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err := enc.WriteFrame(raster.Render(frame)); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := enc.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s: %d frames, %d fps, %dx%d\n", *out, anim.FrameCount(), *fps, *size, *size)
}
