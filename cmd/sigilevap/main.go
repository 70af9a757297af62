// Command sigilevap renders the glycine evaporation sigil animation to
// an MP4 file through ffmpeg.
//
// The three functional groups occupy the first three quadrants of a
// slowly rotating polar canvas. Markers fade according to their group
// envelope: stretches vanish early, the backbone peaks mid-way, skeletal
// modes carry the ending.
//
// Usage:
//
//	sigilevap [flags]
//
// Examples:
//
//	sigilevap -out glycine_sigil.mp4
//	sigilevap -duration 60 -fps 12 -size 600 -out preview.mp4
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
	out := flag.String("out", "glycine_sigil.mp4", "output MP4 path")
	duration := flag.Float64("duration", 300, "animation length in seconds")
	fps := flag.Int("fps", 8, "frames per second")
	size := flag.Int("size", 900, "canvas edge length in pixels")
	alphaMax := flag.Float64("alpha-max", 0.95, "marker opacity at full envelope")
	noRings := flag.Bool("no-rings", false, "omit the radial guide rings")
	ffmpegPath := flag.String("ffmpeg", "ffmpeg", "path to the ffmpeg binary")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sigilevap [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders the glycine evaporation sigil animation to an MP4 file.\n")
		fmt.Fprintf(os.Stderr, "Requires ffmpeg on the PATH (or via -ffmpeg).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sigilevap -out glycine_sigil.mp4\n")
		fmt.Fprintf(os.Stderr, "  sigilevap -duration 60 -fps 12 -size 600 -out preview.mp4\n")
	}
	flag.Parse()

	layout, err := sigil.NewEvaporationLayout(spectrum.Glycine())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// One full turn per 300 s, independent of the chosen duration.
	cfg := sigil.AnimConfig{
		Duration:  *duration,
		FPS:       *fps,
		Rotations: *duration / 300,
	}

	anim, err := sigil.NewAnimator(layout, cfg, sigil.EvaporationOpacity(*alphaMax))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var rasterOpts []video.RasterOption
	if !*noRings {
		rasterOpts = append(rasterOpts, video.WithGuideRings(0.30, 0.65, 1.00))
	}
	raster, err := video.NewRasterizer(*size, rasterOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	encCfg := video.DefaultEncoderConfig(*size, *fps)
	encCfg.FFmpegPath = *ffmpegPath

	if err := encode(anim, raster, encCfg, *out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s: %d frames, %d fps, %dx%d\n", *out, anim.FrameCount(), *fps, *size, *size)
}

func encode(anim *sigil.Animator, raster *video.Rasterizer, cfg video.EncoderConfig, out string) error {
	enc, err := video.StartEncoder(context.Background(), out, cfg)
	if err != nil {
		return err
	}

	for i := 0; i < anim.FrameCount(); i++ {
		frame, err := anim.Frame(i)
		if err != nil {
			return err
		}
		if err := enc.WriteFrame(raster.Render(frame)); err != nil {
			return err
		}
	}
	return enc.Close()
}
