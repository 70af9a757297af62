// Command glynarrate synthesizes spoken narration from a text file and
// saves it as a 16-bit PCM WAV.
//
// It drives the macOS `say` utility for speech synthesis and ffmpeg for
// the AIFF to WAV conversion, so both must be available.
//
// Usage:
//
//	glynarrate -text narration.txt [flags]
//
// Examples:
//
//	glynarrate -text glycine_narration.txt -out narration.wav
//	glynarrate -text script.txt -voice Alex -rate 180 -out narration.wav
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-sonify/narrate"
)

func main() {
	text := flag.String("text", "", "narration text file (required)")
	out := flag.String("out", "narration.wav", "output WAV path")
	voice := flag.String("voice", "", "system voice name (default Ava (Enhanced))")
	rate := flag.Int("rate", 0, "speech rate in words per minute (default 165)")
	keepAIFF := flag.Bool("keep-aiff", false, "keep the intermediate AIFF file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: glynarrate -text narration.txt [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Synthesizes spoken narration from a text file into a WAV.\n")
		fmt.Fprintf(os.Stderr, "Requires the macOS say utility and ffmpeg.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  glynarrate -text glycine_narration.txt -out narration.wav\n")
		fmt.Fprintf(os.Stderr, "  glynarrate -text script.txt -voice Alex -rate 180 -out narration.wav\n")
	}
	flag.Parse()

	if *text == "" {
		flag.Usage()
		os.Exit(1)
	}

	opts := []narrate.Option{
		narrate.WithVoice(*voice),
		narrate.WithRate(*rate),
	}
	if *keepAIFF {
		opts = append(opts, narrate.KeepIntermediate())
	}

	s := narrate.New(opts...)
	if err := s.Narrate(context.Background(), *text, *out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := s.Config()
	fmt.Printf("wrote %s (voice %q, %d wpm)\n", *out, cfg.Voice, cfg.RateWPM)
}
