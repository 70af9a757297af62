// Package narrate produces narration audio from a plain-text file using
// the macOS speech synthesizer and an external transcoder.
//
// The pipeline mirrors the reference workflow: the `say` utility renders
// the text to AIFF with a chosen system voice, then ffmpeg converts the
// AIFF to 16-bit PCM WAV for use in video editors. Missing input files or
// binaries abort the run with the wrapped platform error.
package narrate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	ErrEmptyTextPath = errors.New("narrate: text path must not be empty")
	ErrInvalidRate   = errors.New("narrate: speech rate must be positive")
)

// Config holds the narration parameters.
type Config struct {
	// Voice selects the system voice. Ava (Enhanced) is often rated as
	// clear and relatively natural, especially at higher speech rates.
	Voice string

	// RateWPM is the speech rate in words per minute. The system default
	// is around 175.
	RateWPM int

	SayPath    string // speech synthesizer binary, defaults to "say"
	FFmpegPath string // transcoder binary, defaults to "ffmpeg"
	KeepAIFF   bool   // keep the intermediate AIFF next to the WAV
}

// DefaultConfig returns the reference narration settings.
func DefaultConfig() Config {
	return Config{
		Voice:      "Ava (Enhanced)",
		RateWPM:    165,
		SayPath:    "say",
		FFmpegPath: "ffmpeg",
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithVoice selects the system voice by name.
func WithVoice(voice string) Option {
	return func(c *Config) {
		if voice != "" {
			c.Voice = voice
		}
	}
}

// WithRate sets the speech rate in words per minute.
func WithRate(wpm int) Option {
	return func(c *Config) {
		if wpm > 0 {
			c.RateWPM = wpm
		}
	}
}

// WithSayPath overrides the speech synthesizer binary.
func WithSayPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.SayPath = path
		}
	}
}

// WithFFmpegPath overrides the transcoder binary.
func WithFFmpegPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.FFmpegPath = path
		}
	}
}

// KeepIntermediate keeps the AIFF file instead of removing it.
func KeepIntermediate() Option {
	return func(c *Config) {
		c.KeepAIFF = true
	}
}

// Synthesizer drives the external narration pipeline.
type Synthesizer struct {
	cfg Config
}

// New creates a Synthesizer with the given options applied to the
// default configuration.
func New(opts ...Option) *Synthesizer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Synthesizer{cfg: cfg}
}

// Config returns the synthesizer configuration.
func (s *Synthesizer) Config() Config {
	return s.cfg
}

// Narrate reads the narration text from textPath and writes a 16-bit PCM
// WAV to wavPath, synthesizing through AIFF on the way.
func (s *Synthesizer) Narrate(ctx context.Context, textPath, wavPath string) error {
	if textPath == "" {
		return ErrEmptyTextPath
	}
	if s.cfg.RateWPM <= 0 {
		return ErrInvalidRate
	}

	if _, err := os.Stat(textPath); err != nil {
		return fmt.Errorf("narrate: text file: %w", err)
	}

	aiffPath := strings.TrimSuffix(wavPath, filepath.Ext(wavPath)) + ".aiff"

	if err := runCommand(ctx, s.cfg.SayPath, sayArgs(s.cfg, aiffPath, textPath)); err != nil {
		return fmt.Errorf("narrate: speech synthesis: %w", err)
	}

	if err := runCommand(ctx, s.cfg.FFmpegPath, transcodeArgs(aiffPath, wavPath)); err != nil {
		return fmt.Errorf("narrate: transcode: %w", err)
	}

	if !s.cfg.KeepAIFF {
		if err := os.Remove(aiffPath); err != nil {
			return fmt.Errorf("narrate: remove intermediate: %w", err)
		}
	}
	return nil
}

// sayArgs builds the speech synthesizer argument list.
func sayArgs(cfg Config, aiffPath, textPath string) []string {
	return []string{
		"-v", cfg.Voice,
		"-r", strconv.Itoa(cfg.RateWPM),
		"-o", aiffPath,
		"-f", textPath,
	}
}

// transcodeArgs builds the AIFF to 16-bit PCM WAV transcoder arguments.
func transcodeArgs(aiffPath, wavPath string) []string {
	return []string{
		"-y",
		"-i", aiffPath,
		"-acodec", "pcm_s16le",
		wavPath,
	}
}

func runCommand(ctx context.Context, bin string, args []string) error {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("%s: %w: %s", bin, err, strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("%s: %w", bin, err)
	}
	return nil
}
