package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os/exec"
	"strconv"
)

var (
	ErrInvalidFPS    = errors.New("video: frame rate must be positive")
	ErrFrameSize     = errors.New("video: frame does not match encoder dimensions")
	ErrEncoderClosed = errors.New("video: encoder already closed")
)

// EncoderConfig describes the external encoder invocation.
type EncoderConfig struct {
	Width      int
	Height     int
	FPS        int
	Codec      string // defaults to libx264
	CRF        int    // x264 constant rate factor
	FFmpegPath string // defaults to "ffmpeg" on PATH
}

// DefaultEncoderConfig returns H.264 settings for a square canvas.
func DefaultEncoderConfig(size, fps int) EncoderConfig {
	return EncoderConfig{
		Width:      size,
		Height:     size,
		FPS:        fps,
		Codec:      "libx264",
		CRF:        18,
		FFmpegPath: "ffmpeg",
	}
}

// Validate checks the encoder parameters.
func (c *EncoderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidCanvas
	}
	if c.FPS <= 0 {
		return ErrInvalidFPS
	}
	return nil
}

// Args returns the ffmpeg argument list for encoding raw RGBA frames
// piped on stdin into the output file.
func (c *EncoderConfig) Args(outPath string) []string {
	codec := c.Codec
	if codec == "" {
		codec = "libx264"
	}

	return []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", c.Width, c.Height),
		"-framerate", strconv.Itoa(c.FPS),
		"-i", "-",
		"-c:v", codec,
		"-pix_fmt", "yuv420p",
		"-crf", strconv.Itoa(c.CRF),
		outPath,
	}
}

// Encoder streams raw frames into a running ffmpeg process.
type Encoder struct {
	cfg    EncoderConfig
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	closed bool
}

// StartEncoder launches ffmpeg for the given output path. Close must be
// called to finalize the file.
func StartEncoder(ctx context.Context, outPath string, cfg EncoderConfig) (*Encoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ffmpeg := cfg.FFmpegPath
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}

	cmd := exec.CommandContext(ctx, ffmpeg, cfg.Args(outPath)...)

	e := &Encoder{cfg: cfg, cmd: cmd}
	cmd.Stderr = &e.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("video: stdin pipe: %w", err)
	}
	e.stdin = stdin

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("video: start %s: %w", ffmpeg, err)
	}
	return e, nil
}

// WriteFrame pipes one RGBA frame to the encoder. The image bounds must
// match the configured dimensions.
func (e *Encoder) WriteFrame(img *image.RGBA) error {
	if e.closed {
		return ErrEncoderClosed
	}

	b := img.Bounds()
	if b.Dx() != e.cfg.Width || b.Dy() != e.cfg.Height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFrameSize, b.Dx(), b.Dy(), e.cfg.Width, e.cfg.Height)
	}

	rowBytes := 4 * e.cfg.Width
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		if _, err := e.stdin.Write(img.Pix[off : off+rowBytes]); err != nil {
			return fmt.Errorf("video: write frame: %w", err)
		}
	}
	return nil
}

// Close finishes the stream and waits for the encoder to exit.
func (e *Encoder) Close() error {
	if e.closed {
		return ErrEncoderClosed
	}
	e.closed = true

	if err := e.stdin.Close(); err != nil {
		return fmt.Errorf("video: close stdin: %w", err)
	}
	if err := e.cmd.Wait(); err != nil {
		return fmt.Errorf("video: encoder failed: %w: %s", err, e.stderr.String())
	}
	return nil
}
