// Package wavio writes rendered float buffers as standard uncompressed
// 16-bit PCM WAV files.
package wavio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var (
	ErrChannelMismatch   = errors.New("wavio: channels must have equal length")
	ErrEmptySignal       = errors.New("wavio: signal must not be empty")
	ErrInvalidSampleRate = errors.New("wavio: sample rate must be positive")
)

const (
	bitDepth = 16
	maxInt16 = 32767
)

// WriteStereo quantizes the two channel buffers to 16-bit signed integers
// and writes them as an interleaved stereo WAV file. Samples are expected
// in [-1, 1]; values outside that range are clipped.
func WriteStereo(path string, left, right []float64, sampleRate int) error {
	if len(left) == 0 {
		return ErrEmptySignal
	}
	if len(left) != len(right) {
		return fmt.Errorf("%w: %d vs %d", ErrChannelMismatch, len(left), len(right))
	}
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create %s: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 2, 1)

	intBuf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, 2*len(left)),
		SourceBitDepth: bitDepth,
	}
	for i := range left {
		intBuf.Data[2*i] = Quantize(left[i])
		intBuf.Data[2*i+1] = Quantize(right[i])
	}

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("wavio: write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize %s: %w", path, err)
	}
	return f.Close()
}

// Quantize converts a float sample in [-1, 1] to a 16-bit signed integer,
// clipping out-of-range input.
func Quantize(v float64) int {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int(v * maxInt16)
}
