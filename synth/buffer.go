package synth

import "math"

// StereoBuffer holds two independently owned channel buffers.
type StereoBuffer struct {
	L          []float64
	R          []float64
	SampleRate float64
}

// NewStereoBuffer allocates a zeroed stereo buffer.
func NewStereoBuffer(frames int, sampleRate float64) *StereoBuffer {
	return &StereoBuffer{
		L:          make([]float64, frames),
		R:          make([]float64, frames),
		SampleRate: sampleRate,
	}
}

// Frames returns the number of sample frames per channel.
func (b *StereoBuffer) Frames() int {
	return len(b.L)
}

// Peak returns the maximum absolute sample value across both channels.
func (b *StereoBuffer) Peak() float64 {
	peak := 0.0
	for _, ch := range [2][]float64{b.L, b.R} {
		for _, v := range ch {
			if av := math.Abs(v); av > peak {
				peak = av
			}
		}
	}
	return peak
}

// Normalize rescales both channels so the maximum absolute sample equals
// targetPeak and clips the result to [-1, 1].
func (b *StereoBuffer) Normalize(targetPeak float64) error {
	if b.Frames() == 0 {
		return ErrEmptyBuffer
	}
	if targetPeak <= 0 || targetPeak > 1 {
		return ErrInvalidTargetPeak
	}

	peak := b.Peak()
	if peak < 1e-9 {
		peak = 1e-9
	}
	scale := targetPeak / peak

	for _, ch := range [2][]float64{b.L, b.R} {
		for i, v := range ch {
			v *= scale
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			ch[i] = v
		}
	}
	return nil
}
