// Package analyze locates dominant spectral peaks in rendered audio.
//
// It is used to verify that synthesized partials land on the frequencies
// predicted by the wavenumber mapping.
package analyze

import (
	"errors"
	"fmt"
	"math"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	ErrEmptySignal       = errors.New("analyze: signal must not be empty")
	ErrInvalidSampleRate = errors.New("analyze: sample rate must be positive")
	ErrInvalidCount      = errors.New("analyze: peak count must be positive")
)

// Peak is a local maximum of the magnitude spectrum.
type Peak struct {
	Frequency float64 // interpolated peak frequency in Hz
	Magnitude float64 // linear magnitude, relative scale
}

// Peaks returns the count strongest spectral peaks of signal, ordered by
// descending magnitude. The signal is Hann-windowed and zero-padded to the
// next power of two; peak frequencies are refined by parabolic
// interpolation around the winning bin.
func Peaks(signal []float64, sampleRate float64, count int) ([]Peak, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	fftSize := nextPowerOf2(len(signal))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("analyze: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range signal {
		// Hann window to contain spectral leakage.
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(len(signal)-1)))
		if len(signal) == 1 {
			w = 1
		}
		in[i] = complex(v*w, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("analyze: fft forward: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	peaks := findLocalMaxima(mag)
	sort.Slice(peaks, func(i, j int) bool {
		return mag[peaks[i]] > mag[peaks[j]]
	})
	if count < len(peaks) {
		peaks = peaks[:count]
	}

	binWidth := sampleRate / float64(fftSize)
	result := make([]Peak, len(peaks))
	for i, bin := range peaks {
		result[i] = Peak{
			Frequency: (float64(bin) + interpolateOffset(mag, bin)) * binWidth,
			Magnitude: mag[bin],
		}
	}
	return result, nil
}

// findLocalMaxima returns bin indices that exceed both neighbors.
func findLocalMaxima(mag []float64) []int {
	var peaks []int
	for i := 1; i < len(mag)-1; i++ {
		if mag[i] > mag[i-1] && mag[i] > mag[i+1] {
			peaks = append(peaks, i)
		}
	}
	return peaks
}

// interpolateOffset refines a peak position by fitting a parabola through
// the winning bin and its neighbors. The result is in (-0.5, 0.5) bins.
func interpolateOffset(mag []float64, bin int) float64 {
	if bin <= 0 || bin >= len(mag)-1 {
		return 0
	}
	a, b, c := mag[bin-1], mag[bin], mag[bin+1]
	denom := a - 2*b + c
	if denom == 0 {
		return 0
	}
	return 0.5 * (a - c) / denom
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
