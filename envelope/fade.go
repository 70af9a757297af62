package envelope

// ApplyFade tapers buf in place with linear ramps over the first fadeIn and
// last fadeOut samples. Ramp lengths are clamped to the buffer length;
// non-positive lengths leave the corresponding edge untouched.
func ApplyFade(buf []float64, fadeIn, fadeOut int) {
	n := len(buf)
	if n == 0 {
		return
	}

	if fadeIn > n {
		fadeIn = n
	}
	if fadeIn > 1 {
		for i := 0; i < fadeIn; i++ {
			buf[i] *= float64(i) / float64(fadeIn-1)
		}
	}

	if fadeOut > n {
		fadeOut = n
	}
	if fadeOut > 1 {
		for i := 0; i < fadeOut; i++ {
			buf[n-fadeOut+i] *= 1.0 - float64(i)/float64(fadeOut-1)
		}
	}
}

// FadeSamples converts a fade duration in seconds to a sample count.
func FadeSamples(seconds, sampleRate float64) int {
	if seconds <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(seconds * sampleRate)
}
