package staticfft

import "math"

// Magnitude returns the magnitude sqrt(re²+im²) of a single bin.
func Magnitude(c complex64) float32 {
	return float32(math.Hypot(float64(real(c)), float64(imag(c))))
}

// Magnitudes writes the magnitude of each bin in src to dst.
// The slices must have equal length; panics otherwise.
func Magnitudes(dst []float32, src []complex64) {
	if len(dst) != len(src) {
		panic("staticfft: magnitude buffer length mismatch")
	}

	for i, c := range src {
		dst[i] = Magnitude(c)
	}
}

// ScaleInPlace multiplies every bin of x by scale. The transforms are
// unnormalized, so dividing a spectrum by the transform size recovers
// signal amplitudes.
func ScaleInPlace(x []complex64, scale float32) {
	if scale == 1 {
		return
	}

	factor := complex(scale, 0)
	for i := range x {
		x[i] *= factor
	}
}
