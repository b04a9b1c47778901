package fft

// Transform16384 computes the in-place 16384-point forward FFT of x using
// radix-2 decimation in time: bit-reversal permutation, then 14
// butterfly stages driven by the precomputed size-16384 twiddle table.
func Transform16384(x *[16384]complex64) {
	const n = 16384

	rev := bitrev16384[:]
	for i, j := range rev {
		if int(j) > i {
			x[i], x[j] = x[j], x[i]
		}
	}

	// Stage 1: adjacent butterflies, W = 1.
	for i := 0; i < n; i += 2 {
		a, b := x[i], x[i+1]
		x[i], x[i+1] = a+b, a-b
	}

	tw := twiddle16384[:]
	for size := 4; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size
		for base := 0; base < n; base += size {
			for k := 0; k < half; k++ {
				w := tw[k*step]
				b := w * x[base+half+k]
				a := x[base+k]
				x[base+k] = a + b
				x[base+half+k] = a - b
			}
		}
	}
}
