package fft

// Transform8192 computes the in-place 8192-point forward FFT of x using
// radix-2 decimation in time: bit-reversal permutation, then 13
// butterfly stages driven by the precomputed size-8192 twiddle table.
func Transform8192(x *[8192]complex64) {
	const n = 8192

	rev := bitrev8192[:]
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

	tw := twiddle8192[:]
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
