package fft

// Transform2048 computes the in-place 2048-point forward FFT of x using
// radix-2 decimation in time: bit-reversal permutation, then 11
// butterfly stages driven by the precomputed size-2048 twiddle table.
func Transform2048(x *[2048]complex64) {
	const n = 2048

	rev := bitrev2048[:]
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

	tw := twiddle2048[:]
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
