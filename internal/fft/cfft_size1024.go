package fft

// Transform1024 computes the in-place 1024-point forward FFT of x using
// radix-2 decimation in time: bit-reversal permutation, then 10
// butterfly stages driven by the precomputed size-1024 twiddle table.
func Transform1024(x *[1024]complex64) {
	const n = 1024

	rev := bitrev1024[:]
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

	tw := twiddle1024[:]
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
