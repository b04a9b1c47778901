package fft

// invSqrt2 is 1/sqrt(2), the real and imaginary magnitude of W_8^1.
const invSqrt2 = 0.70710678118654752440

// Transform2 computes the in-place 2-point forward FFT of x.
// A single butterfly: X0 = x0+x1, X1 = x0-x1.
func Transform2(x *[2]complex64) {
	a, b := x[0], x[1]
	x[0], x[1] = a+b, a-b
}

// Transform4 computes the in-place 4-point forward FFT of x.
// Fully unrolled; the only nontrivial twiddle is W_4^1 = -i.
func Transform4(x *[4]complex64) {
	// Bit-reversal for n=4 swaps indices 1 and 2.
	x[1], x[2] = x[2], x[1]

	// Stage 1: adjacent butterflies, W = 1.
	a, b := x[0], x[1]
	x[0], x[1] = a+b, a-b
	a, b = x[2], x[3]
	x[2], x[3] = a+b, a-b

	// Stage 2: stride-2 butterflies.
	a, b = x[0], x[2]
	x[0], x[2] = a+b, a-b
	a = x[1]
	b = x[3]
	t := complex(imag(b), -real(b)) // -i * b
	x[1], x[3] = a+t, a-t
}

// Transform8 computes the in-place 8-point forward FFT of x.
// Fully unrolled with literal twiddles: W_8^1 = (1-i)/sqrt2,
// W_8^2 = -i, W_8^3 = -(1+i)/sqrt2.
func Transform8(x *[8]complex64) {
	// Bit-reversal for n=8 swaps (1,4) and (3,6).
	x[1], x[4] = x[4], x[1]
	x[3], x[6] = x[6], x[3]

	// Stage 1: adjacent butterflies, W = 1.
	for i := 0; i < 8; i += 2 {
		a, b := x[i], x[i+1]
		x[i], x[i+1] = a+b, a-b
	}

	// Stage 2: two size-4 sub-transforms.
	for base := 0; base < 8; base += 4 {
		a, b := x[base], x[base+2]
		x[base], x[base+2] = a+b, a-b
		a = x[base+1]
		b = x[base+3]
		t := complex(imag(b), -real(b)) // -i * b
		x[base+1], x[base+3] = a+t, a-t
	}

	// Stage 3: final size-8 stage.
	a, b := x[0], x[4]
	x[0], x[4] = a+b, a-b

	a = x[1]
	t := complex(invSqrt2, -invSqrt2) * x[5]
	x[1], x[5] = a+t, a-t

	a = x[2]
	b = x[6]
	t = complex(imag(b), -real(b))
	x[2], x[6] = a+t, a-t

	a = x[3]
	t = complex(-invSqrt2, -invSqrt2) * x[7]
	x[3], x[7] = a+t, a-t
}
