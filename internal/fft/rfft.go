package fft

// The real transforms pack n real samples into the same storage viewed
// as n/2 complex samples (element k = (x[2k], x[2k+1])), run the
// half-size complex transform in place, and then recombine the packed
// spectrum using the conjugate symmetry of real-input DFTs.
//
// The output is the first n/2 bins of the full n-point spectrum. The
// coefficient at the Nyquist frequency is purely real for real input
// and is stored in the imaginary part of bin 0, which is otherwise
// always zero. Consumers that need the Nyquist bin separately must
// unpack it from there.

// unpackReal converts the spectrum of a packed even/odd-interleaved
// complex buffer into the first half of the spectrum of the underlying
// 2*len(z) real samples, in place.
//
// With Z the packed spectrum, half = len(z) and W = exp(-2πi/n):
//
//	E[k]  = (Z[k] + conj(Z[half-k])) / 2
//	O[k]  = -i * (Z[k] - conj(Z[half-k])) / 2
//	X[k]  = E[k] + W^k * O[k]
//	X[half-k] = conj(E[k] - W^k * O[k])
//
// tw is the size-n twiddle table; it is only indexed for half >= 4 and
// may be nil for smaller buffers.
func unpackReal(z, tw []complex64) {
	half := len(z)

	// Bin 0: DC in the real part, Nyquist in the imaginary part.
	z0 := z[0]
	z[0] = complex(real(z0)+imag(z0), real(z0)-imag(z0))

	for k := 1; k < half-k; k++ {
		a := z[k]
		b := z[half-k]
		bc := complex(real(b), -imag(b))

		even := 0.5 * (a + bc)
		odd := complex(0, -0.5) * (a - bc)
		t := tw[k] * odd

		z[k] = even + t
		d := even - t
		z[half-k] = complex(real(d), -imag(d))
	}

	// The middle bin pairs with itself: X[half/2] = conj(Z[half/2]).
	if half >= 2 {
		m := z[half/2]
		z[half/2] = complex(real(m), -imag(m))
	}
}

// RealTransform2 computes the in-place 2-point forward FFT of the real
// samples in x. The single output bin holds the DC value in its real
// part and the Nyquist coefficient in its imaginary part.
func RealTransform2(x *[2]float32) *[1]complex64 {
	z := (*[1]complex64)(asComplex(x[:]))
	// The packed buffer is a single sample; its 1-point spectrum is
	// itself, so only the DC/Nyquist recombination remains.
	unpackReal(z[:], nil)

	return z
}

// RealTransform4 computes the in-place 4-point forward FFT of the real
// samples in x, producing bins 0 and 1 with the Nyquist coefficient
// packed into the imaginary part of bin 0.
func RealTransform4(x *[4]float32) *[2]complex64 {
	z := (*[2]complex64)(asComplex(x[:]))
	Transform2(z)
	unpackReal(z[:], nil)

	return z
}

// RealTransform8 computes the in-place 8-point forward FFT of the real
// samples in x; see RealTransform4 for the bin-0 packing convention.
func RealTransform8(x *[8]float32) *[4]complex64 {
	z := (*[4]complex64)(asComplex(x[:]))
	Transform4(z)
	unpackReal(z[:], twiddle8[:])

	return z
}

// RealTransform16 computes the in-place 16-point forward FFT of the
// real samples in x.
func RealTransform16(x *[16]float32) *[8]complex64 {
	z := (*[8]complex64)(asComplex(x[:]))
	Transform8(z)
	unpackReal(z[:], twiddle16[:])

	return z
}

// RealTransform32 computes the in-place 32-point forward FFT of the
// real samples in x.
func RealTransform32(x *[32]float32) *[16]complex64 {
	z := (*[16]complex64)(asComplex(x[:]))
	Transform16(z)
	unpackReal(z[:], twiddle32[:])

	return z
}

// RealTransform64 computes the in-place 64-point forward FFT of the
// real samples in x.
func RealTransform64(x *[64]float32) *[32]complex64 {
	z := (*[32]complex64)(asComplex(x[:]))
	Transform32(z)
	unpackReal(z[:], twiddle64[:])

	return z
}

// RealTransform128 computes the in-place 128-point forward FFT of the
// real samples in x.
func RealTransform128(x *[128]float32) *[64]complex64 {
	z := (*[64]complex64)(asComplex(x[:]))
	Transform64(z)
	unpackReal(z[:], twiddle128[:])

	return z
}

// RealTransform256 computes the in-place 256-point forward FFT of the
// real samples in x.
func RealTransform256(x *[256]float32) *[128]complex64 {
	z := (*[128]complex64)(asComplex(x[:]))
	Transform128(z)
	unpackReal(z[:], twiddle256[:])

	return z
}

// RealTransform512 computes the in-place 512-point forward FFT of the
// real samples in x.
func RealTransform512(x *[512]float32) *[256]complex64 {
	z := (*[256]complex64)(asComplex(x[:]))
	Transform256(z)
	unpackReal(z[:], twiddle512[:])

	return z
}

// RealTransform1024 computes the in-place 1024-point forward FFT of the
// real samples in x.
func RealTransform1024(x *[1024]float32) *[512]complex64 {
	z := (*[512]complex64)(asComplex(x[:]))
	Transform512(z)
	unpackReal(z[:], twiddle1024[:])

	return z
}

// RealTransform2048 computes the in-place 2048-point forward FFT of the
// real samples in x.
func RealTransform2048(x *[2048]float32) *[1024]complex64 {
	z := (*[1024]complex64)(asComplex(x[:]))
	Transform1024(z)
	unpackReal(z[:], twiddle2048[:])

	return z
}

// RealTransform4096 computes the in-place 4096-point forward FFT of the
// real samples in x.
func RealTransform4096(x *[4096]float32) *[2048]complex64 {
	z := (*[2048]complex64)(asComplex(x[:]))
	Transform2048(z)
	unpackReal(z[:], twiddle4096[:])

	return z
}

// RealTransform8192 computes the in-place 8192-point forward FFT of the
// real samples in x.
func RealTransform8192(x *[8192]float32) *[4096]complex64 {
	z := (*[4096]complex64)(asComplex(x[:]))
	Transform4096(z)
	unpackReal(z[:], twiddle8192[:])

	return z
}

// RealTransform16384 computes the in-place 16384-point forward FFT of
// the real samples in x.
func RealTransform16384(x *[16384]float32) *[8192]complex64 {
	z := (*[8192]complex64)(asComplex(x[:]))
	Transform8192(z)
	unpackReal(z[:], twiddle16384[:])

	return z
}
