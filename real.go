package staticfft

import "github.com/cwbudde/algo-staticfft/internal/fft"

// The real-input transforms return the first N/2 bins of the N-point
// spectrum in the same storage as the input samples. The coefficient at
// the Nyquist frequency is packed into the imaginary part of bin 0; see
// the package documentation.

// RFFT2 performs an in-place 2-point FFT on the real samples in x
// and returns bins 0..0 of the spectrum, aliasing x's storage.
func RFFT2(x *[2]float32) *[1]complex64 {
	return fft.RealTransform2(x)
}

// RFFT4 performs an in-place 4-point FFT on the real samples in x
// and returns bins 0..1 of the spectrum, aliasing x's storage.
func RFFT4(x *[4]float32) *[2]complex64 {
	return fft.RealTransform4(x)
}

// RFFT8 performs an in-place 8-point FFT on the real samples in x
// and returns bins 0..3 of the spectrum, aliasing x's storage.
func RFFT8(x *[8]float32) *[4]complex64 {
	return fft.RealTransform8(x)
}

// RFFT16 performs an in-place 16-point FFT on the real samples in x
// and returns bins 0..7 of the spectrum, aliasing x's storage.
func RFFT16(x *[16]float32) *[8]complex64 {
	return fft.RealTransform16(x)
}

// RFFT32 performs an in-place 32-point FFT on the real samples in x
// and returns bins 0..15 of the spectrum, aliasing x's storage.
func RFFT32(x *[32]float32) *[16]complex64 {
	return fft.RealTransform32(x)
}

// RFFT64 performs an in-place 64-point FFT on the real samples in x
// and returns bins 0..31 of the spectrum, aliasing x's storage.
func RFFT64(x *[64]float32) *[32]complex64 {
	return fft.RealTransform64(x)
}

// RFFT128 performs an in-place 128-point FFT on the real samples in x
// and returns bins 0..63 of the spectrum, aliasing x's storage.
func RFFT128(x *[128]float32) *[64]complex64 {
	return fft.RealTransform128(x)
}

// RFFT256 performs an in-place 256-point FFT on the real samples in x
// and returns bins 0..127 of the spectrum, aliasing x's storage.
func RFFT256(x *[256]float32) *[128]complex64 {
	return fft.RealTransform256(x)
}

// RFFT512 performs an in-place 512-point FFT on the real samples in x
// and returns bins 0..255 of the spectrum, aliasing x's storage.
func RFFT512(x *[512]float32) *[256]complex64 {
	return fft.RealTransform512(x)
}

// RFFT1024 performs an in-place 1024-point FFT on the real samples in x
// and returns bins 0..511 of the spectrum, aliasing x's storage.
func RFFT1024(x *[1024]float32) *[512]complex64 {
	return fft.RealTransform1024(x)
}

// RFFT2048 performs an in-place 2048-point FFT on the real samples in x
// and returns bins 0..1023 of the spectrum, aliasing x's storage.
func RFFT2048(x *[2048]float32) *[1024]complex64 {
	return fft.RealTransform2048(x)
}

// RFFT4096 performs an in-place 4096-point FFT on the real samples in x
// and returns bins 0..2047 of the spectrum, aliasing x's storage.
func RFFT4096(x *[4096]float32) *[2048]complex64 {
	return fft.RealTransform4096(x)
}

// RFFT8192 performs an in-place 8192-point FFT on the real samples in x
// and returns bins 0..4095 of the spectrum, aliasing x's storage.
func RFFT8192(x *[8192]float32) *[4096]complex64 {
	return fft.RealTransform8192(x)
}

// RFFT16384 performs an in-place 16384-point FFT on the real samples in x
// and returns bins 0..8191 of the spectrum, aliasing x's storage.
func RFFT16384(x *[16384]float32) *[8192]complex64 {
	return fft.RealTransform16384(x)
}
