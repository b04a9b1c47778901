package staticfft

import "github.com/cwbudde/algo-staticfft/internal/fft"

// CFFT2 performs an in-place 2-point FFT on x and returns x
// reinterpreted as 2 frequency-domain bins in standard DFT order.
func CFFT2(x *[2]complex64) *[2]complex64 {
	fft.Transform2(x)
	return x
}

// CFFT4 performs an in-place 4-point FFT on x and returns x
// reinterpreted as 4 frequency-domain bins in standard DFT order.
func CFFT4(x *[4]complex64) *[4]complex64 {
	fft.Transform4(x)
	return x
}

// CFFT8 performs an in-place 8-point FFT on x and returns x
// reinterpreted as 8 frequency-domain bins in standard DFT order.
func CFFT8(x *[8]complex64) *[8]complex64 {
	fft.Transform8(x)
	return x
}

// CFFT16 performs an in-place 16-point FFT on x and returns x
// reinterpreted as 16 frequency-domain bins in standard DFT order.
func CFFT16(x *[16]complex64) *[16]complex64 {
	fft.Transform16(x)
	return x
}

// CFFT32 performs an in-place 32-point FFT on x and returns x
// reinterpreted as 32 frequency-domain bins in standard DFT order.
func CFFT32(x *[32]complex64) *[32]complex64 {
	fft.Transform32(x)
	return x
}

// CFFT64 performs an in-place 64-point FFT on x and returns x
// reinterpreted as 64 frequency-domain bins in standard DFT order.
func CFFT64(x *[64]complex64) *[64]complex64 {
	fft.Transform64(x)
	return x
}

// CFFT128 performs an in-place 128-point FFT on x and returns x
// reinterpreted as 128 frequency-domain bins in standard DFT order.
func CFFT128(x *[128]complex64) *[128]complex64 {
	fft.Transform128(x)
	return x
}

// CFFT256 performs an in-place 256-point FFT on x and returns x
// reinterpreted as 256 frequency-domain bins in standard DFT order.
func CFFT256(x *[256]complex64) *[256]complex64 {
	fft.Transform256(x)
	return x
}

// CFFT512 performs an in-place 512-point FFT on x and returns x
// reinterpreted as 512 frequency-domain bins in standard DFT order.
func CFFT512(x *[512]complex64) *[512]complex64 {
	fft.Transform512(x)
	return x
}

// CFFT1024 performs an in-place 1024-point FFT on x and returns x
// reinterpreted as 1024 frequency-domain bins in standard DFT order.
func CFFT1024(x *[1024]complex64) *[1024]complex64 {
	fft.Transform1024(x)
	return x
}

// CFFT2048 performs an in-place 2048-point FFT on x and returns x
// reinterpreted as 2048 frequency-domain bins in standard DFT order.
func CFFT2048(x *[2048]complex64) *[2048]complex64 {
	fft.Transform2048(x)
	return x
}

// CFFT4096 performs an in-place 4096-point FFT on x and returns x
// reinterpreted as 4096 frequency-domain bins in standard DFT order.
func CFFT4096(x *[4096]complex64) *[4096]complex64 {
	fft.Transform4096(x)
	return x
}

// CFFT8192 performs an in-place 8192-point FFT on x and returns x
// reinterpreted as 8192 frequency-domain bins in standard DFT order.
func CFFT8192(x *[8192]complex64) *[8192]complex64 {
	fft.Transform8192(x)
	return x
}

// CFFT16384 performs an in-place 16384-point FFT on x and returns x
// reinterpreted as 16384 frequency-domain bins in standard DFT order.
func CFFT16384(x *[16384]complex64) *[16384]complex64 {
	fft.Transform16384(x)
	return x
}
