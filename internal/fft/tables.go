package fft

import "math"

// Twiddle tables hold W_n^k = exp(-2πi·k/n) for k = 0..n/2-1.
// Only the first half is needed: a size-n transform never indexes past
// k*step < n/2, and the real unpack step uses k < n/4.
//
// Tables are plain package-level arrays filled once at init, so a
// transform call performs no allocation and no trigonometry.
var (
	twiddle8     [4]complex64
	twiddle16    [8]complex64
	twiddle32    [16]complex64
	twiddle64    [32]complex64
	twiddle128   [64]complex64
	twiddle256   [128]complex64
	twiddle512   [256]complex64
	twiddle1024  [512]complex64
	twiddle2048  [1024]complex64
	twiddle4096  [2048]complex64
	twiddle8192  [4096]complex64
	twiddle16384 [8192]complex64
)

// Bit-reversal permutation tables. uint16 covers the largest size.
// Sizes 2..8 are handled by unrolled transforms and need no table.
var (
	bitrev16    [16]uint16
	bitrev32    [32]uint16
	bitrev64    [64]uint16
	bitrev128   [128]uint16
	bitrev256   [256]uint16
	bitrev512   [512]uint16
	bitrev1024  [1024]uint16
	bitrev2048  [2048]uint16
	bitrev4096  [4096]uint16
	bitrev8192  [8192]uint16
	bitrev16384 [16384]uint16
)

func init() {
	fillTwiddle(twiddle8[:])
	fillTwiddle(twiddle16[:])
	fillTwiddle(twiddle32[:])
	fillTwiddle(twiddle64[:])
	fillTwiddle(twiddle128[:])
	fillTwiddle(twiddle256[:])
	fillTwiddle(twiddle512[:])
	fillTwiddle(twiddle1024[:])
	fillTwiddle(twiddle2048[:])
	fillTwiddle(twiddle4096[:])
	fillTwiddle(twiddle8192[:])
	fillTwiddle(twiddle16384[:])

	fillBitrev(bitrev16[:])
	fillBitrev(bitrev32[:])
	fillBitrev(bitrev64[:])
	fillBitrev(bitrev128[:])
	fillBitrev(bitrev256[:])
	fillBitrev(bitrev512[:])
	fillBitrev(bitrev1024[:])
	fillBitrev(bitrev2048[:])
	fillBitrev(bitrev4096[:])
	fillBitrev(bitrev8192[:])
	fillBitrev(bitrev16384[:])
}

// fillTwiddle writes the twiddle factors for a size-2*len(tw) FFT:
// tw[k] = exp(-2πi·k/n) with n = 2*len(tw). Angles are evaluated in
// float64 and rounded once to float32.
func fillTwiddle(tw []complex64) {
	n := 2 * len(tw)
	for k := range tw {
		angle := -2.0 * math.Pi * float64(k) / float64(n)
		tw[k] = complex(float32(math.Cos(angle)), float32(math.Sin(angle)))
	}
}
