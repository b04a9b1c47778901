package fft

// log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// reverseBits reverses the lower 'bits' bits of x.
// Example: reverseBits(6, 3) = reverseBits(0b110, 3) = 0b011 = 3.
func reverseBits(x, bits int) int {
	result := 0
	for i := 0; i < bits; i++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// fillBitrev writes the bit-reversal permutation indices for a
// size-len(rev) radix-2 FFT. The transforms swap x[i] with x[rev[i]]
// whenever rev[i] > i, which visits every pair exactly once.
func fillBitrev(rev []uint16) {
	bits := log2(len(rev))
	for i := range rev {
		rev[i] = uint16(reverseBits(i, bits))
	}
}
