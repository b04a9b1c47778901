package staticfft

// CFFT performs an in-place FFT on a slice of any supported length.
// It is a convenience for callers holding runtime-sized buffers; the
// length is validated here, at the interface boundary, and the call is
// forwarded to the matching fixed-size transform. Returns
// ErrUnsupportedLength if len(x) is not a compiled-in size.
func CFFT(x []complex64) error {
	switch len(x) {
	case 2:
		CFFT2((*[2]complex64)(x))
	case 4:
		CFFT4((*[4]complex64)(x))
	case 8:
		CFFT8((*[8]complex64)(x))
	case 16:
		CFFT16((*[16]complex64)(x))
	case 32:
		CFFT32((*[32]complex64)(x))
	case 64:
		CFFT64((*[64]complex64)(x))
	case 128:
		CFFT128((*[128]complex64)(x))
	case 256:
		CFFT256((*[256]complex64)(x))
	case 512:
		CFFT512((*[512]complex64)(x))
	case 1024:
		CFFT1024((*[1024]complex64)(x))
	case 2048:
		CFFT2048((*[2048]complex64)(x))
	case 4096:
		CFFT4096((*[4096]complex64)(x))
	case 8192:
		CFFT8192((*[8192]complex64)(x))
	case 16384:
		CFFT16384((*[16384]complex64)(x))
	default:
		return ErrUnsupportedLength
	}

	return nil
}

// RFFT performs an in-place real-input FFT on a slice of any supported
// length and returns the first len(x)/2 bins aliasing x's storage, with
// the Nyquist coefficient packed into the imaginary part of bin 0.
// Returns ErrUnsupportedLength if len(x) is not a compiled-in size.
func RFFT(x []float32) ([]complex64, error) {
	switch len(x) {
	case 2:
		return RFFT2((*[2]float32)(x))[:], nil
	case 4:
		return RFFT4((*[4]float32)(x))[:], nil
	case 8:
		return RFFT8((*[8]float32)(x))[:], nil
	case 16:
		return RFFT16((*[16]float32)(x))[:], nil
	case 32:
		return RFFT32((*[32]float32)(x))[:], nil
	case 64:
		return RFFT64((*[64]float32)(x))[:], nil
	case 128:
		return RFFT128((*[128]float32)(x))[:], nil
	case 256:
		return RFFT256((*[256]float32)(x))[:], nil
	case 512:
		return RFFT512((*[512]float32)(x))[:], nil
	case 1024:
		return RFFT1024((*[1024]float32)(x))[:], nil
	case 2048:
		return RFFT2048((*[2048]float32)(x))[:], nil
	case 4096:
		return RFFT4096((*[4096]float32)(x))[:], nil
	case 8192:
		return RFFT8192((*[8192]float32)(x))[:], nil
	case 16384:
		return RFFT16384((*[16384]float32)(x))[:], nil
	default:
		return nil, ErrUnsupportedLength
	}
}
