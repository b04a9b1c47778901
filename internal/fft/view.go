package fft

import "unsafe"

// asComplex reinterprets a buffer of real samples as len(x)/2 complex
// samples occupying the same storage: element k is (x[2k], x[2k+1]).
// complex64 is laid out as two adjacent float32 values, so this is a
// pure view change with no copy. Panics if the length is odd, so a
// malformed reshape can never reach a transform.
func asComplex(x []float32) []complex64 {
	if len(x)%2 != 0 {
		panic("fft: real buffer length must be even")
	}

	return unsafe.Slice((*complex64)(unsafe.Pointer(&x[0])), len(x)/2)
}
