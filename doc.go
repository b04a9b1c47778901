// Package staticfft provides in-place fast Fourier transforms for
// fixed, power-of-two buffer sizes.
//
// Each supported size has its own entry point taking a pointer to a
// fixed-length array, so a length mismatch is a compile-time error
// rather than a runtime check. The transform mutates the buffer in
// place and returns a typed view of the same storage holding the
// frequency-domain result; no heap allocation happens on the call path.
//
// Complex transforms (CFFT2 .. CFFT16384) compute the standard
// unnormalized forward DFT
//
//	X[k] = Σ x[n]·exp(-2πi·k·n/N)
//
// with bins ordered by increasing frequency index. Callers wanting
// amplitudes divide by N themselves (see ScaleInPlace).
//
// Real-input transforms (RFFT2 .. RFFT16384) accept N float32 samples
// and produce the first N/2 complex bins of the spectrum in the same
// storage, computed via a half-size complex transform and conjugate
// symmetry. The remaining bins are redundant for real input
// (X[N-k] = conj(X[k])) and are not produced. The purely real
// coefficient at the Nyquist frequency (bin N/2) is packed into the
// otherwise-zero imaginary part of bin 0 instead of occupying an extra
// slot; consumers needing it must unpack it from there. This packing
// is a deliberate output convention, not an artifact.
//
// All transforms are synchronous, hold no state between calls and use
// no shared mutable data, so transforms on disjoint buffers may run
// concurrently without synchronization.
package staticfft
