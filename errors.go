package staticfft

import "errors"

// ErrUnsupportedLength is returned by the slice-based helpers when the
// buffer length is not one of the compiled-in power-of-two sizes.
// The fixed-size entry points cannot fail: their lengths are enforced
// by the type system.
var ErrUnsupportedLength = errors.New("staticfft: unsupported FFT length")
