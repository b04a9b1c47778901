package staticfft_test

import (
	"fmt"
	"math/cmplx"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/dsp/fourier"

	staticfft "github.com/cwbudde/algo-staticfft"
)

// supportedSizes lists every compiled-in transform size.
var supportedSizes = []int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384}

func randomComplex64(n int, seed int64) []complex64 {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(rnd.Float32()*2-1, rnd.Float32()*2-1)
	}

	return out
}

// assertSpectrumClose compares a single-precision spectrum against a
// double-precision reference with a 2% relative bound plus an absolute
// floor proportional to the largest bin.
func assertSpectrumClose(t *testing.T, got []complex64, want []complex128) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("spectrum length %d, want %d", len(got), len(want))
	}

	var norm float64
	for _, w := range want {
		if a := cmplx.Abs(w); a > norm {
			norm = a
		}
	}

	const relTol = 0.02

	for i := range got {
		diff := cmplx.Abs(complex128(got[i]) - want[i])
		limit := relTol*cmplx.Abs(want[i]) + 1e-3*norm
		if diff > limit {
			t.Fatalf("bin %d: got %v want %v (diff=%g, limit=%g)",
				i, got[i], want[i], diff, limit)
		}
	}
}

// TestCFFTMatchesGonum cross-checks every compiled-in size against an
// independent FFT implementation.
func TestCFFTMatchesGonum(t *testing.T) {
	t.Parallel()

	for _, n := range supportedSizes {
		n := n

		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			x := randomComplex64(n, int64(n))

			ref := make([]complex128, n)
			for i, v := range x {
				ref[i] = complex128(v)
			}

			want := fourier.NewCmplxFFT(n).Coefficients(nil, ref)

			if err := staticfft.CFFT(x); err != nil {
				t.Fatalf("CFFT(%d): %v", n, err)
			}

			assertSpectrumClose(t, x, want)
		})
	}
}

func TestCFFTImpulse(t *testing.T) {
	t.Parallel()

	for _, n := range supportedSizes {
		x := make([]complex64, n)
		x[0] = 1

		if err := staticfft.CFFT(x); err != nil {
			t.Fatalf("CFFT(%d): %v", n, err)
		}

		for i, v := range x {
			if v != 1 {
				t.Fatalf("size %d bin %d = %v, want (1+0i)", n, i, v)
			}
		}
	}
}

func TestCFFTZero(t *testing.T) {
	t.Parallel()

	for _, n := range supportedSizes {
		x := make([]complex64, n)

		if err := staticfft.CFFT(x); err != nil {
			t.Fatalf("CFFT(%d): %v", n, err)
		}

		for i, v := range x {
			if v != 0 {
				t.Fatalf("size %d bin %d = %v, want 0", n, i, v)
			}
		}
	}
}

// TestCFFTLinearity verifies CFFT(a*x + y) = a*CFFT(x) + CFFT(y).
func TestCFFTLinearity(t *testing.T) {
	t.Parallel()

	for _, n := range []int{8, 64, 256, 1024} {
		n := n

		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			x := randomComplex64(n, 1)
			y := randomComplex64(n, 2)
			a := complex(float32(2.5), float32(-1.25))

			combined := make([]complex64, n)
			for i := range combined {
				combined[i] = a*x[i] + y[i]
			}

			for _, buf := range [][]complex64{x, y, combined} {
				if err := staticfft.CFFT(buf); err != nil {
					t.Fatalf("CFFT(%d): %v", n, err)
				}
			}

			want := make([]complex128, n)
			for i := range want {
				want[i] = complex128(a*x[i] + y[i])
			}

			assertSpectrumClose(t, combined, want)
		})
	}
}

func TestCFFT4KnownValues(t *testing.T) {
	t.Parallel()

	buf := [4]complex64{1, 2, 3, 4}
	spec := staticfft.CFFT4(&buf)

	want := [4]complex64{10, complex(-2, 2), -2, complex(-2, -2)}
	if *spec != want {
		t.Fatalf("CFFT4 = %v, want %v", *spec, want)
	}

	// The returned view aliases the input array.
	if spec != &buf {
		t.Fatal("CFFT4 result does not alias its input")
	}
}
