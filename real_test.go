package staticfft_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/mjibson/go-dsp/fft"

	staticfft "github.com/cwbudde/algo-staticfft"
)

// TestRFFTMatchesCFFT checks the packed real transform against the full
// complex transform of the same samples: bins 0..N/2-1 agree, and the
// imaginary part of bin 0 holds the real Nyquist coefficient (bin N/2
// of the full spectrum).
func TestRFFTMatchesCFFT(t *testing.T) {
	t.Parallel()

	for _, n := range supportedSizes {
		n := n

		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			samples := make([]float32, n)
			promoted := make([]complex64, n)
			for i := range samples {
				samples[i] = float32(i + 5)
				promoted[i] = complex(samples[i], 0)
			}

			if err := staticfft.CFFT(promoted); err != nil {
				t.Fatalf("CFFT(%d): %v", n, err)
			}

			spectrum, err := staticfft.RFFT(samples)
			if err != nil {
				t.Fatalf("RFFT(%d): %v", n, err)
			}

			nyquist := imag(spectrum[0])
			wantNyquist := real(promoted[n/2])

			if d := math.Abs(float64(nyquist - wantNyquist)); d > 0.02*math.Abs(float64(wantNyquist))+1e-3 {
				t.Fatalf("nyquist = %g, want %g", nyquist, wantNyquist)
			}

			spectrum[0] = complex(real(spectrum[0]), 0)

			want := make([]complex128, n/2)
			for k := range want {
				want[k] = complex128(promoted[k])
			}

			assertSpectrumClose(t, spectrum, want)
		})
	}
}

// TestRFFTMatchesFFTReal cross-checks against an independent
// real-input FFT implementation.
func TestRFFTMatchesFFTReal(t *testing.T) {
	t.Parallel()

	for _, n := range supportedSizes {
		n := n

		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			samples := make([]float32, n)
			ref := make([]float64, n)
			for i := range samples {
				// A bounded, aperiodic-looking deterministic signal.
				v := math.Sin(0.7*float64(i)) + 0.25*math.Cos(3.1*float64(i))
				samples[i] = float32(v)
				ref[i] = float64(samples[i])
			}

			want := fft.FFTReal(ref)

			spectrum, err := staticfft.RFFT(samples)
			if err != nil {
				t.Fatalf("RFFT(%d): %v", n, err)
			}

			nyquist := imag(spectrum[0])
			wantNyquist := real(want[n/2])

			if d := math.Abs(float64(nyquist) - wantNyquist); d > 0.02*math.Abs(wantNyquist)+1e-2 {
				t.Fatalf("nyquist = %g, want %g", nyquist, wantNyquist)
			}

			spectrum[0] = complex(real(spectrum[0]), 0)
			assertSpectrumClose(t, spectrum, want[:n/2])
		})
	}
}

// TestRFFTSineWavePeak feeds 1024 samples of a 129 Hz sine at 44.1 kHz
// through the real transform. With a bin resolution of ~43.07 Hz the
// normalized magnitude spectrum must show an isolated peak at bin 3.
func TestRFFTSineWavePeak(t *testing.T) {
	t.Parallel()

	const (
		sampleCount = 1024
		sampleRate  = 44100.0
		frequency   = 129.0
		amplitude   = 1000.0
	)

	var samples [sampleCount]float32
	for i := range samples {
		ts := float64(i) / sampleRate
		samples[i] = float32(amplitude * math.Sin(2*math.Pi*frequency*ts))
	}

	spectrum := staticfft.RFFT1024(&samples)

	var mags [sampleCount / 2]float32
	staticfft.Magnitudes(mags[:], spectrum[:])
	scaleAll(mags[:], 1.0/sampleCount)

	if mags[3] <= 500 {
		t.Errorf("bin 3 magnitude = %g, want > 500", mags[3])
	}

	if mags[2] >= 2 {
		t.Errorf("bin 2 magnitude = %g, want < 2", mags[2])
	}

	if mags[4] >= 3 {
		t.Errorf("bin 4 magnitude = %g, want < 3", mags[4])
	}
}

func scaleAll(x []float32, s float32) {
	for i := range x {
		x[i] *= s
	}
}

func TestRFFT2KnownValues(t *testing.T) {
	t.Parallel()

	buf := [2]float32{3, 5}
	spec := staticfft.RFFT2(&buf)

	// DC = 3+5; Nyquist = 3-5, packed into the imaginary slot of bin 0.
	if spec[0] != complex(8, -2) {
		t.Fatalf("RFFT2 = %v, want (8-2i)", spec[0])
	}
}

func TestRFFTImpulse(t *testing.T) {
	t.Parallel()

	for _, n := range supportedSizes {
		samples := make([]float32, n)
		samples[0] = 1

		spectrum, err := staticfft.RFFT(samples)
		if err != nil {
			t.Fatalf("RFFT(%d): %v", n, err)
		}

		// Impulse at index 0: every bin is 1, including the Nyquist
		// coefficient folded into bin 0's imaginary part.
		if spectrum[0] != complex(1, 1) {
			t.Fatalf("size %d bin 0 = %v, want (1+1i)", n, spectrum[0])
		}

		for k := 1; k < len(spectrum); k++ {
			if spectrum[k] != 1 {
				t.Fatalf("size %d bin %d = %v, want (1+0i)", n, k, spectrum[k])
			}
		}
	}
}
