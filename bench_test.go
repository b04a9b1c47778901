package staticfft_test

import (
	"testing"

	staticfft "github.com/cwbudde/algo-staticfft"
)

func benchmarkCFFT(b *testing.B, src []complex64) {
	buf := make([]complex64, len(src))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		copy(buf, src)

		if err := staticfft.CFFT(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkRFFT(b *testing.B, src []float32) {
	buf := make([]float32, len(src))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		copy(buf, src)

		if _, err := staticfft.RFFT(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCFFT64(b *testing.B)    { benchmarkCFFT(b, randomComplex64(64, 1)) }
func BenchmarkCFFT1024(b *testing.B)  { benchmarkCFFT(b, randomComplex64(1024, 1)) }
func BenchmarkCFFT16384(b *testing.B) { benchmarkCFFT(b, randomComplex64(16384, 1)) }

func BenchmarkRFFT64(b *testing.B)    { benchmarkRFFT(b, randomReal(64)) }
func BenchmarkRFFT1024(b *testing.B)  { benchmarkRFFT(b, randomReal(1024)) }
func BenchmarkRFFT16384(b *testing.B) { benchmarkRFFT(b, randomReal(16384)) }

func randomReal(n int) []float32 {
	out := make([]float32, n)
	for i, c := range randomComplex64(n, 3) {
		out[i] = real(c)
	}

	return out
}
