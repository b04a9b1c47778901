// Command benchfft times the fixed-size transforms and reports ns/op.
//
// Usage:
//
//	benchfft -sizes 256,1024,4096 -kind both -iters 2000
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"strconv"
	"strings"
	"time"

	staticfft "github.com/cwbudde/algo-staticfft"
	"github.com/cwbudde/algo-staticfft/internal/cpu"
)

func main() {
	var (
		sizeList = flag.String("sizes", "256,1024,4096,16384", "comma-separated transform sizes")
		kind     = flag.String("kind", "both", "transform kind: cfft, rfft, both")
		iters    = flag.Int("iters", 1000, "benchmark iterations")
		warmup   = flag.Int("warmup", 10, "warmup iterations")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	fmt.Printf("cpu: %s\n", cpu.DetectFeatures())
	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%8s  %6s  %12s\n", "size", "kind", "ns/op")

	rnd := rand.New(rand.NewSource(*seed))

	for _, n := range sizes {
		for _, k := range resolveKinds(*kind) {
			nsPerOp, err := benchmarkSize(rnd, n, k, *iters, *warmup)
			if err != nil {
				fmt.Printf("%8d  %6s  %12s\n", n, k, err)
				continue
			}

			fmt.Printf("%8d  %6s  %12.1f\n", n, k, nsPerOp)
		}
	}
}

// benchmarkSize times one (size, kind) pair. The transforms are
// in-place, so each iteration restores the buffer from a pristine copy
// first; the copy is cheap relative to the transform.
func benchmarkSize(rnd *rand.Rand, n int, kind string, iters, warmup int) (float64, error) {
	switch kind {
	case "cfft":
		return benchComplex(rnd, n, iters, warmup)
	case "rfft":
		return benchReal(rnd, n, iters, warmup)
	default:
		return 0, fmt.Errorf("unknown kind %q", kind)
	}
}

func benchComplex(rnd *rand.Rand, n, iters, warmup int) (float64, error) {
	src := make([]complex64, n)
	for i := range src {
		src[i] = complex(rnd.Float32(), rnd.Float32())
	}

	buf := make([]complex64, n)

	run := func() error {
		copy(buf, src)
		return staticfft.CFFT(buf)
	}

	for i := 0; i < warmup; i++ {
		if err := run(); err != nil {
			return 0, err
		}
	}

	runtime.GC()

	start := time.Now()

	for i := 0; i < iters; i++ {
		if err := run(); err != nil {
			return 0, err
		}
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters), nil
}

func benchReal(rnd *rand.Rand, n, iters, warmup int) (float64, error) {
	src := make([]float32, n)
	for i := range src {
		src[i] = rnd.Float32()
	}

	buf := make([]float32, n)

	run := func() error {
		copy(buf, src)
		_, err := staticfft.RFFT(buf)
		return err
	}

	for i := 0; i < warmup; i++ {
		if err := run(); err != nil {
			return 0, err
		}
	}

	runtime.GC()

	start := time.Now()

	for i := 0; i < iters; i++ {
		if err := run(); err != nil {
			return 0, err
		}
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters), nil
}

func resolveKinds(kind string) []string {
	switch kind {
	case "both":
		return []string{"cfft", "rfft"}
	case "cfft", "rfft":
		return []string{kind}
	default:
		return []string{kind}
	}
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			fmt.Printf("skipping %q: %v\n", part, err)
			continue
		}

		out = append(out, n)
	}

	return out
}
