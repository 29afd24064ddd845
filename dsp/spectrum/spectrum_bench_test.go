package spectrum

import (
	"math/cmplx"
	"testing"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"64", 64},
	{"256", 256},
	{"1K", 1024},
	{"2K", 2048},
}

func benchInput(size int) []complex128 {
	inData := make([]complex128, size)
	for i := range inData {
		inData[i] = complex(float64(i)/10.0, float64(size-i)/10.0)
	}
	return inData
}

func BenchmarkMagnitude(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			inData := benchInput(testCase.size)

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = Magnitude(inData)
			}
		})
	}
}

func BenchmarkPower(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			inData := benchInput(testCase.size)

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = Power(inData)
			}
		})
	}
}

func BenchmarkMagnitudeDB(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			inData := benchInput(testCase.size)

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = MagnitudeDB(inData)
			}
		})
	}
}

// Baseline for the SIMD-backed Magnitude.
func magnitudeNaive(inData []complex128) []float64 {
	if len(inData) == 0 {
		return nil
	}

	out := make([]float64, len(inData))
	for i := range out {
		out[i] = cmplx.Abs(inData[i])
	}

	return out
}

func BenchmarkMagnitudeNaive(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			inData := benchInput(testCase.size)

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = magnitudeNaive(inData)
			}
		})
	}
}
