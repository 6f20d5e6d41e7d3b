package covparam_test

import (
	"testing"

	"github.com/katalvlaran/covtrans/covparam"
)

// benchmarkDecode exercises the optimizer-shaped workload: one Encode to
// obtain a starting vector, then repeated Decodes of dimension n.
func benchmarkDecode(b *testing.B, n int) {
	theta, err := covparam.Encode(randomCov(n, 42))
	if err != nil {
		b.Fatalf("Encode failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = covparam.Decode(theta, n, nil); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

// BenchmarkDecode_Small benchmarks Decode at n=5.
func BenchmarkDecode_Small(b *testing.B) { benchmarkDecode(b, 5) }

// BenchmarkDecode_Medium benchmarks Decode at n=10.
func BenchmarkDecode_Medium(b *testing.B) { benchmarkDecode(b, 10) }

// BenchmarkEncode_Medium benchmarks Encode at n=10.
func BenchmarkEncode_Medium(b *testing.B) {
	cov := randomCov(10, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := covparam.Encode(cov); err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
	}
}
