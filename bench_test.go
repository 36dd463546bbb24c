// SPDX-License-Identifier: MIT

package zagreb_test

import (
	"testing"

	"github.com/katalvlaran/zagreb"
	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/connectivity"
)

func benchmarkAnalyze(b *testing.B, mode connectivity.Mode) {
	g, err := builder.NewRandomSparse(60, 0.2, builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = zagreb.Analyze(g, zagreb.WithMode(mode))
	}
}

func BenchmarkAnalyze_Approx(b *testing.B) { benchmarkAnalyze(b, connectivity.ModeApprox) }

func BenchmarkAnalyze_Exact(b *testing.B) { benchmarkAnalyze(b, connectivity.ModeExact) }
