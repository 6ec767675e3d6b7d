package checkout_test

import (
	"testing"

	"github.com/katalvlaran/checkout/checkout"
)

// BenchmarkSearch_ThreeDarts enumerates every three-dart path for a mid-range score.
func BenchmarkSearch_ThreeDarts(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = checkout.Search(100, 3)
	}
}

// BenchmarkSolve_170 measures the worst single query: unique path plus setup Plan B.
func BenchmarkSolve_170(b *testing.B) {
	prefs := checkout.DefaultPreferences()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = checkout.Solve(170, prefs)
	}
}

// BenchmarkSolve_AllScores solves the whole input domain once per iteration.
func BenchmarkSolve_AllScores(b *testing.B) {
	prefs := checkout.DefaultPreferences()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for score := checkout.MinScore; score <= checkout.MaxScore; score++ {
			_ = checkout.Solve(score, prefs)
		}
	}
}
