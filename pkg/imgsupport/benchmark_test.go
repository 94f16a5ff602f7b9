package imgsupport_test

import (
	"testing"

	"github.com/dmitrymomot/imgsupport/pkg/imgsupport"
)

var benchmarkUAs = [][]byte{
	[]byte(chrome91UA),
	[]byte(firefox93UA),
	[]byte(safari166UA),
	[]byte(edge120UA),
	[]byte(samsung14UA),
	[]byte(googlebotUA),
}

// Helper variables to avoid compiler optimizations removing the function call
var (
	boolResult   bool
	formatResult imgsupport.Format
	detectResult imgsupport.Result
)

func BenchmarkWebPSupported_Chrome(b *testing.B) {
	ua := []byte(chrome91UA)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		boolResult = imgsupport.WebPSupported(ua)
	}
}

func BenchmarkAVIFSupported_Safari(b *testing.B) {
	ua := []byte(safari166UA)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		boolResult = imgsupport.AVIFSupported(ua)
	}
}

// Worst case: every marker is searched and none matches
func BenchmarkAVIFSupported_Unknown(b *testing.B) {
	ua := []byte(googlebotUA)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		boolResult = imgsupport.AVIFSupported(ua)
	}
}

func BenchmarkSupported_Mixed(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ua := benchmarkUAs[i%len(benchmarkUAs)]
		boolResult = imgsupport.WebPSupported(ua)
		boolResult = imgsupport.AVIFSupported(ua)
	}
}

func BenchmarkBest(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		formatResult, boolResult = imgsupport.Best(benchmarkUAs[i%len(benchmarkUAs)])
	}
}

func BenchmarkDetect(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		detectResult = imgsupport.Detect(benchmarkUAs[i%len(benchmarkUAs)])
	}
}

func BenchmarkSupported_Parallel(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = imgsupport.AVIFSupported(benchmarkUAs[i%len(benchmarkUAs)])
			i++
		}
	})
}
