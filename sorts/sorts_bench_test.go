package sorts

import (
	"math/rand"
	"runtime"
	"testing"

	"github.com/ajroetker/go-sortbench/sorts/workerpool"
)

// Generate random data for benchmarks, values in [0, n] as in the harness.
func generateInt64(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = rand.Int63n(int64(n) + 1)
	}
	return data
}

// Selection sort benchmarks
func BenchmarkSelectionSort_100(b *testing.B) {
	benchmarkInPlace(b, 100, func(data []int64) { SelectionSort(data) })
}

func BenchmarkSelectionSort_1000(b *testing.B) {
	benchmarkInPlace(b, 1000, func(data []int64) { SelectionSort(data) })
}

func BenchmarkSelectionSort_10000(b *testing.B) {
	benchmarkInPlace(b, 10000, func(data []int64) { SelectionSort(data) })
}

// Merge sort benchmarks
func BenchmarkMergeSort_1000(b *testing.B) {
	benchmarkInPlace(b, 1000, func(data []int64) { MergeSort(data) })
}

func BenchmarkMergeSort_100000(b *testing.B) {
	benchmarkInPlace(b, 100000, func(data []int64) { MergeSort(data) })
}

func BenchmarkMergeSortParallel_100000(b *testing.B) {
	pool := workerpool.New(runtime.GOMAXPROCS(0))
	defer pool.Close()
	benchmarkInPlace(b, 100000, func(data []int64) { MergeSortParallel(pool, data) })
}

// Radix sort benchmarks
func BenchmarkRadixSortBase10_1000(b *testing.B) {
	benchmarkInPlace(b, 1000, func(data []int64) { _ = RadixSortBase10(data) })
}

func BenchmarkRadixSortBase10_100000(b *testing.B) {
	benchmarkInPlace(b, 100000, func(data []int64) { _ = RadixSortBase10(data) })
}

func BenchmarkRadixSortDigits10_100000(b *testing.B) {
	benchmarkInPlace(b, 100000, func(data []int64) { _ = RadixSortDigits(data, 10) })
}

// Bucket sort benchmarks
func BenchmarkBucketSort_1000(b *testing.B) {
	benchmarkInPlace(b, 1000, func(data []int64) { _ = BucketSort(data, 1000/16) })
}

func BenchmarkBucketSort_100000(b *testing.B) {
	benchmarkInPlace(b, 100000, func(data []int64) { _ = BucketSort(data, 100000/16) })
}

func benchmarkInPlace(b *testing.B, n int, sortFn func([]int64)) {
	ref := generateInt64(n)
	data := make([]int64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sortFn(data)
	}
}
