// Package sorts provides four textbook sorting algorithms over integer
// sequences, used by the sortbench harness to compare growth curves.
//
// # Algorithms
//
//   - SelectionSort: in-place, O(n²) comparisons, not stable
//   - MergeSort: returns a new slice, O(n log n), stable
//   - RadixSortBase10: in-place LSD radix sort with ten buckets per pass,
//     O(n·d) where d is the digit count of the largest value
//   - BucketSort: in-place, distributes values into k buckets by range and
//     selection sorts each bucket
//
// MergeSortParallel is a variant of MergeSort that sorts runs on a
// workerpool.Pool and merges them in parallel rounds.
//
// # Domain
//
// RadixSortBase10, RadixSortDigits and BucketSort are defined for
// non-negative values only. They validate their input before touching it and
// return an error wrapping ErrDomainLimit or ErrInvalidArgument instead of
// producing sorted-looking but wrong output.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortbench/sorts"
//
//	func Process(data []int64) error {
//	    if err := sorts.BucketSort(data, 16); err != nil {
//	        return err
//	    }
//	    return nil
//	}
//
// None of the functions retain a reference to their input after returning,
// and all of them are safe to call concurrently on disjoint slices.
package sorts
