package mruqueue

import "math"

// CeilSqrt returns the smallest r such that r*r >= n, or 0 for n <= 0.
//
// The float estimate is only a starting point, the result is corrected with
// integer comparisons so large n cannot be off by one.
func CeilSqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r < n {
		r++
	}
	for r > 1 && (r-1)*(r-1) >= n {
		r--
	}
	return r
}

// BlockCount returns ceil(upperLimit / blockSize).
//
// The caller is responsible for ensuring blockSize > 0.
func BlockCount(upperLimit int, blockSize int) int {
	return (upperLimit + blockSize - 1) / blockSize
}

// BlockCapacity returns the number of slots in block blockIndex.
//
// Every block is blockSize wide except the last, which takes the remainder
// of upperLimit / blockSize when that is non zero.
func BlockCapacity(blockIndex int, upperLimit int, blockSize int) int {
	rem := upperLimit % blockSize
	if blockIndex < BlockCount(upperLimit, blockSize)-1 || rem == 0 {
		return blockSize
	}
	return rem
}
