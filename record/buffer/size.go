package buffer

// SizeAfterCrop returns the size of an n-sample buffer after keeping only the
// circular span [start, end]. A span covering the whole buffer keeps n
// samples. ok is false when start or end lies outside [0, n), so end == n
// is rejected as well.
func SizeAfterCrop(start, end, n int) (size int, ok bool) {
	if n <= 0 || start < 0 || start >= n || end < 0 || end >= n {
		return n, false
	}
	size = (end - start + 1 + n) % n
	if size == 0 {
		size = n
	}
	return size, true
}

// SizeAfterCut returns the size of an n-sample buffer after removing the
// linear span [start, end]. ok is false when the span is not a valid
// ascending index range or would remove every sample.
func SizeAfterCut(start, end, n int) (size int, ok bool) {
	if start < 0 || start > end || end >= n {
		return n, false
	}
	size = n - (end - start + 1)
	if size <= 0 {
		return n, false
	}
	return size, true
}

// SizeAfterThin returns the size of an n-sample buffer after keeping every
// stride-th sample. The remainder is discarded.
func SizeAfterThin(stride, n int) (size int, ok bool) {
	if stride < 1 || n/stride == 0 {
		return n, false
	}
	return n / stride, true
}
