package buffer

import "fmt"

// PackFrom rotates every entry so that index start becomes index 0, then
// re-reads the head, snapping it to the in point if it left the window. It
// returns false, changing nothing, unless 0 < start < Size.
func (r *Recorder) PackFrom(start int) bool {
	if start <= 0 || start >= r.size {
		return false
	}
	for _, e := range r.entries {
		e.shift(start)
	}

	size := r.size
	r.keyPoints.Remap(func(p int) (int, bool) {
		return (p - start + size) % size, true
	})
	r.currentIndex = (r.currentIndex - start + size) % size
	if r.currentIndex < 0 {
		r.currentIndex = 0
	}
	r.inPoint = 0
	r.outPoint = (r.outPoint - start + size) % size
	r.empty = false
	r.keyPoints.Trim(r.inPoint, r.outPoint)
	r.Tick(0)
	return true
}

// Pack rotates the buffers so that the in point becomes index 0.
func (r *Recorder) Pack() bool {
	return r.PackFrom(r.inPoint)
}

// Crop keeps only the circular span [start, end] of every entry. Old index
// start becomes 0, the window spans the whole new buffer and the head moves
// to 0. It returns false, changing nothing, when start or end is not a valid
// index.
func (r *Recorder) Crop(start, end int) bool {
	old := r.size
	want, ok := SizeAfterCrop(start, end, old)
	if !ok {
		r.logger.Debug("buffer: crop skipped", "start", start, "end", end, "size", old)
		return false
	}
	size := r.apply("crop", want, func(e *Entry) (int, bool) { return e.crop(start, end) })

	relocate := func(p int) (int, bool) {
		q := (p - start + old) % old
		return q, q < size
	}
	r.keyPoints.Remap(relocate)
	if q, kept := relocate(r.currentIndex); kept {
		r.currentIndex = q
	} else {
		r.currentIndex = 0
	}
	r.inPoint = 0
	r.outPoint = size - 1
	r.empty = false
	r.GotoInPoint()
	return true
}

// CropToWindow crops the buffers to the active window.
func (r *Recorder) CropToWindow() bool {
	if r.inPoint != r.outPoint {
		return r.Crop(r.inPoint, r.outPoint)
	}
	return r.Crop(r.inPoint, (r.inPoint+1)%r.size)
}

// Cut removes the linear span [start, end] from every entry and closes the
// gap. The window becomes [0, start-1] (the whole buffer when start is 0) and
// the head moves to the out point. It returns false, changing nothing, when
// the span is invalid or would remove every sample.
func (r *Recorder) Cut(start, end int) bool {
	want, ok := SizeAfterCut(start, end, r.size)
	if !ok {
		r.logger.Debug("buffer: cut skipped", "start", start, "end", end, "size", r.size)
		return false
	}
	size := r.apply("cut", want, func(e *Entry) (int, bool) { return e.cut(start, end) })

	removed := end - start + 1
	relocate := func(p int) (int, bool) {
		switch {
		case p < start:
			return p, true
		case p > end:
			return p - removed, true
		default:
			return 0, false
		}
	}
	r.keyPoints.Remap(relocate)
	if q, kept := relocate(r.currentIndex); kept {
		r.currentIndex = q
	} else {
		r.currentIndex = 0
	}
	r.inPoint = 0
	r.outPoint = start - 1
	if r.outPoint < 0 {
		r.outPoint = size - 1
	}
	r.empty = false
	r.keyPoints.Trim(r.inPoint, r.outPoint)
	r.GotoOutPoint()
	return true
}

// CutWindow cuts the active window out of the buffers. A wrapping window is
// left alone.
func (r *Recorder) CutWindow() bool {
	if r.inPoint > r.outPoint {
		return false
	}
	return r.Cut(r.inPoint, r.outPoint)
}

// Thin packs the buffers from the in point and keeps every stride-th sample.
// Buffers of at most 2*stride samples are only packed. The window then spans
// the whole buffer and the head moves to 0.
func (r *Recorder) Thin(stride int) bool {
	if stride < 1 {
		return false
	}
	r.Pack()
	r.inPoint = 0
	r.currentIndex = 0
	if r.size <= 2*stride {
		r.logger.Debug("buffer: thin skipped, buffer too small", "stride", stride, "size", r.size)
		return false
	}
	want, ok := SizeAfterThin(stride, r.size)
	if !ok {
		return false
	}
	size := r.apply("thin", want, func(e *Entry) (int, bool) { return e.thin(stride) })

	r.keyPoints.Remap(func(p int) (int, bool) {
		return p / stride, p%stride == 0 && p/stride < size
	})
	r.outPoint = size - 1
	r.empty = false
	r.keyPoints.Trim(r.inPoint, r.outPoint)
	r.GotoInPoint()
	return true
}

// Resize changes the size of every entry. Shrinking crops the buffers to
// size samples starting at the in point; growing packs them from the in
// point and repeats the last sample into the new tail.
func (r *Recorder) Resize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	switch {
	case size < r.size:
		r.Crop(r.inPoint, (r.inPoint+size-1)%r.size)
	case size > r.size:
		r.Pack()
		for _, e := range r.entries {
			e.enlarge(size)
		}
		r.size = size
	}
	return nil
}

// apply runs op on every entry and returns the resulting size. Every entry
// holds r.size samples, so each one must report want; a disagreement means
// the entries went out of sync and is logged. Without entries want is used.
func (r *Recorder) apply(op string, want int, fn func(*Entry) (int, bool)) int {
	size := -1
	for _, e := range r.entries {
		n, ok := fn(e)
		if !ok {
			r.logger.Error("buffer: entry skipped reshape", "op", op, "entry", e.String(), "size", r.size)
			continue
		}
		if n != want {
			r.logger.Error("buffer: entry size disagrees", "op", op, "entry", e.String(), "got", n, "want", want)
		}
		if size < 0 {
			size = n
		}
	}
	if size < 0 {
		size = want
	}
	r.size = size
	return size
}
