package buffer

// Reshaping is driven by the Recorder so that every entry keeps the same size.
// Each operation reports the new size and whether it was applied; a skipped
// operation leaves the samples untouched.

func (e *Entry) reset(size int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.data = make([]float64, size)
	e.current.Clear()
	e.markDirty()
}

// fill sets every sample to the current signal value.
func (e *Entry) fill() {
	v := e.signal.Value()
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.data {
		e.data[i] = v
	}
	e.current.Clear()
	e.markDirty()
}

// enlarge grows the buffer to size, repeating the last sample into the new
// tail. It never shrinks.
func (e *Entry) enlarge(size int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	old := e.data
	if size <= len(old) {
		return
	}
	data := make([]float64, size)
	copy(data, old)
	if len(old) > 0 {
		last := old[len(old)-1]
		for i := len(old); i < size; i++ {
			data[i] = last
		}
	}
	e.data = data
	e.markDirty()
}

// crop keeps the circular span [start, end]; old index start becomes 0.
func (e *Entry) crop(start, end int) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	old := e.data
	size, ok := SizeAfterCrop(start, end, len(old))
	if !ok {
		return len(old), false
	}
	data := make([]float64, size)
	for i := range data {
		data[i] = old[(i+start)%len(old)]
	}
	e.data = data
	e.markDirty()
	return size, true
}

// cut removes the linear span [start, end] and closes the gap.
func (e *Entry) cut(start, end int) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	old := e.data
	size, ok := SizeAfterCut(start, end, len(old))
	if !ok {
		return len(old), false
	}
	data := make([]float64, size)
	copy(data, old[:start])
	copy(data[start:], old[end+1:])
	e.data = data
	e.markDirty()
	return size, true
}

// thin keeps every stride-th sample starting at 0.
func (e *Entry) thin(stride int) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	old := e.data
	size, ok := SizeAfterThin(stride, len(old))
	if !ok {
		return len(old), false
	}
	data := make([]float64, size)
	for i := range data {
		data[i] = old[i*stride]
	}
	e.data = data
	e.markDirty()
	return size, true
}

// shift rotates the buffer so that old index start becomes 0.
func (e *Entry) shift(start int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := len(e.data)
	if start <= 0 || start >= n {
		return false
	}
	data := make([]float64, 0, n)
	data = append(data, e.data[start:]...)
	data = append(data, e.data[:start]...)
	e.data = data
	e.markDirty()
	return true
}

func (e *Entry) markDirty() {
	e.boundsDirty = true
	e.windowValid = false
}
