package buffer

// SetCurrentIndex moves the head to index, wrapping out-of-range values
// (index >= Size goes to 0, index < 0 goes to Size-1), pushes the stored
// samples into the signals and notifies the index listeners. It does nothing
// while the head is locked.
func (r *Recorder) SetCurrentIndex(index int) {
	if r.lockIndex {
		return
	}
	switch {
	case index >= r.size:
		index = 0
	case index < 0:
		index = r.size - 1
	}
	r.currentIndex = index
	r.ReadFromBuffer()
	r.notifyIndexChanged()
}

// Tick moves the head by step samples. A head inside the window walks it,
// following the window around the end of the buffer when it wraps. A head
// outside the window moves to currentIndex+step. When the target falls
// outside the window the head rolls over to the in point (step >= 0) or the
// out point (step < 0) and Tick returns true. A locked head stays put and
// Tick returns false.
func (r *Recorder) Tick(step int) bool {
	if r.lockIndex {
		return false
	}
	var (
		next       int
		rolledOver bool
	)
	if r.IsIndexBetweenBounds(r.currentIndex) {
		offset := (r.currentIndex-r.inPoint+r.size)%r.size + step
		rolledOver = offset < 0 || offset >= r.InOutLength()
		next = (r.inPoint + offset) % r.size
	} else {
		next = r.currentIndex + step
		rolledOver = !r.IsIndexBetweenBounds(next)
	}

	if rolledOver {
		next = r.inPoint
		if step < 0 {
			next = r.outPoint
		}
	}
	r.SetCurrentIndex(next)
	return rolledOver
}

// TickAndRecord advances the head by one sample and records the current
// value of every signal there. Once the buffers are full the oldest sample
// is overwritten and the in point moves along. A key point at the recorded
// index is dropped. The index lock does not apply.
//
// On an empty recorder the first sample is recorded at index 0.
func (r *Recorder) TickAndRecord() {
	if r.empty {
		r.empty = false
		r.currentIndex = 0
		r.inPoint = 0
		r.outPoint = 0
	} else {
		r.currentIndex++
		if r.currentIndex >= r.size || r.currentIndex < 0 {
			r.currentIndex = 0
		}
		r.outPoint = r.currentIndex
		if r.outPoint == r.inPoint {
			r.inPoint++
			if r.inPoint >= r.size {
				r.inPoint = 0
			}
		}
	}
	r.keyPoints.Remove(r.currentIndex)
	r.WriteIntoBuffer()
	r.notifyIndexChanged()
}

// ReadFromBuffer pushes the samples at the head into the signals.
func (r *Recorder) ReadFromBuffer() {
	for _, e := range r.entries {
		e.readAt(r.currentIndex)
	}
}

// WriteIntoBuffer stores the signals' current values at the head.
func (r *Recorder) WriteIntoBuffer() {
	for _, e := range r.entries {
		e.writeAt(r.currentIndex)
	}
}

// SetInPoint sets the first index of the window and trims the key points.
// An index outside [0, Size) is ignored.
func (r *Recorder) SetInPoint(index int) {
	if index < 0 || index >= r.size {
		r.logger.Debug("buffer: in point out of range", "index", index, "size", r.size)
		return
	}
	r.inPoint = index
	r.empty = false
	r.keyPoints.Trim(r.inPoint, r.outPoint)
}

// SetOutPoint sets the last index of the window and trims the key points.
// An index outside [0, Size) is ignored.
func (r *Recorder) SetOutPoint(index int) {
	if index < 0 || index >= r.size {
		r.logger.Debug("buffer: out point out of range", "index", index, "size", r.size)
		return
	}
	r.outPoint = index
	r.empty = false
	r.keyPoints.Trim(r.inPoint, r.outPoint)
}

// MarkInPoint sets the in point at the head.
func (r *Recorder) MarkInPoint() { r.SetInPoint(r.currentIndex) }

// MarkOutPoint sets the out point at the head.
func (r *Recorder) MarkOutPoint() { r.SetOutPoint(r.currentIndex) }

// SetInOutFullBuffer makes the window span the whole buffer.
func (r *Recorder) SetInOutFullBuffer() {
	r.inPoint = 0
	r.outPoint = r.size - 1
	r.empty = false
	r.keyPoints.Trim(r.inPoint, r.outPoint)
}

// GotoInPoint moves the head to the in point.
func (r *Recorder) GotoInPoint() { r.SetCurrentIndex(r.inPoint) }

// GotoOutPoint moves the head to the out point.
func (r *Recorder) GotoOutPoint() { r.SetCurrentIndex(r.outPoint) }

// IsAtInPoint reports whether the head is at the in point.
func (r *Recorder) IsAtInPoint() bool { return r.currentIndex == r.inPoint }

// IsAtOutPoint reports whether the head is at the out point.
func (r *Recorder) IsAtOutPoint() bool { return r.currentIndex == r.outPoint }

// ToggleKeyPoint toggles a key point at the head and reports whether one was
// added.
func (r *Recorder) ToggleKeyPoint() bool {
	return r.keyPoints.Toggle(r.currentIndex)
}

// NextKeyPoint returns the key point after the head, wrapping around.
func (r *Recorder) NextKeyPoint() int {
	return r.keyPoints.Next(r.currentIndex)
}

// PreviousKeyPoint returns the key point before the head, wrapping around.
func (r *Recorder) PreviousKeyPoint() int {
	return r.keyPoints.Previous(r.currentIndex)
}

// RunProcessor lets p rewrite every sample of the window, visiting it from
// the in point to the out point, or backwards if p does not go forward. The
// head ends one step past the last visited sample, which wraps back to the
// start of the traversal.
func (r *Recorder) RunProcessor(p Processor) error {
	if p == nil {
		return ErrNilProcessor
	}
	if r.lockIndex {
		return ErrIndexLocked
	}
	if r.empty {
		return nil
	}
	p.Initialize(r)

	if p.GoForward() {
		r.GotoInPoint()
		for !r.IsAtOutPoint() {
			p.Process(r.inPoint, r.outPoint, r.currentIndex)
			r.WriteIntoBuffer()
			r.Tick(1)
		}
		p.Process(r.inPoint, r.outPoint, r.currentIndex)
		r.WriteIntoBuffer()
		r.Tick(1)
		return nil
	}

	r.GotoOutPoint()
	for !r.IsAtInPoint() {
		p.Process(r.outPoint, r.inPoint, r.currentIndex)
		r.WriteIntoBuffer()
		r.Tick(-1)
	}
	p.Process(r.outPoint, r.inPoint, r.currentIndex)
	r.WriteIntoBuffer()
	r.Tick(-1)
	return nil
}

func (r *Recorder) notifyIndexChanged() {
	for _, l := range r.listeners {
		l.IndexChanged(r.currentIndex)
	}
}
