package price

// History is an ordered series of frames at a given resolution, indexed
// newest-first: At(0) is the most recent close. Every windowed computation
// in the engine indexes from the most recent frame backwards in time, so
// the newest-first view is the one the History exposes. Frames are only
// ever added, never reordered or removed, within a single backtest run.
type History struct {
	Resolution Resolution

	// frames are stored in arrival (chronological) order; the newest-first
	// view is produced by At and Recent so the index inversion lives in
	// exactly one place.
	frames []Frame
}

func NewHistory(resolution Resolution) *History {
	return &History{Resolution: resolution}
}

// Push records a newer frame. The new frame becomes At(0).
func (h *History) Push(f Frame) {
	h.frames = append(h.frames, f)
}

func (h *History) Len() int {
	return len(h.frames)
}

// At returns the i-th most recent frame; At(0) is the latest.
func (h *History) At(i int) Frame {
	return h.frames[len(h.frames)-1-i]
}

// Recent returns the n most recent frames in chronological order
// (oldest first), the shape indicator pipelines consume. When fewer than
// n frames exist, all of them are returned.
func (h *History) Recent(n int) []Frame {
	if n > len(h.frames) {
		n = len(h.frames)
	}

	out := make([]Frame, n)
	copy(out, h.frames[len(h.frames)-n:])

	return out
}
