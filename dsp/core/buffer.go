package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// EnsureLen32 is EnsureLen for host-side float32 buffers.
func EnsureLen32(buf []float32, n int) []float32 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float32, n)
}

// Deinterleave splits interleaved frames into per-channel slices.
// It returns the number of frames written.
func Deinterleave(dst [][]float32, interleaved []float32) int {
	channels := len(dst)
	if channels == 0 {
		return 0
	}

	frames := len(interleaved) / channels
	for _, ch := range dst {
		if len(ch) < frames {
			frames = len(ch)
		}
	}

	for i := 0; i < frames; i++ {
		for c := range dst {
			dst[c][i] = interleaved[i*channels+c]
		}
	}

	return frames
}

// Interleave merges per-channel slices into interleaved frames.
// It returns the number of frames written.
func Interleave(dst []float32, src [][]float32) int {
	channels := len(src)
	if channels == 0 {
		return 0
	}

	frames := len(dst) / channels
	for _, ch := range src {
		if len(ch) < frames {
			frames = len(ch)
		}
	}

	for i := 0; i < frames; i++ {
		for c := range src {
			dst[i*channels+c] = src[c][i]
		}
	}

	return frames
}
