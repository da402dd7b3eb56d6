package termbox

import "github.com/pkg/errors"

// ringBufferCapacity is the fixed capacity of the input ring buffer.
const ringBufferCapacity = 4096

// errRingBufferOverflow is returned by Push when the run would not fit in
// the remaining free space. The caller is expected to translate this into
// an input-overflow (-1) return from the event-waiting functions.
var errRingBufferOverflow = errors.New("ring buffer: insufficient free space")

// RingBuffer is a fixed-capacity circular byte queue used only by the
// input pipeline. Push fails if a run would not fit; Peek reads the oldest
// bytes without advancing; Discard advances the head.
type RingBuffer struct {
	buf        []byte
	head, size int
}

// NewRingBuffer allocates a ring buffer with capacity ringBufferCapacity.
func NewRingBuffer() *RingBuffer {
	return &RingBuffer{buf: make([]byte, ringBufferCapacity)}
}

// Len returns the number of bytes currently queued.
func (r *RingBuffer) Len() int {
	return r.size
}

// Free returns the number of bytes that can still be pushed.
func (r *RingBuffer) Free() int {
	return len(r.buf) - r.size
}

// Push appends p to the tail of the queue. It fails with
// errRingBufferOverflow if len(p) exceeds Free().
func (r *RingBuffer) Push(p []byte) error {
	if len(p) > r.Free() {
		return errors.WithStack(errRingBufferOverflow)
	}
	cap := len(r.buf)
	tail := (r.head + r.size) % cap
	for _, b := range p {
		r.buf[tail] = b
		tail = (tail + 1) % cap
	}
	r.size += len(p)
	return nil
}

// Peek copies up to len(dst) of the oldest queued bytes into dst without
// discarding them, and returns how many bytes were copied.
func (r *RingBuffer) Peek(dst []byte) int {
	n := len(dst)
	if n > r.size {
		n = r.size
	}
	cap := len(r.buf)
	for i := 0; i < n; i++ {
		dst[i] = r.buf[(r.head+i)%cap]
	}
	return n
}

// Discard advances the head by n bytes, clamped to the current length.
func (r *RingBuffer) Discard(n int) {
	if n > r.size {
		n = r.size
	}
	r.head = (r.head + n) % len(r.buf)
	r.size -= n
}
