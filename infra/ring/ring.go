// Package ring provides a lock-free single-producer single-consumer ring
// buffer. The write path enqueues trade events; the feed job drains them.
package ring

import "sync/atomic"

// Buffer is an SPSC ring. Exactly one goroutine may call Enqueue and
// exactly one may call Dequeue. head and tail sit on separate cache lines.
type Buffer[T any] struct {
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte
	buf   []T
	mask  uint64
}

func New[T any](size uint64) *Buffer[T] {
	if size == 0 || size&(size-1) != 0 {
		panic("ring: size must be a power of two")
	}
	return &Buffer[T]{
		buf:  make([]T, size),
		mask: size - 1,
	}
}

// Enqueue appends v and reports whether there was room.
func (r *Buffer[T]) Enqueue(v T) bool {
	h := r.head
	t := atomic.LoadUint64(&r.tail)
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = v
	atomic.StoreUint64(&r.head, h+1)
	return true
}

// Dequeue removes the oldest element. ok is false when the ring is empty.
func (r *Buffer[T]) Dequeue() (v T, ok bool) {
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return v, false
	}
	v = r.buf[t&r.mask]
	var zero T
	r.buf[t&r.mask] = zero
	atomic.StoreUint64(&r.tail, t+1)
	return v, true
}

// Len is the number of buffered elements at the instant of the call.
func (r *Buffer[T]) Len() int {
	return int(atomic.LoadUint64(&r.head) - atomic.LoadUint64(&r.tail))
}
