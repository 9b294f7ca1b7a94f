// Package ringbuffer implements a fixed-capacity circular buffer with
// overwrite-on-full semantics: pushing into a full buffer silently evicts
// the element at the opposite end instead of failing or growing.
package ringbuffer

import "iter"

// RingBuffer is a fixed-capacity double-ended queue backed by a single
// slice. When the buffer is full, PushBack evicts the front element and
// PushFront evicts the back one, so the buffer always retains the most
// recently pushed capacity-many elements.
//
// The zero value is an unusable zero-capacity buffer; construct instances
// with New. RingBuffer is not safe for concurrent use.
type RingBuffer[T any] struct {
	buf   []T
	start int // index of the front element
	size  int // number of live elements
}

// New creates a RingBuffer holding at most capacity elements. A negative
// capacity is treated as zero; a zero-capacity buffer stays empty and drops
// every push.
func New[T any](capacity int) *RingBuffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &RingBuffer[T]{buf: make([]T, capacity)}
}

// Len returns the current number of elements in the buffer.
func (r *RingBuffer[T]) Len() int {
	return r.size
}

// Cap returns the maximum number of elements the buffer can hold.
func (r *RingBuffer[T]) Cap() int {
	return len(r.buf)
}

// IsEmpty reports whether the buffer holds no elements.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.size == 0
}

// IsFull reports whether the buffer is at capacity, so that the next push
// will evict an element.
func (r *RingBuffer[T]) IsFull() bool {
	return r.size == len(r.buf)
}

// index maps a logical position (0 = front) to a slot in the backing slice.
func (r *RingBuffer[T]) index(i int) int {
	return (r.start + i) % len(r.buf)
}

// PushBack appends val at the back of the buffer. When the buffer is full
// the front element is evicted first; a zero-capacity buffer drops val.
func (r *RingBuffer[T]) PushBack(val T) {
	if len(r.buf) == 0 {
		return
	}
	if r.IsFull() {
		r.PopFront()
	}

	r.buf[r.index(r.size)] = val
	r.size++
}

// PushFront prepends val at the front of the buffer. When the buffer is
// full the back element is evicted first; a zero-capacity buffer drops val.
func (r *RingBuffer[T]) PushFront(val T) {
	if len(r.buf) == 0 {
		return
	}
	if r.IsFull() {
		r.PopBack()
	}

	r.start = (r.start - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.start] = val
	r.size++
}

// PopFront removes and returns the front element. The second return value
// is false when the buffer is empty.
func (r *RingBuffer[T]) PopFront() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}

	val := r.buf[r.start]
	r.buf[r.start] = zero
	r.start = r.index(1)
	r.size--
	return val, true
}

// PopBack removes and returns the back element. The second return value is
// false when the buffer is empty.
func (r *RingBuffer[T]) PopBack() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}

	i := r.index(r.size - 1)
	val := r.buf[i]
	r.buf[i] = zero
	r.size--
	return val, true
}

// Front returns the front element without removing it. The second return
// value is false when the buffer is empty.
func (r *RingBuffer[T]) Front() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.start], true
}

// Back returns the back element without removing it. The second return
// value is false when the buffer is empty.
func (r *RingBuffer[T]) Back() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.index(r.size-1)], true
}

// At returns the element at logical position i, where 0 is the front. The
// second return value is false when i is out of range.
func (r *RingBuffer[T]) At(i int) (T, bool) {
	if i < 0 || i >= r.size {
		var zero T
		return zero, false
	}
	return r.buf[r.index(i)], true
}

// Clear removes every element, keeping the capacity. Retained slots are
// zeroed so the buffer does not pin discarded values.
func (r *RingBuffer[T]) Clear() {
	clear(r.buf)
	r.start = 0
	r.size = 0
}

// Resize changes the buffer's capacity in place. When the current contents
// exceed the new capacity, the oldest (front) elements are discarded first,
// mirroring the overwrite-on-full push behavior.
func (r *RingBuffer[T]) Resize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}

	for r.size > capacity {
		r.PopFront()
	}

	buf := make([]T, capacity)
	for i := range r.size {
		buf[i] = r.buf[r.index(i)]
	}
	r.buf = buf
	r.start = 0
}

// Values returns an iterator over the elements from front to back without
// modifying the buffer. The buffer must not be mutated while ranging.
func (r *RingBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.size {
			if !yield(r.buf[r.index(i)]) {
				return
			}
		}
	}
}

// ToSlice returns the elements from front to back as a freshly allocated
// slice.
func (r *RingBuffer[T]) ToSlice() []T {
	out := make([]T, 0, r.size)
	for i := range r.size {
		out = append(out, r.buf[r.index(i)])
	}
	return out
}

// Drain removes every element and returns them from front to back.
func (r *RingBuffer[T]) Drain() []T {
	out := r.ToSlice()
	r.Clear()
	return out
}

// Append drains other into the back of this buffer, evicting this buffer's
// oldest elements when the combined contents exceed its capacity.
func (r *RingBuffer[T]) Append(other *RingBuffer[T]) {
	for _, val := range other.Drain() {
		r.PushBack(val)
	}
}

// Reverse flips the order of the buffered elements in place.
func (r *RingBuffer[T]) Reverse() {
	for i, j := 0, r.size-1; i < j; i, j = i+1, j-1 {
		a, b := r.index(i), r.index(j)
		r.buf[a], r.buf[b] = r.buf[b], r.buf[a]
	}
}
