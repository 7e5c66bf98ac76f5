// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

// queue is the unbounded FIFO ring holding elements a GrowScan inserted
// but could not yet place into the store.
// The zero value is an empty queue; the ring is allocated on first push.
type queue[T any] struct {
	buf  []T
	head int
	n    int
}

// minQueueCapacity is the first ring allocation.
const minQueueCapacity = 4

func (q *queue[T]) len() int { return q.n }

// halves returns the queued elements in FIFO order as at most two
// capacity-clipped windows into the ring.
func (q *queue[T]) halves() (front, back []T) {
	if q.n == 0 {
		return nil, nil
	}
	if q.head+q.n <= len(q.buf) {
		end := q.head + q.n
		return q.buf[q.head:end:end], nil
	}
	wrap := q.head + q.n - len(q.buf)
	return q.buf[q.head:len(q.buf):len(q.buf)], q.buf[:wrap:wrap]
}

// copyTo copies the queued elements in FIFO order into dst.
func (q *queue[T]) copyTo(dst []T) int {
	front, back := q.halves()
	n := copy(dst, front)
	return n + copy(dst[n:], back)
}

// grow reallocates the ring so it can hold at least need elements,
// unwrapping the contents to start at index 0.
func (q *queue[T]) grow(need int) {
	c := max(2*len(q.buf), need, minQueueCapacity)
	buf := make([]T, c)
	q.copyTo(buf)
	q.buf = buf
	q.head = 0
}

func (q *queue[T]) pushBack(v T) {
	if q.n == len(q.buf) {
		q.grow(q.n + 1)
	}
	q.buf[(q.head+q.n)%len(q.buf)] = v
	q.n++
}

// pushBackMany appends vs with at most one reallocation.
func (q *queue[T]) pushBackMany(vs []T) {
	if len(vs) == 0 {
		return
	}
	if q.n+len(vs) > len(q.buf) {
		q.grow(q.n + len(vs))
	}
	tail := (q.head + q.n) % len(q.buf)
	k := copy(q.buf[tail:], vs)
	copy(q.buf, vs[k:])
	q.n += len(vs)
}

// popFront removes the oldest element. The caller must check len first.
func (q *queue[T]) popFront() T {
	v := q.buf[q.head]
	var zero T
	q.buf[q.head] = zero
	q.head++
	if q.head == len(q.buf) {
		q.head = 0
	}
	q.n--
	return v
}

// reset drops the contents and releases the ring.
func (q *queue[T]) reset() {
	q.buf = nil
	q.head = 0
	q.n = 0
}
