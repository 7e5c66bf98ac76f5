// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

import (
	"iter"
	"slices"
)

// GrowScan is a Scan that can also insert elements before or after the
// current position.
//
// Inserted elements go straight into the gap left by removals when there
// is one. Otherwise they wait in an overflow queue and are rotated into
// the store as the scan advances. The queue is non-empty only while
// there is no gap.
type GrowScan[T any] struct {
	cur cursor[T]
	q   queue[T]
}

// OpenGrow begins an inserting scan over *v. The scan has exclusive use
// of *v until Close; callers should defer Close immediately.
func OpenGrow[T any](v *[]T) *GrowScan[T] {
	s := &GrowScan[T]{}
	s.cur.open(v)
	return s
}

// Serial returns the serial number assigned to this scan.
func (s *GrowScan[T]) Serial() Serial {
	return s.cur.serial
}

// Next advances to the next unvisited element.
// A still-live item from the previous call is kept first.
// Next returns false once every original element has been visited.
func (s *GrowScan[T]) Next() (GrowItem[T], bool) {
	c := &s.cur
	c.mustBeOpen()
	if c.live {
		s.keep()
	}
	if c.exhausted() {
		return GrowItem[T]{}, false
	}
	return GrowItem[T]{s: s, epoch: c.begin()}, true
}

// All returns an iterator over the remaining items.
// Each item not consumed by the loop body is kept when the loop advances.
func (s *GrowScan[T]) All() iter.Seq[GrowItem[T]] {
	return func(yield func(GrowItem[T]) bool) {
		for {
			it, ok := s.Next()
			if !ok || !yield(it) {
				return
			}
		}
	}
}

// Insert places v after everything finalized so far and before the live
// item, if any.
func (s *GrowScan[T]) Insert(v T) {
	c := &s.cur
	c.mustBeOpen()
	s.insert(v)
}

// InsertMany inserts vs in order, as repeated calls to Insert would.
func (s *GrowScan[T]) InsertMany(vs ...T) {
	c := &s.cur
	c.mustBeOpen()
	s.insertMany(vs)
}

func (s *GrowScan[T]) insert(v T) {
	c := &s.cur
	if c.write < c.read {
		c.buf[c.write] = v
		c.write++
		return
	}
	s.q.pushBack(v)
}

func (s *GrowScan[T]) insertMany(vs []T) {
	c := &s.cur
	n := copy(c.buf[c.write:c.read], vs)
	c.write += n
	s.q.pushBackMany(vs[n:])
}

// keep finalizes the element at read unchanged. With queued insertions
// and no gap, the element rotates through the queue so that queued
// elements land first.
func (s *GrowScan[T]) keep() {
	c := &s.cur
	switch {
	case c.write != c.read:
		c.shift()
	case s.q.len() > 0:
		s.q.pushBack(c.extract())
		c.put(s.q.popFront())
	default:
		c.write++
		c.read++
	}
	c.finish()
}

// remove takes the element at read and refills the opened slot from the
// queue, if anything is waiting.
func (s *GrowScan[T]) remove() T {
	c := &s.cur
	v := c.take()
	if s.q.len() > 0 {
		c.buf[c.write] = s.q.popFront()
		c.write++
	}
	c.finish()
	return v
}

// replace is remove followed by insert without the intermediate move.
func (s *GrowScan[T]) replace(v T) T {
	c := &s.cur
	old := c.extract()
	if s.q.len() > 0 {
		c.put(s.q.popFront())
		s.q.pushBack(v)
	} else {
		c.put(v)
	}
	c.finish()
	return old
}

// Close ends the scan. A live item is kept, queued insertions are
// spliced in ahead of the unvisited suffix, and *v is restored.
// Close is idempotent.
func (s *GrowScan[T]) Close() {
	c := &s.cur
	if c.closed {
		return
	}
	if c.live {
		s.keep()
	}
	n := s.q.len()
	if n == 0 {
		c.closeSuffix()
		return
	}
	// A non-empty queue implies write == read.
	buf := slices.Grow(c.buf[:c.end], n)[:c.end+n]
	copy(buf[c.write+n:], buf[c.read:c.end])
	s.q.copyTo(buf[c.write : c.write+n])
	s.q.reset()
	*c.vec = buf
	c.release()
}

// Len reports how many elements *v would hold if the scan closed now.
func (s *GrowScan[T]) Len() int {
	c := &s.cur
	c.mustBeOpen()
	return c.write + s.q.len() + c.end - c.read
}

// Segments returns, in order, the finalized prefix, the two halves of
// the overflow queue, and the unvisited suffix. All four alias scan
// storage. The live item, if any, is the first element of pending.
func (s *GrowScan[T]) Segments() (done, queued, queuedWrap, pending []T) {
	c := &s.cur
	c.mustBeOpen()
	queued, queuedWrap = s.q.halves()
	return c.done(), queued, queuedWrap, c.pending(0)
}

// Values returns a read-only iterator over the elements in the order
// they would appear if the scan closed now.
func (s *GrowScan[T]) Values() iter.Seq[T] {
	done, queued, queuedWrap, pending := s.Segments()
	return concat(done, queued, queuedWrap, pending)
}

// GrowItem is the element a GrowScan is currently positioned on.
//
// A GrowItem is valid until a consuming method is called, or until the
// next call to Next or Close. InsertBefore and InsertManyBefore do not
// consume the item. Any use after that panics.
type GrowItem[T any] struct {
	s     *GrowScan[T]
	epoch uint64
}

func (it GrowItem[T]) cursor() *cursor[T] {
	if it.s == nil {
		panic("mutscan: use of zero GrowItem")
	}
	c := &it.s.cur
	c.mustBeLive(it.epoch)
	return c
}

// Get returns the current element.
func (it GrowItem[T]) Get() T {
	c := it.cursor()
	return c.buf[c.read]
}

// Ptr returns a pointer to the current element in the store.
// The pointer must not be retained past the item's lifetime.
func (it GrowItem[T]) Ptr() *T {
	c := it.cursor()
	return &c.buf[c.read]
}

// Set overwrites the current element in place.
func (it GrowItem[T]) Set(v T) {
	c := it.cursor()
	c.buf[c.read] = v
}

// Keep retains the current element and advances.
func (it GrowItem[T]) Keep() {
	it.cursor()
	it.s.keep()
}

// Remove takes the current element out of the slice and returns it.
func (it GrowItem[T]) Remove() T {
	it.cursor()
	return it.s.remove()
}

// Replace substitutes v for the current element and returns the old one.
func (it GrowItem[T]) Replace(v T) T {
	it.cursor()
	return it.s.replace(v)
}

// InsertBefore inserts v immediately before the current element.
// The item stays live.
func (it GrowItem[T]) InsertBefore(v T) {
	it.cursor()
	it.s.insert(v)
}

// InsertManyBefore inserts vs immediately before the current element.
// The item stays live.
func (it GrowItem[T]) InsertManyBefore(vs ...T) {
	it.cursor()
	it.s.insertMany(vs)
}

// InsertAfter keeps the current element and inserts v right after it.
func (it GrowItem[T]) InsertAfter(v T) {
	it.cursor()
	it.s.keep()
	it.s.insert(v)
}

// InsertManyAfter keeps the current element and inserts vs right after it.
func (it GrowItem[T]) InsertManyAfter(vs ...T) {
	it.cursor()
	it.s.keep()
	it.s.insertMany(vs)
}

// ReplaceWith removes the current element, passes it to fn, and inserts
// the result in its place.
//
// The element is removed and the scan advanced before fn runs, so if fn
// panics only that element is lost and the scan can still be closed.
func (it GrowItem[T]) ReplaceWith(fn func(T) T) {
	it.cursor()
	v := it.s.remove()
	it.s.insert(fn(v))
}

// ReplaceWithMany removes the current element, passes it to fn, and
// inserts every returned element in its place. An empty result removes
// the element. The panic guarantee of ReplaceWith applies.
func (it GrowItem[T]) ReplaceWithMany(fn func(T) []T) {
	it.cursor()
	v := it.s.remove()
	it.s.insertMany(fn(v))
}

// TryReplaceWith is ReplaceWith for a fallible transform. When fn returns
// an error the element stays removed and the error is returned.
func (it GrowItem[T]) TryReplaceWith(fn func(T) (T, error)) error {
	it.cursor()
	v, err := fn(it.s.remove())
	if err != nil {
		return err
	}
	it.s.insert(v)
	return nil
}

// Segments returns the finalized prefix, the two halves of the overflow
// queue, and the unvisited suffix excluding the current element.
func (it GrowItem[T]) Segments() (done, queued, queuedWrap, pending []T) {
	c := it.cursor()
	queued, queuedWrap = it.s.q.halves()
	return c.done(), queued, queuedWrap, c.pending(1)
}
