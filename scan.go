// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

import "iter"

// Scan is a forward pass over a slice that can keep, mutate, remove, or
// replace each element in place. Survivors keep their relative order and
// each is moved at most once.
//
// While a Scan is open the caller's slice has length zero; Close hands
// the reconciled elements back. A Scan must not be copied.
type Scan[T any] struct {
	cur cursor[T]
}

// Open begins a scan over *v. The scan has exclusive use of *v until
// Close; callers should defer Close immediately.
func Open[T any](v *[]T) *Scan[T] {
	s := &Scan[T]{}
	s.cur.open(v)
	return s
}

// Serial returns the serial number assigned to this scan.
func (s *Scan[T]) Serial() Serial {
	return s.cur.serial
}

// Next advances to the next unvisited element.
// A still-live item from the previous call is kept first, as if Keep had
// been called. Next returns false once every element has been visited.
func (s *Scan[T]) Next() (Item[T], bool) {
	c := &s.cur
	c.mustBeOpen()
	if c.live {
		s.keep()
	}
	if c.exhausted() {
		return Item[T]{}, false
	}
	return Item[T]{s: s, epoch: c.begin()}, true
}

// All returns an iterator over the remaining items.
// Each item not consumed by the loop body is kept when the loop advances.
// Breaking out of the loop leaves the current item live.
func (s *Scan[T]) All() iter.Seq[Item[T]] {
	return func(yield func(Item[T]) bool) {
		for {
			it, ok := s.Next()
			if !ok || !yield(it) {
				return
			}
		}
	}
}

func (s *Scan[T]) keep() {
	s.cur.shift()
	s.cur.finish()
}

// Close ends the scan. A live item is kept, the unvisited suffix is moved
// down over any gap left by removals, and *v is restored to the
// surviving elements. Close is idempotent.
func (s *Scan[T]) Close() {
	c := &s.cur
	if c.closed {
		return
	}
	if c.live {
		s.keep()
	}
	c.closeSuffix()
}

// Len reports how many elements *v would hold if the scan closed now.
func (s *Scan[T]) Len() int {
	c := &s.cur
	c.mustBeOpen()
	return c.write + c.end - c.read
}

// Segments returns the finalized prefix and the unvisited suffix.
// Both alias the store; writes through them are visible after Close.
// The live item, if any, is the first element of pending.
func (s *Scan[T]) Segments() (done, pending []T) {
	c := &s.cur
	c.mustBeOpen()
	return c.done(), c.pending(0)
}

// Values returns a read-only iterator over the elements in the order
// they would appear if the scan closed now.
func (s *Scan[T]) Values() iter.Seq[T] {
	done, pending := s.Segments()
	return concat(done, pending)
}

// Item is the element a Scan is currently positioned on.
//
// An Item is valid until one of Keep, Remove, or Replace is called, or
// until the next call to Next or Close. Any use after that panics.
type Item[T any] struct {
	s     *Scan[T]
	epoch uint64
}

func (it Item[T]) cursor() *cursor[T] {
	if it.s == nil {
		panic("mutscan: use of zero Item")
	}
	c := &it.s.cur
	c.mustBeLive(it.epoch)
	return c
}

// Get returns the current element.
func (it Item[T]) Get() T {
	c := it.cursor()
	return c.buf[c.read]
}

// Ptr returns a pointer to the current element in the store.
// The pointer must not be retained past the item's lifetime.
func (it Item[T]) Ptr() *T {
	c := it.cursor()
	return &c.buf[c.read]
}

// Set overwrites the current element in place.
func (it Item[T]) Set(v T) {
	c := it.cursor()
	c.buf[c.read] = v
}

// Keep retains the current element and advances.
func (it Item[T]) Keep() {
	it.cursor()
	it.s.keep()
}

// Remove takes the current element out of the slice and returns it.
func (it Item[T]) Remove() T {
	c := it.cursor()
	v := c.take()
	c.finish()
	return v
}

// Replace substitutes v for the current element and returns the old one.
// Unlike Set followed by Keep, v is written directly to its final slot.
func (it Item[T]) Replace(v T) T {
	c := it.cursor()
	old := c.extract()
	c.put(v)
	c.finish()
	return old
}

// Segments returns the finalized prefix and the unvisited suffix,
// excluding the current element.
func (it Item[T]) Segments() (done, pending []T) {
	c := it.cursor()
	return c.done(), c.pending(1)
}

// concat yields the elements of each segment in order.
func concat[T any](segs ...[]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seg := range segs {
			for _, v := range seg {
				if !yield(v) {
					return
				}
			}
		}
	}
}
