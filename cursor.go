// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

import "fmt"

// cursor is the buffer state shared by Scan and GrowScan.
//
// buf is the store captured at open, with len(buf) == end. The caller's
// slice is truncated to length zero until the scan closes, so nothing
// else observes elements mid-scan:
//
//	|0      |write   |read          |end
//	[finalized][ gap ][ unvisited    ]
//
// Gap slots always hold the zero value so removed elements are not kept
// reachable through the backing array.
type cursor[T any] struct {
	vec   *[]T
	buf   []T
	write int
	read  int
	end   int

	// epoch identifies the live item; every terminal action bumps it.
	epoch  uint64
	live   bool
	closed bool
	serial Serial
}

func (c *cursor[T]) open(v *[]T) {
	buf := *v
	c.vec = v
	c.buf = buf
	c.end = len(buf)
	c.serial = nextSerial()
	*v = buf[:0]
}

func (c *cursor[T]) fail(msg string) {
	panic(fmt.Sprintf("mutscan: scan %d: %s", c.serial, msg))
}

func (c *cursor[T]) mustBeOpen() {
	if c.closed {
		c.fail("use after Close")
	}
}

// mustBeLive panics unless epoch names the currently live item.
func (c *cursor[T]) mustBeLive(epoch uint64) {
	c.mustBeOpen()
	if !c.live || epoch != c.epoch {
		c.fail("use of finalized item")
	}
}

// begin marks the element at read as the live item and returns its epoch.
func (c *cursor[T]) begin() uint64 {
	c.live = true
	return c.epoch
}

// finish ends the live item's lifetime.
func (c *cursor[T]) finish() {
	c.live = false
	c.epoch++
}

func (c *cursor[T]) exhausted() bool { return c.read == c.end }

// shift moves the element at read across the gap to write.
func (c *cursor[T]) shift() {
	if c.write != c.read {
		var zero T
		c.buf[c.write] = c.buf[c.read]
		c.buf[c.read] = zero
	}
	c.write++
	c.read++
}

// extract moves the element at read out of the store without advancing.
func (c *cursor[T]) extract() T {
	var zero T
	v := c.buf[c.read]
	c.buf[c.read] = zero
	return v
}

// take moves the element at read out of the store, widening the gap.
func (c *cursor[T]) take() T {
	v := c.extract()
	c.read++
	return v
}

// put stores v at write and advances both positions, leaving the gap
// width unchanged. The element at read must already be extracted.
func (c *cursor[T]) put(v T) {
	c.buf[c.write] = v
	c.write++
	c.read++
}

// closeSuffix moves the unvisited suffix down over the gap and hands the
// store back to the caller.
func (c *cursor[T]) closeSuffix() {
	n := copy(c.buf[c.write:], c.buf[c.read:c.end])
	size := c.write + n
	clear(c.buf[size:c.end])
	*c.vec = c.buf[:size]
	c.release()
}

func (c *cursor[T]) release() {
	c.buf = nil
	c.vec = nil
	c.closed = true
}

func (c *cursor[T]) done() []T {
	return c.buf[:c.write:c.write]
}

// pending returns the unvisited suffix, starting skip elements past read.
func (c *cursor[T]) pending(skip int) []T {
	return c.buf[c.read+skip : c.end : c.end]
}
