// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

import (
	"code.hybscloud.com/kont"
)

// Emit is the effect operation for inserting a value during a rewrite.
// Perform(Emit[T]{Value: v}) inserts v immediately before the element
// being rewritten.
type Emit[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

// DispatchScan handles Emit on the rewrite scan. Never fails.
func (e Emit[T]) DispatchScan(s *GrowScan[T]) kont.Resumed {
	s.insert(e.Value)
	return struct{}{}
}

// EmitAll is the effect operation for inserting several values during a
// rewrite, in order, immediately before the element being rewritten.
type EmitAll[T any] struct {
	kont.Phantom[struct{}]
	Values []T
}

// DispatchScan handles EmitAll on the rewrite scan. Never fails.
func (e EmitAll[T]) DispatchScan(s *GrowScan[T]) kont.Resumed {
	s.insertMany(e.Values)
	return struct{}{}
}

type verdictKind uint8

const (
	verdictKeep verdictKind = iota
	verdictDrop
	verdictReplace
	verdictExpand
)

// Verdict is the fate a rewrite step assigns to its element.
// The zero Verdict keeps the element.
type Verdict[T any] struct {
	kind   verdictKind
	value  T
	values []T
}

// Keep returns the Verdict that retains the element unchanged.
func Keep[T any]() Verdict[T] {
	return Verdict[T]{}
}

// Drop returns the Verdict that removes the element.
func Drop[T any]() Verdict[T] {
	return Verdict[T]{kind: verdictDrop}
}

// Replace returns the Verdict that substitutes v for the element.
func Replace[T any](v T) Verdict[T] {
	return Verdict[T]{kind: verdictReplace, value: v}
}

// Expand returns the Verdict that substitutes vs, in order, for the
// element. Expand with no values is Drop.
func Expand[T any](vs ...T) Verdict[T] {
	return Verdict[T]{kind: verdictExpand, values: vs}
}

// Apply runs the terminal action for the verdict on it, consuming it.
func (d Verdict[T]) Apply(it GrowItem[T]) {
	switch d.kind {
	case verdictDrop:
		it.Remove()
	case verdictReplace:
		it.Replace(d.value)
	case verdictExpand:
		it.cursor()
		it.s.remove()
		it.s.insertMany(d.values)
	default:
		it.Keep()
	}
}
