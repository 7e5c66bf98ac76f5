// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

import (
	"code.hybscloud.com/kont"
)

// EmitThen inserts a value and then continues with next.
// Fuses Perform(Emit[T]{Value: v}) + Then.
func EmitThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Emit[T]{Value: v}), next)
}

// EmitAllThen inserts values in order and then continues with next.
// Fuses Perform(EmitAll[T]{Values: vs}) + Then.
func EmitAllThen[T, B any](vs []T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(EmitAll[T]{Values: vs}), next)
}

// KeepDone finishes a rewrite step, keeping the element.
func KeepDone[T any]() kont.Eff[Verdict[T]] {
	return kont.Pure(Keep[T]())
}

// DropDone finishes a rewrite step, removing the element.
func DropDone[T any]() kont.Eff[Verdict[T]] {
	return kont.Pure(Drop[T]())
}

// ReplaceDone finishes a rewrite step, substituting v for the element.
func ReplaceDone[T any](v T) kont.Eff[Verdict[T]] {
	return kont.Pure(Replace(v))
}

// ExpandDone finishes a rewrite step, substituting vs for the element.
func ExpandDone[T any](vs ...T) kont.Eff[Verdict[T]] {
	return kont.Pure(Expand(vs...))
}
