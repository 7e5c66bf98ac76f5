// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is pre-allocated to avoid boxing ReturnFrame into
// kont.Frame on every fused constructor.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprEmitThen inserts a value and then continues with next.
// Fuses ExprPerform(Emit[T]{Value: v}) + ExprThen.
func ExprEmitThen[T, B any](v T, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Emit[T]{Value: v}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprEmitAllThen inserts values in order and then continues with next.
// Fuses ExprPerform(EmitAll[T]{Values: vs}) + ExprThen.
func ExprEmitAllThen[T, B any](vs []T, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = EmitAll[T]{Values: vs}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprKeepDone finishes a rewrite step, keeping the element.
func ExprKeepDone[T any]() kont.Expr[Verdict[T]] {
	return kont.ExprReturn(Keep[T]())
}

// ExprDropDone finishes a rewrite step, removing the element.
func ExprDropDone[T any]() kont.Expr[Verdict[T]] {
	return kont.ExprReturn(Drop[T]())
}

// ExprReplaceDone finishes a rewrite step, substituting v for the element.
func ExprReplaceDone[T any](v T) kont.Expr[Verdict[T]] {
	return kont.ExprReturn(Replace(v))
}

// ExprExpandDone finishes a rewrite step, substituting vs for the element.
func ExprExpandDone[T any](vs ...T) kont.Expr[Verdict[T]] {
	return kont.ExprReturn(Expand(vs...))
}
