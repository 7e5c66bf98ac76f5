// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

import (
	"code.hybscloud.com/kont"
)

// rewriteErrorHandler handles both rewrite and error effects.
// Rewrite ops act on the scan. Error ops short-circuit on Throw.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type rewriteErrorHandler[E, T any] struct {
	scan   *GrowScan[T]
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Rewrite+Error handler.
// Dispatch order: Rewrite → Error.
func (h rewriteErrorHandler[E, T]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if sop, ok := op.(scanDispatcher[T]); ok {
		return sop.DispatchScan(h.scan), true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, Verdict[T]](h.errCtx.Err), false
		}
		return v, true
	}
	panic("mutscan: unhandled effect in rewriteErrorHandler")
}

// RewriteError runs a Cont-world rewrite with error handling over *v.
// Returns Right with the number of elements rewritten, or Left with the
// thrown error. A Throw abandons the scan: the element being rewritten
// and the unvisited suffix are kept unchanged, and values emitted before
// the Throw stay inserted.
func RewriteError[E, T any](v *[]T, f func(T) kont.Eff[Verdict[T]]) kont.Either[E, int] {
	s := OpenGrow(v)
	defer s.Close()
	n := 0
	for {
		it, ok := s.Next()
		if !ok {
			return kont.Right[E, int](n)
		}
		wrapped := kont.Map[kont.Resumed, Verdict[T], kont.Either[E, Verdict[T]]](f(it.Get()), func(d Verdict[T]) kont.Either[E, Verdict[T]] {
			return kont.Right[E, Verdict[T]](d)
		})
		var errCtx kont.ErrorContext[E]
		h := rewriteErrorHandler[E, T]{scan: s, errCtx: &errCtx}
		result := kont.Handle(wrapped, h)
		d, ok := result.GetRight()
		if !ok {
			e, _ := result.GetLeft()
			return kont.Left[E, int](e)
		}
		d.Apply(it)
		n++
	}
}

// RewriteErrorExpr runs an Expr-world rewrite with error handling over *v.
// Semantics match RewriteError.
func RewriteErrorExpr[E, T any](v *[]T, f func(T) kont.Expr[Verdict[T]]) kont.Either[E, int] {
	s := OpenGrow(v)
	defer s.Close()
	n := 0
	for {
		it, ok := s.Next()
		if !ok {
			return kont.Right[E, int](n)
		}
		wrapped := kont.ExprMap(f(it.Get()), func(d Verdict[T]) kont.Either[E, Verdict[T]] {
			return kont.Right[E, Verdict[T]](d)
		})
		var errCtx kont.ErrorContext[E]
		h := rewriteErrorHandler[E, T]{scan: s, errCtx: &errCtx}
		result := kont.HandleExpr(wrapped, h)
		d, ok := result.GetRight()
		if !ok {
			e, _ := result.GetLeft()
			return kont.Left[E, int](e)
		}
		d.Apply(it)
		n++
	}
}
