// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

import (
	"code.hybscloud.com/kont"
)

// Rewrite runs a Cont-world rewrite step over every element of *v.
// Each step may perform Emit effects, which insert before the element,
// and returns the element's Verdict. Runs on the calling goroutine
// without intermediate slices.
func Rewrite[T any](v *[]T, f func(T) kont.Eff[Verdict[T]]) {
	s := OpenGrow(v)
	defer s.Close()
	h := rewriteHandler[T]{scan: s}
	for {
		it, ok := s.Next()
		if !ok {
			return
		}
		kont.Handle(f(it.Get()), h).Apply(it)
	}
}

// RewriteExpr runs an Expr-world rewrite step over every element of *v.
// Semantics match Rewrite.
func RewriteExpr[T any](v *[]T, f func(T) kont.Expr[Verdict[T]]) {
	s := OpenGrow(v)
	defer s.Close()
	h := rewriteHandler[T]{scan: s}
	for {
		it, ok := s.Next()
		if !ok {
			return
		}
		kont.HandleExpr(f(it.Get()), h).Apply(it)
	}
}
