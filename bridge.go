// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world rewrite step to Expr-world.
// The resulting step can be run with RewriteExpr or driven with Step
// and Advance.
func Reify[T any](f func(T) kont.Eff[Verdict[T]]) func(T) kont.Expr[Verdict[T]] {
	return func(v T) kont.Expr[Verdict[T]] {
		return kont.Reify(f(v))
	}
}

// Reflect converts an Expr-world rewrite step to Cont-world.
// The resulting step can be run with Rewrite or RewriteError.
func Reflect[T any](f func(T) kont.Expr[Verdict[T]]) func(T) kont.Eff[Verdict[T]] {
	return func(v T) kont.Eff[Verdict[T]] {
		return kont.Reflect(f(v))
	}
}
