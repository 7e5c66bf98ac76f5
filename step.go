// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a rewrite step until the first effect suspension.
// Returns (verdict, nil) on completion, or (zero, suspension) if pending.
func Step[T any](protocol kont.Expr[Verdict[T]]) (Verdict[T], *kont.Suspension[Verdict[T]]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended rewrite operation on the scan that
// owns it. The item stays live, so emitted values land before it.
//
// The suspension is consumed and the step advances to the next effect
// or completion. Apply the completed Verdict to it to finalize the item.
func Advance[T any](it GrowItem[T], susp *kont.Suspension[Verdict[T]]) (Verdict[T], *kont.Suspension[Verdict[T]]) {
	sop, ok := susp.Op().(scanDispatcher[T])
	if !ok {
		panic("mutscan: unhandled effect in Advance")
	}
	it.cursor()
	return susp.Resume(sop.DispatchScan(it.s))
}
