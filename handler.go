// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

import (
	"code.hybscloud.com/kont"
)

// scanDispatcher is the structural interface for rewrite effects.
// DispatchScan acts on the scan while the element being rewritten is
// still live, so effects land before it.
type scanDispatcher[T any] interface {
	DispatchScan(s *GrowScan[T]) kont.Resumed
}

// rewriteHandler implements kont.Handler for rewrite effects.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type rewriteHandler[T any] struct {
	scan *GrowScan[T]
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h rewriteHandler[T]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	sop, ok := op.(scanDispatcher[T])
	if !ok {
		panic("mutscan: unhandled effect in rewriteHandler")
	}
	return sop.DispatchScan(h.scan), true
}
