// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan_test

import (
	"slices"
	"testing"
)

// expectSlice fails the test unless got equals want element-wise.
// A nil and an empty slice compare equal.
func expectSlice[T comparable](tb testing.TB, got, want []T) {
	tb.Helper()
	if !slices.Equal(got, want) {
		tb.Fatalf("got %v, want %v", got, want)
	}
}

// expectPanic runs f and fails the test unless it panics.
func expectPanic(tb testing.TB, what string, f func()) {
	tb.Helper()
	defer func() {
		if recover() == nil {
			tb.Fatalf("%s: expected panic", what)
		}
	}()
	f()
}

// seq returns [0, n).
func seq(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return v
}
