// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/mutscan"
)

func TestRetainFunc(t *testing.T) {
	v := []int{1, 2, 3, 4, 5, 6}
	removed := mutscan.RetainFunc(&v, func(x *int) bool {
		*x *= 2
		return *x%3 != 0
	})
	if removed != 2 {
		t.Fatalf("removed got %d, want 2", removed)
	}
	expectSlice(t, v, []int{2, 4, 8, 10})
}

func TestUpdateFunc(t *testing.T) {
	v := []string{"a", "", "b", ""}
	mutscan.UpdateFunc(&v, func(s string) (string, bool) {
		return strings.ToUpper(s), s != ""
	})
	expectSlice(t, v, []string{"A", "B"})
}

func TestExpandFunc(t *testing.T) {
	v := []string{"a b", "", "c"}
	mutscan.ExpandFunc(&v, strings.Fields)
	expectSlice(t, v, []string{"a", "b", "c"})
}
