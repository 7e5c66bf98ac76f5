// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan_test

import (
	"testing"

	"code.hybscloud.com/mutscan"
)

type token struct{ id int }

// TestScanOwnership checks that every element ends up owned exactly by
// the slice or by the caller, and that nothing is duplicated or left
// behind in the backing array.
func TestScanOwnership(t *testing.T) {
	input := make([]*token, 8)
	for i := range input {
		input[i] = &token{id: i}
	}
	originals := append([]*token(nil), input...)

	v := input
	s := mutscan.Open(&v)
	var keep, alsoKeep *token
	for it := range s.All() {
		id := it.Get().id
		if id == 6 {
			break
		}
		switch id {
		case 2:
			it.Replace(&token{id: 10})
		case 3:
			keep = it.Remove()
		case 4:
			it.Remove()
		case 5:
			alsoKeep = it.Replace(&token{id: 20})
		}
	}
	s.Close()

	keepCopy := keep
	alsoKeepCopy1, alsoKeepCopy2 := alsoKeep, alsoKeep
	retained := []*token{keep, keepCopy, alsoKeep, alsoKeepCopy1, alsoKeepCopy2}

	owners := func(p *token) int {
		n := 0
		for _, q := range v {
			if q == p {
				n++
			}
		}
		for _, q := range retained {
			if q == p {
				n++
			}
		}
		return n
	}

	want := []int{1, 1, 0, 2, 0, 3, 1, 1}
	for i, p := range originals {
		if got := owners(p); got != want[i] {
			t.Errorf("element %d owners got %d, want %d", i, got, want[i])
		}
	}

	ids := make([]int, len(v))
	for i, p := range v {
		ids[i] = p.id
	}
	expectSlice(t, ids, []int{0, 1, 10, 20, 6, 7})

	for i, p := range v[len(v):cap(v)] {
		if p != nil {
			t.Errorf("backing slot %d still holds element %d", len(v)+i, p.id)
		}
	}
}
