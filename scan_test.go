// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/mutscan"
)

func TestScanKeepAll(t *testing.T) {
	v := []int{1, 2, 3, 4}
	s := mutscan.Open(&v)
	if len(v) != 0 {
		t.Fatalf("caller length during scan got %d, want 0", len(v))
	}
	count := 0
	for it := range s.All() {
		_ = it.Get()
		count++
	}
	s.Close()
	if count != 4 {
		t.Fatalf("visited %d items, want 4", count)
	}
	expectSlice(t, v, []int{1, 2, 3, 4})
}

func TestScanEmpty(t *testing.T) {
	var v []int
	s := mutscan.Open(&v)
	if _, ok := s.Next(); ok {
		t.Fatal("empty scan yielded an item")
	}
	s.Close()
	if len(v) != 0 {
		t.Fatalf("got %v, want empty", v)
	}
}

func TestScanRemoveReplace(t *testing.T) {
	v := []int{1, 2, 3, 4, 5, 6}
	s := mutscan.Open(&v)
	var removed, replaced []int
	for it := range s.All() {
		switch x := it.Get(); {
		case x%3 == 0:
			removed = append(removed, it.Remove())
		case x == 4:
			replaced = append(replaced, it.Replace(40))
		case x == 5:
			it.Set(50)
		}
	}
	s.Close()
	expectSlice(t, v, []int{1, 2, 40, 50})
	expectSlice(t, removed, []int{3, 6})
	expectSlice(t, replaced, []int{4})
}

func TestScanRemoveAll(t *testing.T) {
	v := seq(5)
	s := mutscan.Open(&v)
	for it := range s.All() {
		it.Remove()
	}
	s.Close()
	if len(v) != 0 {
		t.Fatalf("got %v, want empty", v)
	}
}

func TestScanPtrMutation(t *testing.T) {
	v := []int{1, 2, 3}
	s := mutscan.Open(&v)
	for it := range s.All() {
		*it.Ptr() *= 10
	}
	s.Close()
	expectSlice(t, v, []int{10, 20, 30})
}

// TestScanSpaceToCamel uppercases the byte after each space and drops
// the space.
func TestScanSpaceToCamel(t *testing.T) {
	v := []byte("foo bar baz")
	s := mutscan.Open(&v)
	upper := false
	for it := range s.All() {
		c := it.Get()
		switch {
		case c == ' ':
			it.Remove()
			upper = true
		case upper:
			it.Set(c - 'a' + 'A')
			upper = false
		}
	}
	s.Close()
	if string(v) != "fooBarBaz" {
		t.Fatalf("got %q, want %q", v, "fooBarBaz")
	}
}

func TestScanEarlyAbandon(t *testing.T) {
	for k := 0; k <= 6; k++ {
		v := seq(6)
		s := mutscan.Open(&v)
		want := []int{}
		for i := 0; i < k; i++ {
			it, ok := s.Next()
			if !ok {
				t.Fatalf("k=%d: scan exhausted at %d", k, i)
			}
			if it.Get()%2 == 0 {
				it.Remove()
			} else {
				want = append(want, it.Get())
				it.Keep()
			}
		}
		want = append(want, seq(6)[k:]...)
		s.Close()
		expectSlice(t, v, want)
	}
}

func TestScanBreakKeepsLiveItem(t *testing.T) {
	v := []int{1, 2, 3, 4}
	s := mutscan.Open(&v)
	for it := range s.All() {
		if it.Get() == 1 {
			it.Remove()
			continue
		}
		if it.Get() == 3 {
			break
		}
	}
	s.Close()
	expectSlice(t, v, []int{2, 3, 4})
}

func TestScanCloseIdempotent(t *testing.T) {
	v := []int{1, 2, 3}
	s := mutscan.Open(&v)
	it, _ := s.Next()
	it.Remove()
	s.Close()
	s.Close()
	expectSlice(t, v, []int{2, 3})
}

func TestScanClearsVacatedSlots(t *testing.T) {
	a, b, c := new(int), new(int), new(int)
	v := []*int{a, b, c}
	s := mutscan.Open(&v)
	for it := range s.All() {
		if it.Get() != c {
			it.Remove()
		}
	}
	s.Close()
	if len(v) != 1 || v[0] != c {
		t.Fatalf("got %v, want [%p]", v, c)
	}
	for i, p := range v[:3] {
		if i > 0 && p != nil {
			t.Fatalf("slot %d still references %p after Close", i, p)
		}
	}
}

func TestScanSegments(t *testing.T) {
	v := []int{1, 2, 3, 4, 5}
	s := mutscan.Open(&v)
	defer s.Close()

	it, _ := s.Next()
	it.Keep()
	it, _ = s.Next()
	it.Remove()
	it, _ = s.Next()

	done, pending := it.Segments()
	expectSlice(t, done, []int{1})
	expectSlice(t, pending, []int{4, 5})

	done, pending = s.Segments()
	expectSlice(t, done, []int{1})
	expectSlice(t, pending, []int{3, 4, 5})

	expectSlice(t, slices.Collect(s.Values()), []int{1, 3, 4, 5})
	if s.Len() != 4 {
		t.Fatalf("Len got %d, want 4", s.Len())
	}

	// Writes through a segment reach the store.
	pending[2] = 50
	s.Close()
	expectSlice(t, v, []int{1, 3, 4, 50})
}

func TestScanSegmentsClipped(t *testing.T) {
	v := []int{1, 2, 3}
	s := mutscan.Open(&v)
	it, _ := s.Next()
	it.Keep()
	done, _ := s.Segments()
	if cap(done) != len(done) {
		t.Fatalf("done segment cap %d, want %d", cap(done), len(done))
	}
	_ = append(done, 99)
	s.Close()
	expectSlice(t, v, []int{1, 2, 3})
}

func TestScanStaleItemPanics(t *testing.T) {
	v := []int{1, 2, 3}
	s := mutscan.Open(&v)
	defer s.Close()

	first, _ := s.Next()
	first.Remove()
	expectPanic(t, "Get after Remove", func() { first.Get() })
	expectPanic(t, "Remove after Remove", func() { first.Remove() })

	second, _ := s.Next()
	if _, ok := s.Next(); !ok {
		t.Fatal("expected third item")
	}
	expectPanic(t, "Replace after Next", func() { second.Replace(0) })

	var zero mutscan.Item[int]
	expectPanic(t, "zero Item", func() { zero.Keep() })
}

func TestScanUseAfterClosePanics(t *testing.T) {
	v := []int{1, 2}
	s := mutscan.Open(&v)
	it, _ := s.Next()
	s.Close()
	expectPanic(t, "Next after Close", func() { s.Next() })
	expectPanic(t, "Segments after Close", func() { s.Segments() })
	expectPanic(t, "Item after Close", func() { it.Get() })
	expectSlice(t, v, []int{1, 2})
}

func TestScanPanicUnwindReconciles(t *testing.T) {
	v := seq(6)
	func() {
		s := mutscan.Open(&v)
		defer s.Close()
		defer func() { recover() }()
		for it := range s.All() {
			switch it.Get() {
			case 1:
				it.Remove()
			case 3:
				panic("callback failure")
			}
		}
	}()
	expectSlice(t, v, []int{0, 2, 3, 4, 5})
}

func TestScanSerial(t *testing.T) {
	var a, b []int
	s1 := mutscan.Open(&a)
	s2 := mutscan.OpenGrow(&b)
	defer s1.Close()
	defer s2.Close()
	if s1.Serial() >= s2.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", s1.Serial(), s2.Serial())
	}
}
