// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mutscan

// RetainFunc keeps the elements of *v for which keep returns true,
// preserving order, and returns how many were removed.
// keep may modify the element through its argument.
func RetainFunc[T any](v *[]T, keep func(*T) bool) int {
	s := Open(v)
	defer s.Close()
	removed := 0
	for it := range s.All() {
		if !keep(it.Ptr()) {
			it.Remove()
			removed++
		}
	}
	return removed
}

// UpdateFunc replaces each element of *v with the first result of f, or
// removes it when the second result is false.
func UpdateFunc[T any](v *[]T, f func(T) (T, bool)) {
	s := Open(v)
	defer s.Close()
	for it := range s.All() {
		if nv, ok := f(it.Get()); ok {
			it.Replace(nv)
		} else {
			it.Remove()
		}
	}
}

// ExpandFunc replaces each element of *v with the elements f returns for
// it, in order. An empty result removes the element.
func ExpandFunc[T any](v *[]T, f func(T) []T) {
	s := OpenGrow(v)
	defer s.Close()
	for it := range s.All() {
		it.ReplaceWithMany(f)
	}
}
