// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/mutscan"
)

// workload pairs an in-place scan with an allocating reference that must
// produce the same result.
type workload struct {
	name      string
	inPlace   func(v *[]int)
	reference func(v []int) []int
	// growth is the worst-case output length per input element.
	growth int
}

var workloads = []workload{
	{
		name: "keep-all",
		inPlace: func(v *[]int) {
			s := mutscan.Open(v)
			defer s.Close()
			for range s.All() {
			}
		},
		reference: func(v []int) []int { return slices.Clone(v) },
		growth:    1,
	},
	{
		name: "retain-even",
		inPlace: func(v *[]int) {
			mutscan.RetainFunc(v, func(x *int) bool { return *x%2 == 0 })
		},
		reference: func(v []int) []int {
			out := make([]int, 0, len(v))
			for _, x := range v {
				if x%2 == 0 {
					out = append(out, x)
				}
			}
			return out
		},
		growth: 1,
	},
	{
		name: "double-or-drop",
		inPlace: func(v *[]int) {
			mutscan.UpdateFunc(v, func(x int) (int, bool) { return 2 * x, x%5 != 0 })
		},
		reference: func(v []int) []int {
			out := make([]int, 0, len(v))
			for _, x := range v {
				if x%5 != 0 {
					out = append(out, 2*x)
				}
			}
			return out
		},
		growth: 1,
	},
	{
		name: "insert-after-each",
		inPlace: func(v *[]int) {
			s := mutscan.OpenGrow(v)
			defer s.Close()
			for it := range s.All() {
				it.InsertAfter(-it.Get())
			}
		},
		reference: func(v []int) []int {
			out := make([]int, 0, 2*len(v))
			for _, x := range v {
				out = append(out, x, -x)
			}
			return out
		},
		growth: 2,
	},
	{
		name: "expand-neighbours",
		inPlace: func(v *[]int) {
			mutscan.ExpandFunc(v, func(x int) []int { return []int{x - 1, x, x + 1} })
		},
		reference: func(v []int) []int {
			out := make([]int, 0, 3*len(v))
			for _, x := range v {
				out = append(out, x-1, x, x+1)
			}
			return out
		},
		growth: 3,
	},
	{
		name: "rewrite-emit",
		inPlace: func(v *[]int) {
			mutscan.Rewrite(v, func(x int) kont.Eff[mutscan.Verdict[int]] {
				switch x % 3 {
				case 0:
					return mutscan.EmitThen(-x, mutscan.KeepDone[int]())
				case 1:
					return mutscan.DropDone[int]()
				}
				return mutscan.KeepDone[int]()
			})
		},
		reference: func(v []int) []int {
			out := make([]int, 0, len(v)+len(v)/3+1)
			for _, x := range v {
				switch x % 3 {
				case 0:
					out = append(out, -x, x)
				case 2:
					out = append(out, x)
				}
			}
			return out
		},
		growth: 2,
	},
}

func selectWorkloads(names []string) ([]workload, error) {
	if len(names) == 0 {
		return workloads, nil
	}
	var selected []workload
	for _, name := range names {
		i := slices.IndexFunc(workloads, func(w workload) bool { return w.name == name })
		if i < 0 {
			return nil, fmt.Errorf("unknown workload %q", name)
		}
		selected = append(selected, workloads[i])
	}
	return selected, nil
}

type benchResult struct {
	name      string
	size      int
	rounds    int
	inPlace   time.Duration
	reference time.Duration
	allocated uint64
}

// measure runs w for rounds iterations on a buffer sized for its worst
// case growth, so only genuine reallocations show up as allocations.
func measure(w workload, size, rounds int) (benchResult, error) {
	src := make([]int, size)
	for i := range src {
		src[i] = i
	}
	want := w.reference(src)

	buf := make([]int, 0, size*w.growth)
	r := benchResult{name: w.name, size: size, rounds: rounds}
	var before, after runtime.MemStats
	for round := range rounds {
		buf = append(buf[:0], src...)

		runtime.ReadMemStats(&before)
		start := time.Now()
		w.inPlace(&buf)
		elapsed := time.Since(start)
		runtime.ReadMemStats(&after)

		if !slices.Equal(buf, want) {
			return r, fmt.Errorf("round %d: in-place result differs from reference (len %d, want %d)", round, len(buf), len(want))
		}
		r.inPlace += elapsed
		r.allocated += after.TotalAlloc - before.TotalAlloc

		start = time.Now()
		_ = w.reference(src)
		r.reference += time.Since(start)

		logrus.WithFields(logrus.Fields{
			"workload": w.name,
			"round":    round,
			"elapsed":  elapsed,
		}).Debug("round complete")
	}
	return r, nil
}
