// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/docker/go-units"
	"github.com/olekukonko/tablewriter"
)

func renderResults(w io.Writer, results []benchResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"workload", "elements", "in-place/op", "reference/op", "speedup", "in-place alloc/op"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range results {
		n := time.Duration(r.rounds)
		inPlace := r.inPlace / n
		reference := r.reference / n
		table.Append([]string{
			r.name,
			strconv.Itoa(r.size),
			inPlace.Round(time.Microsecond).String(),
			reference.Round(time.Microsecond).String(),
			speedup(inPlace, reference),
			units.HumanSize(float64(r.allocated / uint64(r.rounds))),
		})
	}
	table.Render()
}

func speedup(inPlace, reference time.Duration) string {
	if inPlace <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(reference)/float64(inPlace))
}
