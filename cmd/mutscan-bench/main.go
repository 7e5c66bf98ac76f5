// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// mutscan-bench runs representative in-place scan workloads, checks each
// against an allocating reference implementation, and prints timings.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Errorf("mutscan-bench: %v", err)
		os.Exit(1)
	}
}
