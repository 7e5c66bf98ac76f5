// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix is prepended to flag names to form environment variables,
// e.g. MUTSCAN_BENCH_SIZE.
const envPrefix = "MUTSCAN_BENCH"

type benchOptions struct {
	size   int
	rounds int
	only   []string
	debug  bool
}

func newRootCmd() *cobra.Command {
	cfg := viper.New()
	cmd := &cobra.Command{
		Use:           "mutscan-bench",
		Short:         "Benchmark in-place slice scans against allocating rewrites",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.SetEnvPrefix(envPrefix)
			cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			cfg.AutomaticEnv()
			return cfg.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := benchOptions{
				size:   cfg.GetInt("size"),
				rounds: cfg.GetInt("rounds"),
				only:   cfg.GetStringSlice("only"),
				debug:  cfg.GetBool("debug"),
			}
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.Int("size", 1<<20, "number of elements per workload")
	flags.Int("rounds", 5, "timed rounds per workload")
	flags.StringSlice("only", nil, "run only the named workloads")
	flags.BoolP("debug", "d", false, "log every round")
	return cmd
}

func run(opts benchOptions) error {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if opts.debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if opts.size < 0 || opts.rounds <= 0 {
		return fmt.Errorf("invalid size %d or rounds %d", opts.size, opts.rounds)
	}

	selected, err := selectWorkloads(opts.only)
	if err != nil {
		return err
	}
	logrus.Infof("running %d workloads: %d elements, %d rounds, %s, GOMAXPROCS=%d",
		len(selected), opts.size, opts.rounds, runtime.Version(), runtime.GOMAXPROCS(0))

	var results []benchResult
	for _, w := range selected {
		r, err := measure(w, opts.size, opts.rounds)
		if err != nil {
			return fmt.Errorf("workload %s: %w", w.name, err)
		}
		results = append(results, r)
	}
	renderResults(os.Stdout, results)
	return nil
}
