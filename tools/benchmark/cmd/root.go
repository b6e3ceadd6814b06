// Copyright 2024 The intervalset Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wcfvol/intervalset/pkg/intervalset"
	"wcfvol/intervalset/pkg/logutil"
)

// RootCmd is the root of all benchmark subcommands.
var RootCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "benchmark measures interval-set performance under synthetic workloads",

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		lg, err = logutil.CreateDefaultZapLogger(level)
		return err
	},
}

var (
	total int
	span  int64
	width int64
	seed  int64

	logLevel string

	lg *zap.Logger
)

func init() {
	fs := pflag.NewFlagSet("benchmark", pflag.ContinueOnError)
	fs.IntVar(&total, "total", 100000, "Total number of operations")
	fs.Int64Var(&span, "span", 1<<20, "Size of the key space intervals are drawn from")
	fs.Int64Var(&width, "width", 16, "Maximum interval width")
	fs.Int64Var(&seed, "seed", 0, "Seed of the workload generator (0 seeds from the clock)")
	fs.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().AddFlagSet(fs)
}

func newRand() *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func randInterval(rng *rand.Rand) intervalset.Interval[intervalset.Int64Comparable] {
	a := rng.Int63n(span)
	return intervalset.NewInt64Interval(a, a+1+rng.Int63n(width))
}

func report(op string, n int, took time.Duration, size int) {
	rate := float64(n) / took.Seconds()
	lg.Info("workload finished",
		zap.String("op", op),
		zap.String("ops", humanize.Comma(int64(n))),
		zap.Duration("took", took),
		zap.String("ops-per-sec", humanize.CommafWithDigits(rate, 0)),
		zap.String("final-intervals", humanize.Comma(int64(size))),
	)
}
