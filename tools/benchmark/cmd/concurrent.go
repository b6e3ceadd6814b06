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
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wcfvol/intervalset/pkg/intervalset"
)

// concurrentCmd represents the concurrent command.
var concurrentCmd = &cobra.Command{
	Use:   "concurrent",
	Short: "Benchmark the reader-writer wrapper under parallel load",

	Run: concurrentFunc,
}

var (
	writers int
	readers int
)

func init() {
	RootCmd.AddCommand(concurrentCmd)
	concurrentCmd.Flags().IntVar(&writers, "writers", 2, "Number of writer goroutines")
	concurrentCmd.Flags().IntVar(&readers, "readers", 8, "Number of reader goroutines")
}

func concurrentFunc(cmd *cobra.Command, args []string) {
	c := intervalset.NewConcurrent[intervalset.Int64Comparable]()

	var writeOps, readOps atomic.Int64
	var done atomic.Bool
	var wg sync.WaitGroup

	baseSeed := seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(s int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(s))
			for !done.Load() {
				iv := randInterval(rng)
				if rng.Intn(4) == 0 {
					c.Remove(iv)
				} else {
					c.Add(iv)
				}
				writeOps.Add(1)
			}
		}(baseSeed + int64(w))
	}

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func(s int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(s))
			for !done.Load() {
				iv := randInterval(rng)
				c.Intersects(iv)
				c.Contains(iv)
				c.Difference(iv)
				readOps.Add(3)
			}
		}(baseSeed + int64(writers+r))
	}

	start := time.Now()
	// The per-op counters drive completion: the run ends once the writers
	// have performed the requested total.
	for writeOps.Load() < int64(total) {
		time.Sleep(10 * time.Millisecond)
	}
	done.Store(true)
	wg.Wait()
	took := time.Since(start)

	lg.Info("concurrent workload finished",
		zap.Int("writers", writers),
		zap.Int("readers", readers),
		zap.Duration("took", took),
		zap.String("write-ops", humanize.Comma(writeOps.Load())),
		zap.String("write-ops-per-sec", humanize.CommafWithDigits(float64(writeOps.Load())/took.Seconds(), 0)),
		zap.String("read-ops", humanize.Comma(readOps.Load())),
		zap.String("read-ops-per-sec", humanize.CommafWithDigits(float64(readOps.Load())/took.Seconds(), 0)),
		zap.Int("final-intervals", c.Size()),
	)
}
