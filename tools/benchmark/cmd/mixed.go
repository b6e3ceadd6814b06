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
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wcfvol/intervalset/pkg/intervalset"
)

// mixedCmd represents the mixed command.
var mixedCmd = &cobra.Command{
	Use:   "mixed",
	Short: "Benchmark a randomized add/remove/contains/difference mix",

	Run: mixedFunc,
}

func init() {
	RootCmd.AddCommand(mixedCmd)
}

func mixedFunc(cmd *cobra.Command, args []string) {
	rng := newRand()
	s := intervalset.New[intervalset.Int64Comparable]()

	var adds, removes, queries int
	start := time.Now()
	for i := 0; i < total; i++ {
		iv := randInterval(rng)
		switch rng.Intn(4) {
		case 0, 1:
			s.Add(iv)
			adds++
		case 2:
			s.Remove(iv)
			removes++
		default:
			s.Contains(iv)
			s.Intersects(iv)
			s.Difference(iv)
			queries++
		}
	}
	took := time.Since(start)

	report("mixed", total, took, s.Size())
	lg.Info("mix",
		zap.Int("adds", adds),
		zap.Int("removes", removes),
		zap.Int("queries", queries),
	)
}
