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

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Benchmark random interval additions",

	Run: addFunc,
}

func init() {
	RootCmd.AddCommand(addCmd)
}

func addFunc(cmd *cobra.Command, args []string) {
	rng := newRand()
	s := intervalset.New[intervalset.Int64Comparable]()

	merged := 0
	start := time.Now()
	for i := 0; i < total; i++ {
		before := s.Size()
		if s.Add(randInterval(rng)) && s.Size() <= before {
			merged++
		}
	}
	took := time.Since(start)

	report("add", total, took, s.Size())
	lg.Info("merge ratio",
		zap.Int("merging-adds", merged),
		zap.Float64("ratio", float64(merged)/float64(total)),
	)
}
