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

// removeCmd represents the remove command.
var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Benchmark random coverage removals against a pre-seeded set",

	Run: removeFunc,
}

var removeSeedOps int

func init() {
	RootCmd.AddCommand(removeCmd)
	removeCmd.Flags().IntVar(&removeSeedOps, "seed-ops", 100000, "Number of random additions used to pre-seed the set")
}

func removeFunc(cmd *cobra.Command, args []string) {
	rng := newRand()
	s := intervalset.New[intervalset.Int64Comparable]()
	for i := 0; i < removeSeedOps; i++ {
		s.Add(randInterval(rng))
	}
	lg.Info("pre-seeded", zap.Int("intervals", s.Size()))

	start := time.Now()
	for i := 0; i < total; i++ {
		s.Remove(randInterval(rng))
	}
	took := time.Since(start)

	report("remove", total, took, s.Size())
}
