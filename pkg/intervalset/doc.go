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

// Package intervalset provides ordered, in-memory sets of half-open
// intervals [min, max) over a user-supplied ordered domain, implemented with
// an augmented AVL tree.
//
// The defining property of a Set is that it never stores two intersecting or
// touching intervals: adding an interval merges it with everything it
// reaches, and removing a coverage region clips or splits the intervals it
// overlaps. Beyond union and subtraction the Set answers point and interval
// containment, intersection, and coverage-complement (Difference) queries,
// and supports ordered navigation (First, Last, Lower, Higher, Floor,
// Ceiling, PollFirst, PollLast) — all in O(log n).
//
// Set is single-threaded with a fail-fast iterator; ConcurrentSet wraps it
// behind a reader-writer lock for shared use.
package intervalset
