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

package intervalset

import "sync"

// ConcurrentSet wraps a Set behind a reader-writer lock. Mutators take the
// exclusive lock; read operations take the shared lock, so any number of
// readers proceed in parallel. Every operation leaves the tree's invariants
// restored before its lock is released, so readers always observe a valid
// tree.
//
// The iterator of a ConcurrentSet does not fail fast; it re-acquires the
// appropriate lock on every step instead.
type ConcurrentSet[T Comparable[T]] struct {
	mu  sync.RWMutex
	set Set[T]
}

// NewConcurrent returns a ConcurrentSet holding the union of the provided
// intervals.
func NewConcurrent[T Comparable[T]](ivs ...Interval[T]) *ConcurrentSet[T] {
	c := &ConcurrentSet[T]{}
	c.set.AddAll(ivs...)
	return c
}

// Add unions iv into the stored coverage. See Set.Add.
func (c *ConcurrentSet[T]) Add(iv Interval[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.Add(iv)
}

// AddAll adds each interval in turn under a single exclusive acquisition.
func (c *ConcurrentSet[T]) AddAll(ivs ...Interval[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.AddAll(ivs...)
}

// Remove deletes the coverage region of iv. See Set.Remove.
func (c *ConcurrentSet[T]) Remove(iv Interval[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.Remove(iv)
}

// RemoveAll removes each interval's coverage under a single exclusive
// acquisition.
func (c *ConcurrentSet[T]) RemoveAll(ivs ...Interval[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.RemoveAll(ivs...)
}

// RetainAll deletes every stored interval not equal to one of ivs.
func (c *ConcurrentSet[T]) RetainAll(ivs ...Interval[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.RetainAll(ivs...)
}

// Clear removes all intervals.
func (c *ConcurrentSet[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set.Clear()
}

// PollFirst removes and returns the stored interval with the lowest min.
func (c *ConcurrentSet[T]) PollFirst() (Interval[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.PollFirst()
}

// PollLast removes and returns the stored interval with the highest max.
func (c *ConcurrentSet[T]) PollLast() (Interval[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.PollLast()
}

// RemoveIf deletes every stored interval for which pred returns true. The
// traversal holds the shared lock; each removal escalates to the exclusive
// lock for just that deletion, so the writer lock is never held across the
// caller's predicate.
func (c *ConcurrentSet[T]) RemoveIf(pred func(Interval[T]) bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	removed := false
	for it := c.set.iterator(false); it.Next(); {
		if pred(it.Interval()) {
			c.mu.RUnlock()
			c.mu.Lock()
			it.Remove()
			c.mu.Unlock()
			c.mu.RLock()
			removed = true
		}
	}
	return removed
}

// ContainsPoint reports whether some stored interval contains the point p.
func (c *ConcurrentSet[T]) ContainsPoint(p T) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.ContainsPoint(p)
}

// Contains reports whether the coverage contains all of [iv.Min, iv.Max).
func (c *ConcurrentSet[T]) Contains(iv Interval[T]) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Contains(iv)
}

// Intersects reports whether any stored interval shares a point with iv.
func (c *ConcurrentSet[T]) Intersects(iv Interval[T]) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Intersects(iv)
}

// Difference returns the maximal sub-intervals of iv not covered by the set.
func (c *ConcurrentSet[T]) Difference(iv Interval[T]) []Interval[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Difference(iv)
}

// First returns the stored interval with the lowest min.
func (c *ConcurrentSet[T]) First() (Interval[T], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.First()
}

// Last returns the stored interval with the highest max.
func (c *ConcurrentSet[T]) Last() (Interval[T], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Last()
}

// Lower returns the stored interval preceding the one covering e.Min.
func (c *ConcurrentSet[T]) Lower(e Interval[T]) (Interval[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Lower(e)
}

// Higher returns the stored interval following the one covering e.Min.
func (c *ConcurrentSet[T]) Higher(e Interval[T]) (Interval[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Higher(e)
}

// Floor returns the stored interval with the greatest min <= e.Min.
func (c *ConcurrentSet[T]) Floor(e Interval[T]) (Interval[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Floor(e)
}

// Ceiling returns the stored interval with the least min >= e.Min.
func (c *ConcurrentSet[T]) Ceiling(e Interval[T]) (Interval[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Ceiling(e)
}

// Size returns the number of stored intervals.
func (c *ConcurrentSet[T]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Size()
}

// IsEmpty reports whether the set stores no intervals.
func (c *ConcurrentSet[T]) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.IsEmpty()
}

// Slice returns all stored intervals in ascending order.
func (c *ConcurrentSet[T]) Slice() []Interval[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Slice()
}

// Clone returns an unwrapped deep-copy snapshot of the set.
func (c *ConcurrentSet[T]) Clone() *Set[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Clone()
}

func (c *ConcurrentSet[T]) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.String()
}

// ForEach calls fn on the stored intervals in ascending order. The shared
// lock is re-acquired per step, not held across fn.
func (c *ConcurrentSet[T]) ForEach(fn func(Interval[T])) {
	for it := c.Iterator(); it.Next(); {
		fn(it.Interval())
	}
}

// ConcurrentIterator walks the stored intervals in ascending order,
// acquiring the shared lock for each Next and the exclusive lock for each
// Remove. It does not fail fast.
type ConcurrentIterator[T Comparable[T]] struct {
	c  *ConcurrentSet[T]
	it *Iterator[T]
}

// Iterator returns a per-step locking iterator positioned before the first
// stored interval.
func (c *ConcurrentSet[T]) Iterator() *ConcurrentIterator[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &ConcurrentIterator[T]{c: c, it: c.set.iterator(false)}
}

// Next advances the iterator, returning false when the intervals are
// exhausted.
func (ci *ConcurrentIterator[T]) Next() bool {
	ci.c.mu.RLock()
	defer ci.c.mu.RUnlock()
	return ci.it.Next()
}

// Interval returns the interval of the last successful Next.
func (ci *ConcurrentIterator[T]) Interval() Interval[T] {
	return ci.it.Interval()
}

// Remove deletes the interval last returned by Next from the set.
func (ci *ConcurrentIterator[T]) Remove() {
	ci.c.mu.Lock()
	defer ci.c.mu.Unlock()
	ci.it.Remove()
}

// SubSet is not implemented.
func (c *ConcurrentSet[T]) SubSet(from, to Interval[T]) *ConcurrentSet[T] {
	panic(errUnsupported("SubSet"))
}

// HeadSet is not implemented.
func (c *ConcurrentSet[T]) HeadSet(to Interval[T]) *ConcurrentSet[T] {
	panic(errUnsupported("HeadSet"))
}

// TailSet is not implemented.
func (c *ConcurrentSet[T]) TailSet(from Interval[T]) *ConcurrentSet[T] {
	panic(errUnsupported("TailSet"))
}

// DescendingSet is not implemented.
func (c *ConcurrentSet[T]) DescendingSet() *ConcurrentSet[T] {
	panic(errUnsupported("DescendingSet"))
}

// DescendingIterator is not implemented.
func (c *ConcurrentSet[T]) DescendingIterator() *ConcurrentIterator[T] {
	panic(errUnsupported("DescendingIterator"))
}
