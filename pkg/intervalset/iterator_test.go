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

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectIterator(s *Set[Int64Comparable]) []Interval[Int64Comparable] {
	var out []Interval[Int64Comparable]
	for it := s.Iterator(); it.Next(); {
		out = append(out, it.Interval())
	}
	return out
}

func TestIteratorAscends(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := New[Int64Comparable]()
	for i := 0; i < 300; i++ {
		a := rng.Int63n(5000)
		s.Add(ival(a, a+1+rng.Int63n(10)))
	}

	got := collectIterator(s)
	require.Equal(t, s.Slice(), got)
	for i := 1; i < len(got); i++ {
		require.Less(t, int64(*got[i-1].Max()), int64(*got[i].Min()))
	}
}

func TestIteratorEmpty(t *testing.T) {
	s := New[Int64Comparable]()
	it := s.Iterator()
	require.False(t, it.Next())
}

func TestIteratorFailFast(t *testing.T) {
	s := New(ival(1, 3), ival(5, 7), ival(9, 11))

	it := s.Iterator()
	require.True(t, it.Next())

	// A structural modification by anything but the iterator trips it.
	s.Add(ival(20, 30))
	assert.PanicsWithError(t, ErrConcurrentModification.Error(), func() { it.Next() })
}

func TestIteratorFailFastOnRemove(t *testing.T) {
	s := New(ival(1, 3), ival(5, 7), ival(9, 11))

	it := s.Iterator()
	require.True(t, it.Next())
	s.Remove(ival(5, 7))
	assert.PanicsWithError(t, ErrConcurrentModification.Error(), func() { it.Remove() })
}

func TestIteratorSurvivesNoopMutation(t *testing.T) {
	s := New(ival(1, 3), ival(5, 7))

	it := s.Iterator()
	require.True(t, it.Next())

	// A no-op Add does not modify structure and must not trip the iterator.
	require.False(t, s.Add(ival(1, 3)))
	require.True(t, it.Next())
	require.Equal(t, "[5,7)", it.Interval().String())
	require.False(t, it.Next())
}

func TestIteratorRemoveAll(t *testing.T) {
	s := New(ival(1, 3), ival(5, 7), ival(9, 11), ival(13, 15), ival(17, 19))

	seen := 0
	for it := s.Iterator(); it.Next(); {
		seen++
		it.Remove()
		require.NoError(t, s.Check())
	}
	require.Equal(t, 5, seen)
	require.True(t, s.IsEmpty())
}

func TestIteratorRemoveEveryOther(t *testing.T) {
	s := New[Int64Comparable]()
	for i := int64(0); i < 20; i++ {
		s.Add(ival(3*i, 3*i+2))
	}

	i := 0
	for it := s.Iterator(); it.Next(); i++ {
		if i%2 == 0 {
			it.Remove()
			require.NoError(t, s.Check())
		}
	}
	require.Equal(t, 20, i, "every interval visited exactly once")
	require.Equal(t, 10, s.Size())

	for j, iv := range s.Slice() {
		require.Equal(t, int64(6*j+3), int64(*iv.Min()))
	}
}

func TestIteratorRemoveFirst(t *testing.T) {
	s := New(ival(1, 3), ival(5, 7), ival(9, 11))

	it := s.Iterator()
	require.True(t, it.Next())
	it.Remove()
	require.NoError(t, s.Check())

	require.True(t, it.Next())
	require.Equal(t, "[5,7)", it.Interval().String())
	require.True(t, it.Next())
	require.Equal(t, "[9,11)", it.Interval().String())
	require.False(t, it.Next())
	require.Equal(t, "[[5,7),[9,11)]", s.String())
}

func TestIteratorRemoveWithoutNext(t *testing.T) {
	s := New(ival(1, 3))
	it := s.Iterator()
	require.Panics(t, func() { it.Remove() })
}

func TestIteratorRandomizedRemove(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 20; round++ {
		s := New[Int64Comparable]()
		var want []int64
		for i := int64(0); i < 50; i++ {
			s.Add(ival(4*i, 4*i+2))
			want = append(want, 4*i)
		}

		var kept []int64
		for it := s.Iterator(); it.Next(); {
			if rng.Intn(2) == 0 {
				it.Remove()
				require.NoError(t, s.Check())
			} else {
				kept = append(kept, int64(*it.Interval().Min()))
			}
			want = want[1:]
		}
		require.Empty(t, want, "every interval visited exactly once")

		var got []int64
		for _, iv := range s.Slice() {
			got = append(got, int64(*iv.Min()))
		}
		require.Equal(t, kept, got)
	}
}
