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

import "fmt"

// Check validates the structural invariants of the tree and returns the
// first violation found, or nil. It walks every node, so it runs in O(n);
// it is intended for tests and for debugging, not for production paths.
//
// The validated invariants:
//   - every node's height is 1 + max of its children's heights, and the
//     children's heights differ by at most 1
//   - every node's size is 1 + the sum of its children's sizes
//   - every non-root node's parent references it as a child; the root has
//     no parent
//   - the cached minNode/maxNode of every node are the leftmost and
//     rightmost descendants of its subtree
//   - in-order traversal yields intervals with strictly ascending lower
//     endpoints, and consecutive intervals neither intersect nor touch
func (s *Set[T]) Check() error {
	if s.root == nil {
		return nil
	}
	if s.root.parent != nil {
		return fmt.Errorf("intervalset: root %v has a parent", s.root.iv)
	}
	if err := s.checkNode(s.root); err != nil {
		return err
	}
	return s.checkOrder()
}

func (s *Set[T]) checkNode(n *node[T]) error {
	lh, rh := nodeHeight(n.left), nodeHeight(n.right)
	wantHeight := lh + 1
	if rh > lh {
		wantHeight = rh + 1
	}
	if n.height != wantHeight {
		return fmt.Errorf("intervalset: node %v has height %d, want %d", n.iv, n.height, wantHeight)
	}
	if bf := rh - lh; bf < -1 || bf > 1 {
		return fmt.Errorf("intervalset: node %v has balance factor %d", n.iv, bf)
	}
	if wantSize := nodeSize(n.left) + nodeSize(n.right) + 1; n.size != wantSize {
		return fmt.Errorf("intervalset: node %v has size %d, want %d", n.iv, n.size, wantSize)
	}

	wantMin := n
	if n.left != nil {
		wantMin = n.left.minNode
	}
	if n.minNode != wantMin {
		return fmt.Errorf("intervalset: node %v caches min extent %v, want %v", n.iv, n.minNode.iv, wantMin.iv)
	}
	wantMax := n
	if n.right != nil {
		wantMax = n.right.maxNode
	}
	if n.maxNode != wantMax {
		return fmt.Errorf("intervalset: node %v caches max extent %v, want %v", n.iv, n.maxNode.iv, wantMax.iv)
	}

	for _, child := range []*node[T]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return fmt.Errorf("intervalset: node %v has a broken parent link to %v", child.iv, n.iv)
		}
		if err := s.checkNode(child); err != nil {
			return err
		}
	}
	return nil
}

func (s *Set[T]) checkOrder() error {
	ivs := s.Slice()
	for i := 1; i < len(ivs); i++ {
		prev, cur := ivs[i-1], ivs[i]
		if compareMin(prev.min, cur.min) >= 0 {
			return fmt.Errorf("intervalset: intervals %v and %v are out of order", prev, cur)
		}
		if compareMaxToMin(prev.max, cur.min) >= 0 {
			return fmt.Errorf("intervalset: intervals %v and %v intersect or touch", prev, cur)
		}
	}
	return nil
}
