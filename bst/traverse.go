package bst

import (
	"iter"

	"github.com/goose-lang/std"
)

// Height returns the number of nodes on the longest root-to-leaf path. An
// empty tree has height 0 and a single node has height 1.
func (t *Tree) Height() uint64 {
	return t.root.height()
}

func (n *node) height() uint64 {
	if n == nil {
		return 0
	}
	right_h := n.right.height()
	left_h := n.left.height()
	if right_h > left_h {
		return right_h + 1
	}
	return left_h + 1
}

// Size returns the number of keys in the tree.
func (t *Tree) Size() uint64 {
	return t.root.size()
}

func (n *node) size() uint64 {
	if n == nil {
		return 0
	}
	subtrees := std.SumAssumeNoOverflow(n.left.size(), n.right.size())
	return std.SumAssumeNoOverflow(subtrees, 1)
}

// InOrder returns the keys in ascending order. The sequence is lazy and can
// be ranged over any number of times; each range visits the tree as it is at
// that moment.
func (t *Tree) InOrder() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		s := newNodeStack()
		for n := t.root; n != nil; n = n.left {
			s.push(n)
		}
		for {
			n, ok := s.pop()
			if !ok {
				return
			}
			if !yield(n.key) {
				return
			}
			for c := n.right; c != nil; c = c.left {
				s.push(c)
			}
		}
	}
}

// Keys collects InOrder into a slice.
func (t *Tree) Keys() []uint64 {
	var keys = []uint64{}
	for k := range t.InOrder() {
		keys = append(keys, k)
	}
	return keys
}

// Clear removes every node, children before parents, and resets the handle
// to empty. The tree is usable again afterwards.
func (t *Tree) Clear() {
	t.root.clear()
	t.root = nil
}

func (n *node) clear() {
	if n == nil {
		return
	}
	n.left.clear()
	n.right.clear()
	n.left = nil
	n.right = nil
}
