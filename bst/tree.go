// Package bst implements an unbalanced binary search tree over uint64 keys.
//
// The tree is not safe for concurrent use without external synchronization.
package bst

import "github.com/goose-lang/primitive"

type node struct {
	key   uint64
	left  *node
	right *node
}

// Tree is a handle to a binary search tree. The zero value is an empty tree.
type Tree struct {
	root *node
}

func New() *Tree {
	return &Tree{}
}

// Insert adds key to the tree. Inserting a key that is already present
// leaves the tree unchanged.
func (t *Tree) Insert(key uint64) {
	t.root = t.root.insert(key)
}

func (n *node) insert(key uint64) *node {
	if n == nil {
		return &node{key: key}
	}
	// modify in-place
	if key < n.key {
		n.left = n.left.insert(key)
	} else if n.key < key {
		n.right = n.right.insert(key)
	}
	// if n.key == key then key is already present
	return n
}

// Contains reports whether key is present.
func (t *Tree) Contains(key uint64) bool {
	return t.root.contains(key)
}

func (n *node) contains(key uint64) bool {
	if n == nil {
		return false
	}
	if key == n.key {
		return true
	}
	if key < n.key {
		return n.left.contains(key)
	}
	return n.right.contains(key)
}

// getMax returns the node with the largest key in a non-empty subtree.
func (n *node) getMax() *node {
	primitive.Assert(n != nil)
	if n.right != nil {
		return n.right.getMax()
	}
	return n
}

// Delete removes key from the tree. Deleting an absent key leaves the tree
// unchanged.
func (t *Tree) Delete(key uint64) {
	t.root = t.root.delete(key)
}

// delete returns the root of the subtree with key removed.
func (n *node) delete(key uint64) *node {
	if n == nil {
		return n
	}
	if key < n.key {
		n.left = n.left.delete(key)
		return n
	}
	if n.key < key {
		n.right = n.right.delete(key)
		return n
	}
	// key == n.key
	if n.left == nil && n.right == nil {
		return nil
	}
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}
	// two children: overwrite this node's key with its in-order predecessor
	// (the largest key in the left subtree), then remove the predecessor.
	// The predecessor has no right child, so that removal terminates.
	pred := n.left.getMax()
	n.key = pred.key
	n.left = n.left.delete(pred.key)
	return n
}
