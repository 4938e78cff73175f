package bst_test

import (
	"bytes"
	"testing"

	"bst_code/bst"

	"github.com/stretchr/testify/assert"
)

func TestInOrderScenario(t *testing.T) {
	assert := assert.New(t)

	tree := bst.New()
	for _, k := range []uint64{5, 3, 8, 1, 4} {
		tree.Insert(k)
	}

	assert.Equal([]uint64{1, 3, 4, 5, 8}, tree.Keys())
	assert.Equal(uint64(3), tree.Height())
}

func TestHeight(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		keys     []uint64
		expected uint64
	}{
		{[]uint64{}, 0},
		{[]uint64{1}, 1},
		{[]uint64{1, 2, 3}, 3},      // right chain
		{[]uint64{3, 2, 1}, 3},      // left chain
		{[]uint64{2, 1, 3}, 2},      // balanced
		{[]uint64{5, 3, 8, 1, 4}, 3},
	}

	for _, test := range tests {
		tree := bst.New()
		for _, k := range test.keys {
			tree.Insert(k)
		}
		assert.Equal(test.expected, tree.Height(), "height of tree from %v", test.keys)
	}
}

func TestSize(t *testing.T) {
	assert := assert.New(t)

	tree := bst.New()
	assert.Equal(uint64(0), tree.Size())

	tree.Insert(5)
	tree.Insert(3)
	tree.Insert(8)
	assert.Equal(uint64(3), tree.Size())

	tree.Delete(3)
	assert.Equal(uint64(2), tree.Size())
}

func TestInOrderRestartable(t *testing.T) {
	assert := assert.New(t)

	tree := bst.New()
	for _, k := range []uint64{2, 1, 3} {
		tree.Insert(k)
	}

	seq := tree.InOrder()
	first := []uint64{}
	for k := range seq {
		first = append(first, k)
	}
	second := []uint64{}
	for k := range seq {
		second = append(second, k)
	}
	assert.Equal(first, second, "ranging twice should yield the same keys")
}

func TestInOrderEarlyStop(t *testing.T) {
	assert := assert.New(t)

	tree := bst.New()
	for _, k := range []uint64{5, 3, 8, 1, 4} {
		tree.Insert(k)
	}

	var got []uint64
	for k := range tree.InOrder() {
		got = append(got, k)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal([]uint64{1, 3}, got)
}

func TestInOrderEmpty(t *testing.T) {
	tree := bst.New()
	assert.Equal(t, []uint64{}, tree.Keys())
}

func TestDump(t *testing.T) {
	assert := assert.New(t)

	tree := bst.New()
	var buf bytes.Buffer
	tree.Dump(&buf)
	assert.Equal("Tree is empty!\n", buf.String())

	for _, k := range []uint64{2, 1, 3} {
		tree.Insert(k)
	}
	buf.Reset()
	tree.Dump(&buf)
	// rotated view: right child above the root, left child below, with
	// deeper nodes indented further
	assert.Contains(buf.String(), "3")
	assert.Contains(buf.String(), "2")
	assert.Contains(buf.String(), "1")
	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	assert.Len(lines, 3)
	assert.Equal([]byte("3"), bytes.TrimSpace(lines[0]))
	assert.Equal([]byte("2"), bytes.TrimSpace(lines[1]))
	assert.Equal([]byte("1"), bytes.TrimSpace(lines[2]))
}
