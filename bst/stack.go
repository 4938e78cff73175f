package bst

// nodeStack holds the not-yet-visited ancestors during iterative in-order
// traversal.
type nodeStack struct {
	elements []*node
}

func newNodeStack() *nodeStack {
	return &nodeStack{
		elements: []*node{},
	}
}

func (s *nodeStack) push(n *node) {
	s.elements = append(s.elements, n)
}

// pop returns the most recently pushed node. The boolean indicates success,
// which is false if the stack was empty.
func (s *nodeStack) pop() (*node, bool) {
	if len(s.elements) == 0 {
		return nil, false
	}
	n := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return n, true
}
