// SPDX-License-Identifier: MPL-2.0

package workload

// Node is a binary tree node. A node owns either two children or none;
// NewTree never builds a node with a single child.
type Node struct {
	Left  *Node
	Right *Node
}

// NewTree allocates a perfect binary tree of the given depth. Depth 0 is a
// single leaf.
func NewTree(depth int) *Node {
	if depth <= 0 {
		return &Node{}
	}
	return &Node{
		Left:  NewTree(depth - 1),
		Right: NewTree(depth - 1),
	}
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Check returns the number of nodes in the subtree rooted at n.
func (n *Node) Check() int {
	if n.Left == nil || n.Right == nil {
		return 1
	}
	return 1 + n.Left.Check() + n.Right.Check()
}

// BinaryTrees builds a perfect tree of depth n and returns its node count,
// 2^(n+1)-1. The tree becomes garbage as soon as the count is known.
func BinaryTrees(n int) int {
	return NewTree(n).Check()
}
