// Package tree holds a binary tree and a lowest-common-ancestor search over it.
package tree

// Node is a binary tree node. Nodes are compared by identity.
type Node struct {
	Value       int
	Left, Right *Node
}

// Contains reports whether n is reachable from root
func Contains(root, n *Node) bool {
	if root == nil || n == nil {
		return false
	}
	if root == n {
		return true
	}
	return Contains(root.Left, n) || Contains(root.Right, n)
}

// Find returns the first node holding value in preorder, or nil
func Find(root *Node, value int) *Node {
	if root == nil {
		return nil
	}
	if root.Value == value {
		return root
	}
	if n := Find(root.Left, value); n != nil {
		return n
	}
	return Find(root.Right, value)
}

// LCA returns the lowest common ancestor of x and y under root. The second
// result is false unless both nodes are in the tree.
func LCA(root, x, y *Node) (*Node, bool) {
	if !Contains(root, x) || !Contains(root, y) {
		return nil, false
	}
	_, lca := search(root, x, y)
	return lca, lca != nil
}

// search reports whether x or y is under n, and the deepest node seen so far
// that has them in different subtrees.
func search(n, x, y *Node) (bool, *Node) {
	if n == nil {
		return false, nil
	}
	if n == x || n == y {
		return true, n
	}
	left, lcaL := search(n.Left, x, y)
	right, lcaR := search(n.Right, x, y)
	if left && right {
		return true, n
	}
	if lcaL != nil {
		return true, lcaL
	}
	return right, lcaR
}

// Example returns the fixed eight-node tree:
//
//	   1
//	 /   \
//	2     3
//	 \   / \
//	  4 5   6
//	   /     \
//	  7       8
func Example() *Node {
	return &Node{
		Value: 1,
		Left:  &Node{Value: 2, Right: &Node{Value: 4}},
		Right: &Node{
			Value: 3,
			Left:  &Node{Value: 5, Left: &Node{Value: 7}},
			Right: &Node{Value: 6, Right: &Node{Value: 8}},
		},
	}
}
