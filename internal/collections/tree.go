package collections

// TreeNode is a binary tree node. Children are wired by the caller; the node
// performs no balancing, traversal or search of its own.
type TreeNode[T any] struct {
	Value T
	Left  *TreeNode[T]
	Right *TreeNode[T]
}

// NewTreeNode returns a leaf holding value.
func NewTreeNode[T any](value T) *TreeNode[T] {
	return &TreeNode[T]{Value: value}
}

// IsLeaf reports whether the node has no children.
func (n *TreeNode[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}
