package list

// Node is a single link in a List. A node owns its successor; the chain
// ends in nil and never loops.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Next returns the following node, or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}
