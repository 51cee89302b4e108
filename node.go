package dlist

// node is a list node. The list or the preceding node owns it through next;
// prev is only used for traversal and relinking.
type node[T any] struct {
	value      T
	next, prev *node[T]
}

// linkBefore splices n in front of mark.
func (n *node[T]) linkBefore(mark *node[T]) {
	p := mark.prev
	if p == nil {
		panic("dlist: corrupt list")
	}
	n.prev = p
	n.next = mark
	p.next = n
	mark.prev = n
}

// unlink splices n out of the chain by joining its neighbors.
func (n *node[T]) unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
}

// release drops the links and the value so nothing is reachable from n.
func (n *node[T]) release() T {
	v := n.value
	var zero T
	n.value = zero
	n.next = nil
	n.prev = nil
	return v
}
