package dlist

import (
	"fmt"
	"reflect"
)

// Forward returns the values walking next links from head.
func (l *LinkedList[T]) Forward() []T {
	var vs []T
	for n := l.head; n != nil; n = n.next {
		vs = append(vs, n.value)
	}
	return vs
}

// Backward returns the values walking prev links from tail.
func (l *LinkedList[T]) Backward() []T {
	var vs []T
	for n := l.tail; n != nil; n = n.prev {
		vs = append(vs, n.value)
	}
	return vs
}

// Validate checks the structural invariants of the list.
func (l *LinkedList[T]) Validate() error {
	if l.length < 0 {
		return fmt.Errorf("negative length %d", l.length)
	}

	if (l.length == 0) != (l.head == nil) || (l.head == nil) != (l.tail == nil) {
		return fmt.Errorf("length %d inconsistent with head %p and tail %p", l.length, l.head, l.tail)
	}

	if l.head == nil {
		return nil
	}

	if l.head.prev != nil {
		return fmt.Errorf("head has a prev link")
	}

	if l.tail.next != nil {
		return fmt.Errorf("tail has a next link")
	}

	seen := make(map[*node[T]]struct{}, l.length)
	steps := 0
	var last *node[T]
	for n := l.head; n != nil; n = n.next {
		if _, ok := seen[n]; ok {
			return fmt.Errorf("cycle at step %d", steps)
		}
		seen[n] = struct{}{}

		if n.next != nil && n.next.prev != n {
			return fmt.Errorf("broken back link at step %d", steps)
		}

		steps++
		if steps > l.length {
			return fmt.Errorf("forward walk exceeds length %d", l.length)
		}
		last = n
	}

	if steps != l.length {
		return fmt.Errorf("forward walk has %d nodes, length is %d", steps, l.length)
	}

	if last != l.tail {
		return fmt.Errorf("forward walk does not end at tail")
	}

	steps = 0
	for n := l.tail; n != nil; n = n.prev {
		steps++
		if steps > l.length {
			return fmt.Errorf("backward walk exceeds length %d", l.length)
		}
	}

	if steps != l.length {
		return fmt.Errorf("backward walk has %d nodes, length is %d", steps, l.length)
	}

	return nil
}

// NodeAt exposes the node at position i for inspection after removal.
func (l *LinkedList[T]) NodeAt(i int) *Node[T] {
	n, ok := l.walk(i)
	if !ok {
		return nil
	}
	return (*Node[T])(n)
}

// CutAfter drops the next link of the node at position i without
// updating length, leaving a chain shorter than the list claims.
func (l *LinkedList[T]) CutAfter(i int) {
	n, ok := l.walk(i)
	if !ok {
		panic("dlist: no node to cut")
	}
	n.next = nil
}

// Node is an inspectable alias of a list node.
type Node[T any] node[T]

// Detached reports whether the node holds no links and a zero value.
func (n *Node[T]) Detached() bool {
	return n.next == nil && n.prev == nil && reflect.ValueOf(&n.value).Elem().IsZero()
}
