package dlist

import (
	"fmt"
	"strings"
)

// LinkedList is a doubly linked list with positional insertion and removal.
//
// The zero value is a ready to use empty list.
// A LinkedList must not be used by multiple goroutines concurrently.
type LinkedList[T any] struct {
	head, tail *node[T]
	length     int
}

// New creates an empty list.
func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Len returns the number of elements in the list.
func (l *LinkedList[T]) Len() int {
	return l.length
}

// Front returns the first value of the list.
func (l *LinkedList[T]) Front() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	return l.head.value, true
}

// Back returns the last value of the list.
func (l *LinkedList[T]) Back() (v T, ok bool) {
	if l.tail == nil {
		return v, false
	}
	return l.tail.value, true
}

// InsertAtHead inserts a value at the front of the list.
func (l *LinkedList[T]) InsertAtHead(v T) {
	n := &node[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.length++
}

// InsertAtTail inserts a value at the back of the list.
func (l *LinkedList[T]) InsertAtTail(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

// InsertAt inserts a value so that it ends up at position i.
// It panics with an error wrapping ErrOutOfRange unless 0 <= i <= l.Len().
func (l *LinkedList[T]) InsertAt(i int, v T) {
	l.checkIndex(i)

	if i == 0 || l.head == nil {
		l.InsertAtHead(v)
		return
	}

	if i == l.length {
		l.InsertAtTail(v)
		return
	}

	mark := l.mustWalk(i)
	n := &node[T]{value: v}
	n.linkBefore(mark)
	l.length++
}

// DeleteHead removes the first element and returns its value.
// It returns false if the list is empty.
func (l *LinkedList[T]) DeleteHead() (v T, ok bool) {
	if l.length == 0 {
		return v, false
	}

	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	l.decLen()

	return n.release(), true
}

// DeleteTail removes the last element and returns its value.
// It returns false if the list is empty.
func (l *LinkedList[T]) DeleteTail() (v T, ok bool) {
	if l.length == 0 {
		return v, false
	}

	n := l.tail
	l.tail = n.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	l.decLen()

	return n.release(), true
}

// DeleteAt removes the element at position i and returns its value.
// When i == l.Len() the last element is removed.
// It panics with an error wrapping ErrOutOfRange unless 0 <= i <= l.Len().
func (l *LinkedList[T]) DeleteAt(i int) (v T, ok bool) {
	l.checkIndex(i)

	if i == 0 || l.head == nil {
		return l.DeleteHead()
	}

	// The last position must move tail.
	if i >= l.length-1 {
		return l.DeleteTail()
	}

	n := l.mustWalk(i)
	n.unlink()
	l.decLen()

	return n.release(), true
}

// Get returns the value at position i.
// It returns false if i is negative or not less than l.Len().
func (l *LinkedList[T]) Get(i int) (v T, ok bool) {
	if i < 0 {
		return v, false
	}

	n, ok := l.walk(i)
	if !ok {
		return v, false
	}

	return n.value, true
}

// Clear removes all elements from the list.
func (l *LinkedList[T]) Clear() {
	n := l.head
	for n != nil {
		next := n.next
		n.release()
		n = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}

// String renders the values in order as "[a, b, c]".
// An empty list renders as an empty string.
func (l *LinkedList[T]) String() string {
	if l.head == nil {
		return ""
	}

	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, n.value)
	}
	b.WriteByte(']')

	return b.String()
}

// walk follows next links i times from head.
func (l *LinkedList[T]) walk(i int) (*node[T], bool) {
	n := l.head
	for ; i > 0 && n != nil; i-- {
		n = n.next
	}
	return n, n != nil
}

// mustWalk is like walk but faults when the chain ends early.
// Callers check i against length first, so this only fires on a broken chain.
func (l *LinkedList[T]) mustWalk(i int) *node[T] {
	n, ok := l.walk(i)
	if !ok {
		panic(fmt.Errorf("%w: chain ended before index %d", ErrOutOfRange, i))
	}
	return n
}

func (l *LinkedList[T]) checkIndex(i int) {
	if i < 0 || i > l.length {
		panic(fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, l.length))
	}
}

func (l *LinkedList[T]) decLen() {
	if l.length > 0 {
		l.length--
	}
}
