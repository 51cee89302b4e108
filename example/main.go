package main

import (
	"fmt"

	"github.com/mgnsk/dlist"
)

func main() {
	l := dlist.New[string]()

	l.InsertAtTail("b")
	l.InsertAtHead("a")
	l.InsertAtTail("d")

	// Positions must be within [0, l.Len()].
	l.InsertAt(2, "c")

	fmt.Println(l, l.Len())

	if v, ok := l.Get(2); ok {
		fmt.Println("at 2:", v)
	}

	for l.Len() > 0 {
		v, _ := l.DeleteTail()
		fmt.Println("removed", v)
	}
}
