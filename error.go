package dlist

import "errors"

// ErrOutOfRange indicates a positional argument outside the list bounds.
var ErrOutOfRange = errors.New("dlist: index out of range")
