package bimap

import "errors"

var (
	// ErrDuplicateKey indicates an Add whose key or value is already bound.
	ErrDuplicateKey = errors.New("bimap: key or value already present")
	// ErrNotFound indicates a lookup or removal against an unbound key or value.
	ErrNotFound = errors.New("bimap: entry not found")
)
