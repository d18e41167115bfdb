package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned by Pop when the keypath does not resolve.
	ErrKeyNotFound = errors.New("key not found")
	// ErrLookup is returned by GetBelow and GetAbove when no key
	// satisfies the bound.
	ErrLookup = errors.New("lookup error")
	// ErrMergeConflict is wrapped by *MergeConflictError.
	ErrMergeConflict = errors.New("merge conflict")
	// ErrNotNode is returned when a keypath descends through a leaf.
	ErrNotNode = errors.New("not a node")
	// ErrNotMapping is returned when a source is not nested-mapping-like.
	ErrNotMapping = errors.New("not a mapping")
)

// MergeConflictError identifies the keypath at which two trees collide
// while overwriting is disabled.
type MergeConflictError struct {
	Path string
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("%s: key %q present on both sides", ErrMergeConflict, e.Path)
}

func (e *MergeConflictError) Unwrap() error {
	return ErrMergeConflict
}
