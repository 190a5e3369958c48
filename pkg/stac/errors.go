package stac

import "errors"

// Node construction errors.
var (
	ErrEmptyID           = errors.New("node id must not be empty")
	ErrRootPath          = errors.New("a node without a parent must use the root path")
	ErrParentRequired    = errors.New("a parent is required")
	ErrPathOutsideParent = errors.New("node path is not under the parent path")
)

// Broadcast errors.
var (
	ErrUnknownEvent = errors.New("unknown broadcast event")
)
