package jsontk

import "errors"

var (
	// ErrMissingLeadingSlash is reported by New for text that is neither
	// empty nor starting with '/'.
	ErrMissingLeadingSlash = errors.New("JSON pointer must start with a leading '/' if not empty")

	// ErrKeyNotFound is reported by InsertAt when an ancestor segment of
	// the pointer does not resolve to an existing node.
	ErrKeyNotFound = errors.New("JSON key not found")

	// ErrUnsupportedInsertion is reported by InsertAt and Insert when the
	// insertion target exists but is not an object.
	ErrUnsupportedInsertion = errors.New("unsupported JSON value insertion")
)
