package paths

import "errors"

// Sentinel errors returned by Path operations.
var (
	// ErrUnsupportedFormat is returned by document operations on a file
	// whose extension is neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("paths: unsupported document format")

	// ErrNotADocument is returned when a document's top level is not an
	// object, so a dotted key cannot be written into it.
	ErrNotADocument = errors.New("paths: document is not an object")

	// ErrBadIndex is returned when a dotted key addresses a list element
	// with a segment that is not an index within the list.
	ErrBadIndex = errors.New("paths: list index out of range")
)
