package texprep

import "errors"

// Sentinel errors for library operations.
var (
	ErrMissingInclude   = errors.New("included file not found")
	ErrCyclicInclude    = errors.New("cyclic \\input inclusion")
	ErrUnknownAcronym   = errors.New("acronym key not defined")
	ErrOffsetOutOfRange = errors.New("insertion offset out of range")
	ErrFilterDecode     = errors.New("failed to decode pandoc document")
)
