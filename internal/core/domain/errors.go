package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyBatch indicates a conversion was requested with zero input
	// items. It is rejected before any strategy runs, unlike per-item
	// failures which are tolerated.
	ErrEmptyBatch = errors.New("empty batch")

	// ErrInvalidInput indicates malformed or invalid input, such as a
	// batch-level precondition violation (wrong item count or kind).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDimensions indicates a raster reported a zero or negative
	// width or height. The enclosing item is skipped, not the batch.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrDecodeFailure indicates an image or document could not be
	// parsed. The item is logged and skipped; the batch continues.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrIllegalState indicates a page builder contract violation, such
	// as finalising twice. This is a programming error, not user input.
	ErrIllegalState = errors.New("illegal builder state")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown feature or media kind.
	ErrUnsupportedType = errors.New("unsupported type")
)
