// Package errs defines the sentinel errors returned by gcovblob packages.
//
// Callers should compare with errors.Is, since most call sites wrap these
// errors with the filename or component that failed.
package errs

import "errors"

// Capacity errors.
var (
	// ErrScratchBufferTooSmall is returned when a single file's gcda encoding does not fit
	// the configured scratch buffer.
	ErrScratchBufferTooSmall = errors.New("scratch buffer too small for gcda encoding")
	// ErrOutputBufferTooSmall is returned when a framed record or the sentinel does not fit
	// the remaining output buffer.
	ErrOutputBufferTooSmall = errors.New("output buffer too small for container")
	// ErrRegistryFull is returned when registering more files than the registry can hold.
	ErrRegistryFull = errors.New("registry capacity exceeded")
)

// Configuration and lifecycle errors.
var (
	ErrOutputBufferNotConfigured  = errors.New("output buffer not configured")
	ErrScratchBufferNotConfigured = errors.New("scratch buffer not configured")
	ErrAlreadyExported            = errors.New("coverage data already exported")
	ErrRegistryFrozen             = errors.New("registry is frozen, export already started")
	ErrInvalidRegistryCapacity    = errors.New("registry capacity must be positive")
	ErrNilSink                    = errors.New("sink must not be nil")
	ErrNilByteOrder               = errors.New("byte order must not be nil")
)

// Record model errors.
var (
	ErrNilRecord           = errors.New("file record is nil")
	ErrNilFunction         = errors.New("function record is nil")
	ErrInvalidCounterKind  = errors.New("invalid counter kind")
	ErrCounterKindMismatch = errors.New("function counters do not match the file's active counter kinds")
)

// Host-side parse errors.
var (
	ErrInvalidMagic        = errors.New("invalid gcda magic number")
	ErrTruncatedRecord     = errors.New("truncated record")
	ErrUnexpectedTag       = errors.New("unexpected gcda tag")
	ErrInvalidRecordLength = errors.New("invalid gcda record length")
	ErrMissingSentinel     = errors.New("container is missing its end sentinel")
	ErrInvalidFilename     = errors.New("invalid record filename")
	ErrDuplicateFilename   = errors.New("duplicate record filename in container")
)
