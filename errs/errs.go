// Package errs defines the sentinel error values returned throughout phsp.
//
// Callers should use errors.Is against these sentinels rather than comparing
// error strings; wrapped context is added with fmt.Errorf("%w: ...", sentinel).
package errs

import "errors"

var (
	// ErrNotEnoughData is returned when a buffer read requires more bytes than
	// are currently available between the cursor and the valid length.
	ErrNotEnoughData = errors.New("not enough data in buffer")

	// ErrNotEnoughSpace is returned when a buffer write requires more bytes
	// than remain in the buffer's capacity.
	ErrNotEnoughSpace = errors.New("not enough space in buffer")

	// ErrInvalidFormat is returned when a header or record violates the
	// grammar its codec expects.
	ErrInvalidFormat = errors.New("invalid phase-space file format")

	// ErrUnsupportedParticle is returned when a particle's type falls outside
	// the set a codec can represent on disk.
	ErrUnsupportedParticle = errors.New("unsupported particle type for this format")

	// ErrInvalidProperty is returned when a property value falls outside its
	// documented range (e.g. a PENELOPE ILB1 value less than 1).
	ErrInvalidProperty = errors.New("invalid particle property value")

	// ErrUnknownFormat is returned by the registry when no codec claims a
	// given extension or name.
	ErrUnknownFormat = errors.New("unknown phase-space file format")

	// ErrAmbiguousFormat is returned by the registry when more than one codec
	// claims a given extension.
	ErrAmbiguousFormat = errors.New("ambiguous phase-space file format")

	// ErrDuplicateFormat is returned by the registry when a format name is
	// registered twice.
	ErrDuplicateFormat = errors.New("duplicate phase-space file format registration")

	// ErrInconsistentMetadata is returned (as a warning in most call sites)
	// when declared header counts disagree with what the records imply.
	ErrInconsistentMetadata = errors.New("inconsistent phase-space file metadata")

	// ErrIO wraps underlying file open/read/write failures.
	ErrIO = errors.New("phase-space file I/O error")

	// ErrOverflow is returned when a pseudo-particle's implied history count
	// would not fit the wire format's signed 32-bit field, wherever in the
	// file the record falls; the count is not split across chained records.
	ErrOverflow = errors.New("pseudo-particle history count overflow")
)
