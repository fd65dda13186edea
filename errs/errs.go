// Package errs defines the sentinel errors returned by the columnar decode path.
//
// Every error here is fatal: decoders never retry, and callers should treat
// any of these as a signal to stop using the iterator that produced them.
package errs

import "errors"

var (
	// ErrUnknownColumnType is returned when the header carries a column-type
	// tag outside the closed set (INT..GENERIC).
	ErrUnknownColumnType = errors.New("colvec: unknown column type tag")

	// ErrUnknownCompressionType is returned when the header carries a
	// compression-type tag outside the closed set (DEFAULT..BYTE_DELTA).
	ErrUnknownCompressionType = errors.New("colvec: unknown compression type tag")

	// ErrIncompatibleEncoding is returned when a compression scheme is
	// selected for a column type it does not support, e.g. BYTE_DELTA on
	// STRING.
	ErrIncompatibleEncoding = errors.New("colvec: compression type is not valid for this column type")

	// ErrMalformedBuffer covers truncated values, RLE runs that extend past
	// the end of the buffer, dictionary codes out of range, and null
	// indices that are out of order or out of range.
	ErrMalformedBuffer = errors.New("colvec: malformed buffer")

	// ErrInvalidHeaderSize is returned when the buffer is too short to hold
	// the fixed-size tags the dispatcher must read before it can select a
	// decoder.
	ErrInvalidHeaderSize = errors.New("colvec: buffer too short for header")

	// ErrChecksumMismatch is returned when the optional integrity digest
	// trailing the buffer does not match the bytes that precede it.
	ErrChecksumMismatch = errors.New("colvec: checksum mismatch")

	// ErrIteratorExhausted is returned when Next is called on an iterator
	// whose HasNext is already false.
	ErrIteratorExhausted = errors.New("colvec: iterator exhausted")

	// ErrIteratorPoisoned is returned when any operation is attempted on an
	// iterator that previously hit a fatal decode error.
	ErrIteratorPoisoned = errors.New("colvec: iterator poisoned by a previous error")
)
