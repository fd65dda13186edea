package coltype

import (
	"fmt"

	"github.com/vectorlake/colvec/endian"
	"github.com/vectorlake/colvec/errs"
)

// Reader is an independent, forward-only cursor over a borrowed byte slice.
// It never mutates the underlying bytes; duplicating a buffer (§4.E) means
// constructing a new Reader over the same backing array with its own
// position, so two readers never interfere with each other.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data in a fresh Reader starting at position 0. The caller
// retains ownership of data; Reader never writes to it.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Dup returns a new Reader over the same backing bytes, positioned at 0.
// This is the "duplicate before use" step the dispatcher performs so that
// constructing decoders never disturbs a caller's own cursor over the same
// buffer.
func (r *Reader) Dup() *Reader {
	return &Reader{data: r.data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// HasRemaining reports whether any unread bytes remain.
func (r *Reader) HasRemaining() bool { return r.pos < len(r.data) }

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// Take returns a window of the next n unread bytes and advances past them.
// The returned slice aliases the backing array; callers that must retain it
// beyond the next read should copy it.
func (r *Reader) Take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrMalformedBuffer, n, r.Remaining())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Byte reads a single byte.
func (r *Reader) Byte() (byte, error) {
	b, err := r.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 reads a 2-byte unsigned integer using engine's byte order.
func (r *Reader) Uint16(engine endian.EndianEngine) (uint16, error) {
	b, err := r.Take(2)
	if err != nil {
		return 0, err
	}
	return engine.Uint16(b), nil
}

// Uint32 reads a 4-byte unsigned integer using engine's byte order.
func (r *Reader) Uint32(engine endian.EndianEngine) (uint32, error) {
	b, err := r.Take(4)
	if err != nil {
		return 0, err
	}
	return engine.Uint32(b), nil
}

// Uint64 reads an 8-byte unsigned integer using engine's byte order.
func (r *Reader) Uint64(engine endian.EndianEngine) (uint64, error) {
	b, err := r.Take(8)
	if err != nil {
		return 0, err
	}
	return engine.Uint64(b), nil
}

// Int32 reads a signed 4-byte integer using engine's byte order. Used for
// RLE run lengths and null-mask indices, both wire-level int32 fields.
func (r *Reader) Int32(engine endian.EndianEngine) (int32, error) {
	v, err := r.Uint32(engine)
	if err != nil {
		return 0, err
	}
	return int32(v), nil //nolint:gosec
}
