// Package testbuf provides a small little-endian buffer builder used by
// package tests to construct wire-format column buffers by hand. There is no
// production encoder in this module (§1 scope is decode-only); tests build
// fixtures directly with this helper instead.
package testbuf

import (
	"encoding/binary"

	"github.com/vectorlake/colvec/internal/pool"
)

// Builder appends little-endian-encoded fields to a pooled scratch buffer.
// Not safe for concurrent use; intended for one goroutine building one fixture.
type Builder struct {
	bb *pool.ByteBuffer
}

// New returns an empty Builder backed by a pooled buffer. Call Release when
// done with the bytes returned by Bytes.
func New() *Builder {
	return &Builder{bb: pool.GetBlobBuffer()}
}

// Release returns the underlying buffer to its pool. The slice previously
// returned by Bytes must not be used afterward.
func (b *Builder) Release() {
	pool.PutBlobBuffer(b.bb)
}

// Bytes returns the accumulated buffer. The returned slice aliases the
// builder's internal storage.
func (b *Builder) Bytes() []byte {
	return b.bb.B
}

func (b *Builder) Byte(v byte) *Builder {
	b.bb.B = append(b.bb.B, v)
	return b
}

func (b *Builder) Int32(v int32) *Builder {
	return b.Uint32(uint32(v))
}

func (b *Builder) Uint16(v uint16) *Builder {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	b.bb.B = append(b.bb.B, buf[:]...)
	return b
}

func (b *Builder) Uint32(v uint32) *Builder {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	b.bb.B = append(b.bb.B, buf[:]...)
	return b
}

func (b *Builder) Uint64(v uint64) *Builder {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	b.bb.B = append(b.bb.B, buf[:]...)
	return b
}

func (b *Builder) Float32(v float32) *Builder {
	return b.Uint32(float32bits(v))
}

func (b *Builder) Float64(v float64) *Builder {
	return b.Uint64(float64bits(v))
}

// Raw appends raw bytes with no length prefix.
func (b *Builder) Raw(p []byte) *Builder {
	b.bb.B = append(b.bb.B, p...)
	return b
}

// LenPrefixed appends a uint32 length prefix followed by p, matching the
// wire layout ExtractInto uses for STRING/BINARY/GENERIC.
func (b *Builder) LenPrefixed(p []byte) *Builder {
	return b.Uint32(uint32(len(p))).Raw(p)
}

// NullMask appends a null-mask header: count then the ascending indices.
func (b *Builder) NullMask(indices ...int32) *Builder {
	b.Int32(int32(len(indices)))
	for _, idx := range indices {
		b.Int32(idx)
	}
	return b
}
