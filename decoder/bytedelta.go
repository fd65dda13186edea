package decoder

import (
	"fmt"

	"github.com/vectorlake/colvec/coltype"
	"github.com/vectorlake/colvec/endian"
	"github.com/vectorlake/colvec/errs"
)

// NewBaseValueFlag is the writer's sentinel flag byte meaning "the next
// full-width value follows" rather than "this byte is a signed delta".
// Must match the writer bit-exact (spec §4.B).
const NewBaseValueFlag = -128

// ByteDeltaDecoder decodes a byte-delta stream: each row is preceded by a
// 1-byte flag. NewBaseValueFlag means "read a full value"; any other flag
// is a signed delta in [-127, 127] added to the previous value at the
// type's natural integer width, with writer-defined wrap-around and no
// overflow check here (§4.B). Applicable to SHORT, INT, LONG.
type ByteDeltaDecoder struct {
	r      *coltype.Reader
	engine endian.EndianEngine
	typ    coltype.Tag

	prev    *coltype.Cell
	started bool
}

var _ Decoder = (*ByteDeltaDecoder)(nil)

// NewByteDeltaDecoder constructs a byte-delta decoder over the remaining
// bytes of r for column type typ.
func NewByteDeltaDecoder(r *coltype.Reader, engine endian.EndianEngine, typ coltype.Tag) *ByteDeltaDecoder {
	return &ByteDeltaDecoder{
		r:      r,
		engine: engine,
		typ:    typ,
		prev:   typ.NewCell(),
	}
}

// HasNext reports whether the buffer has remaining bytes.
func (d *ByteDeltaDecoder) HasNext() bool {
	return d.r.HasRemaining()
}

// Next reads the flag byte and either a full value or a delta, returning
// the decoder's own running cell.
func (d *ByteDeltaDecoder) Next() (*coltype.Cell, error) {
	flagByte, err := d.r.Byte()
	if err != nil {
		return nil, fmt.Errorf("%w: truncated byte-delta flag", errs.ErrMalformedBuffer)
	}
	flag := int8(flagByte)

	if !d.started || flag == NewBaseValueFlag {
		if err := d.typ.ExtractInto(d.r, d.engine, d.prev); err != nil {
			return nil, err
		}
		d.started = true
		return d.prev, nil
	}

	// Add the signed delta at the type's natural integer width, wrapping as
	// the writer defines (no overflow check at this layer).
	switch d.typ {
	case coltype.SHORT:
		d.prev.I64 = int64(int16(int64(d.prev.I64) + int64(flag)))
	case coltype.INT:
		d.prev.I64 = int64(int32(int64(d.prev.I64) + int64(flag)))
	case coltype.LONG:
		d.prev.I64 += int64(flag)
	default:
		return nil, fmt.Errorf("%w: byte-delta is not valid for %s", errs.ErrIncompatibleEncoding, d.typ)
	}

	return d.prev, nil
}
