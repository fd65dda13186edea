package decoder

import (
	"github.com/vectorlake/colvec/coltype"
	"github.com/vectorlake/colvec/endian"
)

// DefaultDecoder drains a buffer of concatenated, uncompressed values in
// column-type encoding. Applicable to every column type (§4.B).
type DefaultDecoder struct {
	r      *coltype.Reader
	engine endian.EndianEngine
	typ    coltype.Tag
	cell   *coltype.Cell
}

var _ Decoder = (*DefaultDecoder)(nil)

// NewDefaultDecoder constructs a decoder over the remaining bytes of r for
// column type typ, using engine for multi-byte fields.
func NewDefaultDecoder(r *coltype.Reader, engine endian.EndianEngine, typ coltype.Tag) *DefaultDecoder {
	return &DefaultDecoder{
		r:      r,
		engine: engine,
		typ:    typ,
		cell:   typ.NewCell(),
	}
}

// HasNext reports whether the buffer has remaining bytes.
//
// VOID is zero-width, so a default-encoded VOID column never has remaining
// bytes for its value region; in practice VOID columns are entirely
// represented by the null mask and this decoder is never asked for a value.
func (d *DefaultDecoder) HasNext() bool {
	return d.r.HasRemaining()
}

// Next extracts the next value into the decoder's reusable cell.
func (d *DefaultDecoder) Next() (*coltype.Cell, error) {
	if err := d.typ.ExtractInto(d.r, d.engine, d.cell); err != nil {
		return nil, err
	}
	return d.cell, nil
}
