package decoder

import (
	"fmt"

	"github.com/vectorlake/colvec/coltype"
	"github.com/vectorlake/colvec/endian"
	"github.com/vectorlake/colvec/errs"
)

// DictDecoder decodes a dictionary-compressed stream: size:int32, then size
// materialized values, then a stream of int16 codes until end-of-buffer.
// Applicable to STRING, BINARY, TIMESTAMP, and any type where a 16-bit code
// beats the value's own width (§4.B).
//
// The dictionary is materialized eagerly at construction; each Next reads a
// 2-byte code and returns the dictionary entry at that index, so decoding
// any row after the dictionary prelude costs exactly 2 bytes.
type DictDecoder struct {
	r      *coltype.Reader
	engine endian.EndianEngine

	dict []coltype.Cell
}

var _ Decoder = (*DictDecoder)(nil)

// NewDictDecoder constructs a dictionary decoder over the remaining bytes
// of r, eagerly materializing the dictionary.
func NewDictDecoder(r *coltype.Reader, engine endian.EndianEngine, typ coltype.Tag) (*DictDecoder, error) {
	size, err := r.Int32(engine)
	if err != nil {
		return nil, fmt.Errorf("%w: truncated dictionary size", errs.ErrMalformedBuffer)
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: negative dictionary size %d", errs.ErrMalformedBuffer, size)
	}

	dict := make([]coltype.Cell, size)
	for i := range dict {
		dict[i].Type = typ
		if err := typ.ExtractInto(r, engine, &dict[i]); err != nil {
			return nil, fmt.Errorf("%w: dictionary entry %d: %v", errs.ErrMalformedBuffer, i, err)
		}
	}

	return &DictDecoder{r: r, engine: engine, dict: dict}, nil
}

// HasNext reports whether the code stream has remaining bytes.
func (d *DictDecoder) HasNext() bool {
	return d.r.HasRemaining()
}

// Next reads the next 2-byte code and returns the dictionary entry it
// indexes. The returned cell aliases the dictionary entry; dictionary
// entries never change after construction, so repeated codes are safe to
// hand back by reference.
func (d *DictDecoder) Next() (*coltype.Cell, error) {
	code, err := d.r.Uint16(d.engine)
	if err != nil {
		return nil, fmt.Errorf("%w: truncated dictionary code", errs.ErrMalformedBuffer)
	}

	idx := int(code)
	if idx >= len(d.dict) {
		return nil, fmt.Errorf("%w: dictionary code %d out of range (size %d)", errs.ErrMalformedBuffer, idx, len(d.dict))
	}

	return &d.dict[idx], nil
}
