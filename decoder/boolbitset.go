package decoder

import (
	"fmt"

	"github.com/vectorlake/colvec/coltype"
	"github.com/vectorlake/colvec/endian"
	"github.com/vectorlake/colvec/errs"
)

// BooleanBitsetDecoder decodes a bit-packed boolean stream: count:int32,
// then ceil(count/64) little-endian 64-bit words. Applicable only to
// BOOLEAN (§4.B).
type BooleanBitsetDecoder struct {
	words []uint64
	count int32
	pos   int32

	curWord uint64
	cell    *coltype.Cell
}

var _ Decoder = (*BooleanBitsetDecoder)(nil)

// NewBooleanBitsetDecoder constructs a boolean bitset decoder over the
// remaining bytes of r.
func NewBooleanBitsetDecoder(r *coltype.Reader, engine endian.EndianEngine) (*BooleanBitsetDecoder, error) {
	count, err := r.Int32(engine)
	if err != nil {
		return nil, fmt.Errorf("%w: truncated boolean bitset count", errs.ErrMalformedBuffer)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative boolean bitset count %d", errs.ErrMalformedBuffer, count)
	}

	numWords := (int(count) + 63) / 64
	words := make([]uint64, numWords)
	for i := range words {
		w, err := r.Uint64(engine)
		if err != nil {
			return nil, fmt.Errorf("%w: truncated boolean bitset word %d", errs.ErrMalformedBuffer, i)
		}
		words[i] = w
	}

	return &BooleanBitsetDecoder{
		words: words,
		count: count,
		cell:  coltype.BOOLEAN.NewCell(),
	}, nil
}

// HasNext reports whether pos < count.
func (d *BooleanBitsetDecoder) HasNext() bool {
	return d.pos < d.count
}

// Next returns the bit at the current position and advances.
func (d *BooleanBitsetDecoder) Next() (*coltype.Cell, error) {
	if d.pos%64 == 0 {
		d.curWord = d.words[d.pos/64]
	}

	bit := (d.curWord >> uint(d.pos%64)) & 1
	d.pos++

	if bit != 0 {
		d.cell.I64 = 1
	} else {
		d.cell.I64 = 0
	}

	return d.cell, nil
}
