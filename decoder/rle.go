package decoder

import (
	"fmt"

	"github.com/vectorlake/colvec/coltype"
	"github.com/vectorlake/colvec/endian"
	"github.com/vectorlake/colvec/errs"
)

// RLEDecoder decodes a run-length encoded stream: repeated pairs of
// (value, runLength:int32). Applicable to fixed-width numeric types,
// BOOLEAN, SHORT, BYTE and TIMESTAMP (§4.B).
//
// Open question (spec §9a): HasNext is true while the current run still has
// rows to yield or the buffer has unread bytes; there is no row count. The
// stream must end exactly at a pair boundary: trailing bytes that do not form
// a whole (value, runLength) pair make Next fail with ErrMalformedBuffer.
type RLEDecoder struct {
	r      *coltype.Reader
	engine endian.EndianEngine
	typ    coltype.Tag

	cell      *coltype.Cell
	runLen    int32
	countDone int32
}

var _ Decoder = (*RLEDecoder)(nil)

// NewRLEDecoder constructs an RLE decoder over the remaining bytes of r.
func NewRLEDecoder(r *coltype.Reader, engine endian.EndianEngine, typ coltype.Tag) *RLEDecoder {
	return &RLEDecoder{
		r:      r,
		engine: engine,
		typ:    typ,
		cell:   typ.NewCell(),
	}
}

// HasNext reports whether the current run has rows left or the buffer has
// remaining bytes for another (value, runLength) pair.
func (d *RLEDecoder) HasNext() bool {
	return d.countDone < d.runLen || d.r.HasRemaining()
}

// Next yields the current run's value, consuming a new (value, runLength)
// pair from the buffer whenever the current run is exhausted.
func (d *RLEDecoder) Next() (*coltype.Cell, error) {
	if d.countDone == d.runLen {
		if err := d.typ.ExtractInto(d.r, d.engine, d.cell); err != nil {
			return nil, err
		}

		runLen, err := d.r.Int32(d.engine)
		if err != nil {
			return nil, fmt.Errorf("%w: truncated RLE run length", errs.ErrMalformedBuffer)
		}
		if runLen <= 0 {
			return nil, fmt.Errorf("%w: non-positive RLE run length %d", errs.ErrMalformedBuffer, runLen)
		}

		d.runLen = runLen
		d.countDone = 1
	} else {
		d.countDone++
	}

	return d.cell, nil
}
