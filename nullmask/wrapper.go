// Package nullmask implements the null-mask wrapper (§4.C): it reads the
// buffer's null-index list and projects null/non-null rows through an inner
// primitive decoder, advancing the inner decoder only on non-null rows.
package nullmask

import (
	"fmt"

	"github.com/vectorlake/colvec/coltype"
	"github.com/vectorlake/colvec/decoder"
	"github.com/vectorlake/colvec/endian"
	"github.com/vectorlake/colvec/errs"
	"github.com/vectorlake/colvec/internal/pool"
)

// Wrapper wraps an inner primitive decoder and interprets the null bitmap
// that precedes it in the buffer: a count k, then k ascending row indices.
type Wrapper struct {
	inner decoder.Decoder

	nullIndex []int32
	nullPos   int
	release   func()

	row int32 // rows delivered so far, i.e. r in spec's notation

	curIsNull bool
	curCell   *coltype.Cell
}

// Parse reads k:int32 and k ascending int32 indices from r. The returned
// slice is borrowed from an internal pool (§5 "resource discipline": the
// null-index list is scoped to the decoder's lifetime); callers must call
// the returned release func exactly once, when the decoder built around it
// is dropped.
func Parse(r *coltype.Reader, engine endian.EndianEngine) ([]int32, func(), error) {
	k, err := r.Int32(engine)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: truncated null count", errs.ErrMalformedBuffer)
	}
	if k < 0 {
		return nil, nil, fmt.Errorf("%w: negative null count %d", errs.ErrMalformedBuffer, k)
	}

	idx, release := pool.GetInt32Slice(int(k))
	var prev int32 = -1
	for i := range idx {
		v, err := r.Int32(engine)
		if err != nil {
			release()
			return nil, nil, fmt.Errorf("%w: truncated null index %d", errs.ErrMalformedBuffer, i)
		}
		if v <= prev {
			release()
			return nil, nil, fmt.Errorf("%w: null index %d not strictly increasing (got %d after %d)", errs.ErrMalformedBuffer, i, v, prev)
		}
		idx[i] = v
		prev = v
	}

	return idx, release, nil
}

// New wraps inner with the given (already-parsed) null index list. release,
// if non-nil, is called by Close to return the null-index slice to its pool.
func New(inner decoder.Decoder, nullIndex []int32, release func()) *Wrapper {
	return &Wrapper{inner: inner, nullIndex: nullIndex, release: release}
}

// Close releases pooled resources held by the wrapper. Safe to call more
// than once; subsequent calls are no-ops.
func (w *Wrapper) Close() {
	if w.release != nil {
		w.release()
		w.release = nil
	}
}

// HasNext reports whether there is another row: either another null index
// to deliver, or the inner decoder still has values.
func (w *Wrapper) HasNext() bool {
	return w.nullPos < len(w.nullIndex) || w.inner.HasNext()
}

// Next advances to the next row. The row counter is incremented first, so
// the first row has index 0 when tested against the null-index list, per
// spec §4.C.
func (w *Wrapper) Next() error {
	curRow := w.row
	w.row++

	if w.nullPos < len(w.nullIndex) && w.nullIndex[w.nullPos] == curRow {
		w.nullPos++
		w.curIsNull = true
		w.curCell = nil
		return nil
	}

	cell, err := w.inner.Next()
	if err != nil {
		return err
	}
	w.curIsNull = false
	w.curCell = cell

	return nil
}

// Current returns the cached value for the current row: (nil, true) if the
// row is null, otherwise (cell, false). It is idempotent between Next
// calls and never mutates decoder state, per spec §4.D.
func (w *Wrapper) Current() (*coltype.Cell, bool) {
	return w.curCell, w.curIsNull
}
