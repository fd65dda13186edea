package nullmask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorlake/colvec/coltype"
	"github.com/vectorlake/colvec/decoder"
	"github.com/vectorlake/colvec/endian"
	"github.com/vectorlake/colvec/errs"
	"github.com/vectorlake/colvec/internal/testbuf"
	"github.com/vectorlake/colvec/nullmask"
)

var engine = endian.GetLittleEndianEngine()

func TestWrapperInterleavesNulls(t *testing.T) {
	hdr := testbuf.New()
	defer hdr.Release()
	hdr.NullMask(1, 3) // rows 1 and 3 are null

	body := testbuf.New()
	defer body.Release()
	body.Int32(10).Int32(20).Int32(30) // values for rows 0, 2, 4

	r := coltype.NewReader(hdr.Bytes())
	idx, release, err := nullmask.Parse(r, engine)
	require.NoError(t, err)

	inner := decoder.NewDefaultDecoder(coltype.NewReader(body.Bytes()), engine, coltype.INT)
	w := nullmask.New(inner, idx, release)
	defer w.Close()

	var vals []int64
	var nulls []bool
	for w.HasNext() {
		require.NoError(t, w.Next())
		cell, isNull := w.Current()
		nulls = append(nulls, isNull)
		if isNull {
			vals = append(vals, 0)
			continue
		}
		vals = append(vals, cell.Int64())
	}

	require.Len(t, vals, 5)
	assert.Equal(t, []bool{false, true, false, true, false}, nulls)
	assert.Equal(t, int64(10), vals[0])
	assert.Equal(t, int64(20), vals[2])
	assert.Equal(t, int64(30), vals[4])
}

func TestParseRejectsNonIncreasingIndices(t *testing.T) {
	hdr := testbuf.New()
	defer hdr.Release()
	hdr.Int32(2).Int32(3).Int32(2) // not strictly increasing

	r := coltype.NewReader(hdr.Bytes())
	_, _, err := nullmask.Parse(r, engine)
	assert.ErrorIs(t, err, errs.ErrMalformedBuffer)
}

func TestParseRejectsNegativeCount(t *testing.T) {
	hdr := testbuf.New()
	defer hdr.Release()
	hdr.Int32(-1)

	r := coltype.NewReader(hdr.Bytes())
	_, _, err := nullmask.Parse(r, engine)
	assert.ErrorIs(t, err, errs.ErrMalformedBuffer)
}

func TestCloseIsIdempotent(t *testing.T) {
	hdr := testbuf.New()
	defer hdr.Release()
	hdr.NullMask()

	r := coltype.NewReader(hdr.Bytes())
	idx, release, err := nullmask.Parse(r, engine)
	require.NoError(t, err)

	inner := decoder.NewDefaultDecoder(coltype.NewReader(nil), engine, coltype.VOID)
	w := nullmask.New(inner, idx, release)

	assert.NotPanics(t, func() {
		w.Close()
		w.Close()
	})
}
