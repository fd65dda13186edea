package dispatch_test

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorlake/colvec/coltype"
	"github.com/vectorlake/colvec/compress"
	"github.com/vectorlake/colvec/decoder"
	"github.com/vectorlake/colvec/dispatch"
	"github.com/vectorlake/colvec/errs"
	"github.com/vectorlake/colvec/format"
	"github.com/vectorlake/colvec/internal/testbuf"
)

func TestNewIteratorDefaultEncodingNoNulls(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(int32(coltype.INT))   // column type
	buf.NullMask()                  // no nulls
	buf.Int32(int32(decoder.DEFAULT)) // compression
	buf.Int32(1).Int32(2).Int32(3)  // values

	it := dispatch.NewIterator(buf.Bytes(), dispatch.Options{})

	var got []int64
	for {
		err := it.Next()
		if err != nil {
			assert.ErrorIs(t, err, errs.ErrIteratorExhausted)
			break
		}
		cell, isNull := it.Current()
		require.False(t, isNull)
		got = append(got, cell.Int64())
	}
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestNewIteratorWithNulls(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(int32(coltype.STRING))
	buf.NullMask(1)
	buf.Int32(int32(decoder.DEFAULT))
	buf.LenPrefixed([]byte("a"))
	buf.LenPrefixed([]byte("b"))

	it := dispatch.NewIterator(buf.Bytes(), dispatch.Options{})

	require.NoError(t, it.Next())
	cell, isNull := it.Current()
	require.False(t, isNull)
	assert.Equal(t, "a", cell.String())

	require.NoError(t, it.Next())
	_, isNull = it.Current()
	assert.True(t, isNull)

	require.NoError(t, it.Next())
	cell, isNull = it.Current()
	require.False(t, isNull)
	assert.Equal(t, "b", cell.String())

	err := it.Next()
	assert.ErrorIs(t, err, errs.ErrIteratorExhausted)
}

func TestNewIteratorUnknownColumnTypePoisons(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(999) // invalid column type

	it := dispatch.NewIterator(buf.Bytes(), dispatch.Options{})
	err := it.Next()
	assert.ErrorIs(t, err, errs.ErrIteratorPoisoned)
	assert.ErrorIs(t, err, errs.ErrUnknownColumnType)
}

func TestNewIteratorIncompatibleEncodingPoisons(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(int32(coltype.STRING))
	buf.NullMask()
	buf.Int32(int32(decoder.BOOLEAN_BITSET)) // not legal for STRING

	it := dispatch.NewIterator(buf.Bytes(), dispatch.Options{})
	err := it.Next()
	assert.ErrorIs(t, err, errs.ErrIteratorPoisoned)
	assert.ErrorIs(t, err, errs.ErrIncompatibleEncoding)
}

func TestNewIteratorTruncatedHeaderPoisons(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(int32(coltype.INT))
	// missing null mask / compression tag / body entirely

	it := dispatch.NewIterator(buf.Bytes(), dispatch.Options{})
	err := it.Next()
	assert.ErrorIs(t, err, errs.ErrIteratorPoisoned)
}

func TestNewIteratorChecksumVerified(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(int32(coltype.INT))
	buf.NullMask()
	buf.Int32(int32(decoder.DEFAULT))
	buf.Int32(42)
	buf.Uint64(xxhash.Sum64(buf.Bytes()))

	it := dispatch.NewIterator(buf.Bytes(), dispatch.Options{VerifyChecksum: true})

	require.NoError(t, it.Next())
	cell, isNull := it.Current()
	require.False(t, isNull)
	assert.Equal(t, int64(42), cell.Int64())

	err := it.Next()
	assert.ErrorIs(t, err, errs.ErrIteratorExhausted)
}

func TestNewIteratorChecksumMismatchPoisons(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(int32(coltype.INT))
	buf.NullMask()
	buf.Int32(int32(decoder.DEFAULT))
	buf.Int32(42)
	buf.Uint64(0xdeadbeef) // wrong trailing checksum

	it := dispatch.NewIterator(buf.Bytes(), dispatch.Options{VerifyChecksum: true})
	err := it.Next()
	assert.ErrorIs(t, err, errs.ErrIteratorPoisoned)
	assert.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestNewIteratorBlockCodecEnvelope(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(int32(coltype.INT))
	buf.NullMask()
	buf.Int32(int32(decoder.DEFAULT))
	buf.Int32(7).Int32(8).Int32(9)

	codec, err := compress.GetCodec(format.BlockCodecS2)
	require.NoError(t, err)
	envelope, err := codec.Compress(buf.Bytes())
	require.NoError(t, err)

	it := dispatch.NewIterator(envelope, dispatch.Options{BlockCodec: format.BlockCodecS2})

	var got []int64
	for {
		err := it.Next()
		if err != nil {
			assert.ErrorIs(t, err, errs.ErrIteratorExhausted)
			break
		}
		cell, isNull := it.Current()
		require.False(t, isNull)
		got = append(got, cell.Int64())
	}
	assert.Equal(t, []int64{7, 8, 9}, got)
}
