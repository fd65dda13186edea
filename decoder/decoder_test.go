package decoder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorlake/colvec/coltype"
	"github.com/vectorlake/colvec/decoder"
	"github.com/vectorlake/colvec/endian"
	"github.com/vectorlake/colvec/errs"
	"github.com/vectorlake/colvec/internal/testbuf"
)

var engine = endian.GetLittleEndianEngine()

func TestDefaultDecoder(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(10).Int32(20).Int32(30)

	d := decoder.NewDefaultDecoder(coltype.NewReader(buf.Bytes()), engine, coltype.INT)

	var got []int64
	for d.HasNext() {
		cell, err := d.Next()
		require.NoError(t, err)
		got = append(got, cell.Int64())
	}
	assert.Equal(t, []int64{10, 20, 30}, got)
}

func TestRLEDecoder(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(7).Int32(3) // value 7, run length 3
	buf.Int32(9).Int32(2) // value 9, run length 2

	d := decoder.NewRLEDecoder(coltype.NewReader(buf.Bytes()), engine, coltype.INT)

	var got []int64
	for d.HasNext() {
		cell, err := d.Next()
		require.NoError(t, err)
		got = append(got, cell.Int64())
	}
	assert.Equal(t, []int64{7, 7, 7, 9, 9}, got)
}

func TestRLEDecoderRejectsNonPositiveRun(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(7).Int32(0)

	d := decoder.NewRLEDecoder(coltype.NewReader(buf.Bytes()), engine, coltype.INT)
	_, err := d.Next()
	assert.ErrorIs(t, err, errs.ErrMalformedBuffer)
}

func TestDictDecoder(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(2) // dictionary size
	buf.LenPrefixed([]byte("red"))
	buf.LenPrefixed([]byte("blue"))
	buf.Uint16(0).Uint16(1).Uint16(0) // codes: red, blue, red

	d, err := decoder.NewDictDecoder(coltype.NewReader(buf.Bytes()), engine, coltype.STRING)
	require.NoError(t, err)

	var got []string
	for d.HasNext() {
		cell, err := d.Next()
		require.NoError(t, err)
		got = append(got, cell.String())
	}
	assert.Equal(t, []string{"red", "blue", "red"}, got)
}

func TestDictDecoderRejectsOutOfRangeCode(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(1)
	buf.LenPrefixed([]byte("only"))
	buf.Uint16(5)

	d, err := decoder.NewDictDecoder(coltype.NewReader(buf.Bytes()), engine, coltype.STRING)
	require.NoError(t, err)

	_, err = d.Next()
	assert.ErrorIs(t, err, errs.ErrMalformedBuffer)
}

func TestBooleanBitsetDecoder(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	buf.Int32(5) // count
	// bits 0,2,4 set -> 0b10101 = 0x15
	buf.Uint64(0x15)

	d, err := decoder.NewBooleanBitsetDecoder(coltype.NewReader(buf.Bytes()), engine)
	require.NoError(t, err)

	var got []bool
	for d.HasNext() {
		cell, err := d.Next()
		require.NoError(t, err)
		got = append(got, cell.Bool())
	}
	assert.Equal(t, []bool{true, false, true, false, true}, got)
}

func TestByteDeltaDecoder(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	newBase, minus3 := int8(decoder.NewBaseValueFlag), int8(-3)
	buf.Byte(byte(newBase)).Int32(100) // base value 100
	buf.Byte(5)                        // +5 -> 105
	buf.Byte(byte(minus3))             // -3 -> 102

	d := decoder.NewByteDeltaDecoder(coltype.NewReader(buf.Bytes()), engine, coltype.INT)

	var got []int64
	for d.HasNext() {
		cell, err := d.Next()
		require.NoError(t, err)
		got = append(got, cell.Int64())
	}
	assert.Equal(t, []int64{100, 105, 102}, got)
}

func TestByteDeltaDecoderRejectsIncompatibleType(t *testing.T) {
	buf := testbuf.New()
	defer buf.Release()
	newBase := int8(decoder.NewBaseValueFlag)
	buf.Byte(byte(newBase)).Float32(1.0)
	buf.Byte(1)

	d := decoder.NewByteDeltaDecoder(coltype.NewReader(buf.Bytes()), engine, coltype.FLOAT)
	_, err := d.Next()
	require.NoError(t, err) // base value read succeeds

	_, err = d.Next()
	assert.True(t, errors.Is(err, errs.ErrIncompatibleEncoding))
}

func TestCompatible(t *testing.T) {
	assert.True(t, decoder.Compatible(decoder.DEFAULT, coltype.VOID))
	assert.True(t, decoder.Compatible(decoder.BOOLEAN_BITSET, coltype.BOOLEAN))
	assert.False(t, decoder.Compatible(decoder.BOOLEAN_BITSET, coltype.STRING))
	assert.True(t, decoder.Compatible(decoder.DICT, coltype.STRING))
	assert.False(t, decoder.Compatible(decoder.DICT, coltype.INT))
	assert.True(t, decoder.Compatible(decoder.BYTE_DELTA, coltype.LONG))
	assert.False(t, decoder.Compatible(decoder.BYTE_DELTA, coltype.BOOLEAN))
}
