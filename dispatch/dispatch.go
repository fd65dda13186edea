// Package dispatch implements the buffer dispatcher (§4.E): the single
// public entry point that reads a column buffer's header, selects the
// column type and compression scheme, and returns a wrapped Iterator.
//
// Adding a new compression scheme is a one-line addition to the switch in
// newPrimitiveDecoder plus one new decoder in package decoder; this is the
// only package that materializes concrete decoder types from tags.
package dispatch

import (
	"fmt"

	"github.com/vectorlake/colvec/coltype"
	"github.com/vectorlake/colvec/compress"
	"github.com/vectorlake/colvec/decoder"
	"github.com/vectorlake/colvec/endian"
	"github.com/vectorlake/colvec/errs"
	"github.com/vectorlake/colvec/format"
	"github.com/vectorlake/colvec/nullmask"
	"github.com/vectorlake/colvec/rowcursor"
)

// Options configures optional ambient features of NewIterator that are not
// part of spec §6's core buffer layout (SPEC_FULL §11).
type Options struct {
	// Engine is the byte order the writer used. Defaults to little-endian
	// if unset, matching the teacher's default engine choice.
	Engine endian.EndianEngine

	// BlockCodec, if non-zero, means buf is wrapped in a whole-buffer
	// compression envelope that must be removed before the column-type tag
	// at offset 0 can be read.
	BlockCodec format.BlockCodec

	// VerifyChecksum, if true, expects an 8-byte xxHash64 digest of the
	// payload region appended after the block-codec envelope is removed,
	// and fails fast with ErrChecksumMismatch if it doesn't match.
	VerifyChecksum bool
}

// NewIterator is the single public entry point of the dispatcher. It
// duplicates buf (an independent read cursor over the same bytes, per §4.E
// step 1 and §5's sharing policy), optionally removes a block-codec
// envelope and verifies an integrity digest, then defers column-type/
// compression dispatch to the iterator's first Next() call per the
// laziness rule in §4.D.
func NewIterator(buf []byte, opts Options) *rowcursor.Iterator {
	engine := opts.Engine
	if engine == nil {
		engine = endian.GetLittleEndianEngine()
	}

	return rowcursor.New(func() (interface {
		HasNext() bool
		Next() error
		Current() (*coltype.Cell, bool)
	}, error) {
		payload, err := unwrapEnvelope(buf, opts)
		if err != nil {
			return nil, err
		}

		return buildRows(payload, engine)
	})
}

// unwrapEnvelope removes the optional block-codec envelope and verifies the
// optional integrity digest, returning the bytes laid out per spec §6.
func unwrapEnvelope(buf []byte, opts Options) ([]byte, error) {
	payload := buf

	if opts.BlockCodec != 0 {
		codec, err := compress.GetCodec(opts.BlockCodec)
		if err != nil {
			return nil, err
		}
		payload, err = codec.Decompress(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: block codec envelope: %v", errs.ErrMalformedBuffer, err)
		}
	}

	if opts.VerifyChecksum {
		var err error
		payload, err = verifyAndStripChecksum(payload)
		if err != nil {
			return nil, err
		}
	}

	return payload, nil
}

// buildRows performs §4.E steps 2-4: read the column-type tag, construct
// the type-specific facade's decoder, and wrap it in the null-mask wrapper.
func buildRows(payload []byte, engine endian.EndianEngine) (*nullmask.Wrapper, error) {
	r := coltype.NewReader(payload)

	rawTag, err := r.Int32(engine)
	if err != nil {
		return nil, fmt.Errorf("%w: truncated column type tag", errs.ErrInvalidHeaderSize)
	}
	colType, err := coltype.FromTag(rawTag)
	if err != nil {
		return nil, err
	}

	nullIndex, release, err := nullmask.Parse(r, engine)
	if err != nil {
		return nil, err
	}

	rawCompression, err := r.Int32(engine)
	if err != nil {
		release()
		return nil, fmt.Errorf("%w: truncated compression type tag", errs.ErrInvalidHeaderSize)
	}
	compType := decoder.Tag(rawCompression)
	if !compType.Valid() {
		release()
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownCompressionType, rawCompression)
	}
	if !decoder.Compatible(compType, colType) {
		release()
		return nil, fmt.Errorf("%w: %s is not valid for %s", errs.ErrIncompatibleEncoding, compType, colType)
	}

	inner, err := newPrimitiveDecoder(r, engine, colType, compType)
	if err != nil {
		release()
		return nil, err
	}

	return nullmask.New(inner, nullIndex, release), nil
}

// newPrimitiveDecoder selects and constructs the primitive decoder (§4.B)
// matching compType. This switch is the one-line-per-scheme extension point
// the package doc describes.
func newPrimitiveDecoder(r *coltype.Reader, engine endian.EndianEngine, colType coltype.Tag, compType decoder.Tag) (decoder.Decoder, error) {
	switch compType {
	case decoder.DEFAULT:
		return decoder.NewDefaultDecoder(r, engine, colType), nil
	case decoder.RLE:
		return decoder.NewRLEDecoder(r, engine, colType), nil
	case decoder.DICT:
		return decoder.NewDictDecoder(r, engine, colType)
	case decoder.BOOLEAN_BITSET:
		return decoder.NewBooleanBitsetDecoder(r, engine)
	case decoder.BYTE_DELTA:
		return decoder.NewByteDeltaDecoder(r, engine, colType), nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownCompressionType, compType)
	}
}
