// Package decoder implements the primitive decoder family: one decoder per
// compression scheme (§4.B). Each decoder is a lazy, finite,
// non-restartable sequence of cells exposing HasNext/Next, grounded in the
// same "parse a header, then stream values" structure the teacher's
// section package uses for its fixed headers, generalized here to a
// streaming body instead of a single fixed-size struct.
//
// Calling Next when HasNext is false is a programmer error and is not
// guarded against at this layer, matching spec §4.B.
package decoder

import (
	"github.com/vectorlake/colvec/coltype"
)

// Tag is the closed, stable integer tag for a compression scheme, as it
// appears immediately after the null bitmap in a buffer (§6).
type Tag int32

const (
	DEFAULT        Tag = 0
	RLE            Tag = 1
	DICT           Tag = 2
	BOOLEAN_BITSET Tag = 3
	BYTE_DELTA     Tag = 4
)

func (t Tag) String() string {
	switch t {
	case DEFAULT:
		return "DEFAULT"
	case RLE:
		return "RLE"
	case DICT:
		return "DICT"
	case BOOLEAN_BITSET:
		return "BOOLEAN_BITSET"
	case BYTE_DELTA:
		return "BYTE_DELTA"
	default:
		return "UNKNOWN"
	}
}

func (t Tag) Valid() bool { return t >= DEFAULT && t <= BYTE_DELTA }

// Decoder is the primitive decoder contract every compression scheme
// implements. Next returns a pointer to the decoder's own internal cell:
// the same object is rewritten on every call, so callers that must retain
// a value past the next Next() call should use Cell.Clone().
type Decoder interface {
	HasNext() bool
	Next() (*coltype.Cell, error)
}

// compatibility lists which column types each compression scheme accepts,
// used by the dispatcher to raise ErrIncompatibleEncoding before it builds
// the wrong decoder.
var compatibility = map[Tag]func(coltype.Tag) bool{
	DEFAULT: func(coltype.Tag) bool { return true },
	RLE: func(t coltype.Tag) bool {
		switch t {
		case coltype.INT, coltype.LONG, coltype.FLOAT, coltype.DOUBLE,
			coltype.BOOLEAN, coltype.SHORT, coltype.BYTE, coltype.TIMESTAMP:
			return true
		default:
			return false
		}
	},
	DICT: func(t coltype.Tag) bool {
		switch t {
		case coltype.STRING, coltype.BINARY, coltype.TIMESTAMP:
			return true
		default:
			return false
		}
	},
	BOOLEAN_BITSET: func(t coltype.Tag) bool { return t == coltype.BOOLEAN },
	BYTE_DELTA: func(t coltype.Tag) bool {
		switch t {
		case coltype.SHORT, coltype.INT, coltype.LONG:
			return true
		default:
			return false
		}
	},
}

// Compatible reports whether compression scheme c is legal for column type
// t, per spec §3's "each [CompressionType] is legal only for a subset of
// column types".
func Compatible(c Tag, t coltype.Tag) bool {
	fn, ok := compatibility[c]
	if !ok {
		return false
	}
	return fn(t)
}
