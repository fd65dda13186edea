// Package coltype is the ColumnType registry: for each of the twelve
// primitive/complex column types it knows how to materialize a reusable
// Cell and how to extract the next encoded value from a buffer into one.
//
// This is the only package in the module that knows the physical width of a
// value on the wire; every decoder in the decoder package extracts values
// through it instead of hard-coding widths itself.
package coltype

import (
	"fmt"
	"math"

	"github.com/vectorlake/colvec/endian"
	"github.com/vectorlake/colvec/errs"
)

// Tag is the closed, stable integer tag for a column type, as it appears at
// byte offset 0 of a buffer.
type Tag int32

const (
	INT     Tag = 0
	LONG    Tag = 1
	FLOAT   Tag = 2
	DOUBLE  Tag = 3
	BOOLEAN Tag = 4
	BYTE    Tag = 5
	SHORT   Tag = 6
	VOID    Tag = 7
	STRING  Tag = 8
	// TIMESTAMP is stored as seconds:int64 followed by nanos:int32, packed
	// per writer convention (see Cell.Nanos).
	TIMESTAMP Tag = 9
	BINARY    Tag = 10
	GENERIC   Tag = 11
)

func (t Tag) String() string {
	switch t {
	case INT:
		return "INT"
	case LONG:
		return "LONG"
	case FLOAT:
		return "FLOAT"
	case DOUBLE:
		return "DOUBLE"
	case BOOLEAN:
		return "BOOLEAN"
	case BYTE:
		return "BYTE"
	case SHORT:
		return "SHORT"
	case VOID:
		return "VOID"
	case STRING:
		return "STRING"
	case TIMESTAMP:
		return "TIMESTAMP"
	case BINARY:
		return "BINARY"
	case GENERIC:
		return "GENERIC"
	default:
		return "UNKNOWN"
	}
}

// Cell is a reusable, mutable container holding one decoded value. The same
// Cell instance is rewritten on every row by a decoder's Next(); callers
// that need to retain a value beyond the following Next() call must copy it
// out (Int64/Float64/Bool/Bytes/String do not alias decoder state for
// fixed-width types, but Bytes/String for STRING/BINARY/GENERIC reference a
// window into the buffer that is invalidated on the next extraction).
type Cell struct {
	Type Tag

	I64  int64   // INT, LONG, SHORT, BYTE, BOOLEAN (0/1) widened to int64
	F64  float64 // FLOAT, DOUBLE
	Nanos int32  // TIMESTAMP: nanosecond component; I64 holds seconds
	Bytes []byte // STRING, BINARY, GENERIC: window into the source buffer
}

// Int64 returns the cell's integer-widened value.
func (c *Cell) Int64() int64 { return c.I64 }

// Float64 returns the cell's float value.
func (c *Cell) Float64() float64 { return c.F64 }

// Bool returns the cell's boolean value.
func (c *Cell) Bool() bool { return c.I64 != 0 }

// String copies the cell's byte window into a fresh string.
func (c *Cell) String() string { return string(c.Bytes) }

// Clone returns a value copy of the cell that is safe to retain across
// subsequent Next() calls; the byte window (if any) is copied.
func (c *Cell) Clone() Cell {
	out := *c
	if c.Bytes != nil {
		out.Bytes = append([]byte(nil), c.Bytes...)
	}
	return out
}

// Project materializes the cell into a plain Go value for engine consumers
// that don't want to branch on Type themselves. VOID projects to nil.
// TIMESTAMP projects to a (seconds, nanos) pair since the engine's inspector
// owns the mapping to a concrete time type.
func (c *Cell) Project() any {
	switch c.Type {
	case INT, LONG, SHORT, BYTE:
		return c.I64
	case BOOLEAN:
		return c.I64 != 0
	case FLOAT, DOUBLE:
		return c.F64
	case TIMESTAMP:
		return [2]int64{c.I64, int64(c.Nanos)}
	case STRING:
		return string(c.Bytes)
	case BINARY, GENERIC:
		return c.Bytes
	case VOID:
		return nil
	default:
		return nil
	}
}

// Width returns the fixed on-wire width in bytes for fixed-width types, and
// 0 for variable-width types (STRING, BINARY, GENERIC) and VOID.
func (t Tag) Width() int {
	switch t {
	case INT, FLOAT:
		return 4
	case LONG, DOUBLE, TIMESTAMP:
		return 8
	case SHORT:
		return 2
	case BYTE, BOOLEAN:
		return 1
	default:
		return 0
	}
}

// FixedWidth reports whether the type has a statically-known on-wire width.
// True for INT..SHORT and TIMESTAMP; false for VOID/STRING/BINARY/GENERIC.
func (t Tag) FixedWidth() bool {
	switch t {
	case INT, LONG, FLOAT, DOUBLE, BOOLEAN, BYTE, SHORT, TIMESTAMP:
		return true
	default:
		return false
	}
}

// Valid reports whether t is one of the twelve legal column-type tags.
func (t Tag) Valid() bool {
	return t >= INT && t <= GENERIC
}

// NewCell returns a freshly materialized, zero-valued cell for this type.
func (t Tag) NewCell() *Cell {
	return &Cell{Type: t}
}

// ExtractInto advances r past the next encoded value of this column type
// and rewrites cell with the decoded result. It is the only place that
// understands the physical on-wire layout of a single value.
func (t Tag) ExtractInto(r *Reader, engine endian.EndianEngine, cell *Cell) error {
	cell.Type = t

	switch t {
	case INT:
		v, err := r.Uint32(engine)
		if err != nil {
			return err
		}
		cell.I64 = int64(int32(v)) //nolint:gosec
	case FLOAT:
		v, err := r.Uint32(engine)
		if err != nil {
			return err
		}
		cell.F64 = float64(float32frombits(v))
	case LONG:
		v, err := r.Uint64(engine)
		if err != nil {
			return err
		}
		cell.I64 = int64(v) //nolint:gosec
	case DOUBLE:
		v, err := r.Uint64(engine)
		if err != nil {
			return err
		}
		cell.F64 = float64frombits(v)
	case TIMESTAMP:
		secs, err := r.Uint64(engine)
		if err != nil {
			return err
		}
		nanos, err := r.Uint32(engine)
		if err != nil {
			return err
		}
		cell.I64 = int64(secs) //nolint:gosec
		cell.Nanos = int32(nanos) //nolint:gosec
	case SHORT:
		v, err := r.Uint16(engine)
		if err != nil {
			return err
		}
		cell.I64 = int64(int16(v))
	case BYTE:
		v, err := r.Byte()
		if err != nil {
			return err
		}
		cell.I64 = int64(int8(v))
	case BOOLEAN:
		v, err := r.Byte()
		if err != nil {
			return err
		}
		if v != 0 {
			cell.I64 = 1
		} else {
			cell.I64 = 0
		}
	case VOID:
		cell.I64 = 0
	case STRING, BINARY, GENERIC:
		n, err := r.Uint32(engine)
		if err != nil {
			return err
		}
		b, err := r.Take(int(n))
		if err != nil {
			return err
		}
		cell.Bytes = b
	default:
		return fmt.Errorf("%w: tag %d", errs.ErrUnknownColumnType, t)
	}

	return nil
}

func float32frombits(b uint32) float32 {
	return math.Float32frombits(b)
}

func float64frombits(b uint64) float64 {
	return math.Float64frombits(b)
}

// FromTag returns a Tag for a raw int32 wire value, validating it is one of
// the twelve legal tags.
func FromTag(raw int32) (Tag, error) {
	t := Tag(raw)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", errs.ErrUnknownColumnType, raw)
	}
	return t, nil
}
