package compress

import (
	"fmt"

	"github.com/vectorlake/colvec/format"
)

// Compressor provides high-performance compression for the optional
// block-codec envelope that may wrap a whole column buffer (SPEC_FULL §11).
//
// The interface is optimized for columnar buffers where:
//   - A buffer holds one column's worth of encoded, possibly-RLE/dict/delta
//     compressed values (§6)
//   - Payload sizes are typically 1KB-64KB per column chunk
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor mirrors Compressor for the decompression direction. Separate
// interfaces allow asymmetric implementations where compression and
// decompression have different performance characteristics.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// buffer bytes that package dispatch then applies spec §6's layout to.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or invalid
	//   - Returns error if data was compressed with an incompatible codec
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the given
// block codec tag.
//
// Parameters:
//   - blockCodec: envelope codec (None, Zstd, S2, or LZ4)
//   - target: description of target usage (for error messages)
func CreateCodec(blockCodec format.BlockCodec, target string) (Codec, error) {
	switch blockCodec {
	case format.BlockCodecNone:
		return NewNoOpCompressor(), nil
	case format.BlockCodecZstd:
		return NewZstdCompressor(), nil
	case format.BlockCodecS2:
		return NewS2Compressor(), nil
	case format.BlockCodecLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s block codec: %s", target, blockCodec)
	}
}

var builtinCodecs = map[format.BlockCodec]Codec{
	format.BlockCodecNone: NewNoOpCompressor(),
	format.BlockCodecZstd: NewZstdCompressor(),
	format.BlockCodecS2:   NewS2Compressor(),
	format.BlockCodecLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified block codec tag.
func GetCodec(blockCodec format.BlockCodec) (Codec, error) {
	if codec, ok := builtinCodecs[blockCodec]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported block codec: %s", blockCodec)
}
