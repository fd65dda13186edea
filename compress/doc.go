// Package compress provides the optional block-codec envelope a column
// buffer may be wrapped in before the dispatcher applies spec §6's layout
// (SPEC_FULL §11). It is independent of the per-row compression schemes in
// package decoder (RLE, dict, boolean-bitset, byte-delta): those operate on
// already-decompressed bytes, while this package compresses/decompresses
// the buffer as a whole.
//
// # Supported codecs
//
//   - None: no compression, fastest, largest
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// GetCodec and CreateCodec resolve a format.BlockCodec tag to a Codec; the
// dispatcher uses GetCodec to decompress a buffer's optional envelope before
// reading the column-type tag at offset 0 of the decompressed bytes.
package compress
