// Package format declares the block-codec envelope that may optionally wrap
// a whole column buffer before the column-type/compression-scheme layout in
// spec §6 begins (SPEC_FULL §11). It is independent of the per-row
// compression schemes in package decoder: this is whole-buffer block
// compression (zstd/s2/lz4), applied and removed before the dispatcher ever
// looks at a column-type tag.
package format

// BlockCodec identifies the optional whole-buffer compression envelope.
type BlockCodec uint8

const (
	BlockCodecNone BlockCodec = 0x1 // BlockCodecNone: buffer is stored uncompressed.
	BlockCodecZstd BlockCodec = 0x2 // BlockCodecZstd: buffer is Zstandard-compressed.
	BlockCodecS2   BlockCodec = 0x3 // BlockCodecS2: buffer is S2-compressed.
	BlockCodecLZ4  BlockCodec = 0x4 // BlockCodecLZ4: buffer is LZ4-compressed.
)

func (c BlockCodec) String() string {
	switch c {
	case BlockCodecNone:
		return "None"
	case BlockCodecZstd:
		return "Zstd"
	case BlockCodecS2:
		return "S2"
	case BlockCodecLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
