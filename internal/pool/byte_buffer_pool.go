package pool

import "sync"

// BlobBufferDefaultSize is the default capacity of a ByteBuffer obtained
// from the pool.
const (
	BlobBufferDefaultSize  = 1024 * 16  // 16KiB
	BlobBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a pooled, growable byte slice used by internal/testbuf to
// assemble wire-format fixtures without allocating a fresh backing array
// per test.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

func newByteBuffer() *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, BlobBufferDefaultSize)}
}

func (bb *ByteBuffer) reset() {
	bb.B = bb.B[:0]
}

var blobPool = sync.Pool{
	New: func() any { return newByteBuffer() },
}

// GetBlobBuffer retrieves a ByteBuffer from the pool.
func GetBlobBuffer() *ByteBuffer {
	bb, _ := blobPool.Get().(*ByteBuffer)
	return bb
}

// PutBlobBuffer returns a ByteBuffer to the pool for reuse. Buffers that
// grew past BlobBufferMaxThreshold are discarded instead of pooled, to
// avoid retaining an oversized backing array.
func PutBlobBuffer(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if cap(bb.B) > BlobBufferMaxThreshold {
		return
	}

	bb.reset()
	blobPool.Put(bb)
}
