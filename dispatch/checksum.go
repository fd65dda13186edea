package dispatch

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/vectorlake/colvec/errs"
)

// checksumSize is the width of the trailing xxHash64 digest appended to a
// buffer when Options.VerifyChecksum is set (SPEC_FULL §11).
const checksumSize = 8

// verifyAndStripChecksum splits the trailing 8-byte little-endian xxHash64
// digest off payload, recomputes the digest over the remaining bytes, and
// returns the digest-stripped payload if they match.
func verifyAndStripChecksum(payload []byte) ([]byte, error) {
	if len(payload) < checksumSize {
		return nil, fmt.Errorf("%w: buffer too short for checksum trailer", errs.ErrInvalidHeaderSize)
	}

	body := payload[:len(payload)-checksumSize]
	want := binary.LittleEndian.Uint64(payload[len(payload)-checksumSize:])

	got := xxhash.Sum64(body)
	if got != want {
		return nil, fmt.Errorf("%w: have %x, want %x", errs.ErrChecksumMismatch, got, want)
	}

	return body, nil
}
