package mpq

import (
	"errors"
	"fmt"
)

// Errors that abort parsing. Parse and ParseStream return these directly;
// they never panic.
var (
	// ErrNoHeader means no candidate offset inside the search window passed
	// header validation. Buffers full of decoy headers end up here.
	ErrNoHeader = errors.New("mpq: no valid archive header in search window")

	// ErrTableOutOfBounds means the header's declared hash- or block-table
	// extent does not fit inside the supplied buffer.
	ErrTableOutOfBounds = errors.New("mpq: table extent exceeds archive bounds")
)

// Per-file errors. Extraction of one file failing does not invalidate the
// archive; callers are expected to skip or substitute.
var (
	// ErrSectorTableInvalid is returned when every tier of the sector
	// offset-table fallback has been exhausted.
	ErrSectorTableInvalid = errors.New("mpq: sector offset table invalid")

	// ErrAudioCompression is returned for ADPCM/Sparse compressed payloads,
	// which this package does not decode.
	ErrAudioCompression = errors.New("mpq: adpcm/sparse audio compression not supported")

	// ErrChecksumMismatch is returned when checksum verification is enabled
	// and a sector's stored Adler-32 does not match its payload.
	ErrChecksumMismatch = errors.New("mpq: sector checksum mismatch")

	// ErrFileDataOutOfBounds means a block entry points past the end of the
	// archive buffer.
	ErrFileDataOutOfBounds = errors.New("mpq: file data extends past archive bounds")
)

// UnsupportedCompressionError reports a compression identifier byte that the
// dispatcher does not recognize, after the last-resort deflate attempt has
// also failed.
type UnsupportedCompressionError struct {
	// ID is the leading compression identifier byte of the payload.
	ID byte
}

func (e *UnsupportedCompressionError) Error() string {
	return fmt.Sprintf("mpq: unsupported compression 0x%02X", e.ID)
}

// ErrHuffmanCorrupt is returned when a Huffman stream is truncated or refers
// to a weight table that does not exist.
var ErrHuffmanCorrupt = errors.New("mpq: corrupt huffman stream")
