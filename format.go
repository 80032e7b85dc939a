package mpq

import (
	"encoding/binary"
)

// On-disk geometry. All integers are little-endian.
const (
	headerMagic   = 0x1A51504D // "MPQ\x1A", a classic archive header
	userDataMagic = 0x1B51504D // "MPQ\x1B", a user-data wrapper block

	headerFixedSize = 32 // the v0 header fields this package consumes
	hashEntrySize   = 16
	blockEntrySize  = 16

	// Headers sit on 512-byte boundaries. Producers that prepend auxiliary
	// data (or decoy headers) still align the real header, so the locator
	// only probes aligned candidates inside the search window.
	headerStride      = 512
	headerSearchLimit = 4096

	// Declared table sizes at or above this are treated as garbage. The
	// threshold is empirical; see the table-encryption heuristic notes.
	maxTableEntries = 1_000_000

	maxFormatVersion   = 3
	maxSectorSizeShift = 16
)

// Block entry flag bits.
const (
	flagExists       = 0x80000000
	flagCompressed   = 0x00000200
	flagEncrypted    = 0x00010000
	flagFixKey       = 0x00020000
	flagSingleUnit   = 0x01000000
	flagDeleteMarker = 0x02000000
	flagSectorCRC    = 0x04000000
)

// Hash table sentinels stored in HashEntry.BlockIndex.
const (
	hashSlotEmpty   = 0xFFFFFFFF
	hashSlotDeleted = 0xFFFFFFFE
)

// Header is the fixed 32-byte archive header.
//
// HashTablePos and BlockTablePos are byte offsets relative to the header's
// own start, not to the start of the containing buffer. The distinction
// matters because headers are frequently not at offset zero.
type Header struct {
	HeaderSize      uint32
	ArchiveSize     uint32
	FormatVersion   uint16
	SectorSizeShift uint16
	HashTablePos    uint32
	BlockTablePos   uint32
	HashTableSize   uint32
	BlockTableSize  uint32
}

// BlockSize returns the uncompressed size of one sector.
func (h Header) BlockSize() uint32 { return 512 << h.SectorSizeShift }

// HashEntry maps a file's name-hash pair to a block table index.
// BlockIndex is hashSlotEmpty for unused slots.
type HashEntry struct {
	HashA      uint32
	HashB      uint32
	Locale     uint16
	Platform   uint16
	BlockIndex uint32
}

// BlockEntry describes one file payload. FilePos is relative to the header
// start, like the table positions in Header.
type BlockEntry struct {
	FilePos          uint32
	CompressedSize   uint32
	UncompressedSize uint32
	Flags            uint32
}

// exists reports whether the entry refers to a live file. Deleted markers
// are treated as absent.
func (b BlockEntry) exists() bool {
	return b.Flags&flagExists != 0 && b.Flags&flagDeleteMarker == 0
}

// parseHeader decodes the 32-byte header at the start of b. The caller
// guarantees len(b) >= headerFixedSize.
func parseHeader(b []byte) Header {
	return Header{
		HeaderSize:      binary.LittleEndian.Uint32(b[4:]),
		ArchiveSize:     binary.LittleEndian.Uint32(b[8:]),
		FormatVersion:   binary.LittleEndian.Uint16(b[12:]),
		SectorSizeShift: binary.LittleEndian.Uint16(b[14:]),
		HashTablePos:    binary.LittleEndian.Uint32(b[16:]),
		BlockTablePos:   binary.LittleEndian.Uint32(b[20:]),
		HashTableSize:   binary.LittleEndian.Uint32(b[24:]),
		BlockTableSize:  binary.LittleEndian.Uint32(b[28:]),
	}
}

// validHeader cross-checks a candidate header against its own declared
// geometry. total is the number of addressable bytes, or a negative value
// when the full length is unknown (streaming), in which case the extent
// checks are skipped.
//
// Real-world archives contain forged headers as an anti-extraction measure;
// accepting the first magic match without these checks yields garbage
// tables.
func validHeader(h Header, headerOff, total int64) bool {
	if h.FormatVersion > maxFormatVersion {
		return false
	}
	if h.SectorSizeShift > maxSectorSizeShift {
		return false
	}
	if h.HashTableSize >= maxTableEntries || h.BlockTableSize >= maxTableEntries {
		return false
	}
	if total < 0 {
		return true
	}
	hashEnd := headerOff + int64(h.HashTablePos) + int64(h.HashTableSize)*hashEntrySize
	blockEnd := headerOff + int64(h.BlockTablePos) + int64(h.BlockTableSize)*blockEntrySize
	return hashEnd <= total && blockEnd <= total
}

// locatedHeader is the result of a successful header scan.
type locatedHeader struct {
	header Header

	// offset is the byte position of the accepted header inside the
	// scanned buffer. All table and file positions are relative to it.
	offset int64

	// userData holds the wrapper payload when the archive was reached
	// through a user-data block, nil otherwise.
	userData []byte
}

// findHeader scans buf for a valid archive header at 512-byte strides inside
// the search window. total carries the full archive length for extent
// validation; pass a negative total when only a prefix is available.
//
// A user-data wrapper redirects the scan to the real header via its offset
// field; the wrapper payload is captured so callers can expose it. The first
// candidate that passes validation wins.
func findHeader(buf []byte, total int64) (locatedHeader, error) {
	for cand := int64(0); cand <= headerSearchLimit; cand += headerStride {
		if cand+headerFixedSize > int64(len(buf)) {
			break
		}

		switch binary.LittleEndian.Uint32(buf[cand:]) {
		case userDataMagic:
			if cand+16 > int64(len(buf)) {
				continue
			}
			maxSize := int64(binary.LittleEndian.Uint32(buf[cand+4:]))
			realOff := cand + int64(binary.LittleEndian.Uint32(buf[cand+8:]))
			usedSize := int64(binary.LittleEndian.Uint32(buf[cand+12:]))

			if realOff < 0 || realOff+headerFixedSize > int64(len(buf)) {
				continue
			}
			if binary.LittleEndian.Uint32(buf[realOff:]) != headerMagic {
				continue
			}
			h := parseHeader(buf[realOff:])
			if !validHeader(h, realOff, total) {
				continue
			}

			if usedSize <= 0 || usedSize > maxSize {
				usedSize = maxSize
			}
			start, end := cand+16, cand+16+usedSize
			if end > realOff {
				end = realOff
			}
			var userData []byte
			if end > start && end <= int64(len(buf)) {
				userData = append([]byte(nil), buf[start:end]...)
			}
			return locatedHeader{header: h, offset: realOff, userData: userData}, nil

		case headerMagic:
			h := parseHeader(buf[cand:])
			if !validHeader(h, cand, total) {
				continue
			}
			return locatedHeader{header: h, offset: cand}, nil
		}
	}

	return locatedHeader{}, ErrNoHeader
}
