package mpq

import (
	"encoding/binary"
)

// Literal key strings for the two tables, hashed with hashFileKey.
const (
	hashTableKeyName  = "(hash table)"
	blockTableKeyName = "(block table)"
)

// encryptionSampleSize is how many leading hash entries the cleartext
// heuristic inspects before deciding the table is encrypted.
const encryptionSampleSize = 10

// parseHashTable decodes raw (HashTableSize × 16 bytes) into entries.
func parseHashTable(raw []byte, n uint32) []HashEntry {
	entries := make([]HashEntry, n)
	for i := range entries {
		b := raw[i*hashEntrySize:]
		entries[i] = HashEntry{
			HashA:      binary.LittleEndian.Uint32(b),
			HashB:      binary.LittleEndian.Uint32(b[4:]),
			Locale:     binary.LittleEndian.Uint16(b[8:]),
			Platform:   binary.LittleEndian.Uint16(b[10:]),
			BlockIndex: binary.LittleEndian.Uint32(b[12:]),
		}
	}
	return entries
}

// parseBlockTable decodes raw (BlockTableSize × 16 bytes) into entries.
func parseBlockTable(raw []byte, n uint32) []BlockEntry {
	entries := make([]BlockEntry, n)
	for i := range entries {
		b := raw[i*blockEntrySize:]
		entries[i] = BlockEntry{
			FilePos:          binary.LittleEndian.Uint32(b),
			CompressedSize:   binary.LittleEndian.Uint32(b[4:]),
			UncompressedSize: binary.LittleEndian.Uint32(b[8:]),
			Flags:            binary.LittleEndian.Uint32(b[12:]),
		}
	}
	return entries
}

// hashTableLooksEncrypted samples the first few entries of a cleartext
// parse. A non-empty slot whose block index lands outside the block table
// cannot come from a sane plaintext table, so the whole table is presumed
// encrypted.
//
// The sample size and the interpretation are empirical, calibrated against
// real archives rather than the format description. Do not tighten them
// without a corpus to validate against.
func hashTableLooksEncrypted(entries []HashEntry, blockTableSize uint32) bool {
	n := len(entries)
	if n > encryptionSampleSize {
		n = encryptionSampleSize
	}
	for _, e := range entries[:n] {
		if e.BlockIndex == hashSlotEmpty || e.BlockIndex == hashSlotDeleted {
			continue
		}
		if e.BlockIndex >= blockTableSize {
			return true
		}
	}
	return false
}

// blockTableLooksEncrypted applies the symmetric heuristic to the block
// table: a first entry whose file position is implausibly large relative to
// the archive size marks the table as encrypted. limit is the archive size
// from the header, or the buffer extent when the header declares none.
func blockTableLooksEncrypted(entries []BlockEntry, limit int64) bool {
	if len(entries) == 0 || limit <= 0 {
		return false
	}
	return int64(entries[0].FilePos) > limit
}

// decryptedWords decrypts raw as little-endian 32-bit words under key and
// returns a fresh byte buffer; raw is left untouched so the cleartext parse
// can still be used if the heuristic turns out wrong.
func decryptedWords(raw []byte, key uint32) []byte {
	out := append([]byte(nil), raw...)
	words := make([]uint32, len(out)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(out[i*4:])
	}
	decryptBlock(words, key)
	for i := range words {
		binary.LittleEndian.PutUint32(out[i*4:], words[i])
	}
	return out
}

// readHashTable parses the hash table from raw, auto-detecting whether it
// is stored encrypted. Many producers write these tables in cleartext even
// though the format nominally encrypts them, so the cleartext interpretation
// is tried first.
func readHashTable(raw []byte, h Header) []HashEntry {
	entries := parseHashTable(raw, h.HashTableSize)
	if hashTableLooksEncrypted(entries, h.BlockTableSize) {
		plain := decryptedWords(raw, hashString(hashTableKeyName, hashFileKey))
		entries = parseHashTable(plain, h.HashTableSize)
	}
	return entries
}

// readBlockTable is the block-table counterpart of readHashTable. limit is
// the plausibility bound for the first entry's file position.
func readBlockTable(raw []byte, h Header, limit int64) []BlockEntry {
	entries := parseBlockTable(raw, h.BlockTableSize)
	if blockTableLooksEncrypted(entries, limit) {
		plain := decryptedWords(raw, hashString(blockTableKeyName, hashFileKey))
		entries = parseBlockTable(plain, h.BlockTableSize)
	}
	return entries
}

// tableLimit picks the plausibility bound used by the block-table
// heuristic: the declared archive size when present, else the buffer size.
func tableLimit(h Header, total int64) int64 {
	if h.ArchiveSize > 0 {
		return int64(h.ArchiveSize)
	}
	return total
}
