package mpq

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hashTableBytes(entries []HashEntry) []byte {
	raw := make([]byte, len(entries)*hashEntrySize)
	for i, e := range entries {
		b := raw[i*hashEntrySize:]
		binary.LittleEndian.PutUint32(b[0:], e.HashA)
		binary.LittleEndian.PutUint32(b[4:], e.HashB)
		binary.LittleEndian.PutUint16(b[8:], e.Locale)
		binary.LittleEndian.PutUint16(b[10:], e.Platform)
		binary.LittleEndian.PutUint32(b[12:], e.BlockIndex)
	}
	return raw
}

func blockTableBytes(entries []BlockEntry) []byte {
	raw := make([]byte, len(entries)*blockEntrySize)
	for i, e := range entries {
		b := raw[i*blockEntrySize:]
		binary.LittleEndian.PutUint32(b[0:], e.FilePos)
		binary.LittleEndian.PutUint32(b[4:], e.CompressedSize)
		binary.LittleEndian.PutUint32(b[8:], e.UncompressedSize)
		binary.LittleEndian.PutUint32(b[12:], e.Flags)
	}
	return raw
}

func TestReadHashTable_Cleartext(t *testing.T) {
	entries := []HashEntry{
		{HashA: 1, HashB: 2, BlockIndex: 0},
		{BlockIndex: hashSlotEmpty, HashA: 0xFFFFFFFF, HashB: 0xFFFFFFFF, Locale: 0xFFFF, Platform: 0xFFFF},
		{HashA: 3, HashB: 4, BlockIndex: 1},
	}
	h := Header{HashTableSize: 3, BlockTableSize: 2}

	got := readHashTable(hashTableBytes(entries), h)
	assert.Equal(t, entries, got)
}

func TestReadHashTable_Encrypted(t *testing.T) {
	entries := []HashEntry{
		{HashA: 0xAAAA0001, HashB: 0xBBBB0002, BlockIndex: 0},
		{HashA: 0xAAAA0003, HashB: 0xBBBB0004, Locale: 0x409, BlockIndex: 1},
	}
	raw := hashTableBytes(entries)
	encryptBytes(raw, hashString(hashTableKeyName, hashFileKey))

	h := Header{HashTableSize: 2, BlockTableSize: 2}
	require.True(t, hashTableLooksEncrypted(parseHashTable(raw, 2), 2),
		"encrypted bytes should not pass as cleartext")

	got := readHashTable(raw, h)
	assert.Equal(t, entries, got)
}

func TestReadBlockTable_Cleartext(t *testing.T) {
	entries := []BlockEntry{
		{FilePos: 32, CompressedSize: 10, UncompressedSize: 10, Flags: flagExists},
	}
	h := Header{BlockTableSize: 1}

	got := readBlockTable(blockTableBytes(entries), h, 4096)
	assert.Equal(t, entries, got)
}

func TestReadBlockTable_Encrypted(t *testing.T) {
	entries := []BlockEntry{
		{FilePos: 32, CompressedSize: 100, UncompressedSize: 200, Flags: flagExists | flagCompressed},
		{FilePos: 132, CompressedSize: 50, UncompressedSize: 50, Flags: flagExists},
	}
	raw := blockTableBytes(entries)
	encryptBytes(raw, hashString(blockTableKeyName, hashFileKey))

	h := Header{BlockTableSize: 2}
	got := readBlockTable(raw, h, 4096)
	assert.Equal(t, entries, got)
}

func TestHashTableLooksEncrypted_AllSentinels(t *testing.T) {
	entries := []HashEntry{
		{BlockIndex: hashSlotEmpty},
		{BlockIndex: hashSlotDeleted},
	}
	assert.False(t, hashTableLooksEncrypted(entries, 0))
}

func TestBlockTableLooksEncrypted(t *testing.T) {
	assert.False(t, blockTableLooksEncrypted(nil, 4096))
	assert.False(t, blockTableLooksEncrypted([]BlockEntry{{FilePos: 32}}, 4096))
	assert.True(t, blockTableLooksEncrypted([]BlockEntry{{FilePos: 0xDEADBEEF}}, 4096))
	// Without a plausibility bound the heuristic stays conservative.
	assert.False(t, blockTableLooksEncrypted([]BlockEntry{{FilePos: 0xDEADBEEF}}, 0))
}

func TestTableLimit(t *testing.T) {
	assert.Equal(t, int64(1000), tableLimit(Header{ArchiveSize: 1000}, 5000))
	assert.Equal(t, int64(5000), tableLimit(Header{}, 5000))
	assert.Equal(t, int64(-1), tableLimit(Header{}, -1))
}
