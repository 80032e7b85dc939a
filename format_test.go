package mpq

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderBlockSize(t *testing.T) {
	assert.Equal(t, uint32(512), Header{SectorSizeShift: 0}.BlockSize())
	assert.Equal(t, uint32(4096), Header{SectorSizeShift: 3}.BlockSize())
	assert.Equal(t, uint32(65536), Header{SectorSizeShift: 7}.BlockSize())
}

func TestFindHeader_AtOffsetZero(t *testing.T) {
	data := buildArchive(t, archiveSpec{hashSlots: 4})

	loc, err := findHeader(data, int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, int64(0), loc.offset)
	assert.Equal(t, uint32(4), loc.header.HashTableSize)
}

func TestFindHeader_SkipsDecoy(t *testing.T) {
	// A magic match at offset 0 with an impossible version must be passed
	// over in favor of the real header at the next stride.
	data := buildArchive(t, archiveSpec{headerPad: 512, decoy: true, hashSlots: 4})

	loc, err := findHeader(data, int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, int64(512), loc.offset)
}

func TestFindHeader_RejectsUnalignedMagic(t *testing.T) {
	// Magic off the 512-byte grid is never probed.
	data := make([]byte, 2048)
	binary.LittleEndian.PutUint32(data[100:], headerMagic)
	binary.LittleEndian.PutUint32(data[104:], headerFixedSize)

	_, err := findHeader(data, int64(len(data)))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestFindHeader_NoHeader(t *testing.T) {
	_, err := findHeader(bytes.Repeat([]byte{0xAB}, 8192), 8192)
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = findHeader(nil, 0)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestFindHeader_GarbageTableSizes(t *testing.T) {
	// Valid magic, but table sizes past the sanity bound.
	data := make([]byte, 1024)
	binary.LittleEndian.PutUint32(data[0:], headerMagic)
	binary.LittleEndian.PutUint32(data[24:], maxTableEntries)

	_, err := findHeader(data, int64(len(data)))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestFindHeader_UserDataWrapper(t *testing.T) {
	payload := []byte("map name preview bytes")
	inner := buildArchive(t, archiveSpec{hashSlots: 4})

	data := make([]byte, 512, 512+len(inner))
	binary.LittleEndian.PutUint32(data[0:], userDataMagic)
	binary.LittleEndian.PutUint32(data[4:], 256)                 // max size
	binary.LittleEndian.PutUint32(data[8:], 512)                 // header offset
	binary.LittleEndian.PutUint32(data[12:], uint32(len(payload))) // used size
	copy(data[16:], payload)
	data = append(data, inner...)

	loc, err := findHeader(data, int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, int64(512), loc.offset)
	assert.Equal(t, payload, loc.userData)
}

func TestFindHeader_StreamingSkipsExtentChecks(t *testing.T) {
	// A header whose tables live beyond the prefix is acceptable when the
	// total length is unknown, and rejected when it is known to be short.
	data := make([]byte, 64)
	binary.LittleEndian.PutUint32(data[0:], headerMagic)
	binary.LittleEndian.PutUint32(data[4:], headerFixedSize)
	binary.LittleEndian.PutUint32(data[16:], 1<<20) // hash table far away
	binary.LittleEndian.PutUint32(data[24:], 16)

	_, err := findHeader(data, int64(len(data)))
	assert.ErrorIs(t, err, ErrNoHeader)

	loc, err := findHeader(data, -1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1<<20), loc.header.HashTablePos)
}

func TestBlockEntryExists(t *testing.T) {
	assert.True(t, BlockEntry{Flags: flagExists}.exists())
	assert.False(t, BlockEntry{Flags: 0}.exists())
	assert.False(t, BlockEntry{Flags: flagExists | flagDeleteMarker}.exists())
}
