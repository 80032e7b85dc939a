package mpq

import (
	"encoding/binary"
	"sync"
)

// Hash types accepted by hashString. The crypt table is partitioned into four
// 0x100-entry regions, one per hash type.
const (
	hashTableOffset = 0 // bucket probing (unused by the exact-match scan)
	hashNameA       = 1 // first half of a name's identity pair
	hashNameB       = 2 // second half of a name's identity pair
	hashFileKey     = 3 // decryption key derivation
)

// cryptTable is the 0x500-entry keystream table shared by the hash function
// and the block cipher. It is computed once and never written again, so
// concurrent readers need no further synchronization.
var (
	cryptTable     [0x500]uint32
	cryptTableOnce sync.Once
)

// initCryptTable fills cryptTable from the format's fixed linear-congruential
// expansion. Every conforming producer and consumer derives the identical
// table, which is what makes the cipher and hashes interoperable.
func initCryptTable() {
	seed := uint32(0x00100001)

	for index1 := 0; index1 < 0x100; index1++ {
		index2 := index1
		for i := 0; i < 5; i++ {
			seed = (seed*125 + 3) % 0x2AAAAB
			temp1 := (seed & 0xFFFF) << 0x10

			seed = (seed*125 + 3) % 0x2AAAAB
			temp2 := seed & 0xFFFF

			cryptTable[index2] = temp1 | temp2
			index2 += 0x100
		}
	}
}

// hashString computes the archive hash of s for the given hash type.
//
// Names are case-insensitive and slash-insensitive inside archives, so each
// character is folded to uppercase and '/' becomes '\' before it is mixed in.
func hashString(s string, hashType uint32) uint32 {
	cryptTableOnce.Do(initCryptTable)

	seed1 := uint32(0x7FED7FED)
	seed2 := uint32(0xEEEEEEEE)

	for i := 0; i < len(s); i++ {
		ch := uint32(s[i])
		if ch >= 'a' && ch <= 'z' {
			ch -= 0x20
		}
		if ch == '/' {
			ch = '\\'
		}

		seed1 = cryptTable[hashType*0x100+ch] ^ (seed1 + seed2)
		seed2 = ch + seed1 + seed2 + (seed2 << 5) + 3
	}

	return seed1
}

// decryptBlock decrypts a slice of 32-bit words in place with the stream
// cipher. Table decryption and file decryption use this same primitive with
// different keys.
func decryptBlock(data []uint32, key uint32) {
	cryptTableOnce.Do(initCryptTable)

	seed := uint32(0xEEEEEEEE)
	for i := range data {
		seed += cryptTable[0x400+(key&0xFF)]
		plain := data[i] ^ (key + seed)
		key = ((^key << 0x15) + 0x11111111) | (key >> 0x0B)
		seed = plain + seed + (seed << 5) + 3
		data[i] = plain
	}
}

// encryptBlock is the inverse of decryptBlock. Archive creation is out of
// scope, but the encryptor stays here so the cipher's symmetry is testable
// and so synthetic fixtures can be produced.
func encryptBlock(data []uint32, key uint32) {
	cryptTableOnce.Do(initCryptTable)

	seed := uint32(0xEEEEEEEE)
	for i := range data {
		seed += cryptTable[0x400+(key&0xFF)]
		plain := data[i]
		data[i] = plain ^ (key + seed)
		key = ((^key << 0x15) + 0x11111111) | (key >> 0x0B)
		seed = plain + seed + (seed << 5) + 3
	}
}

// decryptBytes decrypts buf in place, interpreting it as little-endian
// 32-bit words. A trailing partial word is left untouched, matching how
// producers encrypt sector payloads.
func decryptBytes(buf []byte, key uint32) {
	cryptTableOnce.Do(initCryptTable)

	seed := uint32(0xEEEEEEEE)
	for i := 0; i+4 <= len(buf); i += 4 {
		seed += cryptTable[0x400+(key&0xFF)]
		plain := binary.LittleEndian.Uint32(buf[i:]) ^ (key + seed)
		binary.LittleEndian.PutUint32(buf[i:], plain)
		key = ((^key << 0x15) + 0x11111111) | (key >> 0x0B)
		seed = plain + seed + (seed << 5) + 3
	}
}

// encryptBytes is the in-place inverse of decryptBytes.
func encryptBytes(buf []byte, key uint32) {
	cryptTableOnce.Do(initCryptTable)

	seed := uint32(0xEEEEEEEE)
	for i := 0; i+4 <= len(buf); i += 4 {
		seed += cryptTable[0x400+(key&0xFF)]
		plain := binary.LittleEndian.Uint32(buf[i:])
		binary.LittleEndian.PutUint32(buf[i:], plain^(key+seed))
		key = ((^key << 0x15) + 0x11111111) | (key >> 0x0B)
		seed = plain + seed + (seed << 5) + 3
	}
}

// fileKey derives the decryption key for a file from its name.
//
// Only the base name participates; the directory part is ignored. Blocks
// carrying the fix-key flag additionally mix in the block's header-relative
// offset and its uncompressed size.
func fileKey(name string, blockOffset, uncompressedSize, flags uint32) uint32 {
	base := name
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '\\' || name[i] == '/' {
			base = name[i+1:]
			break
		}
	}

	key := hashString(base, hashFileKey)
	if flags&flagFixKey != 0 {
		key = (key + blockOffset) ^ uncompressedSize
	}
	return key
}
