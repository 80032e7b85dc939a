// testutil_test.go - shared fixture builders for synthetic archives and
// compressed payloads. Everything here produces bytes the real parsers
// consume; nothing is mocked.
package mpq

import (
	"bytes"
	"encoding/binary"
	"hash/adler32"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz/lzma"
)

// testFile describes one member of a synthetic archive. raw is the payload
// exactly as stored on disk; when encrypt is set the builder encrypts it in
// place once the file position is known, so fix-key derivation sees the
// real offset.
type testFile struct {
	name    string
	raw     []byte
	usize   uint32
	flags   uint32
	locale  uint16
	encrypt bool

	// csizeOverride forces the block entry's compressed size, for entries
	// that deliberately point past the end of the buffer.
	csizeOverride uint32
}

// archiveSpec drives buildArchive.
type archiveSpec struct {
	headerPad     int  // bytes preceding the real header
	decoy         bool // forged header at offset 0 (requires headerPad >= 512)
	sectorShift   uint16
	hashSlots     int
	encryptTables bool
	files         []testFile
}

// buildArchive assembles a complete archive image: optional decoy, header,
// payloads, hash table, block table. Table and file positions are
// header-relative, as the format requires.
func buildArchive(t *testing.T, spec archiveSpec) []byte {
	t.Helper()

	buf := make([]byte, spec.headerPad)
	if spec.decoy {
		require.GreaterOrEqual(t, spec.headerPad, 512)
		// A magic match whose version field fails validation.
		binary.LittleEndian.PutUint32(buf[0:], headerMagic)
		binary.LittleEndian.PutUint16(buf[12:], 0xFFFF)
	}

	hdrOff := len(buf)
	buf = append(buf, make([]byte, headerFixedSize)...)

	blocks := make([]BlockEntry, len(spec.files))
	for i := range spec.files {
		f := &spec.files[i]
		pos := uint32(len(buf) - hdrOff)
		raw := append([]byte(nil), f.raw...)
		if f.encrypt {
			encryptBytes(raw, fileKey(f.name, pos, f.usize, f.flags))
		}
		buf = append(buf, raw...)

		csize := uint32(len(raw))
		if f.csizeOverride != 0 {
			csize = f.csizeOverride
		}
		blocks[i] = BlockEntry{
			FilePos:          pos,
			CompressedSize:   csize,
			UncompressedSize: f.usize,
			Flags:            f.flags,
		}
	}

	slots := spec.hashSlots
	if slots < len(spec.files) {
		slots = len(spec.files)
	}
	hashRaw := bytes.Repeat([]byte{0xFF}, slots*hashEntrySize)
	for i, f := range spec.files {
		e := hashRaw[i*hashEntrySize:]
		binary.LittleEndian.PutUint32(e[0:], hashString(f.name, hashNameA))
		binary.LittleEndian.PutUint32(e[4:], hashString(f.name, hashNameB))
		binary.LittleEndian.PutUint16(e[8:], f.locale)
		binary.LittleEndian.PutUint16(e[10:], 0)
		binary.LittleEndian.PutUint32(e[12:], uint32(i))
	}
	if spec.encryptTables {
		encryptBytes(hashRaw, hashString(hashTableKeyName, hashFileKey))
	}
	hashPos := uint32(len(buf) - hdrOff)
	buf = append(buf, hashRaw...)

	blockRaw := make([]byte, len(blocks)*blockEntrySize)
	for i, b := range blocks {
		e := blockRaw[i*blockEntrySize:]
		binary.LittleEndian.PutUint32(e[0:], b.FilePos)
		binary.LittleEndian.PutUint32(e[4:], b.CompressedSize)
		binary.LittleEndian.PutUint32(e[8:], b.UncompressedSize)
		binary.LittleEndian.PutUint32(e[12:], b.Flags)
	}
	if spec.encryptTables {
		encryptBytes(blockRaw, hashString(blockTableKeyName, hashFileKey))
	}
	blockPos := uint32(len(buf) - hdrOff)
	buf = append(buf, blockRaw...)

	h := buf[hdrOff:]
	binary.LittleEndian.PutUint32(h[0:], headerMagic)
	binary.LittleEndian.PutUint32(h[4:], headerFixedSize)
	binary.LittleEndian.PutUint32(h[8:], uint32(len(buf)-hdrOff))
	binary.LittleEndian.PutUint16(h[12:], 0)
	binary.LittleEndian.PutUint16(h[14:], spec.sectorShift)
	binary.LittleEndian.PutUint32(h[16:], hashPos)
	binary.LittleEndian.PutUint32(h[20:], blockPos)
	binary.LittleEndian.PutUint32(h[24:], uint32(slots))
	binary.LittleEndian.PutUint32(h[28:], uint32(len(blocks)))
	return buf
}

// sectorSpec drives sectorPayload.
type sectorSpec struct {
	blockSize int
	id        byte // compression identifier per sector; 0 stores verbatim
	key       uint32
	encrypted bool
	withCRC   bool
	badCRC    bool // corrupt the first stored checksum
}

// sectorPayload lays plain out as a multi-sector block: offset table,
// compressed sectors, optional trailing checksum sector, with per-sector
// encryption when requested.
func sectorPayload(t *testing.T, plain []byte, spec sectorSpec) []byte {
	t.Helper()

	var sectors [][]byte
	for off := 0; off < len(plain); off += spec.blockSize {
		end := off + spec.blockSize
		if end > len(plain) {
			end = len(plain)
		}
		chunk := plain[off:end]

		var sec []byte
		if spec.id != 0 {
			enc := compressFixture(t, spec.id, chunk)
			if len(enc)+1 < len(chunk) {
				sec = append([]byte{spec.id}, enc...)
			}
		}
		if sec == nil {
			sec = append([]byte{0}, chunk...)
		}
		sectors = append(sectors, sec)
	}
	n := len(sectors)

	entries := n + 1
	if spec.withCRC {
		entries++
	}
	tableBytes := entries * 4

	var sums []uint32
	var crcSec []byte
	if spec.withCRC {
		sums = make([]uint32, n)
		for i, sec := range sectors {
			sums[i] = adler32.Checksum(sec)
		}
		if spec.badCRC {
			sums[0] ^= 0xDEADBEEF
		}
		crcSec = make([]byte, n*4)
		for i, s := range sums {
			binary.LittleEndian.PutUint32(crcSec[i*4:], s)
		}
	}

	table := make([]byte, tableBytes)
	off := uint32(tableBytes)
	for i, sec := range sectors {
		binary.LittleEndian.PutUint32(table[i*4:], off)
		off += uint32(len(sec))
	}
	binary.LittleEndian.PutUint32(table[n*4:], off)
	if spec.withCRC {
		binary.LittleEndian.PutUint32(table[(n+1)*4:], off+uint32(len(crcSec)))
	}

	if spec.encrypted {
		encryptBytes(table, spec.key-1)
		for i, sec := range sectors {
			encryptBytes(sec, spec.key+uint32(i))
		}
		if crcSec != nil {
			encryptBytes(crcSec, spec.key+uint32(n))
		}
	}

	out := append([]byte(nil), table...)
	for _, sec := range sectors {
		out = append(out, sec...)
	}
	return append(out, crcSec...)
}

// compressFixture encodes plain under a single compression identifier.
func compressFixture(t *testing.T, id byte, plain []byte) []byte {
	t.Helper()
	switch id {
	case compressDeflate:
		return zlibCompress(t, plain)
	case compressHuffman:
		return huffEncode(0, plain)
	default:
		t.Fatalf("no fixture encoder for compression 0x%02X", id)
		return nil
	}
}

func zlibCompress(t *testing.T, plain []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(plain)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func bzip2Compress(t *testing.T, plain []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	bw, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: bzip2.BestSpeed})
	require.NoError(t, err)
	_, err = bw.Write(plain)
	require.NoError(t, err)
	require.NoError(t, bw.Close())
	return buf.Bytes()
}

func lzmaCompress(t *testing.T, plain []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	lw, err := lzma.NewWriter(&buf)
	require.NoError(t, err)
	_, err = lw.Write(plain)
	require.NoError(t, err)
	require.NoError(t, lw.Close())
	return buf.Bytes()
}

// bitWriter emits bits least-significant first, mirroring bitReader.
type bitWriter struct {
	buf []byte
	cur uint32
	cnt uint
}

func (w *bitWriter) writeBit(b uint32) {
	w.cur |= (b & 1) << w.cnt
	w.cnt++
	if w.cnt == 8 {
		w.buf = append(w.buf, byte(w.cur))
		w.cur, w.cnt = 0, 0
	}
}

func (w *bitWriter) writeBits(v uint32, n uint) {
	for i := uint(0); i < n; i++ {
		w.writeBit(v >> i)
	}
}

func (w *bitWriter) flush() []byte {
	if w.cnt > 0 {
		w.buf = append(w.buf, byte(w.cur))
		w.cur, w.cnt = 0, 0
	}
	return w.buf
}

// huffCodes maps each leaf symbol to its bit path (0 = left).
func huffCodes(root *huffNode) map[int][]uint32 {
	codes := make(map[int][]uint32)
	var walk func(n *huffNode, path []uint32)
	walk = func(n *huffNode, path []uint32) {
		if n.left == nil {
			codes[n.value] = append([]uint32(nil), path...)
			return
		}
		walk(n.left, append(path, 0))
		walk(n.right, append(path, 1))
	}
	walk(root, nil)
	return codes
}

// huffEncode is the encoder mirror of huffDecode: same weight tables, same
// tie-breaking tree construction, same adaptation points, so any stream it
// produces decodes back exactly.
func huffEncode(typ byte, plain []byte) []byte {
	var weights [huffSymbolCount]uint32
	for i, w := range huffWeightTables[typ] {
		weights[i] = uint32(w)
	}
	weights[huffEndOfStream] = 1
	weights[huffEscape] = 1

	adaptive := typ == 0
	tree := buildHuffTree(&weights)
	codes := huffCodes(tree)

	w := &bitWriter{}
	emit := func(sym int) {
		for _, b := range codes[sym] {
			w.writeBit(b)
		}
	}

	for _, c := range plain {
		if weights[c] > 0 {
			emit(int(c))
			if adaptive {
				weights[c]++
				tree = buildHuffTree(&weights)
				codes = huffCodes(tree)
			}
			continue
		}
		emit(huffEscape)
		w.writeBits(uint32(c), 8)
		weights[c]++
		tree = buildHuffTree(&weights)
		codes = huffCodes(tree)
	}
	emit(huffEndOfStream)

	return append([]byte{typ}, w.flush()...)
}

// dclEncodeLiterals produces a PKWare DCL stream of uncoded literals: header
// bytes (uncoded literals, 1 KiB dictionary), then per byte a 0 bit and 8
// raw bits, terminated by the end-of-stream length code (the all-ones
// length-7 code for symbol 15, stored inverted, plus 8 extra bits of 255).
func dclEncodeLiterals(plain []byte) []byte {
	w := &bitWriter{buf: []byte{0x00, 0x04}}
	for _, c := range plain {
		w.writeBit(0)
		w.writeBits(uint32(c), 8)
	}
	w.writeBit(1)
	w.writeBits(0, 7)
	w.writeBits(0xFF, 8)
	return w.flush()
}
