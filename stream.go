package mpq

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"strings"

	arc "github.com/hashicorp/golang-lru/arc/v2"
	"golang.org/x/exp/mmap"
)

// RangeReader supplies byte ranges of an archive on demand, for archives
// too large to hold in memory. Implementations may return fewer bytes than
// requested at end of input; an error is reserved for real read failures.
//
// Calls are issued sequentially during parsing but concurrently during
// extraction, so implementations must be safe for concurrent use.
type RangeReader interface {
	ReadRange(off int64, n int) ([]byte, error)
}

// streamPrefixSize is how much of the input the header scan examines: the
// full search window plus one trailing header.
const streamPrefixSize = headerSearchLimit + headerFixedSize

// Nested-archive discovery parameters: only blocks at least this large are
// probed, and only their first kilobyte is read for the magic check.
const (
	nestedMinSize   = 64 << 10
	nestedProbeSize = 1024
)

// StreamArchive mirrors Archive over a RangeReader. Header and table
// validation is relaxed to skip the extent checks that require knowing the
// total input length; table positions are trusted instead.
//
// Like Archive, a StreamArchive is immutable once ParseStream returns.
type StreamArchive struct {
	r          RangeReader
	header     Header
	headerOff  int64
	hashTable  []HashEntry
	blockTable []BlockEntry
	userData   []byte

	cache  *arc.ARCCache[string, *File]
	logger *slog.Logger
	pipe   pipeline
	nested int
}

// ParseStream locates the header and decodes both tables by reading ranges
// from r. Progress, when a callback is installed, is reported per stage.
func ParseStream(r RangeReader, opts ...Option) (*StreamArchive, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		if err := o(&cfg); err != nil {
			return nil, err
		}
	}

	cfg.progress("header", 0)
	prefix, err := r.ReadRange(0, streamPrefixSize)
	if err != nil {
		return nil, fmt.Errorf("mpq: read header window: %w", err)
	}
	loc, err := findHeader(prefix, -1)
	if err != nil {
		return nil, err
	}
	h := loc.header

	cfg.progress("hash table", 0.25)
	hashRaw, err := readRangeFull(r, loc.offset+int64(h.HashTablePos), int(h.HashTableSize)*hashEntrySize)
	if err != nil {
		return nil, err
	}

	cfg.progress("block table", 0.6)
	blockRaw, err := readRangeFull(r, loc.offset+int64(h.BlockTablePos), int(h.BlockTableSize)*blockEntrySize)
	if err != nil {
		return nil, err
	}

	cache, err := arc.NewARC[string, *File](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("mpq: create extraction cache: %w", err)
	}

	logger := cfg.log()
	s := &StreamArchive{
		r:          r,
		header:     h,
		headerOff:  loc.offset,
		hashTable:  readHashTable(hashRaw, h),
		blockTable: readBlockTable(blockRaw, h, tableLimit(h, -1)),
		userData:   loc.userData,
		cache:      cache,
		logger:     logger,
		pipe: pipeline{
			blockSize: h.BlockSize(),
			logger:    logger,
			verify:    cfg.verify,
		},
		nested: cfg.maxNestedDepth,
	}
	cfg.progress("done", 1)
	return s, nil
}

// readRangeFull reads exactly n bytes at off; a short read means the
// declared table geometry points past the end of the input.
func readRangeFull(r RangeReader, off int64, n int) ([]byte, error) {
	b, err := r.ReadRange(off, n)
	if err != nil {
		return nil, err
	}
	if len(b) < n {
		return nil, ErrTableOutOfBounds
	}
	return b, nil
}

// Header returns the parsed archive header.
func (s *StreamArchive) Header() Header { return s.header }

// BlockCount returns the number of block table entries, including dead ones.
func (s *StreamArchive) BlockCount() int { return len(s.blockTable) }

// UserData returns the payload of the user-data wrapper, or nil.
func (s *StreamArchive) UserData() []byte { return s.userData }

// ExtractFile decodes the named file, reading only the block's byte range.
// Semantics match Archive.ExtractFile: (nil, nil) on a miss, per-file
// errors otherwise.
func (s *StreamArchive) ExtractFile(name string) (*File, error) {
	norm := normalizeName(name)
	key := strings.ToUpper(norm)
	if f, ok := s.cache.Get(key); ok {
		return f, nil
	}

	e := lookupEntry(s.hashTable, norm)
	if e == nil || e.BlockIndex >= uint32(len(s.blockTable)) {
		return nil, nil
	}
	be := s.blockTable[e.BlockIndex]
	if !be.exists() {
		return nil, nil
	}

	raw, err := readRangeFull(s.r, s.headerOff+int64(be.FilePos), int(be.CompressedSize))
	if err != nil {
		return nil, err
	}
	data, err := s.pipe.decode(raw, be, norm)
	if err != nil || data == nil {
		return nil, err
	}

	f := &File{
		Name:             norm,
		Data:             data,
		CompressedSize:   be.CompressedSize,
		UncompressedSize: be.UncompressedSize,
		Compressed:       be.Flags&flagCompressed != 0,
		Encrypted:        be.Flags&flagEncrypted != 0,
	}
	s.cache.Add(key, f)
	return f, nil
}

// ExtractFileByIndex decodes the file at block index i. Encrypted blocks
// return (nil, nil) since no key can be derived without a name.
func (s *StreamArchive) ExtractFileByIndex(i int) (*File, error) {
	if i < 0 || i >= len(s.blockTable) {
		return nil, nil
	}
	be := s.blockTable[i]
	if !be.exists() {
		return nil, nil
	}

	raw, err := readRangeFull(s.r, s.headerOff+int64(be.FilePos), int(be.CompressedSize))
	if err != nil {
		return nil, err
	}
	data, err := s.pipe.decode(raw, be, "")
	if err != nil || data == nil {
		return nil, err
	}

	return &File{
		Name:             fmt.Sprintf("(block %04d)", i),
		Data:             data,
		CompressedSize:   be.CompressedSize,
		UncompressedSize: be.UncompressedSize,
		Compressed:       be.Flags&flagCompressed != 0,
		Encrypted:        be.Flags&flagEncrypted != 0,
	}, nil
}

// FindNestedArchives probes every large block for an embedded archive and
// returns the matching block indices. Containers-of-archives carry no
// listfile, so discovery sniffs the magic at the payload offsets producers
// use (0, and 512 for shunted headers) instead of resolving names.
func (s *StreamArchive) FindNestedArchives() ([]int, error) {
	var hits []int
	for i, be := range s.blockTable {
		if !be.exists() || be.UncompressedSize < nestedMinSize {
			continue
		}
		probe, err := s.r.ReadRange(s.headerOff+int64(be.FilePos), nestedProbeSize)
		if err != nil {
			return nil, err
		}
		if magicAt(probe, 0) || magicAt(probe, 512) {
			hits = append(hits, i)
		}
	}
	return hits, nil
}

func magicAt(b []byte, off int) bool {
	if off+4 > len(b) {
		return false
	}
	m := binary.LittleEndian.Uint32(b[off:])
	return m == headerMagic || m == userDataMagic
}

// ExtractNested fully extracts block i and re-parses it as an independent
// archive. Any buffer is a valid parser input regardless of where it came
// from, so nesting is plain recursion, bounded by the configured depth.
// A block that cannot be extracted (encrypted, dead) is a negative result.
func (s *StreamArchive) ExtractNested(i int) (*Archive, error) {
	if s.nested <= 0 {
		return nil, fmt.Errorf("mpq: nested archive depth limit reached")
	}
	f, err := s.ExtractFileByIndex(i)
	if err != nil || f == nil {
		return nil, err
	}

	cfg := defaultConfig()
	cfg.logger = s.logger
	cfg.verify = s.pipe.verify
	cfg.maxNestedDepth = s.nested - 1
	return parseWithConfig(f.Data, cfg)
}

// FileRangeReader is an mmap-backed RangeReader over an archive on disk.
type FileRangeReader struct {
	r *mmap.ReaderAt
}

// OpenFile memory-maps path for range reading.
func OpenFile(path string) (*FileRangeReader, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileRangeReader{r: r}, nil
}

// ReadRange returns up to n bytes at off; reads past the end of the file
// are truncated rather than failed.
func (f *FileRangeReader) ReadRange(off int64, n int) ([]byte, error) {
	if off >= int64(f.r.Len()) {
		return nil, nil
	}
	buf := make([]byte, n)
	m, err := f.r.ReadAt(buf, off)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return buf[:m], nil
}

// Close unmaps the file.
func (f *FileRangeReader) Close() error { return f.r.Close() }

// BufferRangeReader adapts an in-memory buffer to the RangeReader
// interface, giving buffers and streams the same extraction surface.
type BufferRangeReader struct {
	data []byte
}

// NewBufferRangeReader wraps b without copying it.
func NewBufferRangeReader(b []byte) *BufferRangeReader {
	return &BufferRangeReader{data: b}
}

// ReadRange returns up to n bytes at off.
func (b *BufferRangeReader) ReadRange(off int64, n int) ([]byte, error) {
	if off < 0 || off >= int64(len(b.data)) {
		return nil, nil
	}
	end := off + int64(n)
	if end > int64(len(b.data)) {
		end = int64(len(b.data))
	}
	return b.data[off:end], nil
}
