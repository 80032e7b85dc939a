package mpq

import (
	"fmt"
	"log/slog"
	"strings"

	arc "github.com/hashicorp/golang-lru/arc/v2"
)

// listfileName is the conventional name of the embedded file listing.
const listfileName = "(listfile)"

// File is the result of extracting one archive member.
type File struct {
	// Name is the archive-internal path, backslash separated. Files
	// reached by block index get a synthesized placeholder name.
	Name string

	// Data is the fully decoded content. The slice is owned by the File;
	// it never aliases the archive buffer.
	Data []byte

	CompressedSize   uint32
	UncompressedSize uint32
	Compressed       bool
	Encrypted        bool
}

// Archive is a fully parsed in-memory archive.
//
// An Archive is immutable once Parse returns: header and tables are built
// exactly once and only read afterwards, so any number of goroutines may
// extract concurrently. The memoization cache is append-only from the
// caller's perspective; racing extractions of the same name do redundant
// work but never produce incorrect results.
type Archive struct {
	data       []byte
	headerOff  int64
	header     Header
	hashTable  []HashEntry
	blockTable []BlockEntry

	// userData holds the wrapper payload for archives reached through a
	// user-data block (map previews and similar auxiliary data).
	userData []byte

	cache  *arc.ARCCache[string, *File]
	logger *slog.Logger
	pipe   pipeline
	nested int
}

// Parse locates the header in data, decodes both tables and returns a
// ready-to-extract Archive. It never panics; malformed input surfaces as
// ErrNoHeader or ErrTableOutOfBounds.
//
// The buffer is retained and read from during extraction, but never
// written to.
func Parse(data []byte, opts ...Option) (*Archive, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		if err := o(&cfg); err != nil {
			return nil, err
		}
	}
	return parseWithConfig(data, cfg)
}

func parseWithConfig(data []byte, cfg config) (*Archive, error) {
	loc, err := findHeader(data, int64(len(data)))
	if err != nil {
		return nil, err
	}
	h := loc.header

	hashStart := loc.offset + int64(h.HashTablePos)
	hashEnd := hashStart + int64(h.HashTableSize)*hashEntrySize
	blockStart := loc.offset + int64(h.BlockTablePos)
	blockEnd := blockStart + int64(h.BlockTableSize)*blockEntrySize
	if hashEnd > int64(len(data)) || blockEnd > int64(len(data)) {
		return nil, ErrTableOutOfBounds
	}

	cache, err := arc.NewARC[string, *File](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("mpq: create extraction cache: %w", err)
	}

	logger := cfg.log()
	return &Archive{
		data:       data,
		headerOff:  loc.offset,
		header:     h,
		hashTable:  readHashTable(data[hashStart:hashEnd], h),
		blockTable: readBlockTable(data[blockStart:blockEnd], h, tableLimit(h, int64(len(data)))),
		userData:   loc.userData,
		cache:      cache,
		logger:     logger,
		pipe: pipeline{
			blockSize: h.BlockSize(),
			logger:    logger,
			verify:    cfg.verify,
		},
		nested: cfg.maxNestedDepth,
	}, nil
}

// Header returns the parsed archive header.
func (a *Archive) Header() Header { return a.header }

// BlockCount returns the number of block table entries, including dead ones.
func (a *Archive) BlockCount() int { return len(a.blockTable) }

// UserData returns the payload of the user-data wrapper that preceded the
// archive header, or nil when the archive had none. Map previews are
// typically stored here.
func (a *Archive) UserData() []byte { return a.userData }

// normalizeName maps the caller's spelling onto the archive-internal one:
// separators become backslashes. Hashing itself is case-insensitive.
func normalizeName(name string) string {
	return strings.ReplaceAll(name, "/", "\\")
}

// lookupEntry resolves name to its hash table entry via an exact
// (hashA, hashB) match, preferring the neutral locale when a name exists in
// several. A miss returns nil: probing for optional files is a normal usage
// pattern, not an error.
func lookupEntry(hashTable []HashEntry, name string) *HashEntry {
	hashA := hashString(name, hashNameA)
	hashB := hashString(name, hashNameB)

	var first *HashEntry
	for i := range hashTable {
		e := &hashTable[i]
		if e.BlockIndex == hashSlotEmpty || e.BlockIndex == hashSlotDeleted {
			continue
		}
		if e.HashA != hashA || e.HashB != hashB {
			continue
		}
		if e.Locale == 0 {
			return e
		}
		if first == nil {
			first = e
		}
	}
	return first
}

func (a *Archive) findEntry(name string) *HashEntry {
	return lookupEntry(a.hashTable, name)
}

// Contains reports whether name resolves to a live file.
func (a *Archive) Contains(name string) bool {
	norm := normalizeName(name)
	e := a.findEntry(norm)
	if e == nil || e.BlockIndex >= uint32(len(a.blockTable)) {
		return false
	}
	return a.blockTable[e.BlockIndex].exists()
}

// ExtractFile decodes the named file. A (nil, nil) result means the archive
// has no such file; errors are per-file and leave the archive usable.
// Results are memoized, so repeated extraction of hot names is cheap.
func (a *Archive) ExtractFile(name string) (*File, error) {
	norm := normalizeName(name)
	key := strings.ToUpper(norm)
	if f, ok := a.cache.Get(key); ok {
		return f, nil
	}

	e := a.findEntry(norm)
	if e == nil || e.BlockIndex >= uint32(len(a.blockTable)) {
		return nil, nil
	}
	be := a.blockTable[e.BlockIndex]
	if !be.exists() {
		return nil, nil
	}

	raw, err := a.rawBlock(be)
	if err != nil {
		return nil, err
	}
	data, err := a.pipe.decode(raw, be, norm)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	f := &File{
		Name:             norm,
		Data:             data,
		CompressedSize:   be.CompressedSize,
		UncompressedSize: be.UncompressedSize,
		Compressed:       be.Flags&flagCompressed != 0,
		Encrypted:        be.Flags&flagEncrypted != 0,
	}
	a.cache.Add(key, f)
	return f, nil
}

// ExtractFileByIndex decodes the file at block index i without consulting
// the hash table, for archives whose filenames are unknown. Encrypted
// blocks return (nil, nil): without a name there is no way to derive the
// decryption key. Out-of-range indices and dead entries are likewise
// negative results, not errors.
func (a *Archive) ExtractFileByIndex(i int) (*File, error) {
	if i < 0 || i >= len(a.blockTable) {
		return nil, nil
	}
	be := a.blockTable[i]
	if !be.exists() {
		return nil, nil
	}

	raw, err := a.rawBlock(be)
	if err != nil {
		return nil, err
	}
	data, err := a.pipe.decode(raw, be, "")
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
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

// ListFiles returns the names recorded in the archive's embedded listfile,
// filtered to names that actually resolve in the hash table. Archives
// without a listfile return nil; names of files not listed there are simply
// unknown.
func (a *Archive) ListFiles() []string {
	lf, err := a.ExtractFile(listfileName)
	if err != nil || lf == nil {
		return nil
	}

	fields := strings.FieldsFunc(string(lf.Data), func(r rune) bool {
		return r == '\r' || r == '\n' || r == ';'
	})
	names := make([]string, 0, len(fields))
	for _, name := range fields {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if a.Contains(name) {
			names = append(names, normalizeName(name))
		}
	}
	return names
}

// rawBlock slices the on-disk bytes of one block out of the archive buffer.
func (a *Archive) rawBlock(be BlockEntry) ([]byte, error) {
	start := a.headerOff + int64(be.FilePos)
	end := start + int64(be.CompressedSize)
	if start < a.headerOff || end > int64(len(a.data)) {
		return nil, ErrFileDataOutOfBounds
	}
	return a.data[start:end], nil
}
