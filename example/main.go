package main

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/maprender/mpq"
)

func main() {
	fmt.Println("=== MPQ Archive Example ===")
	fmt.Println()

	if len(os.Args) > 1 {
		// With a path argument, walk a real archive from disk.
		inspectArchive(os.Args[1])
		return
	}

	// Without one, build a tiny synthetic archive in memory and extract
	// from it, so the example runs standalone.
	data := buildExampleArchive()
	fmt.Printf("Built a synthetic archive: %d bytes\n\n", len(data))

	demonstrateParse(data)
	fmt.Println()
	demonstrateStreaming(data)
}

// demonstrateParse shows in-memory parsing and index-based extraction.
func demonstrateParse(data []byte) {
	fmt.Println("--- Parse ---")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	a, err := mpq.Parse(data, mpq.WithLogger(logger))
	if err != nil {
		log.Fatal("Failed to parse archive:", err)
	}

	h := a.Header()
	fmt.Printf("Format version: %d\n", h.FormatVersion)
	fmt.Printf("Sector size:    %d bytes\n", h.BlockSize())
	fmt.Printf("Blocks:         %d\n", a.BlockCount())

	// The synthetic archive carries no usable hash table entries, so files
	// are reached by block index.
	for i := 0; i < a.BlockCount(); i++ {
		f, err := a.ExtractFileByIndex(i)
		if err != nil {
			fmt.Printf("  block %d: %v\n", i, err)
			continue
		}
		if f == nil {
			fmt.Printf("  block %d: no extractable file\n", i)
			continue
		}
		fmt.Printf("  %s: %d -> %d bytes (compressed=%v)\n",
			f.Name, f.CompressedSize, f.UncompressedSize, f.Compressed)
		fmt.Printf("    %q\n", firstLine(f.Data))
	}

	// Name lookups against an archive without names are negative results,
	// not errors.
	if f, err := a.ExtractFile("war3map.j"); err == nil && f == nil {
		fmt.Println("  lookup of unknown name: not found (no error)")
	}
}

// demonstrateStreaming runs the same archive through the range-based parser.
func demonstrateStreaming(data []byte) {
	fmt.Println("--- ParseStream ---")

	progress := func(stage string, fraction float64) {
		fmt.Printf("  [%3.0f%%] %s\n", fraction*100, stage)
	}

	s, err := mpq.ParseStream(mpq.NewBufferRangeReader(data), mpq.WithProgress(progress))
	if err != nil {
		log.Fatal("Failed to parse archive stream:", err)
	}

	nested, err := s.FindNestedArchives()
	if err != nil {
		log.Fatal("Nested archive scan failed:", err)
	}
	fmt.Printf("Nested archives found: %d\n", len(nested))
}

// inspectArchive opens path with the mmap-backed reader and lists what the
// archive says it contains.
func inspectArchive(path string) {
	r, err := mpq.OpenFile(path)
	if err != nil {
		log.Fatal("Failed to open archive:", err)
	}
	defer r.Close()

	s, err := mpq.ParseStream(r)
	if err != nil {
		log.Fatal("Failed to parse archive:", err)
	}

	fmt.Printf("Archive: %s\n", path)
	fmt.Printf("Blocks:  %d\n", s.BlockCount())

	if f, err := s.ExtractFile("(listfile)"); err == nil && f != nil {
		fmt.Println("Listed files:")
		for _, name := range strings.Fields(string(f.Data)) {
			fmt.Printf("  %s\n", name)
		}
	} else {
		fmt.Println("Archive has no listfile; extract by block index instead.")
	}

	nested, err := s.FindNestedArchives()
	if err != nil {
		log.Fatal("Nested archive scan failed:", err)
	}
	for _, i := range nested {
		fmt.Printf("Block %d looks like a nested archive\n", i)
	}
}

// buildExampleArchive assembles a minimal well-formed archive: a 32-byte
// header, one stored file, one zlib-compressed single-unit file, an empty
// hash table and a cleartext block table.
func buildExampleArchive() []byte {
	const (
		flagExists     = 0x80000000
		flagCompressed = 0x200
		flagSingleUnit = 0x1000000
	)

	stored := []byte("Hello from a stored file.\n")

	plain := bytes.Repeat([]byte("terrain tile row\n"), 40)
	var zbuf bytes.Buffer
	zw := zlib.NewWriter(&zbuf)
	zw.Write(plain)
	zw.Close()
	// Single-unit payloads lead with the compression identifier byte.
	compressed := append([]byte{0x02}, zbuf.Bytes()...)

	var body bytes.Buffer
	body.Write(make([]byte, 32)) // header placeholder

	filePos1 := uint32(body.Len())
	body.Write(stored)
	filePos2 := uint32(body.Len())
	body.Write(compressed)

	hashPos := uint32(body.Len())
	// Four empty hash slots (all 0xFF).
	body.Write(bytes.Repeat([]byte{0xFF}, 4*16))

	blockPos := uint32(body.Len())
	writeBlock := func(pos, csize, usize, flags uint32) {
		var e [16]byte
		binary.LittleEndian.PutUint32(e[0:], pos)
		binary.LittleEndian.PutUint32(e[4:], csize)
		binary.LittleEndian.PutUint32(e[8:], usize)
		binary.LittleEndian.PutUint32(e[12:], flags)
		body.Write(e[:])
	}
	writeBlock(filePos1, uint32(len(stored)), uint32(len(stored)), flagExists)
	writeBlock(filePos2, uint32(len(compressed)), uint32(len(plain)),
		flagExists|flagCompressed|flagSingleUnit)

	data := body.Bytes()
	binary.LittleEndian.PutUint32(data[0:], 0x1A51504D) // magic
	binary.LittleEndian.PutUint32(data[4:], 32)         // header size
	binary.LittleEndian.PutUint32(data[8:], uint32(len(data)))
	binary.LittleEndian.PutUint16(data[12:], 0) // format version
	binary.LittleEndian.PutUint16(data[14:], 3) // sector shift: 4 KiB
	binary.LittleEndian.PutUint32(data[16:], hashPos)
	binary.LittleEndian.PutUint32(data[20:], blockPos)
	binary.LittleEndian.PutUint32(data[24:], 4) // hash table entries
	binary.LittleEndian.PutUint32(data[28:], 2) // block table entries
	return data
}

func firstLine(b []byte) string {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
