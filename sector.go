package mpq

import (
	"encoding/binary"
	"hash/adler32"
	"log/slog"
)

// pipeline carries the knobs block decoding needs regardless of whether the
// raw bytes came from an in-memory buffer or a range reader.
type pipeline struct {
	blockSize uint32
	logger    *slog.Logger

	// verify enables Adler-32 verification of sectors in files that carry
	// a checksum table.
	verify bool
}

// decode turns the raw on-disk bytes of one block into file content.
//
// raw is the [FilePos, FilePos+CompressedSize) slice; it is never mutated,
// decrypted and decompressed data always land in fresh buffers. name may be
// empty for index-based extraction; an encrypted block then has no derivable
// key and decode reports a negative result (nil, nil) rather than an error.
func (p pipeline) decode(raw []byte, be BlockEntry, name string) ([]byte, error) {
	encrypted := be.Flags&flagEncrypted != 0
	var key uint32
	if encrypted {
		if name == "" {
			return nil, nil
		}
		key = fileKey(name, be.FilePos, be.UncompressedSize, be.Flags)
	}

	if be.Flags&flagCompressed == 0 {
		out := make([]byte, len(raw))
		copy(out, raw)
		if encrypted {
			decryptBytes(out, key)
		}
		return out, nil
	}

	if be.Flags&flagSingleUnit != 0 {
		return p.decodeSingleUnit(raw, be, name, key, encrypted)
	}
	return p.decodeSectors(raw, be, name, key, encrypted)
}

func (p pipeline) decodeSingleUnit(raw []byte, be BlockEntry, name string, key uint32, encrypted bool) ([]byte, error) {
	out := make([]byte, len(raw))
	copy(out, raw)
	if encrypted {
		decryptBytes(out, key)
	}

	// Incompressible payloads keep the compressed flag but are stored
	// verbatim; the sizes give it away.
	if be.CompressedSize >= be.UncompressedSize {
		if uint32(len(out)) > be.UncompressedSize {
			out = out[:be.UncompressedSize]
		}
		return out, nil
	}

	if len(out) == 0 {
		return nil, errShortPayload
	}
	dec, err := decompress(out[0], out[1:], int(be.UncompressedSize))
	if err != nil {
		return nil, err
	}
	return p.checkLength(dec, be, name), nil
}

func (p pipeline) decodeSectors(raw []byte, be BlockEntry, name string, key uint32, encrypted bool) ([]byte, error) {
	bs := p.blockSize
	if be.UncompressedSize == 0 {
		return []byte{}, nil
	}
	sectorCount := (be.UncompressedSize + bs - 1) / bs

	// One end offset past the data sectors, plus a trailing checksum
	// sector when the block carries per-sector checksums.
	entries := sectorCount + 1
	hasCRC := be.Flags&flagSectorCRC != 0
	if hasCRC {
		entries++
	}
	tableBytes := int(entries) * 4
	if len(raw) < tableBytes {
		return nil, ErrSectorTableInvalid
	}

	parseOffsets := func(b []byte) []uint32 {
		off := make([]uint32, entries)
		for i := range off {
			off[i] = binary.LittleEndian.Uint32(b[i*4:])
		}
		return off
	}
	valid := func(off []uint32) bool {
		if off[0] < uint32(tableBytes) {
			return false
		}
		for i := 0; i+1 < len(off); i++ {
			if off[i+1] < off[i] {
				return false
			}
		}
		return off[len(off)-1] <= uint32(len(raw))
	}

	// Producers set the encrypted flag inconsistently, so the offset table
	// is resolved in tiers: decrypted with key-1 first, then as plaintext
	// (seen with nested archives misclassified at the outer level, whose
	// sectors are plaintext too), and as a last resort the payload after
	// the table region is salvaged as a single compressed unit.
	var offsets []uint32
	decrypting := false
	if encrypted {
		dec := make([]byte, tableBytes)
		copy(dec, raw[:tableBytes])
		decryptBytes(dec, key-1)
		if off := parseOffsets(dec); valid(off) {
			offsets = off
			decrypting = true
		}
	}
	if offsets == nil {
		if off := parseOffsets(raw[:tableBytes]); valid(off) {
			offsets = off
			if encrypted {
				p.logger.Warn("sector table stored in cleartext despite encrypted flag; treating payload as plaintext",
					"file", name)
			}
		}
	}
	if offsets == nil {
		p.logger.Warn("sector offset table unusable; salvaging payload as a single unit", "file", name)
		body := raw[tableBytes:]
		if len(body) == 0 {
			return nil, ErrSectorTableInvalid
		}
		out, err := decompress(body[0], body[1:], int(be.UncompressedSize))
		if err != nil {
			return nil, ErrSectorTableInvalid
		}
		return p.checkLength(out, be, name), nil
	}

	var checksums []uint32
	if hasCRC {
		checksums = p.readChecksumSector(raw, offsets, sectorCount, key, decrypting, name)
	}

	out := make([]byte, 0, be.UncompressedSize)
	for i := uint32(0); i < sectorCount; i++ {
		sector := make([]byte, offsets[i+1]-offsets[i])
		copy(sector, raw[offsets[i]:offsets[i+1]])
		if decrypting {
			decryptBytes(sector, key+i)
		}
		if len(sector) == 0 {
			return nil, errShortPayload
		}

		if p.verify && int(i) < len(checksums) {
			if adler32.Checksum(sector) != checksums[i] {
				return nil, ErrChecksumMismatch
			}
		}

		expect := bs
		if i == sectorCount-1 {
			expect = be.UncompressedSize - i*bs
		}

		if sector[0] == 0 {
			out = append(out, sector[1:]...)
			continue
		}
		dec, err := decompress(sector[0], sector[1:], int(expect))
		if err != nil {
			return nil, err
		}
		out = append(out, dec...)
	}

	return p.checkLength(out, be, name), nil
}

// readChecksumSector decodes the trailing checksum sector: one little-endian
// Adler-32 per data sector, computed over the decrypted, still-compressed
// sector payload. A malformed checksum sector is reported and ignored; the
// checksums are an integrity aid, not part of the file content.
func (p pipeline) readChecksumSector(raw []byte, offsets []uint32, sectorCount, key uint32, decrypting bool, name string) []uint32 {
	start, end := offsets[sectorCount], offsets[sectorCount+1]
	seg := make([]byte, end-start)
	copy(seg, raw[start:end])
	if decrypting {
		decryptBytes(seg, key+sectorCount)
	}
	if uint32(len(seg)) != sectorCount*4 {
		p.logger.Warn("checksum sector has unexpected size; skipping verification",
			"file", name, "size", len(seg))
		return nil
	}
	sums := make([]uint32, sectorCount)
	for i := range sums {
		sums[i] = binary.LittleEndian.Uint32(seg[i*4:])
	}
	return sums
}

// checkLength compares decoded length against the block's declared size.
// Some producers write slightly inconsistent size fields, so a mismatch is
// reported but not fatal; overlong output is trimmed to the declared size.
func (p pipeline) checkLength(out []byte, be BlockEntry, name string) []byte {
	if uint32(len(out)) == be.UncompressedSize {
		return out
	}
	p.logger.Warn("decompressed size differs from block entry",
		"file", name, "declared", be.UncompressedSize, "actual", len(out))
	if uint32(len(out)) > be.UncompressedSize {
		out = out[:be.UncompressedSize]
	}
	return out
}
