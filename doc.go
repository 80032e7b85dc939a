// Package mpq reads MPQ archives, the container format a family of
// 1990s-2000s real-time-strategy games uses for maps and campaigns, and
// extracts the files embedded in them.
//
// The package favors maximal best-effort recovery over strict format
// conformance: real-world archives routinely carry forged decoy headers,
// tables stored in cleartext despite encryption flags, inconsistently set
// compression identifiers and slightly wrong size fields. Header candidates
// are validated against their own declared geometry before acceptance,
// table encryption is auto-detected, and the sector pipeline falls back
// through several interpretations before giving up on a file.
//
// IMPLEMENTATION:
// Parse scans the buffer for a validated header, decodes the hash and block
// tables and returns an immutable Archive. Extraction resolves a name
// through the hash table (or takes a raw block index), decrypts with the
// format's stream cipher where needed, and routes compressed payloads
// through a multi-algorithm dispatcher covering deflate, PKWare DCL
// implode, bzip2, LZMA and the format's adaptive Huffman coding, including
// the chained combinations observed in real archives. Extracted files are
// memoized in an adaptive replacement cache (ARC).
//
// ParseStream mirrors the same logic over a caller-supplied RangeReader for
// archives too large to hold in memory, and adds index-based discovery of
// nested archives (containers holding independent sub-archives), which are
// re-parsed recursively.
//
// Archives are read-only input: an Archive or StreamArchive is immutable
// once parsing returns and safe for concurrent extraction.
//
// Out of scope: archive creation, ADPCM/Sparse audio payloads, and decoding
// of the image formats stored inside archives.
package mpq
