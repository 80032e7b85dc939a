package mpq

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompress_Stored(t *testing.T) {
	plain := []byte("stored bytes")
	out, err := decompress(0, plain, len(plain))
	require.NoError(t, err)
	assert.Equal(t, plain, out)
}

func TestDecompress_Deflate(t *testing.T) {
	plain := bytes.Repeat([]byte("deflate test content "), 40)

	for _, id := range []byte{compressDeflate, compressPKZip, 0x18} {
		out, err := decompress(id, zlibCompress(t, plain), len(plain))
		require.NoError(t, err, "id 0x%02X", id)
		assert.Equal(t, plain, out, "id 0x%02X", id)
	}
}

func TestDecompress_Implode_KnownVector(t *testing.T) {
	// Reference stream from the DCL format documentation.
	imploded := []byte{0x00, 0x04, 0x82, 0x24, 0x25, 0x8F, 0x80, 0x7F}
	want := []byte("AIAIAIAIAIAIA")

	out, err := decompress(compressImplode, imploded, len(want))
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestDecompress_Implode_Literals(t *testing.T) {
	plain := []byte("uncoded literal stream, every byte spelled out")
	out, err := decompress(compressImplode, dclEncodeLiterals(plain), len(plain))
	require.NoError(t, err)
	assert.Equal(t, plain, out)
}

func TestDecompress_BZip2(t *testing.T) {
	plain := bytes.Repeat([]byte("bzip2 block sort input "), 50)
	out, err := decompress(compressBZip2, bzip2Compress(t, plain), len(plain))
	require.NoError(t, err)
	assert.Equal(t, plain, out)
}

func TestDecompress_LZMA(t *testing.T) {
	plain := bytes.Repeat([]byte("lzma payload content "), 50)

	full := lzmaCompress(t, plain)
	out, err := decompress(compressLZMA, full, len(plain))
	require.NoError(t, err)
	assert.Equal(t, plain, out)
}

func TestDecompress_LZMA_Headerless(t *testing.T) {
	// Properties immediately followed by the stream, no size field.
	plain := bytes.Repeat([]byte("headerless lzma "), 40)
	full := lzmaCompress(t, plain)
	require.Greater(t, len(full), 13)
	headerless := append(append([]byte(nil), full[:5]...), full[13:]...)

	out, err := decompress(compressLZMA, headerless, len(plain))
	require.NoError(t, err)
	assert.Equal(t, plain, out)
}

func TestDecompress_Huffman(t *testing.T) {
	plain := bytes.Repeat([]byte("huffman sector "), 30)
	out, err := decompress(compressHuffman, huffEncode(0, plain), len(plain))
	require.NoError(t, err)
	assert.Equal(t, plain, out)
}

func TestDecompress_Chains(t *testing.T) {
	plain := bytes.Repeat([]byte("chained compression stages "), 30)

	tests := []struct {
		name    string
		id      byte
		payload []byte
	}{
		{
			// Decompression runs Huffman first, then inflate.
			name:    "huffman then deflate",
			id:      0x09,
			payload: huffEncode(0, zlibCompress(t, plain)),
		},
		{
			name:    "huffman then implode",
			id:      0x05,
			payload: huffEncode(0, dclEncodeLiterals(plain)),
		},
		{
			name:    "implode then deflate",
			id:      0x0C,
			payload: dclEncodeLiterals(zlibCompress(t, plain)),
		},
		{
			name:    "huffman then implode then bzip2",
			id:      0x15,
			payload: huffEncode(0, dclEncodeLiterals(bzip2Compress(t, plain))),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := decompress(tc.id, tc.payload, len(plain))
			require.NoError(t, err)
			assert.Equal(t, plain, out)
		})
	}
}

func TestDecompress_AmbiguousLadder(t *testing.T) {
	plain := bytes.Repeat([]byte("ladder content "), 30)

	t.Run("imploded", func(t *testing.T) {
		out, err := decompress(0x1C, dclEncodeLiterals(plain), len(plain))
		require.NoError(t, err)
		assert.Equal(t, plain, out)
	})

	t.Run("deflated", func(t *testing.T) {
		out, err := decompress(0x1C, zlibCompress(t, plain), len(plain))
		require.NoError(t, err)
		assert.Equal(t, plain, out)
	})

	t.Run("imploded then deflated", func(t *testing.T) {
		out, err := decompress(0x1C, dclEncodeLiterals(zlibCompress(t, plain)), len(plain))
		require.NoError(t, err)
		assert.Equal(t, plain, out)
	})
}

func TestDecompress_AudioUnsupported(t *testing.T) {
	for _, id := range []byte{compressSparse, compressADPCMMono, compressADPCMStereo, 0x81, 0x48} {
		_, err := decompress(id, []byte{1, 2, 3, 4}, 16)
		assert.ErrorIs(t, err, ErrAudioCompression, "id 0x%02X", id)
	}
}

func TestDecompress_UnknownID(t *testing.T) {
	t.Run("garbage fails", func(t *testing.T) {
		_, err := decompress(0x0B, []byte{0xDE, 0xAD, 0xBE, 0xEF}, 16)
		var uce *UnsupportedCompressionError
		require.ErrorAs(t, err, &uce)
		assert.Equal(t, byte(0x0B), uce.ID)
	})

	t.Run("hidden deflate succeeds", func(t *testing.T) {
		// Several producers ship deflate streams under private identifiers;
		// the last-resort attempt recovers them.
		plain := bytes.Repeat([]byte("mislabeled deflate "), 20)
		out, err := decompress(0x0B, zlibCompress(t, plain), len(plain))
		require.NoError(t, err)
		assert.Equal(t, plain, out)
	})
}

func TestInflate_RawDeflateFallback(t *testing.T) {
	// A zlib envelope is optional in the wild; raw deflate must also decode.
	plain := bytes.Repeat([]byte("raw deflate "), 20)
	z := zlibCompress(t, plain)

	// Strip the 2-byte zlib header and 4-byte trailer to get the raw stream.
	raw := z[2 : len(z)-4]
	out, err := inflate(raw, len(plain))
	require.NoError(t, err)
	assert.Equal(t, plain, out)
}

func TestDecompress_ShortPayloads(t *testing.T) {
	_, err := decompress(compressImplode, []byte{0x00}, 16)
	assert.ErrorIs(t, err, errShortPayload)

	_, err = decompress(compressLZMA, []byte{0x5D, 0x00}, 16)
	assert.ErrorIs(t, err, errShortPayload)
}
