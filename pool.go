package mpq

import (
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// zlibReaders recycles decompressors across sector decodes. A multi-sector
// file opens one small zlib stream per sector, which makes reader reuse
// worthwhile. zlib.Reader has no zero-value constructor, so the pool starts
// empty and is seeded as readers are returned.
var zlibReaders sync.Pool

// getZlibReader returns a pooled reader reset onto src, or a fresh one. A
// reset failure (src is not a zlib stream) reports the error without
// consuming the pooled reader.
func getZlibReader(src io.Reader) (io.ReadCloser, error) {
	v := zlibReaders.Get()
	if v == nil {
		return zlib.NewReader(src)
	}
	zr := v.(zlib.Resetter)
	if err := zr.Reset(src, nil); err != nil {
		zlibReaders.Put(v)
		return nil, err
	}
	return zr.(io.ReadCloser), nil
}

func putZlibReader(r io.ReadCloser) {
	_ = r.Close()
	zlibReaders.Put(r)
}
