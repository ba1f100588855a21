// Package decompress auto-detects the compression codec of the Wikidata
// dump from its magic bytes and exposes a single io.Reader over the
// decompressed byte stream, supporting gzip and zstd.
package decompress

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Reader wraps the decompressed stream. Close releases any codec-owned
// resources (the zstd decoder's worker goroutines in particular).
type Reader struct {
	io.Reader
	closeFn func() error
}

// Close releases resources held by the underlying codec. It is safe to call
// even when the codec needs no cleanup.
func (r *Reader) Close() error {
	if r.closeFn == nil {
		return nil
	}
	return r.closeFn()
}

// Open peeks at the first few bytes of src to identify the codec, then
// returns a Reader that decompresses the remainder of the stream. An
// unrecognized magic is a fatal codec error.
func Open(src io.Reader) (*Reader, error) {
	br := bufio.NewReaderSize(src, 64*1024)

	magic, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("decompress: reading magic bytes: %w", err)
	}

	switch {
	case hasPrefix(magic, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("decompress: opening gzip stream: %w", err)
		}
		return &Reader{Reader: gr, closeFn: gr.Close}, nil

	case hasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("decompress: opening zstd stream: %w", err)
		}
		return &Reader{Reader: zr, closeFn: func() error { zr.Close(); return nil }}, nil

	default:
		return nil, fmt.Errorf("decompress: unrecognized codec magic %x", magic)
	}
}

func hasPrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}
