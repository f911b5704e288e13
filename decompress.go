package correlate

import (
	"compress/bzip2"
	"compress/zlib"
	"io"

	"github.com/carbocation/pfx"
	gzip "github.com/klauspost/pgzip"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type Compression byte

const (
	CompressionUnknown Compression = iota
	CompressionNone
	CompressionGzip
	CompressionZip
	CompressionXZ
	CompressionZlib
	CompressionBzip2
)

// Byte signatures via https://stackoverflow.com/a/19127748/199475
var compressionSigs = map[Compression][]byte{
	CompressionGzip:  {0x1f, 0x8b, 0x08},
	CompressionZip:   {0x50, 0x4b, 0x03, 0x04},
	CompressionXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	CompressionBzip2: {0x42, 0x5a, 0x68},
}

// zlib has a two-byte header: 0x78 followed by a byte that encodes the
// compression level.
var zlibLevels = []byte{0x01, 0x5e, 0x9c, 0xda}

// DetectCompression reads up to 6 bytes from r and matches them against
// the known compression signatures. Streams shorter than the longest
// signature can still match the shorter ones.
func DetectCompression(r io.Reader) (Compression, error) {
	buf := make([]byte, 6)

	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return CompressionUnknown, err
	}
	buf = buf[:n]

Outer:
	for compression, sig := range compressionSigs {
		if len(buf) < len(sig) {
			continue
		}
		for i := range sig {
			if buf[i] != sig[i] {
				continue Outer
			}
		}
		return compression, nil
	}

	if len(buf) >= 2 && buf[0] == 0x78 {
		for _, level := range zlibLevels {
			if buf[1] == level {
				return CompressionZlib, nil
			}
		}
	}

	return CompressionNone, nil
}

// MaybeDecompress wraps f in a decompressing reader when its leading
// bytes match a known signature, and hands f back as-is otherwise. f is
// rewound after sniffing, so the returned reader always yields the
// stream from its first byte. Closing the returned reader does not
// close f.
func MaybeDecompress(f io.ReadSeeker) (io.ReadCloser, error) {
	compression, err := DetectCompression(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// Rewind before the decompressors read their headers.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, pfx.Err(err)
	}

	switch compression {
	case CompressionGzip:
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return gzr, nil
	case CompressionZip:
		// Transparently read the first archived file, which is how the
		// download portals package a lone CSV.
		zr := zipstream.NewReader(f)
		if _, err := zr.Next(); err != nil {
			return nil, pfx.Err(err)
		}
		return io.NopCloser(zr), nil
	case CompressionXZ:
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return io.NopCloser(xzr), nil
	case CompressionBzip2:
		return io.NopCloser(bzip2.NewReader(f)), nil
	case CompressionZlib:
		zlr, err := zlib.NewReader(f)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return zlr, nil
	}

	return io.NopCloser(f), nil
}
