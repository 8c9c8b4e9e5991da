package importer

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
)

// Magic byte signatures for the compression formats scrape dumps ship in.
var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte{0x42, 0x5a, 0x68}
	xzMagic    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// readDump reads a dump file, transparently decompressing gzip, bzip2 or
// xz content detected by magic bytes. Uncompressed files pass through.
func readDump(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header := make([]byte, 6)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var reader io.Reader = f
	switch {
	case n >= 2 && bytes.HasPrefix(header, gzipMagic):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip reader for %s: %w", path, err)
		}
		defer gz.Close()
		reader = gz
	case n >= 3 && bytes.HasPrefix(header, bzip2Magic):
		reader = bzip2.NewReader(f)
	case n >= 6 && bytes.HasPrefix(header, xzMagic):
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xz reader for %s: %w", path, err)
		}
		reader = xr
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	return data, nil
}
