package load

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type gzipFile struct {
	*gzip.Writer
	f *os.File
}

func (g gzipFile) Close() error {
	err := g.Writer.Close()
	if cerr := g.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Create opens the output destination. An empty path or "-" selects
// stdout, which is not closed; a ".gz" extension compresses the file.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{Writer: stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %q: %w", path, err)
	}
	if filepath.Ext(path) == ".gz" {
		return gzipFile{Writer: gzip.NewWriter(f), f: f}, nil
	}
	return f, nil
}
