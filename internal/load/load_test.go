package load

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var decompressTests = []struct {
	message string
	input   io.Reader
	expect  string
	err     bool
}{
	{
		message: "text input",
		input:   strings.NewReader("rdfsink data\n"),
		expect:  "rdfsink data\n",
	},
	{
		message: "short input",
		input:   strings.NewReader("x"),
		expect:  "x",
	},
	{
		message: "empty input",
		input:   strings.NewReader(""),
		expect:  "",
	},
	{
		message: "gzip input",
		input:   bytes.NewReader(gzipped("rdfsink data\n")),
		expect:  "rdfsink data\n",
	},
	{
		message: "bzip2 input",
		input: bytes.NewReader([]byte{
			0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0xb5, 0x4b, 0xe3, 0xc4, 0x00, 0x00,
			0x02, 0xd1, 0x80, 0x00, 0x10, 0x40, 0x00, 0x2e, 0x04, 0x04, 0x20, 0x20, 0x00, 0x31, 0x06, 0x4c,
			0x41, 0x4c, 0x1e, 0xa7, 0xa9, 0x2a, 0x18, 0x26, 0xb1, 0xc2, 0xee, 0x48, 0xa7, 0x0a, 0x12, 0x16,
			0xa9, 0x7c, 0x78, 0x80,
		}),
		expect: "cayley data\n",
	},
	{
		message: "bad gzip input",
		input:   strings.NewReader("\x1f\x8brdfsink data\n"),
		err:     true,
	},
}

func gzipped(s string) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(s))
	zw.Close()
	return buf.Bytes()
}

func TestDecompress(t *testing.T) {
	for _, c := range decompressTests {
		t.Run(c.message, func(t *testing.T) {
			r, err := Decompress(c.input)
			if c.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, c.expect, string(data))
		})
	}
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.nq")
	require.NoError(t, os.WriteFile(path, gzipped("<a> <b> <c> .\n"), 0644))

	in, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer in.Close()
	data, err := io.ReadAll(in)
	require.NoError(t, err)
	require.Equal(t, "<a> <b> <c> .\n", string(data))
	require.True(t, strings.HasPrefix(in.Base, "file:///"), in.Base)
	require.True(t, strings.HasSuffix(in.Base, "/doc.nq"), in.Base)
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.nq")
	_, err := Open(context.Background(), path)
	var re *ResourceError
	require.True(t, errors.As(err, &re), "got %v", err)
	require.Contains(t, err.Error(), "File "+path+" does not exist")
}

func TestOpenDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(context.Background(), dir)
	var re *ResourceError
	require.True(t, errors.As(err, &re), "got %v", err)
	require.Contains(t, err.Error(), "Cannot read file named")
}

func TestOpenURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "<a> <b> <c> .\n")
	}))
	defer srv.Close()

	in, err := Open(context.Background(), srv.URL+"/doc")
	require.NoError(t, err)
	defer in.Close()
	require.Equal(t, srv.URL+"/doc", in.Base)
	data, err := io.ReadAll(in)
	require.NoError(t, err)
	require.Equal(t, "<a> <b> <c> .\n", string(data))

	_, err = Open(context.Background(), srv.URL+"/missing")
	var re *ResourceError
	require.True(t, errors.As(err, &re), "got %v", err)
	require.Contains(t, err.Error(), "404")
}

func TestIsURL(t *testing.T) {
	require.True(t, IsURL("http://example.org/doc"))
	require.True(t, IsURL("https://example.org/doc"))
	require.False(t, IsURL("file:///tmp/doc"))
	require.False(t, IsURL("doc.nq"))
	require.False(t, IsURL("ftp://example.org/doc"))
}

func TestCreate(t *testing.T) {
	var stdout bytes.Buffer
	w, err := Create("-", &stdout)
	require.NoError(t, err)
	io.WriteString(w, "a")
	require.NoError(t, w.Close())
	require.Equal(t, "a", stdout.String())

	path := filepath.Join(t.TempDir(), "out.nt.gz")
	w, err = Create(path, &stdout)
	require.NoError(t, err)
	io.WriteString(w, "<a> <b> <c> .\n")
	require.NoError(t, w.Close())

	in, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer in.Close()
	data, err := io.ReadAll(in)
	require.NoError(t, err)
	require.Equal(t, "<a> <b> <c> .\n", string(data))

	_, err = Create(filepath.Join(t.TempDir(), "no", "such", "dir"), &stdout)
	require.Error(t, err)
}
