// Package load opens conversion inputs: local files and http(s) URLs.
package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/cayleygraph/rdfsink/clog"
)

// ResourceError is returned when an input cannot be opened or read.
type ResourceError struct {
	Path string
	Msg  string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Input is an opened document.
type Input struct {
	io.Reader
	// Base is the IRI relative references in the document resolve against:
	// the URL itself, or file:// followed by the absolute path.
	Base string

	closer io.Closer
}

// Close releases the underlying file or response body.
func (in *Input) Close() error {
	if in.closer == nil {
		return nil
	}
	return in.closer.Close()
}

// Client is used to fetch remote inputs.
var Client = http.DefaultClient

// IsURL reports whether path names a remote http(s) resource.
func IsURL(path string) bool {
	u, err := url.Parse(path)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Open opens path as a local file or fetches it when it is an http(s) URL.
// The content is decompressed if it carries a gzip or bzip2 header.
func Open(ctx context.Context, path string) (*Input, error) {
	var (
		in  *Input
		err error
	)
	if IsURL(path) {
		in, err = fetch(ctx, path)
	} else {
		in, err = openFile(path)
	}
	if err != nil {
		return nil, err
	}
	r, err := Decompress(in.Reader)
	if err != nil {
		in.Close()
		return nil, &ResourceError{Path: path, Msg: fmt.Sprintf("Cannot read file named %s", path), Err: err}
	}
	in.Reader = r
	return in, nil
}

func openFile(path string) (*Input, error) {
	if u, err := url.Parse(path); err == nil && u.Scheme == "file" {
		// Recovery heuristic for mistyping "file://path/to/file".
		path = filepath.Join(u.Host, u.Path)
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &ResourceError{Path: path, Msg: fmt.Sprintf("File %s does not exist", path), Err: err}
	} else if err != nil {
		return nil, &ResourceError{Path: path, Msg: fmt.Sprintf("Cannot read file named %s", path), Err: err}
	}
	if st, err := f.Stat(); err == nil && st.IsDir() {
		f.Close()
		return nil, &ResourceError{Path: path, Msg: fmt.Sprintf("Cannot read file named %s", path)}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	base := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	if clog.V(2) {
		clog.Infof("reading %s as <%s>", path, base)
	}
	return &Input{Reader: f, Base: base, closer: f}, nil
}

func fetch(ctx context.Context, path string) (*Input, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, &ResourceError{Path: path, Msg: fmt.Sprintf("Cannot fetch %s", path), Err: err}
	}
	resp, err := Client.Do(req)
	if err != nil {
		return nil, &ResourceError{Path: path, Msg: fmt.Sprintf("Cannot fetch %s", path), Err: err}
	}
	if resp.StatusCode/100 != 2 {
		resp.Body.Close()
		return nil, &ResourceError{Path: path, Msg: fmt.Sprintf("Cannot fetch %s: %s", path, resp.Status)}
	}
	if clog.V(2) {
		clog.Infof("fetched <%s>: %s", path, resp.Status)
	}
	return &Input{Reader: resp.Body, Base: path, closer: resp.Body}, nil
}
