// Package serializer renders collected triples as RDF text.
//
// A serialization pass resolves blank node labels through a table private to
// the pass, converts each triple to a statement according to its object kind
// and writes the statements in emission order. Every triple is resolved
// before anything is written, so a malformed triple produces no output.
package serializer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cayleygraph/rdfsink/clog"
	"github.com/cayleygraph/rdfsink/triple"
)

// ErrUnknownFormat is returned for an output format that is not registered.
var ErrUnknownFormat = errors.New("unknown output format")

// Store is the read side of a triple collector.
type Store interface {
	Triples(s triple.Stream) []triple.Triple
	Namespaces() map[string]string
}

// Serialize renders stream s of st as N-Triples.
func Serialize(st Store, s triple.Stream) (string, error) {
	return SerializeAs(st, s, NTriples)
}

// SerializeAs renders stream s of st in the named format.
func SerializeAs(st Store, s triple.Stream, format string) (string, error) {
	f := FormatByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	var buf bytes.Buffer
	if _, err := Write(&buf, st, s, f); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders stream s of st to w in format f and returns the number of
// statements written.
func Write(w io.Writer, st Store, s triple.Stream, f *Format) (int, error) {
	start := time.Now()
	bn := NewBlankNodes()
	quads, err := bn.ResolveAll(st.Triples(s))
	if err != nil {
		mMalformed.Inc()
		return 0, err
	}
	mBlankNodes.Observe(float64(bn.Len()))

	qw := f.Writer(w, st.Namespaces())
	n, err := qw.WriteQuads(quads)
	if err != nil {
		qw.Close()
		return n, err
	}
	if err = qw.Close(); err != nil {
		return n, err
	}
	mStatements.WithLabelValues(f.Name).Add(float64(n))
	mSeconds.WithLabelValues(f.Name).Observe(time.Since(start).Seconds())
	if clog.V(2) {
		clog.Infof("wrote %d %s statements from the %v graph in %v", n, f.Name, s, time.Since(start))
	}
	return n, nil
}
